package config

import "time"

// Redis Redis配置信息，未配置时不启用会话登记
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// SessionTTL 会话登记的过期秒数，0 表示不过期
	SessionTTL int `json:"session_ttl" yaml:"session_ttl"`
}

func (r *Redis) TTL() time.Duration {
	return time.Duration(r.SessionTTL) * time.Second
}
