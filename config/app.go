package config

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	// NodeID 雪花算法节点号，多实例部署需各不相同
	NodeID int64 `json:"node_id" yaml:"node_id"`
}

// Cors 跨域配置
type Cors struct {
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// Pagination 列表分页配置
type Pagination struct {
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
	// MaxLimit 为 0 时不限制 limit 上限
	MaxLimit int `json:"max_limit" yaml:"max_limit"`
}

// RateLimit 登录接口按 IP 限流
type RateLimit struct {
	LoginPerSecond float64 `json:"login_per_second" yaml:"login_per_second"`
	LoginBurst     int     `json:"login_burst" yaml:"login_burst"`
}
