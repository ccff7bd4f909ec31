package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireSeconds 为 0 时 token 不过期
	ExpireSeconds int `json:"expire_seconds" yaml:"expire_seconds"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireSeconds) * time.Second
}
