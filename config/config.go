package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Server     *Server     `json:"server" yaml:"server"`
	Postgres   *Postgres   `json:"postgres" yaml:"postgres"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Cors       *Cors       `json:"cors" yaml:"cors"`
	Pagination *Pagination `json:"pagination" yaml:"pagination"`
	RateLimit  *RateLimit  `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	Http             int `json:"http" yaml:"http"`
	RequestTimeoutMs int `json:"request_timeout_ms" yaml:"request_timeout_ms"`
	ShutdownTimeout  int `json:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms"`
}

func (s *Server) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}

func (s *Server) ShutdownWait() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 3 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Millisecond
}

// Env 环境变量覆盖项，优先级高于 yaml
type Env struct {
	Port        int    `env:"PORT"`
	DatabaseURL string `env:"DATABASE_URL"`
	AccessToken string `env:"APP_ACCESS_TOKEN"`
	RedisAddr   string `env:"REDIS_ADDR"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取 yaml，再叠加 .env 与环境变量
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	var env Env
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("解析环境变量错误: %w", err)
	}
	conf.defaults()
	conf.apply(env)

	return &conf, nil
}

func (c *Config) apply(env Env) {
	if env.Port != 0 {
		c.Server.Http = env.Port
	}
	if env.DatabaseURL != "" {
		c.Postgres.DSN = env.DatabaseURL
	}
	if env.AccessToken != "" {
		c.Jwt.Secret = env.AccessToken
	}
	if env.RedisAddr != "" {
		if c.Redis == nil {
			c.Redis = &Redis{}
		}
		c.Redis.Address = env.RedisAddr
	}
}

func (c *Config) defaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Postgres == nil {
		c.Postgres = &Postgres{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Cors == nil {
		c.Cors = &Cors{AllowedOrigins: []string{"*"}}
	}
	if c.Pagination == nil {
		c.Pagination = &Pagination{}
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
