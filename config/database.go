package config

import (
	"fmt"
	"time"
)

// Postgres 数据库配置，DSN 优先于分项配置
type Postgres struct {
	DSN             string `json:"dsn" yaml:"dsn"`
	Host            string `json:"host" yaml:"host"`
	Port            int    `json:"port" yaml:"port"`
	User            string `json:"user" yaml:"user"`
	Password        string `json:"password" yaml:"password"`
	Database        string `json:"database" yaml:"database"`
	SSLMode         string `json:"sslmode" yaml:"sslmode"`
	MaxOpenConns    int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `json:"conn_max_lifetime_s" yaml:"conn_max_lifetime_s"`
	LogLevel        string `json:"log_level" yaml:"log_level"`
}

func (p *Postgres) Dsn() string {
	if p.DSN != "" {
		return p.DSN
	}
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, sslMode)
}

func (p *Postgres) Lifetime() time.Duration {
	return time.Duration(p.ConnMaxLifetime) * time.Second
}
