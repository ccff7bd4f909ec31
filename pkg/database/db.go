package database

import (
	"Bookgram/config"
	"Bookgram/pkg/log"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	db, err := Open(postgres.Open(conf.Postgres.Dsn()), conf.Postgres.LogLevel)
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Postgres.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.Postgres.MaxOpenConns)
	}
	if conf.Postgres.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.Postgres.MaxIdleConns)
	}
	if lifetime := conf.Postgres.Lifetime(); lifetime > 0 {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	log.L.Info("connect database success")
	return db, nil
}

// Open 以统一的 gorm 配置打开任意方言，驱动错误统一翻译为 gorm 错误
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(logLevel),
	})
}

func newLogger(level string) logger.Interface {
	return logger.New(
		zap.NewStdLog(log.L),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

func parseLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
