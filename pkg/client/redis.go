package client

import (
	"Bookgram/config"
	"Bookgram/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 地址时返回 nil，调用方按未启用处理
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if conf.Redis == nil || conf.Redis.Address == "" {
		log.L.Info("redis not configured, session registry disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address,
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		_ = client.Close()
		return nil, nil, err
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Address))

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.L.Warn("close redis error", zap.Error(err))
		}
	}
	return client, cleanup, nil
}
