package cache

import (
	"Bookgram/config"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKey = "session:user:%s"

// SessionStorage 登记每个用户当前有效的 token
// redis 未启用时所有操作为空操作，IsActive 恒为 true
type SessionStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionStorage(rds *redis.Client, conf *config.Config) *SessionStorage {
	s := &SessionStorage{redis: rds}
	if conf.Redis != nil {
		s.ttl = conf.Redis.TTL()
	}
	return s
}

func (s *SessionStorage) Enabled() bool {
	return s != nil && s.redis != nil
}

// Bind 登录时覆盖登记
func (s *SessionStorage) Bind(ctx context.Context, userID, token string) error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Set(ctx, s.key(userID), token, s.ttl).Err()
}

// UnBind 登出或注销时移除
func (s *SessionStorage) UnBind(ctx context.Context, userID string) error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Del(ctx, s.key(userID)).Err()
}

func (s *SessionStorage) IsActive(ctx context.Context, userID, token string) (bool, error) {
	if !s.Enabled() {
		return true, nil
	}
	val, err := s.redis.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == token, nil
}

func (s *SessionStorage) key(userID string) string {
	return fmt.Sprintf(sessionKey, userID)
}
