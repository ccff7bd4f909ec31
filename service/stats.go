package service

import (
	"Bookgram/dao"
	"Bookgram/types"
	"context"
	"errors"
	"fmt"
)

var ErrStatKind = errors.New("unsupported stat kind")

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	IncrementAppStat(ctx context.Context, kind types.StatKind, amount int) error
	IncrementUserStat(ctx context.Context, userID string, kind types.StatKind, amount int) error
	DecrementStat(ctx context.Context, userID string, kind types.StatKind) error
	Snapshot(ctx context.Context, userID string) (*types.StatsSnapshot, error)
}

type StatsService struct {
	StatsDAO *dao.StatsDAO
}

// IncrementAppStat 全站计数，gram 对应 grams_posted，book 对应 books_seeded
func (s *StatsService) IncrementAppStat(ctx context.Context, kind types.StatKind, amount int) error {
	switch kind {
	case types.StatGram:
		return s.StatsDAO.AddApp(ctx, int64(amount), 0)
	case types.StatBook:
		return s.StatsDAO.AddApp(ctx, 0, int64(amount))
	}
	return fmt.Errorf("app stat %q: %w", kind, ErrStatKind)
}

// IncrementUserStat 用户计数
// wishlist 首次建行时 wishlist 与 completed_books 同时取 amount，之后只累加 wishlist
func (s *StatsService) IncrementUserStat(ctx context.Context, userID string, kind types.StatKind, amount int) error {
	n := int64(amount)
	switch kind {
	case types.StatGram:
		c := dao.UserCounters{Grams: n}
		return s.StatsDAO.AddUser(ctx, userID, c, c)
	case types.StatWishlist:
		return s.StatsDAO.AddUser(ctx, userID,
			dao.UserCounters{Wishlist: n, Completed: n},
			dao.UserCounters{Wishlist: n},
		)
	}
	return fmt.Errorf("user stat %q: %w", kind, ErrStatKind)
}

// DecrementStat 在一个事务内各减 1，不设下限；wishlist 没有全站计数
func (s *StatsService) DecrementStat(ctx context.Context, userID string, kind types.StatKind) error {
	if kind != types.StatGram && kind != types.StatWishlist {
		return fmt.Errorf("decrement %q: %w", kind, ErrStatKind)
	}
	return s.StatsDAO.Transaction(ctx, func(ctx context.Context) error {
		if kind == types.StatGram {
			if err := s.IncrementAppStat(ctx, types.StatGram, -1); err != nil {
				return err
			}
			c := dao.UserCounters{Grams: -1}
			return s.StatsDAO.AddUser(ctx, userID, c, c)
		}
		c := dao.UserCounters{Wishlist: -1}
		return s.StatsDAO.AddUser(ctx, userID, c, c)
	})
}

func (s *StatsService) Snapshot(ctx context.Context, userID string) (*types.StatsSnapshot, error) {
	return s.StatsDAO.Snapshot(ctx, userID)
}
