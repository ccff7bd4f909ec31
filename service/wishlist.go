package service

import (
	"Bookgram/dao"
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
)

var _ IWishlistService = (*WishlistService)(nil)

type IWishlistService interface {
	Add(ctx context.Context, callerID string, req *types.WishlistRequest) error
	Remove(ctx context.Context, callerID, bookID string) error
}

type WishlistService struct {
	WishlistDAO *dao.WishlistDAO
	Stats       IStatsService
}

func (s *WishlistService) Add(ctx context.Context, callerID string, req *types.WishlistRequest) error {
	if req.UserID != callerID {
		return errs.ErrUnauthorized
	}
	return s.WishlistDAO.Transaction(ctx, func(ctx context.Context) error {
		if err := s.WishlistDAO.Create(ctx, &models.Wishlist{UserID: req.UserID, BookID: req.BookID}); err != nil {
			return err
		}
		return s.Stats.IncrementUserStat(ctx, req.UserID, types.StatWishlist, 1)
	})
}

func (s *WishlistService) Remove(ctx context.Context, callerID, bookID string) error {
	return s.WishlistDAO.Transaction(ctx, func(ctx context.Context) error {
		n, err := s.WishlistDAO.Delete(ctx, callerID, bookID)
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrNotFoundOrUnauthorized
		}
		return s.Stats.DecrementStat(ctx, callerID, types.StatWishlist)
	})
}
