package service

import (
	"Bookgram/dao"
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Add(ctx context.Context, callerID string, req *types.BookmarkRequest) error
	List(ctx context.Context, userID string, page types.Page) ([]*models.BookmarkView, error)
	IsBookmarked(ctx context.Context, userID, gramID string) (bool, error)
	Remove(ctx context.Context, callerID, gramID, userID string) error
}

type BookmarkService struct {
	BookmarkDAO *dao.BookmarkDAO
}

func (s *BookmarkService) Add(ctx context.Context, callerID string, req *types.BookmarkRequest) error {
	if req.UserID != callerID {
		return errs.ErrUnauthorized
	}
	return s.BookmarkDAO.Create(ctx, &models.Bookmark{UserID: req.UserID, GramID: req.GramID})
}

func (s *BookmarkService) List(ctx context.Context, userID string, page types.Page) ([]*models.BookmarkView, error) {
	return s.BookmarkDAO.ListByUser(ctx, userID, page)
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, gramID string) (bool, error) {
	return s.BookmarkDAO.Exists(ctx, userID, gramID)
}

func (s *BookmarkService) Remove(ctx context.Context, callerID, gramID, userID string) error {
	if userID != callerID {
		return errs.ErrUnauthorized
	}
	n, err := s.BookmarkDAO.Delete(ctx, userID, gramID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFoundOrUnauthorized
	}
	return nil
}
