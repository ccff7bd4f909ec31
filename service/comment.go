package service

import (
	"Bookgram/dao"
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Upsert(ctx context.Context, callerID string, req *types.CommentRequest) (*models.Comment, error)
	Get(ctx context.Context, id string) (*models.CommentView, error)
	List(ctx context.Context, filter types.CommentFilter, page types.Page) ([]*models.CommentView, error)
	Delete(ctx context.Context, callerID, id string) error
}

type CommentService struct {
	CommentDAO     *dao.CommentDAO
	CommentViewDAO *dao.CommentViewDAO
}

// Upsert 带 id 时修改自己的评论，否则新建
func (s *CommentService) Upsert(ctx context.Context, callerID string, req *types.CommentRequest) (*models.Comment, error) {
	if req.UserID != callerID {
		return nil, errs.ErrUnauthorized
	}
	c := &models.Comment{ID: req.ID, UserID: req.UserID, GramID: req.GramID, Comment: req.Comment}

	if c.ID != "" {
		n, err := s.CommentDAO.UpdateOwned(ctx, c)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errs.ErrNotFoundOrUnauthorized
		}
		return c, nil
	}

	if err := s.CommentDAO.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*models.CommentView, error) {
	return s.CommentViewDAO.FindByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context, filter types.CommentFilter, page types.Page) ([]*models.CommentView, error) {
	return s.CommentViewDAO.List(ctx, filter, page)
}

func (s *CommentService) Delete(ctx context.Context, callerID, id string) error {
	n, err := s.CommentDAO.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFoundOrUnauthorized
	}
	return nil
}
