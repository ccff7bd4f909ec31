package service

import (
	"Bookgram/dao"
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
	"time"
)

var _ IGramService = (*GramService)(nil)

type IGramService interface {
	Upsert(ctx context.Context, callerID string, req *types.GramRequest) (*models.Gram, bool, error)
	GetView(ctx context.Context, id string) (*models.GramView, error)
	ListGrams(ctx context.Context, filter types.GramFilter, page types.Page) ([]*models.GramView, error)
	SetVisibility(ctx context.Context, callerID, id string, private bool) error
	Delete(ctx context.Context, callerID, id string) error
}

type GramService struct {
	GramDAO     *dao.GramDAO
	GramViewDAO *dao.GramViewDAO
	Stats       IStatsService
}

// Upsert 无 id 或 id 不存在时新建并计数；已存在时只允许作者在同一本书下修改，编辑不计数
func (s *GramService) Upsert(ctx context.Context, callerID string, req *types.GramRequest) (*models.Gram, bool, error) {
	if req.UserID != callerID {
		return nil, false, errs.ErrUnauthorized
	}

	now := time.Now()
	g := &models.Gram{
		ID:         req.ID,
		UserID:     req.UserID,
		BookID:     req.BookID,
		Gram:       req.Gram,
		IsPrivate:  req.IsPrivate,
		ModifiedOn: now,
	}

	created := false
	err := s.GramDAO.Transaction(ctx, func(ctx context.Context) error {
		if g.ID != "" {
			existing, err := s.GramDAO.FindByID(ctx, g.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				n, err := s.GramDAO.UpdateOwned(ctx, g)
				if err != nil {
					return err
				}
				if n == 0 {
					return errs.ErrNotFoundOrUnauthorized
				}
				g.CreatedOn = existing.CreatedOn
				return nil
			}
		}

		g.CreatedOn = now
		if err := s.GramDAO.Create(ctx, g); err != nil {
			return err
		}
		created = true
		if err := s.Stats.IncrementAppStat(ctx, types.StatGram, 1); err != nil {
			return err
		}
		return s.Stats.IncrementUserStat(ctx, g.UserID, types.StatGram, 1)
	})
	if err != nil {
		return nil, false, err
	}
	return g, created, nil
}

// GetView 按 id 取 gram，不校验可见性
func (s *GramService) GetView(ctx context.Context, id string) (*models.GramView, error) {
	rows, err := s.GramViewDAO.List(ctx, types.GramFilter{ID: id}, types.Page{Limit: 1})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (s *GramService) ListGrams(ctx context.Context, filter types.GramFilter, page types.Page) ([]*models.GramView, error) {
	return s.GramViewDAO.List(ctx, filter, page)
}

func (s *GramService) SetVisibility(ctx context.Context, callerID, id string, private bool) error {
	n, err := s.GramDAO.SetVisibility(ctx, id, callerID, private)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFoundOrUnauthorized
	}
	return nil
}

// Delete 作者删除 gram 并回退计数
func (s *GramService) Delete(ctx context.Context, callerID, id string) error {
	return s.GramDAO.Transaction(ctx, func(ctx context.Context) error {
		n, err := s.GramDAO.DeleteOwned(ctx, id, callerID)
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrNotFoundOrUnauthorized
		}
		return s.Stats.DecrementStat(ctx, callerID, types.StatGram)
	})
}
