package service

import (
	"Bookgram/dao"
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
	"time"

	"gorm.io/datatypes"
)

var _ IBookService = (*BookService)(nil)

type IBookService interface {
	BulkAdd(ctx context.Context, callerID string, req *types.BulkBookRequest) ([]*models.Book, error)
	List(ctx context.Context, value string, page types.Page) ([]*models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Top(ctx context.Context) ([]*models.TopBook, error)
	BulkDelete(ctx context.Context, callerID string, req *types.BulkDeleteBooksRequest) (int64, error)
}

type BookService struct {
	UserDAO *dao.UserDAO
	BookDAO *dao.BookDAO
	Stats   IStatsService
}

// BulkAdd 管理员批量录入书籍，books_seeded 同步增加
func (s *BookService) BulkAdd(ctx context.Context, callerID string, req *types.BulkBookRequest) ([]*models.Book, error) {
	if err := s.requireAdmin(ctx, callerID, req.UserID); err != nil {
		return nil, err
	}

	books := make([]*models.Book, 0, len(req.Books))
	for _, item := range req.Books {
		b := &models.Book{
			Name:      item.Name,
			Author:    item.Author,
			Summary:   item.Summary,
			Rating:    item.Rating,
			Pages:     item.Pages,
			CreatedBy: callerID,
		}
		if item.PublishedOn != "" {
			t, err := time.Parse(time.DateOnly, item.PublishedOn)
			if err != nil {
				return nil, err
			}
			d := datatypes.Date(t)
			b.PublishedOn = &d
		}
		books = append(books, b)
	}

	err := s.BookDAO.Transaction(ctx, func(ctx context.Context) error {
		if err := s.BookDAO.CreateBatch(ctx, books); err != nil {
			return err
		}
		return s.Stats.IncrementAppStat(ctx, types.StatBook, len(books))
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookService) List(ctx context.Context, value string, page types.Page) ([]*models.Book, error) {
	return s.BookDAO.List(ctx, value, page)
}

func (s *BookService) Get(ctx context.Context, id string) (*models.Book, error) {
	return s.BookDAO.FindByID(ctx, id)
}

func (s *BookService) Top(ctx context.Context) ([]*models.TopBook, error) {
	return s.BookDAO.Top(ctx)
}

// BulkDelete 管理员批量删除书籍，按实际删除行数回退 books_seeded
func (s *BookService) BulkDelete(ctx context.Context, callerID string, req *types.BulkDeleteBooksRequest) (int64, error) {
	if err := s.requireAdmin(ctx, callerID, req.UserID); err != nil {
		return 0, err
	}

	var deleted int64
	err := s.BookDAO.Transaction(ctx, func(ctx context.Context) error {
		n, err := s.BookDAO.DeleteBatch(ctx, req.IDs)
		if err != nil {
			return err
		}
		deleted = n
		if n == 0 {
			return nil
		}
		return s.Stats.IncrementAppStat(ctx, types.StatBook, -int(n))
	})
	return deleted, err
}

func (s *BookService) requireAdmin(ctx context.Context, callerID, userID string) error {
	if callerID != userID {
		return errs.ErrUnauthorized
	}
	u, err := s.UserDAO.FindByID(ctx, callerID)
	if err != nil {
		return err
	}
	if u == nil || !u.IsAdmin() {
		return errs.ErrUnauthorized
	}
	return nil
}
