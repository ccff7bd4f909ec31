package service

import (
	"Bookgram/dao"
	"Bookgram/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

const searchLimit = 50

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	Search(ctx context.Context, value string) (*types.SearchResult, error)
}

type SearchService struct {
	BookDAO     *dao.BookDAO
	GramViewDAO *dao.GramViewDAO
}

// Search 书籍与公开 gram 并发检索，不区分大小写
func (s *SearchService) Search(ctx context.Context, value string) (*types.SearchResult, error) {
	res := &types.SearchResult{}
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		books, err := s.BookDAO.List(ctx, value, types.Page{Limit: searchLimit})
		res.Books = books
		return err
	})
	p.Go(func(ctx context.Context) error {
		grams, err := s.GramViewDAO.Search(ctx, value, searchLimit)
		res.Grams = grams
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
