package service

import (
	"Bookgram/config"
	"Bookgram/dao"
	"Bookgram/dao/cache"
	"Bookgram/models"
	"Bookgram/pkg/database/dbtest"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type suite struct {
	ctx  context.Context
	conf *config.Config

	statsDAO *dao.StatsDAO
	userDAO  *dao.UserDAO
	bookDAO  *dao.BookDAO

	stats     *StatsService
	users     *UserService
	books     *BookService
	grams     *GramService
	bookmarks *BookmarkService
	comments  *CommentService
	wishlist  *WishlistService
	search    *SearchService
}

func newSuite(t *testing.T) *suite {
	db := dbtest.New(t)
	conf := &config.Config{Jwt: &config.Jwt{Secret: "service-test"}}

	statsDAO := dao.NewStatsDAO(db)
	userDAO := dao.NewUserDAO(db)
	bookDAO := dao.NewBookDAO(db)
	gramViewDAO := dao.NewGramViewDAO(db)
	stats := &StatsService{StatsDAO: statsDAO}

	return &suite{
		ctx:      context.Background(),
		conf:     conf,
		statsDAO: statsDAO,
		userDAO:  userDAO,
		bookDAO:  bookDAO,
		stats:    stats,
		users: &UserService{
			Config:   conf,
			UserDAO:  userDAO,
			LoginDAO: dao.NewLoginDAO(db),
			StatsDAO: statsDAO,
			Session:  cache.NewSessionStorage(nil, conf),
		},
		books:     &BookService{UserDAO: userDAO, BookDAO: bookDAO, Stats: stats},
		grams:     &GramService{GramDAO: dao.NewGramDAO(db), GramViewDAO: gramViewDAO, Stats: stats},
		bookmarks: &BookmarkService{BookmarkDAO: dao.NewBookmarkDAO(db)},
		comments:  &CommentService{CommentDAO: dao.NewCommentDAO(db), CommentViewDAO: dao.NewCommentViewDAO(db)},
		wishlist:  &WishlistService{WishlistDAO: dao.NewWishlistDAO(db), Stats: stats},
		search:    &SearchService{BookDAO: bookDAO, GramViewDAO: gramViewDAO},
	}
}

func (s *suite) user(t *testing.T, username, role string) *models.User {
	u := &models.User{FullName: "Reader " + username, Username: username, Status: models.UserStatusActive, Role: role}
	require.NoError(t, s.userDAO.Create(s.ctx, u))
	return u
}

func (s *suite) book(t *testing.T, name, author string, creator *models.User) *models.Book {
	b := &models.Book{Name: name, Author: author, CreatedBy: creator.ID}
	require.NoError(t, s.bookDAO.CreateBatch(s.ctx, []*models.Book{b}))
	return b
}

func (s *suite) userStats(t *testing.T, userID string) *models.UserStats {
	row, err := s.statsDAO.GetUser(s.ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, row)
	return row
}
