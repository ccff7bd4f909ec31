package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/database/dbtest"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB

	users    *UserDAO
	books    *BookDAO
	grams    *GramDAO
	views    *GramViewDAO
	comments *CommentDAO
	bookmark *BookmarkDAO
	stats    *StatsDAO
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.New(t)
	return &fixture{
		t:        t,
		ctx:      context.Background(),
		db:       db,
		users:    NewUserDAO(db),
		books:    NewBookDAO(db),
		grams:    NewGramDAO(db),
		views:    NewGramViewDAO(db),
		comments: NewCommentDAO(db),
		bookmark: NewBookmarkDAO(db),
		stats:    NewStatsDAO(db),
	}
}

func (f *fixture) user(username string) *models.User {
	u := &models.User{FullName: "Reader " + username, Username: username, Status: models.UserStatusActive, Role: models.RoleUser}
	require.NoError(f.t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) book(name, author string, creator *models.User) *models.Book {
	b := &models.Book{Name: name, Author: author, CreatedBy: creator.ID}
	require.NoError(f.t, f.books.CreateBatch(f.ctx, []*models.Book{b}))
	return b
}

func (f *fixture) gram(u *models.User, b *models.Book, private bool, modified time.Time) *models.Gram {
	g := &models.Gram{UserID: u.ID, BookID: b.ID, Gram: "note by " + u.Username, IsPrivate: private, CreatedOn: modified, ModifiedOn: modified}
	require.NoError(f.t, f.grams.Create(f.ctx, g))
	return g
}
