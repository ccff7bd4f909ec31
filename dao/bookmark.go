package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](db)}
}

// Create 重复收藏返回 ErrAlreadyExists
func (d *BookmarkDAO) Create(ctx context.Context, b *models.Bookmark) error {
	return errs.FromDB("bookmark.create", d.Repo.Create(ctx, b))
}

func (d *BookmarkDAO) Exists(ctx context.Context, userID, gramID string) (bool, error) {
	ok, err := d.IsExist(ctx, "user_id = ? AND gram_id = ?", userID, gramID)
	return ok, errs.FromDB("bookmark.exists", err)
}

func (d *BookmarkDAO) Delete(ctx context.Context, userID, gramID string) (int64, error) {
	n, err := d.DeleteByWhere(ctx, "user_id = ? AND gram_id = ?", userID, gramID)
	return n, errs.FromDB("bookmark.delete", err)
}

// ListByUser 用户的收藏，收藏后被作者设为私密的 gram 不再出现
func (d *BookmarkDAO) ListByUser(ctx context.Context, userID string, page types.Page) ([]*models.BookmarkView, error) {
	page = page.Normalize()
	rows := make([]*models.BookmarkView, 0)
	err := d.DB(ctx).Model(&models.BookmarkView{}).
		Where("bookmark_user_id = ?", userID).
		Where("is_private = ? OR user_id = ?", false, userID).
		Order("bookmarked_on DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, errs.FromDB("bookmark.list", err)
	}
	return rows, nil
}

type WishlistDAO struct {
	Repo[models.Wishlist]
}

func NewWishlistDAO(db *gorm.DB) *WishlistDAO {
	return &WishlistDAO{Repo: NewRepo[models.Wishlist](db)}
}

func (d *WishlistDAO) Create(ctx context.Context, w *models.Wishlist) error {
	return errs.FromDB("wishlist.create", d.Repo.Create(ctx, w))
}

func (d *WishlistDAO) Delete(ctx context.Context, userID, bookID string) (int64, error) {
	n, err := d.DeleteByWhere(ctx, "user_id = ? AND book_id = ?", userID, bookID)
	return n, errs.FromDB("wishlist.delete", err)
}
