package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

func (d *CommentDAO) Create(ctx context.Context, c *models.Comment) error {
	return errs.FromDB("comment.create", d.Repo.Create(ctx, c))
}

// UpdateOwned 只修改调用者自己的评论
func (d *CommentDAO) UpdateOwned(ctx context.Context, c *models.Comment) (int64, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{"comment": c.Comment},
		"id = ? AND user_id = ? AND gram_id = ?", c.ID, c.UserID, c.GramID)
	return n, errs.FromDB("comment.update", err)
}

func (d *CommentDAO) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	n, err := d.DeleteByWhere(ctx, "id = ? AND user_id = ?", id, userID)
	return n, errs.FromDB("comment.delete", err)
}

type CommentViewDAO struct {
	Repo[models.CommentView]
}

func NewCommentViewDAO(db *gorm.DB) *CommentViewDAO {
	return &CommentViewDAO{Repo: NewRepo[models.CommentView](db)}
}

func (d *CommentViewDAO) FindByID(ctx context.Context, id string) (*models.CommentView, error) {
	c, err := d.FindById(ctx, id)
	return c, errs.FromDB("comment.find", err)
}

// List 按 gram 或用户过滤，按创建时间倒序
func (d *CommentViewDAO) List(ctx context.Context, f types.CommentFilter, page types.Page) ([]*models.CommentView, error) {
	page = page.Normalize()
	q := d.DB(ctx).Model(&models.CommentView{})
	if f.GramID != "" {
		q = q.Where("gram_id = ?", f.GramID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}

	rows := make([]*models.CommentView, 0)
	err := q.Order("created_on DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, errs.FromDB("comment.list", err)
	}
	return rows, nil
}
