package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
	"time"

	"gorm.io/gorm"
)

type GramDAO struct {
	Repo[models.Gram]
}

func NewGramDAO(db *gorm.DB) *GramDAO {
	return &GramDAO{Repo: NewRepo[models.Gram](db)}
}

func (d *GramDAO) Create(ctx context.Context, g *models.Gram) error {
	return errs.FromDB("gram.create", d.Repo.Create(ctx, g))
}

func (d *GramDAO) FindByID(ctx context.Context, id string) (*models.Gram, error) {
	g, err := d.FindById(ctx, id)
	return g, errs.FromDB("gram.find", err)
}

// UpdateOwned 只更新属于 userID 且书籍一致的 gram，返回影响行数
func (d *GramDAO) UpdateOwned(ctx context.Context, g *models.Gram) (int64, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{
		"gram":        g.Gram,
		"is_private":  g.IsPrivate,
		"modified_on": g.ModifiedOn,
	}, "id = ? AND user_id = ? AND book_id = ?", g.ID, g.UserID, g.BookID)
	return n, errs.FromDB("gram.update", err)
}

func (d *GramDAO) SetVisibility(ctx context.Context, id, userID string, private bool) (int64, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{
		"is_private":  private,
		"modified_on": time.Now(),
	}, "id = ? AND user_id = ?", id, userID)
	return n, errs.FromDB("gram.visibility", err)
}

// DeleteOwned 删除 gram，评论与收藏由外键级联删除
func (d *GramDAO) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	n, err := d.DeleteByWhere(ctx, "id = ? AND user_id = ?", id, userID)
	return n, errs.FromDB("gram.delete", err)
}

type GramViewDAO struct {
	Repo[models.GramView]
}

func NewGramViewDAO(db *gorm.DB) *GramViewDAO {
	return &GramViewDAO{Repo: NewRepo[models.GramView](db)}
}

// List 按可见性规则过滤：指定 id 时不看可见性，其余组合只返回公开 gram
func (d *GramViewDAO) List(ctx context.Context, f types.GramFilter, page types.Page) ([]*models.GramView, error) {
	page = page.Normalize()
	q := d.DB(ctx).Model(&models.GramView{})
	switch {
	case f.ID != "":
		q = q.Where("id = ?", f.ID)
	case f.BookID != "" && f.UserID != "":
		q = q.Where("book_id = ? AND user_id = ? AND is_private = ?", f.BookID, f.UserID, false)
	case f.BookID != "":
		q = q.Where("book_id = ? AND is_private = ?", f.BookID, false)
	case f.UserID != "":
		q = q.Where("user_id = ? AND is_private = ?", f.UserID, false)
	default:
		q = q.Where("is_private = ?", false)
	}

	rows := make([]*models.GramView, 0)
	err := q.Order("modified_on DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, errs.FromDB("gram.list", err)
	}
	return rows, nil
}

// Search 公开 gram 全文模糊匹配
func (d *GramViewDAO) Search(ctx context.Context, value string, limit int) ([]*models.GramView, error) {
	rows := make([]*models.GramView, 0)
	err := d.DB(ctx).
		Where("is_private = ? AND LOWER(gram) LIKE ?", false, likePattern(value)).
		Order("modified_on DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errs.FromDB("gram.search", err)
	}
	return rows, nil
}
