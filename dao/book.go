package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

const topBooksLimit = 50

type BookDAO struct {
	Repo[models.Book]
}

func NewBookDAO(db *gorm.DB) *BookDAO {
	return &BookDAO{Repo: NewRepo[models.Book](db)}
}

// CreateBatch 批量写入书籍
func (d *BookDAO) CreateBatch(ctx context.Context, books []*models.Book) error {
	if len(books) == 0 {
		return nil
	}
	return errs.FromDB("book.create", d.DB(ctx).Create(&books).Error)
}

func (d *BookDAO) FindByID(ctx context.Context, id string) (*models.Book, error) {
	b, err := d.FindById(ctx, id)
	return b, errs.FromDB("book.find", err)
}

// List 按书名或作者模糊匹配（不区分大小写），按书名排序
func (d *BookDAO) List(ctx context.Context, value string, page types.Page) ([]*models.Book, error) {
	page = page.Normalize()
	rows := make([]*models.Book, 0)
	q := d.DB(ctx).Model(&models.Book{})
	if value != "" {
		like := likePattern(value)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	err := q.Order("name ASC").Order("id ASC").Limit(page.Limit).Offset(page.Offset).Find(&rows).Error
	if err != nil {
		return nil, errs.FromDB("book.list", err)
	}
	return rows, nil
}

// Top 按 gram 数量倒序的前 50 本书
func (d *BookDAO) Top(ctx context.Context) ([]*models.TopBook, error) {
	rows := make([]*models.TopBook, 0)
	err := d.DB(ctx).Table("books b").
		Select("b.id, b.name, b.author, COUNT(g.id) AS grams").
		Joins("JOIN grams g ON g.book_id = b.id").
		Group("b.id, b.name, b.author").
		Order("grams DESC").Order("b.name ASC").
		Limit(topBooksLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.FromDB("book.top", err)
	}
	return rows, nil
}

// DeleteBatch 批量删除，仍被 gram 引用时返回 ErrInUse
func (d *BookDAO) DeleteBatch(ctx context.Context, ids []string) (int64, error) {
	res := d.DB(ctx).Where("id IN ?", ids).Delete(&models.Book{})
	if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
		return 0, errs.ErrInUse
	}
	return res.RowsAffected, errs.FromDB("book.delete", res.Error)
}

func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
