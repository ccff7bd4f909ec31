package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"Bookgram/types"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserCounters 用户计数的一组数值
type UserCounters struct {
	Grams     int64
	Wishlist  int64
	Completed int64
}

type StatsDAO struct {
	Repo[models.AppStats]
}

func NewStatsDAO(db *gorm.DB) *StatsDAO {
	return &StatsDAO{Repo: NewRepo[models.AppStats](db)}
}

// AddApp 单条语句原子累加全站计数，行不存在时以增量本身创建
func (d *StatsDAO) AddApp(ctx context.Context, grams, books int64) error {
	row := &models.AppStats{ID: models.AppStatsID, GramsPosted: grams, BooksSeeded: books}
	err := d.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"grams_posted": gorm.Expr("app_stats.grams_posted + ?", grams),
			"books_seeded": gorm.Expr("app_stats.books_seeded + ?", books),
		}),
	}).Create(row).Error
	return errs.FromDB("stats.add_app", err)
}

// AddUser 单条语句原子累加用户计数
// fresh 为新建行时写入的值，delta 为行已存在时的增量，两者可以不同
func (d *StatsDAO) AddUser(ctx context.Context, userID string, fresh, delta UserCounters) error {
	row := &models.UserStats{
		UserID:         userID,
		GramsCount:     fresh.Grams,
		Wishlist:       fresh.Wishlist,
		CompletedBooks: fresh.Completed,
	}
	err := d.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"grams_count":     gorm.Expr("user_stats.grams_count + ?", delta.Grams),
			"wishlist":        gorm.Expr("user_stats.wishlist + ?", delta.Wishlist),
			"completed_books": gorm.Expr("user_stats.completed_books + ?", delta.Completed),
		}),
	}).Create(row).Error
	return errs.FromDB("stats.add_user", err)
}

func (d *StatsDAO) DeleteUser(ctx context.Context, userID string) error {
	err := d.DB(ctx).Where("user_id = ?", userID).Delete(&models.UserStats{}).Error
	return errs.FromDB("stats.delete_user", err)
}

func (d *StatsDAO) GetApp(ctx context.Context) (*models.AppStats, error) {
	row, err := d.FindById(ctx, models.AppStatsID)
	return row, errs.FromDB("stats.get_app", err)
}

func (d *StatsDAO) GetUser(ctx context.Context, userID string) (*models.UserStats, error) {
	var row models.UserStats
	err := d.DB(ctx).Where("user_id = ?", userID).Limit(1).Find(&row).Error
	if err != nil {
		return nil, errs.FromDB("stats.get_user", err)
	}
	if row.ID == "" {
		return nil, nil
	}
	return &row, nil
}

// Snapshot 一次查询取出全站与用户计数，以单行锚点左连接，缺失的行对应字段为 NULL
func (d *StatsDAO) Snapshot(ctx context.Context, userID string) (*types.StatsSnapshot, error) {
	var s types.StatsSnapshot
	err := d.DB(ctx).Raw(`SELECT a.grams_posted, a.books_seeded, u.grams_count, u.wishlist, u.completed_books
FROM (SELECT 1 AS one) anchor
LEFT JOIN app_stats a ON a.id = ?
LEFT JOIN user_stats u ON u.user_id = ?`, models.AppStatsID, userID).Scan(&s).Error
	if err != nil {
		return nil, errs.FromDB("stats.snapshot", err)
	}
	return &s, nil
}
