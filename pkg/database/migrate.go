package database

import (
	"Bookgram/models"
	"Bookgram/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 视图按依赖顺序创建，删除时倒序
var views = []struct {
	name string
	ddl  string
}{
	{
		name: "gram_view",
		ddl: `CREATE VIEW gram_view AS
SELECT g.id, g.user_id, g.book_id, g.gram, g.is_private, g.created_on, g.modified_on,
	u.full_name AS user_name, b.name AS book_name, b.author AS book_author,
	(SELECT COUNT(*) FROM comments c WHERE c.gram_id = g.id) AS comments
FROM grams g
JOIN users u ON u.id = g.user_id
JOIN books b ON b.id = g.book_id`,
	},
	{
		name: "comment_view",
		ddl: `CREATE VIEW comment_view AS
SELECT c.id, c.user_id, c.gram_id, c.comment, c.created_on, u.full_name AS user_name
FROM comments c
JOIN users u ON u.id = c.user_id`,
	},
	{
		name: "bookmark_view",
		ddl: `CREATE VIEW bookmark_view AS
SELECT bm.user_id AS bookmark_user_id, bm.created_on AS bookmarked_on,
	gv.id, gv.user_id, gv.book_id, gv.gram, gv.is_private, gv.created_on, gv.modified_on,
	gv.user_name, gv.book_name, gv.book_author, gv.comments
FROM bookmarks bm
JOIN gram_view gv ON gv.id = bm.gram_id`,
	},
}

// Migrate 同步表结构并重建视图，app_stats 不预置数据
func Migrate(db *gorm.DB) error {
	for i := len(views) - 1; i >= 0; i-- {
		if err := db.Exec("DROP VIEW IF EXISTS " + views[i].name).Error; err != nil {
			return fmt.Errorf("drop view %s: %w", views[i].name, err)
		}
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.UserLogin{},
		&models.DeactivatedUser{},
		&models.Book{},
		&models.Gram{},
		&models.Comment{},
		&models.Bookmark{},
		&models.Wishlist{},
		&models.AppStats{},
		&models.UserStats{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, v := range views {
		if err := db.Exec(v.ddl).Error; err != nil {
			return fmt.Errorf("create view %s: %w", v.name, err)
		}
	}

	log.L.Info("database migrated", zap.Int("views", len(views)))
	return nil
}
