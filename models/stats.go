package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppStatsID 全局统计只使用这一行
const AppStatsID = 1

// AppStats 全站计数
type AppStats struct {
	ID          int   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	GramsPosted int64 `gorm:"column:grams_posted;not null" json:"gramsPosted"`
	BooksSeeded int64 `gorm:"column:books_seeded;not null" json:"booksSeeded"`
}

func (AppStats) TableName() string {
	return "app_stats"
}

// UserStats 用户计数，每个用户一行
type UserStats struct {
	ID             string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID         string `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"userId"`
	GramsCount     int64  `gorm:"column:grams_count;not null" json:"gramsCount"`
	Wishlist       int64  `gorm:"column:wishlist;not null" json:"wishlist"`
	CompletedBooks int64  `gorm:"column:completed_books;not null" json:"completedBooks"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

func (s *UserStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
