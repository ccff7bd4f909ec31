package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Book struct {
	ID          string          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	Author      string          `gorm:"column:author;type:varchar(255);not null;index" json:"author"`
	Summary     string          `gorm:"column:summary;type:text" json:"summary"`
	Rating      float32         `gorm:"column:rating" json:"rating"`
	Pages       int             `gorm:"column:pages" json:"pages"`
	PublishedOn *datatypes.Date `gorm:"column:published_on" json:"publishedOn"`
	CreatedBy   string          `gorm:"column:created_by;type:uuid;not null" json:"createdBy"`
	CreatedOn   time.Time       `gorm:"column:created_on;not null;autoCreateTime" json:"createdOn"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// TopBook 按 gram 数量排序的书籍
type TopBook struct {
	ID     string `gorm:"column:id" json:"id"`
	Name   string `gorm:"column:name" json:"name"`
	Author string `gorm:"column:author" json:"author"`
	Grams  int64  `gorm:"column:grams" json:"grams"`
}

// Wishlist 想读清单
type Wishlist struct {
	UserID    string    `gorm:"column:user_id;type:uuid;primaryKey" json:"userId"`
	BookID    string    `gorm:"column:book_id;type:uuid;primaryKey" json:"bookId"`
	CreatedOn time.Time `gorm:"column:created_on;not null;autoCreateTime" json:"createdOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
