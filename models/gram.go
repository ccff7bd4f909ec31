package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gram 用户针对某本书发布的短笔记
type Gram struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;type:uuid;not null;index:idx_gram_user" json:"userId"`
	BookID     string    `gorm:"column:book_id;type:uuid;not null;index:idx_gram_book" json:"bookId"`
	Gram       string    `gorm:"column:gram;type:text;not null" json:"gram"`
	IsPrivate  bool      `gorm:"column:is_private;not null" json:"isPrivate"`
	CreatedOn  time.Time `gorm:"column:created_on;not null" json:"createdOn"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;index:idx_gram_modified" json:"modifiedOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Book *Book `gorm:"foreignKey:BookID" json:"-"`
}

func (Gram) TableName() string {
	return "grams"
}

func (g *Gram) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now()
	if g.CreatedOn.IsZero() {
		g.CreatedOn = now
	}
	if g.ModifiedOn.IsZero() {
		g.ModifiedOn = g.CreatedOn
	}
	return nil
}

// GramView 对应视图 gram_view：gram + 作者 + 书籍 + 实时评论数
type GramView struct {
	ID         string    `gorm:"column:id" json:"id"`
	UserID     string    `gorm:"column:user_id" json:"userId"`
	BookID     string    `gorm:"column:book_id" json:"bookId"`
	Gram       string    `gorm:"column:gram" json:"gram"`
	IsPrivate  bool      `gorm:"column:is_private" json:"isPrivate"`
	CreatedOn  time.Time `gorm:"column:created_on" json:"createdOn"`
	ModifiedOn time.Time `gorm:"column:modified_on" json:"modifiedOn"`
	User       string    `gorm:"column:user_name" json:"user"`
	Book       string    `gorm:"column:book_name" json:"book"`
	Author     string    `gorm:"column:book_author" json:"author"`
	Comments   int64     `gorm:"column:comments" json:"comments"`
	ShortDate  string    `gorm:"-" json:"shortDate"`
}

func (GramView) TableName() string {
	return "gram_view"
}

func (v *GramView) AfterFind(tx *gorm.DB) error {
	v.ShortDate = ShortDate(v.ModifiedOn)
	return nil
}

// BookmarkView 对应视图 bookmark_view
type BookmarkView struct {
	BookmarkUserID string    `gorm:"column:bookmark_user_id" json:"bookmarkUserId"`
	BookmarkedOn   time.Time `gorm:"column:bookmarked_on" json:"bookmarkedOn"`
	GramView
}

func (BookmarkView) TableName() string {
	return "bookmark_view"
}

// Bookmark 用户收藏 gram，(user_id, gram_id) 唯一
type Bookmark struct {
	UserID    string    `gorm:"column:user_id;type:uuid;primaryKey" json:"userId"`
	GramID    string    `gorm:"column:gram_id;type:uuid;primaryKey" json:"gramId"`
	CreatedOn time.Time `gorm:"column:created_on;not null;autoCreateTime" json:"createdOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Gram *Gram `gorm:"foreignKey:GramID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// ShortDate 列表展示用的 "DD Mon" 日期
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan")
}
