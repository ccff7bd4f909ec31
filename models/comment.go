package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	GramID    string    `gorm:"column:gram_id;type:uuid;not null;index" json:"gramId"`
	Comment   string    `gorm:"column:comment;type:text;not null" json:"comment"`
	CreatedOn time.Time `gorm:"column:created_on;not null;autoCreateTime" json:"createdOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Gram *Gram `gorm:"foreignKey:GramID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommentView 对应视图 comment_view
type CommentView struct {
	ID        string    `gorm:"column:id" json:"id"`
	UserID    string    `gorm:"column:user_id" json:"userId"`
	GramID    string    `gorm:"column:gram_id" json:"gramId"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedOn time.Time `gorm:"column:created_on" json:"createdOn"`
	User      string    `gorm:"column:user_name" json:"user"`
	ShortDate string    `gorm:"-" json:"shortDate"`
}

func (CommentView) TableName() string {
	return "comment_view"
}

func (v *CommentView) AfterFind(tx *gorm.DB) error {
	v.ShortDate = ShortDate(v.CreatedOn)
	return nil
}
