package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName   string    `gorm:"column:full_name;type:varchar(100);not null" json:"fullname"`
	Username   string    `gorm:"column:username;type:varchar(16);not null;uniqueIndex:username_index" json:"username"`
	PrivateKey string    `gorm:"column:private_key;type:varchar(100)" json:"-"`
	Status     string    `gorm:"column:status;type:varchar(16);not null;default:active" json:"status"`
	Role       string    `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime" json:"createdOn"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserLogin 登录记录，每个用户只保留最近一次
type UserLogin struct {
	ID        string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string     `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	Token     string     `gorm:"column:token;type:text;not null" json:"-"`
	LoggedIn  time.Time  `gorm:"column:logged_in;not null" json:"loggedIn"`
	LoggedOut *time.Time `gorm:"column:logged_out" json:"loggedOut"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserLogin) TableName() string {
	return "user_logins"
}

func (l *UserLogin) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// DeactivatedUser 注销用户的归档，不与 users 建外键
type DeactivatedUser struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"column:user_id;type:uuid;index" json:"userId"`
	FullName      string    `gorm:"column:full_name;type:varchar(100)" json:"fullname"`
	Username      string    `gorm:"column:username;type:varchar(16)" json:"username"`
	DeactivatedOn time.Time `gorm:"column:deactivated_on" json:"deactivatedOn"`
	UsageDays     int       `gorm:"column:usage_days" json:"usageDays"`
}

func (DeactivatedUser) TableName() string {
	return "deactivated_users"
}

func (d *DeactivatedUser) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
