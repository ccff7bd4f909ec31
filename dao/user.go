package dao

import (
	"Bookgram/models"
	"Bookgram/pkg/errs"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (d *UserDAO) Create(ctx context.Context, u *models.User) error {
	return errs.FromDB("user.create", d.Repo.Create(ctx, u))
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, err := d.FindById(ctx, id)
	return u, errs.FromDB("user.find", err)
}

// FindByUsername 用户名查询，不存在返回 nil
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := d.FindByWhere(ctx, "username = ?", username)
	return u, errs.FromDB("user.find_by_username", err)
}

func (d *UserDAO) MarkInactive(ctx context.Context, id string) (int64, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{"status": models.UserStatusInactive}, "id = ?", id)
	return n, errs.FromDB("user.mark_inactive", err)
}

// Archive 写入注销归档
func (d *UserDAO) Archive(ctx context.Context, row *models.DeactivatedUser) error {
	return errs.FromDB("user.archive", d.DB(ctx).Create(row).Error)
}

type LoginDAO struct {
	Repo[models.UserLogin]
}

func NewLoginDAO(db *gorm.DB) *LoginDAO {
	return &LoginDAO{Repo: NewRepo[models.UserLogin](db)}
}

// Replace 删除用户旧的登录记录后写入新记录
func (d *LoginDAO) Replace(ctx context.Context, login *models.UserLogin) error {
	return d.Transaction(ctx, func(ctx context.Context) error {
		if _, err := d.DeleteByWhere(ctx, "user_id = ?", login.UserID); err != nil {
			return errs.FromDB("login.delete", err)
		}
		return errs.FromDB("login.create", d.Repo.Create(ctx, login))
	})
}

// Close 关闭当前未登出的登录记录，返回影响行数
func (d *LoginDAO) Close(ctx context.Context, userID string, at time.Time) (int64, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{"logged_out": at}, "user_id = ? AND logged_out IS NULL", userID)
	return n, errs.FromDB("login.close", err)
}

func (d *LoginDAO) DeleteByUser(ctx context.Context, userID string) error {
	_, err := d.DeleteByWhere(ctx, "user_id = ?", userID)
	return errs.FromDB("login.delete", err)
}

func (d *LoginDAO) Latest(ctx context.Context, userID string) (*models.UserLogin, error) {
	var row models.UserLogin
	err := d.DB(ctx).Where("user_id = ?", userID).Order("logged_in DESC").Limit(1).Find(&row).Error
	if err != nil {
		return nil, errs.FromDB("login.latest", err)
	}
	if row.ID == "" {
		return nil, nil
	}
	return &row, nil
}
