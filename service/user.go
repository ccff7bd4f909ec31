package service

import (
	"Bookgram/config"
	"Bookgram/dao"
	"Bookgram/dao/cache"
	"Bookgram/models"
	"Bookgram/pkg/encrypt"
	"Bookgram/pkg/errs"
	"Bookgram/pkg/jwt"
	"Bookgram/pkg/log"
	"Bookgram/types"
	"context"
	"time"

	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResult, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResult, error)
	Logout(ctx context.Context, callerID, userID string) error
	Deactivate(ctx context.Context, callerID, userID string) error
}

type UserService struct {
	Config   *config.Config
	UserDAO  *dao.UserDAO
	LoginDAO *dao.LoginDAO
	StatsDAO *dao.StatsDAO
	Session  *cache.SessionStorage
}

// Register 注册用户并生成私钥，明文私钥只在这里返回一次
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResult, error) {
	plain, hashed, err := encrypt.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:   req.FullName,
		Username:   req.Username,
		PrivateKey: hashed,
		Status:     models.UserStatusActive,
		Role:       models.RoleUser,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return &types.RegisterResult{User: user, PrivateKey: plain}, nil
}

// Login 校验私钥并签发 token，用户名不存在、已注销与私钥错误不做区分
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResult, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != models.UserStatusActive || !encrypt.VerifyPassword(user.PrivateKey, req.PrivateKey) {
		return nil, errs.ErrUnauthorized
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), jwt.Identity{
		ID:       user.ID,
		Fullname: user.FullName,
		Username: user.Username,
	}, jwt.TypeAccess, s.Config.Jwt.Expire())
	if err != nil {
		return nil, err
	}

	login := &models.UserLogin{UserID: user.ID, Token: token, LoggedIn: time.Now()}
	if err := s.LoginDAO.Replace(ctx, login); err != nil {
		return nil, err
	}
	if err := s.Session.Bind(ctx, user.ID, token); err != nil {
		log.L.Error("bind session failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &types.LoginResult{User: user, Token: token}, nil
}

// Logout 关闭当前登录
func (s *UserService) Logout(ctx context.Context, callerID, userID string) error {
	if callerID != userID {
		return errs.ErrUnauthorized
	}
	n, err := s.LoginDAO.Close(ctx, userID, time.Now())
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFoundOrUnauthorized
	}
	if err := s.Session.UnBind(ctx, userID); err != nil {
		log.L.Warn("unbind session failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

// Deactivate 注销：写入归档、标记停用，删除统计与登录记录，gram 保留
func (s *UserService) Deactivate(ctx context.Context, callerID, userID string) error {
	if callerID != userID {
		return errs.ErrUnauthorized
	}

	err := s.UserDAO.Transaction(ctx, func(ctx context.Context) error {
		user, err := s.UserDAO.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil || user.Status != models.UserStatusActive {
			return errs.ErrNotFoundOrUnauthorized
		}

		now := time.Now()
		err = s.UserDAO.Archive(ctx, &models.DeactivatedUser{
			UserID:        user.ID,
			FullName:      user.FullName,
			Username:      user.Username,
			DeactivatedOn: now,
			UsageDays:     UsageDays(user.CreatedOn, now),
		})
		if err != nil {
			return err
		}
		if _, err := s.UserDAO.MarkInactive(ctx, user.ID); err != nil {
			return err
		}
		if err := s.StatsDAO.DeleteUser(ctx, user.ID); err != nil {
			return err
		}
		return s.LoginDAO.DeleteByUser(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	if err := s.Session.UnBind(ctx, userID); err != nil {
		log.L.Warn("unbind session failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

// UsageDays 注册到注销的整天数
func UsageDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
