package types

import "Bookgram/models"

type RegisterRequest struct {
	FullName string `json:"fullname" binding:"required,max=100"`
	Username string `json:"username" binding:"required,max=16"`
}

type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	PrivateKey string `json:"privateKey" binding:"required"`
}

type UserURI struct {
	UserID string `uri:"userId" binding:"required,uuid"`
}

// RegisterResult 注册结果，PrivateKey 为明文，只返回这一次
type RegisterResult struct {
	User       *models.User
	PrivateKey string
}

type LoginResult struct {
	User  *models.User
	Token string
}
