package handler

import (
	"Bookgram/config"
	"Bookgram/dao/cache"
	"Bookgram/middleware"
	"Bookgram/pkg/context"
	"Bookgram/pkg/response"
	"Bookgram/service"
	"Bookgram/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	Limiter     *middleware.RateLimiter
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Sessions)
	r.POST("/register", context.Wrap(u.Register))
	r.POST("/login", u.Limiter.Handler(), context.Wrap(u.Login))
	r.PATCH("/logout/:userId", authorize, context.Wrap(u.Logout))
	r.DELETE("/user/:userId", authorize, context.Wrap(u.Deactivate))
}

// Register 注册，私钥明文仅此一次返回
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}

	res, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "user registered, keep the private key safe",
		response.WithData(res.User),
		response.WithPrivateKey(res.PrivateKey),
	)
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}

	res, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "login successful",
		response.WithData(res.User),
		response.WithToken(res.Token),
	)
	return nil
}

func (u *User) Logout(c *gin.Context) error {
	var uri types.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := u.UserService.Logout(c.Request.Context(), callerID, uri.UserID); err != nil {
		return fail(err)
	}
	response.Success(c, "logout successful")
	return nil
}

// Deactivate 注销账号
func (u *User) Deactivate(c *gin.Context) error {
	var uri types.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := u.UserService.Deactivate(c.Request.Context(), callerID, uri.UserID); err != nil {
		return fail(err)
	}
	response.Success(c, "user deactivated")
	return nil
}
