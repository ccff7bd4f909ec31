package middleware

import (
	"Bookgram/dao/cache"
	"Bookgram/pkg/context"
	"Bookgram/pkg/jwt"
	"Bookgram/pkg/log"
	"Bookgram/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	HeaderUserID = "userid"
	CtxFullname  = "fullname"
	CtxUsername  = "username"
)

// Auth 校验 Bearer token 与 userid 请求头
// 缺少凭证或身份不一致返回 401，token 无效或已不是当前会话返回 403
func Auth(secret []byte, sessions *cache.SessionStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		userID := c.GetHeader(HeaderUserID)
		if authHeader == "" || userID == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization or userid header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusForbidden, "invalid token")
			return
		}
		if claims.ID != userID {
			response.Abort(c, http.StatusUnauthorized, "token does not belong to userid")
			return
		}

		active, err := sessions.IsActive(c.Request.Context(), claims.ID, parts[1])
		if err != nil {
			log.L.Error("check session failed", zap.String("user_id", claims.ID), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, response.MsgInternal)
			return
		}
		if !active {
			response.Abort(c, http.StatusForbidden, "session is no longer active")
			return
		}

		c.Set(context.CtxUserID, claims.ID)
		c.Set(CtxFullname, claims.Fullname)
		c.Set(CtxUsername, claims.Username)

		c.Next()
	}
}
