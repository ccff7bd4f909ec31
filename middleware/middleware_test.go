package middleware

import (
	"Bookgram/config"
	"Bookgram/dao/cache"
	bctx "Bookgram/pkg/context"
	"Bookgram/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var secret = []byte("middleware-test")

func init() {
	gin.SetMode(gin.TestMode)
}

func authEngine() *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(secret, cache.NewSessionStorage(nil, &config.Config{})), func(c *gin.Context) {
		uid, _ := bctx.GetUserID(c)
		c.String(http.StatusOK, uid)
	})
	return r
}

func TestAuth(t *testing.T) {
	r := authEngine()
	const uid = "6f1d3c2b-9a8e-4d7c-b6a5-0f1e2d3c4b5a"
	token, err := jwt.GenerateToken(secret, jwt.Identity{ID: uid, Fullname: "Ada", Username: "ada"}, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	otherSecret, err := jwt.GenerateToken([]byte("nope"), jwt.Identity{ID: uid}, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		auth   string
		userID string
		status int
	}{
		{"no headers", "", "", http.StatusUnauthorized},
		{"no userid", "Bearer " + token, "", http.StatusUnauthorized},
		{"not bearer", "Token " + token, uid, http.StatusUnauthorized},
		{"bad signature", "Bearer " + otherSecret, uid, http.StatusForbidden},
		{"garbage", "Bearer abc.def.ghi", uid, http.StatusForbidden},
		{"mismatch", "Bearer " + token, "someone-else", http.StatusUnauthorized},
		{"ok", "Bearer " + token, uid, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			if tc.userID != "" {
				req.Header.Set(HeaderUserID, tc.userID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, uid, w.Body.String())
			} else {
				assert.EqualValues(t, tc.status, gjson.Get(w.Body.String(), "statusCode").Int())
				assert.NotEmpty(t, gjson.Get(w.Body.String(), "message").String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/login", NewRateLimiter(0.001, 2).Handler(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// 其他 IP 不受影响
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLoginLimiterDisabled(t *testing.T) {
	var rl *RateLimiter = NewLoginLimiter(&config.Config{RateLimit: &config.RateLimit{}})
	assert.Nil(t, rl)

	r := gin.New()
	r.POST("/login", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestTimeoutAndRequestID(t *testing.T) {
	r := gin.New()
	r.Use(GinZap(), Recovery(), Timeout(time.Second))
	r.GET("/deadline", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.String(http.StatusOK, c.GetString(bctx.CtxRequestID))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deadline", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, w.Header().Get(HeaderRequestID), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/deadline", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, 500, gjson.Get(w.Body.String(), "statusCode").Int())
}
