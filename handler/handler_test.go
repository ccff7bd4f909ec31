package handler

import (
	"Bookgram/config"
	"Bookgram/dao"
	"Bookgram/dao/cache"
	"Bookgram/middleware"
	"Bookgram/models"
	"Bookgram/pkg/database/dbtest"
	"Bookgram/pkg/response"
	"Bookgram/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	response.UseFieldTags()
}

type env struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

type caller struct {
	id    string
	token string
}

func newEnv(t *testing.T) *env {
	db := dbtest.New(t)
	conf := &config.Config{
		Jwt:        &config.Jwt{Secret: "handler-test"},
		Pagination: &config.Pagination{},
	}
	sessions := cache.NewSessionStorage(nil, conf)

	statsDAO := dao.NewStatsDAO(db)
	userDAO := dao.NewUserDAO(db)
	bookDAO := dao.NewBookDAO(db)
	gramViewDAO := dao.NewGramViewDAO(db)
	stats := &service.StatsService{StatsDAO: statsDAO}

	handlers := []interface{ RegisterRouter(gin.IRouter) }{
		&User{
			Config:   conf,
			Sessions: sessions,
			Limiter:  middleware.NewLoginLimiter(conf),
			UserService: &service.UserService{
				Config: conf, UserDAO: userDAO, LoginDAO: dao.NewLoginDAO(db), StatsDAO: statsDAO, Session: sessions,
			},
		},
		&Book{
			Config:          conf,
			Sessions:        sessions,
			BookService:     &service.BookService{UserDAO: userDAO, BookDAO: bookDAO, Stats: stats},
			WishlistService: &service.WishlistService{WishlistDAO: dao.NewWishlistDAO(db), Stats: stats},
			SearchService:   &service.SearchService{BookDAO: bookDAO, GramViewDAO: gramViewDAO},
		},
		&Gram{
			Config:          conf,
			Sessions:        sessions,
			GramService:     &service.GramService{GramDAO: dao.NewGramDAO(db), GramViewDAO: gramViewDAO, Stats: stats},
			BookmarkService: &service.BookmarkService{BookmarkDAO: dao.NewBookmarkDAO(db)},
			StatsService:    stats,
		},
		&Comment{
			Config:         conf,
			Sessions:       sessions,
			CommentService: &service.CommentService{CommentDAO: dao.NewCommentDAO(db), CommentViewDAO: dao.NewCommentViewDAO(db)},
		},
	}

	r := gin.New()
	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRouter(api)
	}
	return &env{t: t, db: db, engine: r}
}

func (e *env) do(method, path string, body any, who *caller) (int, gjson.Result) {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if who != nil {
		req.Header.Set("Authorization", "Bearer "+who.token)
		req.Header.Set(middleware.HeaderUserID, who.id)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w.Code, gjson.Parse(w.Body.String())
}

// signup 注册并登录，admin 为 true 时提升为管理员
func (e *env) signup(username string, admin bool) *caller {
	e.t.Helper()
	code, res := e.do(http.MethodPost, "/api/register", gin.H{"fullname": "Reader " + username, "username": username}, nil)
	require.Equal(e.t, http.StatusOK, code, res.Raw)
	id := res.Get("data.id").String()
	key := res.Get("privateKey").String()
	require.Len(e.t, key, 48)

	if admin {
		require.NoError(e.t, e.db.Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin).Error)
	}

	code, res = e.do(http.MethodPost, "/api/login", gin.H{"username": username, "privateKey": key}, nil)
	require.Equal(e.t, http.StatusOK, code, res.Raw)
	return &caller{id: id, token: res.Get("token").String()}
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)

	code, res := e.do(http.MethodPost, "/api/register", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.EqualValues(t, 400, res.Get("statusCode").Int())
	assert.Equal(t, "fullname is mandatory", res.Get("validationErrors.fullname").String())
	assert.Equal(t, "username is mandatory", res.Get("validationErrors.username").String())

	e.signup("ada", false)
	code, res = e.do(http.MethodPost, "/api/register", gin.H{"fullname": "Copy", "username": "ada"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgAlreadyExists, res.Get("message").String())

	code, _ = e.do(http.MethodPost, "/api/login", gin.H{"username": "ada", "privateKey": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestGramEndpoints(t *testing.T) {
	e := newEnv(t)
	admin := e.signup("admin", true)
	reader := e.signup("reader", false)

	code, res := e.do(http.MethodPost, "/api/v1/book/bulk", gin.H{
		"userId": reader.id,
		"books":  []gin.H{{"name": "Dune", "author": "Frank Herbert"}},
	}, reader)
	assert.Equal(t, http.StatusUnauthorized, code, res.Raw)

	code, res = e.do(http.MethodPost, "/api/v1/book/bulk", gin.H{
		"userId": admin.id,
		"books": []gin.H{
			{"name": "Dune", "author": "Frank Herbert", "publishedOn": "1965-08-01"},
			{"name": "Emma", "author": "Jane Austen"},
		},
	}, admin)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.EqualValues(t, 2, res.Get("count").Int())
	bookID := res.Get("data.0.id").String()

	code, res = e.do(http.MethodGet, "/api/v1/book?value=DUNE", nil, nil)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.EqualValues(t, 1, res.Get("count").Int())
	code, _ = e.do(http.MethodGet, "/api/v1/book?value=zzz", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, res = e.do(http.MethodPost, "/api/v1/gram", gin.H{"userId": reader.id, "bookId": bookID, "gram": "Fear is the mind-killer"}, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.Equal(t, "gram created", res.Get("message").String())
	publicID := res.Get("data.id").String()

	code, res = e.do(http.MethodPost, "/api/v1/gram", gin.H{"userId": reader.id, "bookId": bookID, "gram": "secret", "isPrivate": true}, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	privateID := res.Get("data.id").String()

	code, res = e.do(http.MethodPost, "/api/v1/gram", gin.H{"userId": reader.id, "bookId": bookID, "gram": "spoof"}, admin)
	assert.Equal(t, http.StatusUnauthorized, code, res.Raw)

	code, res = e.do(http.MethodGet, "/api/v1/gram?bookId="+bookID, nil, admin)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.EqualValues(t, 1, res.Get("count").Int())
	assert.Equal(t, publicID, res.Get("data.0.id").String())
	assert.Equal(t, "Reader reader", res.Get("data.0.user").String())
	assert.Equal(t, "Dune", res.Get("data.0.book").String())
	assert.Equal(t, "Frank Herbert", res.Get("data.0.author").String())
	assert.True(t, res.Get("data.0.shortDate").Exists())

	code, res = e.do(http.MethodGet, "/api/v1/gram/"+privateID, nil, admin)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.True(t, res.Get("data.isPrivate").Bool())

	code, res = e.do(http.MethodPatch, "/api/v1/gram/"+publicID+"/visibility/hidden", nil, reader)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, res.Get("validationErrors.flag").String())

	code, _ = e.do(http.MethodPatch, "/api/v1/gram/"+publicID+"/visibility/private", nil, admin)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(http.MethodGet, "/api/v1/gram", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, res = e.do(http.MethodGet, "/api/v1/stats", nil, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.EqualValues(t, 2, res.Get("data.gramsPosted").Int())
	assert.EqualValues(t, 2, res.Get("data.booksSeeded").Int())
	assert.EqualValues(t, 2, res.Get("data.gramsCount").Int())

	code, _ = e.do(http.MethodDelete, "/api/v1/gram/"+privateID, nil, reader)
	require.Equal(t, http.StatusOK, code)
	code, res = e.do(http.MethodGet, "/api/v1/stats", nil, reader)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, res.Get("data.gramsCount").Int())
	assert.EqualValues(t, 1, res.Get("data.gramsPosted").Int())

	code, res = e.do(http.MethodGet, "/api/v1/search?value=fear", nil, nil)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.EqualValues(t, 1, res.Get("data.grams.#").Int())

	code, res = e.do(http.MethodDelete, "/api/v1/book", gin.H{"userId": admin.id, "ids": []string{bookID}}, admin)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgInUse, res.Get("message").String())
}

func TestBookmarkAndCommentEndpoints(t *testing.T) {
	e := newEnv(t)
	admin := e.signup("admin", true)
	reader := e.signup("reader", false)

	_, res := e.do(http.MethodPost, "/api/v1/book/bulk", gin.H{"userId": admin.id, "books": []gin.H{{"name": "Emma", "author": "Jane Austen"}}}, admin)
	bookID := res.Get("data.0.id").String()
	_, res = e.do(http.MethodPost, "/api/v1/gram", gin.H{"userId": admin.id, "bookId": bookID, "gram": "Badly done, Emma"}, admin)
	gramID := res.Get("data.id").String()
	require.NotEmpty(t, gramID)

	code, res := e.do(http.MethodPost, "/api/v1/bookmark", gin.H{"userId": reader.id, "gramId": gramID}, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	code, _ = e.do(http.MethodPost, "/api/v1/bookmark", gin.H{"userId": reader.id, "gramId": gramID}, reader)
	assert.Equal(t, http.StatusBadRequest, code)

	code, res = e.do(http.MethodGet, "/api/v1/bookmark/check/"+gramID+"/"+reader.id, nil, reader)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, res.Get("data.bookmarked").Bool())

	code, res = e.do(http.MethodGet, "/api/v1/bookmark/user/"+reader.id, nil, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.Equal(t, gramID, res.Get("data.0.id").String())

	code, res = e.do(http.MethodPost, "/api/v1/comment", gin.H{"userId": reader.id, "gramId": gramID, "comment": "So harsh"}, reader)
	require.Equal(t, http.StatusOK, code, res.Raw)
	commentID := res.Get("data.id").String()

	code, res = e.do(http.MethodGet, "/api/v1/comment?gramId="+gramID, nil, admin)
	require.Equal(t, http.StatusOK, code, res.Raw)
	assert.Equal(t, "Reader reader", res.Get("data.0.user").String())

	code, res = e.do(http.MethodGet, "/api/v1/gram/"+gramID, nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, res.Get("data.comments").Int())

	code, _ = e.do(http.MethodDelete, "/api/v1/comment/"+commentID, nil, admin)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = e.do(http.MethodDelete, "/api/v1/comment/"+commentID, nil, reader)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(http.MethodGet, "/api/v1/comment/"+commentID, nil, reader)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = e.do(http.MethodDelete, "/api/v1/bookmark/"+gramID+"/"+reader.id, nil, reader)
	assert.Equal(t, http.StatusOK, code)

	code, _ = e.do(http.MethodPost, "/api/v1/wishlist", gin.H{"userId": reader.id, "bookId": bookID}, reader)
	assert.Equal(t, http.StatusOK, code)
	code, res = e.do(http.MethodGet, "/api/v1/stats", nil, reader)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, res.Get("data.wishlist").Int())
	assert.EqualValues(t, 1, res.Get("data.completedBooks").Int())
	code, _ = e.do(http.MethodDelete, "/api/v1/wishlist/"+bookID, nil, reader)
	assert.Equal(t, http.StatusOK, code)
}

func TestLogoutAndDeactivate(t *testing.T) {
	e := newEnv(t)
	u := e.signup("leaver", false)
	other := e.signup("other", false)

	code, _ := e.do(http.MethodPatch, "/api/logout/"+u.id, nil, other)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = e.do(http.MethodPatch, "/api/logout/not-a-uuid", nil, u)
	assert.Equal(t, http.StatusBadRequest, code)
	code, res := e.do(http.MethodPatch, "/api/logout/"+u.id, nil, u)
	assert.Equal(t, http.StatusOK, code, res.Raw)

	code, res = e.do(http.MethodDelete, "/api/user/"+u.id, nil, u)
	assert.Equal(t, http.StatusOK, code, res.Raw)
	code, res = e.do(http.MethodGet, "/api/v1/stats", nil, other)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, gjson.Null, res.Get("data.gramsCount").Type)
	assert.Equal(t, gjson.Null, res.Get("data.gramsPosted").Type)
}
