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

type Gram struct {
	Config          *config.Config
	Sessions        *cache.SessionStorage
	GramService     service.IGramService
	BookmarkService service.IBookmarkService
	StatsService    service.IStatsService
}

func (g *Gram) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(g.Config.Jwt.Secret), g.Sessions)

	gr := r.Group("/v1/gram", authorize)
	gr.POST("", context.Wrap(g.Upsert))
	gr.GET("", context.Wrap(g.List))
	gr.GET("/:id", context.Wrap(g.Get))
	gr.PATCH("/:id/visibility/:flag", context.Wrap(g.SetVisibility))
	gr.DELETE("/:id", context.Wrap(g.Delete))

	bm := r.Group("/v1/bookmark", authorize)
	bm.POST("", context.Wrap(g.AddBookmark))
	bm.GET("/user/:userId", context.Wrap(g.ListBookmarks))
	bm.GET("/check/:gramId/:userId", context.Wrap(g.CheckBookmark))
	bm.DELETE("/:gramId/:userId", context.Wrap(g.RemoveBookmark))

	r.GET("/v1/stats", authorize, context.Wrap(g.Stats))
}

// Upsert 新建或修改 gram
func (g *Gram) Upsert(c *gin.Context) error {
	var req types.GramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	gram, created, err := g.GramService.Upsert(c.Request.Context(), callerID, &req)
	if err != nil {
		return fail(err)
	}
	msg := "gram updated"
	if created {
		msg = "gram created"
	}
	response.Success(c, msg, response.WithData(gram))
	return nil
}

func (g *Gram) Get(c *gin.Context) error {
	var uri types.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}

	gram, err := g.GramService.GetView(c.Request.Context(), uri.ID)
	if err != nil {
		return fail(err)
	}
	if gram == nil {
		return notFound("gram not found")
	}
	response.Success(c, "gram found", response.WithData(gram))
	return nil
}

// List 按书籍/用户过滤公开 gram
func (g *Gram) List(c *gin.Context) error {
	var q types.GramQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.Invalid(err)
	}

	filter := types.GramFilter{BookID: q.BookID, UserID: q.UserID}
	grams, err := g.GramService.ListGrams(c.Request.Context(), filter, page(g.Config, q.Limit, q.Offset))
	if err != nil {
		return fail(err)
	}
	if len(grams) == 0 {
		return notFound("no grams found")
	}
	response.Success(c, "grams found", response.WithData(grams), response.WithCount(len(grams)))
	return nil
}

func (g *Gram) SetVisibility(c *gin.Context) error {
	var uri types.VisibilityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	private := uri.Flag == types.VisibilityPrivate
	if err := g.GramService.SetVisibility(c.Request.Context(), callerID, uri.ID, private); err != nil {
		return fail(err)
	}
	response.Success(c, "gram is now "+uri.Flag)
	return nil
}

func (g *Gram) Delete(c *gin.Context) error {
	var uri types.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := g.GramService.Delete(c.Request.Context(), callerID, uri.ID); err != nil {
		return fail(err)
	}
	response.Success(c, "gram deleted")
	return nil
}

func (g *Gram) AddBookmark(c *gin.Context) error {
	var req types.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := g.BookmarkService.Add(c.Request.Context(), callerID, &req); err != nil {
		return fail(err)
	}
	response.Success(c, "gram bookmarked")
	return nil
}

func (g *Gram) ListBookmarks(c *gin.Context) error {
	var uri types.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	var q types.BookQuery
	_ = c.ShouldBindQuery(&q)

	rows, err := g.BookmarkService.List(c.Request.Context(), uri.UserID, page(g.Config, q.Limit, q.Offset))
	if err != nil {
		return fail(err)
	}
	if len(rows) == 0 {
		return notFound("no bookmarks found")
	}
	response.Success(c, "bookmarks found", response.WithData(rows), response.WithCount(len(rows)))
	return nil
}

func (g *Gram) CheckBookmark(c *gin.Context) error {
	var uri types.BookmarkURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}

	ok, err := g.BookmarkService.IsBookmarked(c.Request.Context(), uri.UserID, uri.GramID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "bookmark status", response.WithData(gin.H{"bookmarked": ok}))
	return nil
}

func (g *Gram) RemoveBookmark(c *gin.Context) error {
	var uri types.BookmarkURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := g.BookmarkService.Remove(c.Request.Context(), callerID, uri.GramID, uri.UserID); err != nil {
		return fail(err)
	}
	response.Success(c, "bookmark removed")
	return nil
}

// Stats 首页统计，缺失的计数为 null
func (g *Gram) Stats(c *gin.Context) error {
	callerID, _ := context.GetUserID(c)

	snap, err := g.StatsService.Snapshot(c.Request.Context(), callerID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "stats", response.WithData(snap))
	return nil
}
