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

type Comment struct {
	Config         *config.Config
	Sessions       *cache.SessionStorage
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Sessions)
	g := r.Group("/v1/comment", authorize)
	g.POST("", context.Wrap(h.Upsert))
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Comment) Upsert(c *gin.Context) error {
	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	comment, err := h.CommentService.Upsert(c.Request.Context(), callerID, &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "comment saved", response.WithData(comment))
	return nil
}

func (h *Comment) Get(c *gin.Context) error {
	var uri types.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}

	comment, err := h.CommentService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		return fail(err)
	}
	if comment == nil {
		return notFound("comment not found")
	}
	response.Success(c, "comment found", response.WithData(comment))
	return nil
}

func (h *Comment) List(c *gin.Context) error {
	var q types.CommentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.Invalid(err)
	}

	filter := types.CommentFilter{GramID: q.GramID, UserID: q.UserID}
	rows, err := h.CommentService.List(c.Request.Context(), filter, page(h.Config, q.Limit, q.Offset))
	if err != nil {
		return fail(err)
	}
	if len(rows) == 0 {
		return notFound("no comments found")
	}
	response.Success(c, "comments found", response.WithData(rows), response.WithCount(len(rows)))
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	var uri types.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := h.CommentService.Delete(c.Request.Context(), callerID, uri.ID); err != nil {
		return fail(err)
	}
	response.Success(c, "comment deleted")
	return nil
}
