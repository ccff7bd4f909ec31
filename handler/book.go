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

type Book struct {
	Config          *config.Config
	Sessions        *cache.SessionStorage
	BookService     service.IBookService
	WishlistService service.IWishlistService
	SearchService   service.ISearchService
}

func (b *Book) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(b.Config.Jwt.Secret), b.Sessions)

	g := r.Group("/v1/book")
	g.POST("/bulk", authorize, context.Wrap(b.BulkAdd))
	g.GET("", context.Wrap(b.List))
	g.GET("/top", context.Wrap(b.Top))
	g.GET("/:id", context.Wrap(b.Get))
	g.DELETE("", authorize, context.Wrap(b.BulkDelete))

	w := r.Group("/v1/wishlist", authorize)
	w.POST("", context.Wrap(b.AddWishlist))
	w.DELETE("/:bookId", context.Wrap(b.RemoveWishlist))

	r.GET("/v1/search", context.Wrap(b.Search))
}

// BulkAdd 管理员批量录入
func (b *Book) BulkAdd(c *gin.Context) error {
	var req types.BulkBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	books, err := b.BookService.BulkAdd(c.Request.Context(), callerID, &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "books added", response.WithData(books), response.WithCount(len(books)))
	return nil
}

func (b *Book) List(c *gin.Context) error {
	var q types.BookQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.Invalid(err)
	}

	books, err := b.BookService.List(c.Request.Context(), q.Value, page(b.Config, q.Limit, q.Offset))
	if err != nil {
		return fail(err)
	}
	if len(books) == 0 {
		return notFound("no books found")
	}
	response.Success(c, "books found", response.WithData(books), response.WithCount(len(books)))
	return nil
}

func (b *Book) Top(c *gin.Context) error {
	books, err := b.BookService.Top(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	if len(books) == 0 {
		return notFound("no books found")
	}
	response.Success(c, "top books", response.WithData(books), response.WithCount(len(books)))
	return nil
}

func (b *Book) Get(c *gin.Context) error {
	var uri types.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}

	book, err := b.BookService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		return fail(err)
	}
	if book == nil {
		return notFound("book not found")
	}
	response.Success(c, "book found", response.WithData(book))
	return nil
}

func (b *Book) BulkDelete(c *gin.Context) error {
	var req types.BulkDeleteBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	n, err := b.BookService.BulkDelete(c.Request.Context(), callerID, &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, "books deleted", response.WithCount(int(n)))
	return nil
}

func (b *Book) AddWishlist(c *gin.Context) error {
	var req types.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := b.WishlistService.Add(c.Request.Context(), callerID, &req); err != nil {
		return fail(err)
	}
	response.Success(c, "added to wishlist")
	return nil
}

func (b *Book) RemoveWishlist(c *gin.Context) error {
	var uri types.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return response.Invalid(err)
	}
	callerID, _ := context.GetUserID(c)

	if err := b.WishlistService.Remove(c.Request.Context(), callerID, uri.BookID); err != nil {
		return fail(err)
	}
	response.Success(c, "removed from wishlist")
	return nil
}

// Search 书籍与公开 gram 的全局搜索
func (b *Book) Search(c *gin.Context) error {
	var q types.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.Invalid(err)
	}

	res, err := b.SearchService.Search(c.Request.Context(), q.Value)
	if err != nil {
		return fail(err)
	}
	if len(res.Books) == 0 && len(res.Grams) == 0 {
		return notFound("nothing matched")
	}
	response.Success(c, "search results", response.WithData(res), response.WithCount(len(res.Books)+len(res.Grams)))
	return nil
}
