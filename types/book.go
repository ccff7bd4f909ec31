package types

import "Bookgram/models"

type BookRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Author      string  `json:"author" binding:"required,max=255"`
	Summary     string  `json:"summary"`
	Rating      float32 `json:"rating" binding:"gte=0,lte=5"`
	Pages       int     `json:"pages" binding:"gte=0"`
	PublishedOn string  `json:"publishedOn" binding:"omitempty,datetime=2006-01-02"`
}

type BulkBookRequest struct {
	UserID string         `json:"userId" binding:"required,uuid"`
	Books  []*BookRequest `json:"books" binding:"required,min=1,dive"`
}

type BulkDeleteBooksRequest struct {
	UserID string   `json:"userId" binding:"required,uuid"`
	IDs    []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type BookQuery struct {
	Value  string `form:"value"`
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}

type IDURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type WishlistRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	BookID string `json:"bookId" binding:"required,uuid"`
}

type BookURI struct {
	BookID string `uri:"bookId" binding:"required,uuid"`
}

type SearchQuery struct {
	Value string `form:"value" binding:"required"`
}

type SearchResult struct {
	Books []*models.Book     `json:"books"`
	Grams []*models.GramView `json:"grams"`
}
