package types

// GramFilter 列表过滤条件，ID 优先于其他条件
type GramFilter struct {
	ID     string
	BookID string
	UserID string
}

type GramRequest struct {
	ID        string `json:"id" binding:"omitempty,uuid"`
	UserID    string `json:"userId" binding:"required,uuid"`
	BookID    string `json:"bookId" binding:"required,uuid"`
	Gram      string `json:"gram" binding:"required"`
	IsPrivate bool   `json:"isPrivate"`
}

type GramQuery struct {
	BookID string `form:"bookId" binding:"omitempty,uuid"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type VisibilityURI struct {
	ID   string `uri:"id" binding:"required,uuid"`
	Flag string `uri:"flag" binding:"required,oneof=public private"`
}

type BookmarkRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	GramID string `json:"gramId" binding:"required,uuid"`
}

type BookmarkURI struct {
	GramID string `uri:"gramId" binding:"required,uuid"`
	UserID string `uri:"userId" binding:"required,uuid"`
}

type CommentRequest struct {
	ID      string `json:"id" binding:"omitempty,uuid"`
	UserID  string `json:"userId" binding:"required,uuid"`
	GramID  string `json:"gramId" binding:"required,uuid"`
	Comment string `json:"comment" binding:"required"`
}

// CommentFilter 评论列表过滤条件
type CommentFilter struct {
	GramID string
	UserID string
}

type CommentQuery struct {
	GramID string `form:"gramId" binding:"omitempty,uuid"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}
