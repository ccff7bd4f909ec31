package types

// StatKind 计数类型
type StatKind string

const (
	StatGram     StatKind = "gram"
	StatBook     StatKind = "book"
	StatWishlist StatKind = "wishlist"
)

// StatsSnapshot 首页统计，缺失的统计行对应字段为 null
type StatsSnapshot struct {
	GramsPosted    *int64 `json:"gramsPosted" gorm:"column:grams_posted"`
	BooksSeeded    *int64 `json:"booksSeeded" gorm:"column:books_seeded"`
	GramsCount     *int64 `json:"gramsCount" gorm:"column:grams_count"`
	Wishlist       *int64 `json:"wishlist" gorm:"column:wishlist"`
	CompletedBooks *int64 `json:"completedBooks" gorm:"column:completed_books"`
}
