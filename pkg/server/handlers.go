package server

import (
	"Bookgram/handler"
)

type Handlers struct {
	User    *handler.User
	Book    *handler.Book
	Gram    *handler.Gram
	Comment *handler.Comment
}
