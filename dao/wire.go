package dao

import (
	"Bookgram/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewLoginDAO,
	NewBookDAO,
	NewGramDAO,
	NewGramViewDAO,
	NewCommentDAO,
	NewCommentViewDAO,
	NewBookmarkDAO,
	NewWishlistDAO,
	NewStatsDAO,
	cache.NewSessionStorage,
)
