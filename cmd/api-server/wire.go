//go:build wireinject
// +build wireinject

package main

import (
	"Bookgram/config"
	"Bookgram/dao"
	"Bookgram/handler"
	"Bookgram/middleware"
	"Bookgram/pkg/client"
	"Bookgram/pkg/database"
	"Bookgram/pkg/server"
	"Bookgram/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		middleware.NewLoginLimiter,
		server.NewGinEngine,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Book), "*"),
		wire.Struct(new(handler.Gram), "*"),
		wire.Struct(new(handler.Comment), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
