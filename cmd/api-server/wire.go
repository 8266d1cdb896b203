//go:build wireinject
// +build wireinject

package main

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/dao/cache"
	"Chirp/handler"
	"Chirp/middleware"
	"Chirp/pkg/client"
	"Chirp/pkg/database"
	"Chirp/pkg/rocketmq"
	"Chirp/pkg/server"
	"Chirp/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func()) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		config.ProvideRocketMQConfig,
		rocketmq.NewPublisher,
		wire.Bind(new(service.ActivityPublisher), new(*rocketmq.Publisher)),
		middleware.ProvideRateLimiter,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Bind(new(handler.SessionStore), new(*cache.SessionStorage)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Comment), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
