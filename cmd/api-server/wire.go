//go:build wireinject
// +build wireinject

package main

import (
	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/dao/cache"
	"github.com/valentineezeh/leader-are-readers/handler"
	"github.com/valentineezeh/leader-are-readers/pkg/client"
	"github.com/valentineezeh/leader-are-readers/pkg/database"
	"github.com/valentineezeh/leader-are-readers/pkg/rocketmq"
	"github.com/valentineezeh/leader-are-readers/pkg/server"
	"github.com/valentineezeh/leader-are-readers/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,
		cache.NewRelationCache,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Article), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.ReplyLike), "*"),
		wire.Struct(new(handler.Bookmark), "*"),
		wire.Struct(new(handler.Report), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
