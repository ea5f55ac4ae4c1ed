//go:build wireinject
// +build wireinject

package main

import (
	"Learnhub/config"
	"Learnhub/dao"
	"Learnhub/dao/cache"
	"Learnhub/handler"
	"Learnhub/pkg/client"
	"Learnhub/pkg/database"
	"Learnhub/pkg/email"
	"Learnhub/pkg/eventbus"
	"Learnhub/pkg/server"
	"Learnhub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		eventbus.NewBus,
		email.NewSender,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.VoteHandler), "*"),
		wire.Struct(new(handler.QuizHandler), "*"),
		wire.Struct(new(handler.SubscriptionHandler), "*"),
		wire.Struct(new(handler.NotificationHandler), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}
