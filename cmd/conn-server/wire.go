//go:build wireinject
// +build wireinject

package main

import (
	"Learnhub/config"
	"Learnhub/dao/cache"
	"Learnhub/pkg/client"
	"Learnhub/socket"

	"github.com/google/wire"
)

func InitSocketServer(cfg *config.Config) *socket.AppProvider {
	wire.Build(
		client.NewRedisClient,
		cache.NewOnlineStorage,
		socket.ProviderSet,
	)
	return nil
}
