package socket

import (
	"Learnhub/pkg/socket"
	"Learnhub/socket/handler"
	"Learnhub/socket/process"
	"Learnhub/socket/router"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	router.NewRouter,
	socket.NewManager,

	// process
	wire.Struct(new(process.SubServers), "*"),
	process.NewServer,
	process.NewPushSubscribe,

	handler.ProviderSet,

	// AppProvider
	wire.Struct(new(AppProvider), "*"),
)
