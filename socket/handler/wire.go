package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(PushChannel), "*"),
	wire.Struct(new(Handler), "*"),
)
