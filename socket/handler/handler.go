package handler

import (
	"Learnhub/config"
)

type Handler struct {
	Push   *PushChannel
	Config *config.Config
}
