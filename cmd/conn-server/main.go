package main

import (
	"Learnhub/config"
	"Learnhub/pkg/log"
	s "Learnhub/socket"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	conn := InitSocketServer(cfg)

	cliApp := &cli.App{
		Name: "conn-server",

		// 默认启动行为
		Action: func(ctx *cli.Context) error {
			return s.Run(ctx, conn)
		},

		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start websocket push server",
				Action: func(ctx *cli.Context) error {
					return s.Run(ctx, conn)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
