package main

import (
	"Learnhub/config"
	"Learnhub/pkg/database"
	"Learnhub/pkg/log"
	"Learnhub/pkg/server"
	"Learnhub/pkg/snowflake"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 不存在时忽略, 以系统环境变量为准
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	log.SetLevel(cfg.App.LogLevel)
	if err := snowflake.Init(cfg.App.NodeID); err != nil {
		log.L.Fatal("init snowflake", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server and comment event consumer",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "worker",
				Usage: "consume comment events only",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.RunWorker(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and indexes",
				Action: func(ctx *cli.Context) error {
					if err := database.AutoMigrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
