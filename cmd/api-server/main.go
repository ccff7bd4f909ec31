package main

import (
	"Bookgram/config"
	"Bookgram/pkg/database"
	"Bookgram/pkg/log"
	"Bookgram/pkg/server"
	"Bookgram/pkg/snowflake"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node", zap.Error(err))
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "bookgram http api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "migrate schema before serving"},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.Bool("migrate") {
						if err := migrate(cfg); err != nil {
							return err
						}
					}
					app, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and views",
				Action: func(ctx *cli.Context) error {
					return migrate(cfg)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func migrate(cfg *config.Config) error {
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.L.Info("migrate success")
	return nil
}
