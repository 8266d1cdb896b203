package main

import (
	"Chirp/config"
	"Chirp/pkg/database"
	"Chirp/pkg/log"
	"Chirp/pkg/server"
	"Chirp/pkg/snowflake"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()
	cfg := config.New(config.Path())
	log.SetDebug(cfg.Debug())
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node id", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "chirp social network api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup := InitServer(cfg)
					defer cleanup()
					if cfg.App.AutoMigrate {
						if err := database.Migrate(appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db, err := database.Open(cfg.Database)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate success", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
