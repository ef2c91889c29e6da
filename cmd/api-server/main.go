package main

import (
	"fmt"
	"os"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/pkg/server"
	"github.com/valentineezeh/leader-are-readers/pkg/snowflake"
	"github.com/valentineezeh/leader-are-readers/service"

	"github.com/gin-gonic/gin"
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
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	appProvider, err := InitServer(cfg)
	if err != nil {
		log.L.Fatal("failed to init server", zap.Error(err))
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Author Haven REST backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the database tables",
				Action: func(ctx *cli.Context) error {
					if err := appProvider.DB.WithContext(ctx.Context).AutoMigrate(models.All()...); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "insert the default report categories",
				Action: func(ctx *cli.Context) error {
					n, err := appProvider.Reports.SeedCategories(ctx.Context, service.DefaultReportCategories)
					if err != nil {
						return fmt.Errorf("seed: %w", err)
					}
					log.L.Info("seed done", zap.Int("created", n))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to run command", zap.Error(err))
	}
}
