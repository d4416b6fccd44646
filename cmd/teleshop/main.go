package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"log/slog"

	"github.com/m3rciful/teleshop/internal/bot"
	"github.com/m3rciful/teleshop/internal/buildinfo"
	"github.com/m3rciful/teleshop/internal/cart"
	"github.com/m3rciful/teleshop/internal/catalog"
	"github.com/m3rciful/teleshop/internal/config"
	"github.com/m3rciful/teleshop/internal/favorites"
	"github.com/m3rciful/teleshop/internal/logging"
	tg "github.com/m3rciful/teleshop/internal/telegram"
)

func main() {
	app := &cli.App{
		Name:    "teleshop",
		Usage:   "Telegram shop bot",
		Version: fmt.Sprintf("%s (%s, %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config",
				EnvVars: []string{"CONFIG_PATH"},
				Value:   "config.yaml",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("teleshop: %v", err)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		if err := logging.Shutdown(); err != nil {
			log.Printf("logging shutdown error: %v", err)
		}
	}()

	provider, err := catalog.Load(cfg.Shop.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	application, err := bot.New(bot.Options{
		Config:    cfg,
		Catalog:   provider,
		Cart:      cart.NewStore(),
		Favorites: favorites.NewStore(),
	})
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	runOpts, err := application.TelegramRunOptions()
	if err != nil {
		return fmt.Errorf("telegram options build failed: %w", err)
	}

	startedAt := time.Now()
	runOpts.OnStart = func(ctx context.Context, rt tg.Runtime) error {
		logging.L.With("component", "app").Info("app ready",
			slog.String("event", "ready"),
			slog.Duration("startup_duration", logging.RoundMS(time.Since(startedAt))),
		)
		return nil
	}
	runOpts.OnStop = func(ctx context.Context, rt tg.Runtime) error {
		logging.L.With("component", "app").Info("shutting down...",
			slog.String("event", "shutdown"),
		)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return tg.RunTelegram(ctx, runOpts)
}
