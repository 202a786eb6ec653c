package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/youruser/horoscopecard/internal/config"
	"github.com/youruser/horoscopecard/internal/horoscope"
	imagepkg "github.com/youruser/horoscopecard/internal/image"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "horoscope",
	Short: "Serve and render daily horoscope cards",
	Long: `horoscope composes 1200x1200 PNG horoscope cards from a background pool,
a zodiac emblem, randomized lucky fields and a message picked from a JSON dataset.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(renderCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return RootCmd.ExecuteContext(ctx)
}

// app is the immutable state built once at startup.
type app struct {
	cfg      *config.Config
	gen      *horoscope.Generator
	renderer *imagepkg.Renderer
	log      *slog.Logger
}

// loadApp reads config, dataset and assets. Any failure is fatal to the caller.
func loadApp(ctx context.Context) (*app, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	dataset, err := horoscope.LoadDataset(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	assets, err := imagepkg.LoadAssets(ctx, imagepkg.AssetOptions{
		DisplayFont:    cfg.DisplayFont,
		BodyFont:       cfg.BodyFont,
		BackgroundsDir: cfg.BackgroundsDir,
		BackgroundURLs: cfg.BackgroundURLs,
		SignsDir:       cfg.SignsDir,
		Signs:          cfg.EnabledSigns,
	})
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}
	logger.Info("assets loaded",
		"records", len(dataset),
		"backgrounds", len(assets.Backgrounds),
		"signs", cfg.EnabledSigns,
	)
	return &app{
		cfg:      cfg,
		gen:      horoscope.NewGenerator(dataset, nil, nil),
		renderer: imagepkg.NewRenderer(assets, nil),
		log:      logger,
	}, nil
}
