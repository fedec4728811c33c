package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gg582/hancomb/internal/cli"
	"github.com/gg582/hancomb/internal/config"
	"github.com/gg582/hancomb/internal/layout"
	"github.com/gg582/hancomb/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Usage())
		return err
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	keyLayout, err := loadLayout(cfg)
	if err != nil {
		return err
	}
	log.Debug("layout loaded", "layout", keyLayout.Name(), "keypairs", cfg.Keypairs)

	if opts.Interactive {
		return runInteractive(keyLayout, log)
	}
	return runScript(os.Stdin, os.Stdout, keyLayout, log)
}

// resolveConfig loads the config file and lets flags override it.
func resolveConfig(opts cli.Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.LayoutName != "" {
		cfg.Layout = opts.LayoutName
	}
	if opts.KeypairPath != "" {
		cfg.Keypairs = opts.KeypairPath
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadLayout(cfg config.Config) (*layout.Layout, error) {
	keyLayout, err := layout.Load(cfg.Layout)
	if err != nil {
		return nil, err
	}
	if cfg.Keypairs == "" {
		return keyLayout, nil
	}
	pairs, err := layout.LoadCustomPairs(cfg.Keypairs)
	if err != nil {
		return nil, err
	}
	if err := layout.ApplyCustomPairs(keyLayout, pairs); err != nil {
		return nil, err
	}
	return keyLayout, nil
}
