package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/youruser/helpcard/internal/api"
	"github.com/youruser/helpcard/internal/catalog"
	"github.com/youruser/helpcard/internal/config"
	"github.com/youruser/helpcard/internal/help"
	imagepkg "github.com/youruser/helpcard/internal/image"
)

const customFamily = "custom"

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := cfg.Logger(os.Stderr)
	slog.SetDefault(log)

	fonts := imagepkg.NewFontSet()
	family := imagepkg.DefaultFamily
	if cfg.FontPath != "" {
		if err := registerFont(fonts, cfg.FontPath); err != nil {
			log.Warn("custom font unavailable, using bundled font", "path", cfg.FontPath, "err", err)
		} else {
			family = customFamily
		}
	}
	renderer := help.NewRenderer(
		help.WithFonts(fonts),
		help.WithFamily(family),
		help.WithLogger(log),
	)

	// Load help lists at startup (best-effort)
	cat, err := catalog.LoadDir(cfg.DataDir)
	if err != nil {
		log.Warn("failed to load help lists at startup", "dir", cfg.DataDir, "err", err)
	} else {
		log.Info("loaded help lists", "dir", cfg.DataDir, "count", cat.Len())
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(renderer, api.Options{
		Catalog:       cat,
		FetchTimeout:  cfg.FetchTimeout(),
		MaxFetchBytes: cfg.MaxFetchBytes,
		MaxBodyBytes:  cfg.MaxBodyBytes,
		Logger:        log,
	}))

	log.Info("starting server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func registerFont(fonts *imagepkg.FontSet, path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fonts.Register(customFamily, ttf)
}
