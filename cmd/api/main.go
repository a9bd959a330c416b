package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/struk/internal/capture"
	"github.com/MrJamesThe3rd/struk/internal/config"
	"github.com/MrJamesThe3rd/struk/internal/export"
	strukHttp "github.com/MrJamesThe3rd/struk/internal/http"
	receiptHandler "github.com/MrJamesThe3rd/struk/internal/http/receipt"
	"github.com/MrJamesThe3rd/struk/internal/importer"
	"github.com/MrJamesThe3rd/struk/internal/preview"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	background, err := cfg.Background()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	opts := export.DefaultOptions()
	opts.ShopName = cfg.Shop.Name
	opts.Scale = cfg.Export.Scale
	opts.Background = background
	opts.CountryCode = cfg.Messaging.CountryCode
	opts.MessagingURL = cfg.Messaging.URL

	var (
		renderer = preview.NewRenderer(preview.Shop{
			Name:    cfg.Shop.Name,
			Phone:   cfg.Shop.Phone,
			Address: cfg.Shop.Address,
		})
		importService = importer.NewService()
	)

	receiptH := receiptHandler.NewHandler(renderer, capture.NewRasterizer(), importService, opts, uuid.NewString)

	router := strukHttp.New(receiptH, strukHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
