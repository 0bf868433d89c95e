package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/csg33k/palmwatch/internal/config"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/handlers"
	"github.com/csg33k/palmwatch/internal/schema"
	"github.com/csg33k/palmwatch/internal/templates"
)

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, p controller.Profile) error {
	h, err := handlers.New(p, pageOptions(cfg), cfg.StaticDir, cfg.BaseURL, logger)
	if err != nil {
		return fmt.Errorf("upstream %s: %w", cfg.BaseURL, err)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("palmwatch running", "addr", "http://localhost:"+cfg.Port, "profile", p.Name, "upstream", cfg.BaseURL)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printPage(ctx context.Context, cfg *config.Config, p controller.Profile) error {
	page := templates.Index(templates.PageConfig{
		Profile:   p,
		Options:   pageOptions(cfg),
		WasmURL:   "/static/palmwatch.wasm",
		LoaderURL: "/static/wasm_exec.js",
	})
	return page.Render(ctx, os.Stdout)
}

func printSchemas(p controller.Profile) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schema.Payload(p)); err != nil {
		return err
	}
	return enc.Encode(schema.Envelope())
}
