package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/csg33k/palmwatch/internal/adapters/assessapi"
	"github.com/csg33k/palmwatch/internal/adapters/pdf"
	"github.com/csg33k/palmwatch/internal/adapters/terminal"
	"github.com/csg33k/palmwatch/internal/config"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/observability"
	"github.com/csg33k/palmwatch/internal/templates"
)

func submit(ctx context.Context, cfg *config.Config, logger *slog.Logger, p controller.Profile, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	htmlOut := fs.String("html", "", "write the rendered page snapshot to this file")
	pdfOut := fs.String("pdf", "", "write a PDF report to this file")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}

	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	metrics := observability.NewMetrics()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := observability.WriteTextfile(cfg.MetricsFile); werr != nil {
				logger.Warn("write metrics textfile", "path", cfg.MetricsFile, "err", werr)
			}
		}()
	}

	screen := terminal.New(os.Stdout, os.Stderr, p)
	client := assessapi.NewClient(cfg.BaseURL, logger)
	c, err := controller.New(p, screen.Elements(repo.Form(p.Name)), client,
		controller.WithLogger(logger),
		controller.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	logger.Debug("submitting", "endpoint", client.Endpoint())
	outcome, err := c.Submit(ctx)
	if err != nil {
		// The screen has already shown the alert.
		return fmt.Errorf("%s: %w", outcome, err)
	}

	snap := screen.Snapshot()
	if *htmlOut != "" {
		if err := writeSnapshotHTML(ctx, snap, *htmlOut); err != nil {
			return err
		}
	}
	if *pdfOut != "" {
		if err := writeSnapshotPDF(snap, *pdfOut); err != nil {
			return err
		}
	}
	return nil
}

func writeSnapshotHTML(ctx context.Context, d domain.Dashboard, path string) error {
	page, err := templates.Snapshot(d)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := page.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeSnapshotPDF(d domain.Dashboard, path string) error {
	var buf bytes.Buffer
	if err := pdf.GenerateReport(d, time.Now(), &buf); err != nil {
		return fmt.Errorf("generate pdf: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
