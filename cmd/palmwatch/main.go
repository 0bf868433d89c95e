package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/csg33k/palmwatch/internal/config"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/observability"
)

const usage = `usage: palmwatch <command> [flags]

commands:
  set field=value...   store form values for the active profile
  show                 print the stored form values
  clear                forget the stored form values
  submit               POST the stored form to /assess and print the result
  schema               print the JSON Schemas for the payload and envelope
  page                 print the browser host page
  serve                serve the browser build and proxy /assess
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(func(msg string, args ...any) { slog.Debug(msg, args...) })
	if err != nil {
		fmt.Fprintln(os.Stderr, "palmwatch:", err)
		os.Exit(1)
	}
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "palmwatch:", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		stop()
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(os.Stderr, "palmwatch: %v\n\n%s", err, usage)
			os.Exit(2)
		}
		logger.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

type usageError string

func (e usageError) Error() string { return string(e) }

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, cmd string, args []string) error {
	profile, err := controller.ProfileByName(cfg.Profile)
	if err != nil {
		return err
	}
	switch cmd {
	case "set":
		return setValues(ctx, cfg, profile, args)
	case "show":
		return showValues(ctx, cfg, profile)
	case "clear":
		return clearValues(ctx, cfg, profile)
	case "submit":
		return submit(ctx, cfg, logger, profile, args)
	case "schema":
		return printSchemas(profile)
	case "page":
		return printPage(ctx, cfg, profile)
	case "serve":
		return serve(ctx, cfg, logger, profile)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return usageError(fmt.Sprintf("unknown command %q", cmd))
	}
}
