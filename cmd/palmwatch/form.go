package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	sqliteadapter "github.com/csg33k/palmwatch/internal/adapters/sqlite"
	"github.com/csg33k/palmwatch/internal/config"
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/templates"
)

func openRepo(cfg *config.Config) (*sqliteadapter.Repository, error) {
	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	return repo, nil
}

func setValues(ctx context.Context, cfg *config.Config, p controller.Profile, args []string) error {
	if len(args) == 0 {
		return usageError("set needs at least one field=value")
	}
	known := make(map[string]bool, len(p.Fields))
	for _, f := range p.Fields {
		known[f.Name] = true
	}
	pairs := make([][2]string, 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return usageError(fmt.Sprintf("%q is not field=value", a))
		}
		if !known[k] {
			return usageError(fmt.Sprintf("profile %s has no field %q", p.Name, k))
		}
		pairs = append(pairs, [2]string{k, v})
	}

	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	for _, kv := range pairs {
		if err := repo.SetValue(ctx, p.Name, kv[0], kv[1]); err != nil {
			return fmt.Errorf("store %s: %w", kv[0], err)
		}
	}
	return nil
}

func showValues(ctx context.Context, cfg *config.Config, p controller.Profile) error {
	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	values, err := repo.ListValues(ctx, p.Name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, f := range p.Fields {
		mark := ""
		if f.Required {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\n", f.Name, mark, values[f.Name])
	}
	return tw.Flush()
}

func clearValues(ctx context.Context, cfg *config.Config, p controller.Profile) error {
	repo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.ClearValues(ctx, p.Name)
}

// cityOptions turns city keys into select options: "al_hassa" → "Al Hassa".
func cityOptions(keys []string) []templates.Option {
	opts := make([]templates.Option, 0, len(keys))
	for _, k := range keys {
		words := strings.Fields(strings.ReplaceAll(k, "_", " "))
		for i, w := range words {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToTitle(r)) + w[size:]
		}
		opts = append(opts, templates.Option{Value: k, Label: strings.Join(words, " ")})
	}
	return opts
}

func pageOptions(cfg *config.Config) map[string][]templates.Option {
	return map[string][]templates.Option{"city": cityOptions(cfg.CityKeys())}
}
