package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"cubetext/internal/fonts"
	"cubetext/internal/logger"
)

// fetchFont installs the named family (e.g. "Fira Sans") or the file at rawURL into
// the first font directory.
func fetchFont(args []string, style, rawURL string, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := fonts.NewFetcher(fonts.BaseDirs()[0])
	if rawURL != "" {
		paths, err := f.InstallURL(ctx, rawURL)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Slog().Info("font installed", "path", p)
		}
		return nil
	}
	family := strings.Join(args, " ")
	if family == "" {
		return fmt.Errorf("font: name a family, e.g. cubetext font Fira Sans")
	}
	p, err := f.Install(ctx, family, style)
	if err != nil {
		return err
	}
	log.Slog().Info("font installed", "family", family, "style", style, "path", p)
	return nil
}
