package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"cubetext/internal/commands"
	"cubetext/internal/engineconfig"
	"cubetext/internal/env"
	"cubetext/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cubetext:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if _, err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "cubetext: .env:", err)
	}
	cfgPath := engineconfig.Path()
	prefs, cfgErr := engineconfig.Load(cfgPath)
	engineconfig.ApplyEnv(&prefs)

	log := logger.New(prefs.LogPath, os.Stderr)
	slog := log.Slog()
	if cfgErr != nil {
		slog.Warn("config unreadable, using defaults", "path", cfgPath, "error", cfgErr)
	}

	// no subcommand runs the configured mode
	reg := commands.NewRegistry(prefs.Mode)
	reg.Register("cube", "render the panels onto a spinning cube", nil, func() error {
		prefs.Mode = engineconfig.ModeCube
		return runDemo(prefs, log)
	})
	reg.Register("quad", "render the panels onto a flat quad", nil, func() error {
		prefs.Mode = engineconfig.ModeQuad
		return runDemo(prefs, log)
	})

	meshFlags := flag.NewFlagSet("mesh", flag.ContinueOnError)
	format := meshFlags.String("format", "obj", "output format: obj, yaml or json")
	exact := meshFlags.Bool("exact", prefs.ExactUV, "use exact 1/6 atlas strips")
	quad := meshFlags.Bool("quad", false, "print the display quad instead of the cube")
	reg.Register("mesh", "print the cube mesh", meshFlags, func() error {
		return printMesh(os.Stdout, *format, *exact, *quad, prefs)
	})

	atlasFlags := flag.NewFlagSet("atlas", flag.ContinueOnError)
	out := atlasFlags.String("o", "atlas.png", "output PNG path")
	reg.Register("atlas", "bake the panel atlas to a PNG", atlasFlags, func() error {
		return bakeAtlas(prefs, log, *out)
	})

	fontFlags := flag.NewFlagSet("font", flag.ContinueOnError)
	style := fontFlags.String("style", "Medium", "preferred style when fetching a family")
	fontURL := fontFlags.String("url", "", "fetch a .ttf, .otf or .zip from this URL instead")
	reg.Register("font", "install a font family into assets/fonts", fontFlags, func() error {
		return fetchFont(fontFlags.Args(), *style, *fontURL, log)
	})

	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	force := initFlags.Bool("f", false, "overwrite an existing config")
	reg.Register("init", "write the default config file", initFlags, func() error {
		if _, err := os.Stat(cfgPath); err == nil && !*force {
			return fmt.Errorf("%s exists (use -f to overwrite)", cfgPath)
		}
		if err := engineconfig.Save(cfgPath, engineconfig.Default()); err != nil {
			return err
		}
		slog.Info("config written", "path", cfgPath)
		return nil
	})

	err := reg.Execute(args)
	if errors.Is(err, commands.ErrUnknown) || errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "usage: cubetext [command] [flags]")
		reg.Usage(os.Stderr)
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
