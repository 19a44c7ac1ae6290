package main

import (
	"fmt"
	"os"

	"cubetext/internal/cubefaces"
	"cubetext/internal/debug"
	"cubetext/internal/engineconfig"
	"cubetext/internal/fonts"
	"cubetext/internal/graphics"
	"cubetext/internal/logger"
	"cubetext/internal/meshgen"
	"cubetext/internal/primitives"
	"cubetext/internal/scene"
	"cubetext/internal/ui"
)

func window(p engineconfig.Prefs, hidden bool) graphics.Window {
	return graphics.Window{
		Width:      p.WindowWidth,
		Height:     p.WindowHeight,
		Title:      p.WindowTitle,
		Fullscreen: p.Fullscreen && !hidden,
		TargetFPS:  p.TargetFPS,
		Hidden:     hidden,
	}
}

// faceEngine builds the panel layout from the config, falling back to the default faces.
func faceEngine(p engineconfig.Prefs, log *logger.Logger) (*ui.Engine, error) {
	faces := cubefaces.DefaultFaces()
	if len(p.Faces) > 0 {
		var err error
		if faces, err = cubefaces.FromStrings(p.FaceStrings()); err != nil {
			return nil, err
		}
	}
	eng := cubefaces.Engine(faces, p.FontSize)
	if p.CSS != "" {
		if err := eng.LoadCSS(p.CSS); err != nil {
			log.Slog().Warn("stylesheet not applied", "path", p.CSS, "error", err)
		}
	}
	return eng, nil
}

// loadFont resolves and loads the configured font. Failure is not fatal: raylib's
// built-in font is used instead.
func loadFont(p engineconfig.Prefs, log *logger.Logger) graphics.Font {
	path, err := fonts.NewFinder().Resolve(p.Font)
	if err != nil {
		log.Slog().Warn("font not found, using default font", "font", p.Font, "error", err)
		return graphics.Font{}
	}
	f, err := graphics.LoadFont(path, p.FontSize)
	if err != nil {
		log.Slog().Warn("font not loaded, using default font", "path", path, "error", err)
		return graphics.Font{}
	}
	log.Slog().Info("font loaded", "path", path)
	return f
}

func bake(p engineconfig.Prefs, log *logger.Logger) (graphics.Atlas, error) {
	eng, err := faceEngine(p, log)
	if err != nil {
		return graphics.Atlas{}, err
	}
	font := loadFont(p, log)
	defer font.Unload()
	atlas := cubefaces.Atlas{PanelSize: p.PanelSize}
	a, err := graphics.RenderAtlas(eng, atlas, font)
	if err != nil {
		return graphics.Atlas{}, err
	}
	log.Slog().Info("atlas rendered", "width", atlas.Width(), "height", atlas.Height())
	return a, nil
}

func runDemo(p engineconfig.Prefs, log *logger.Logger) error {
	if err := p.Validate(); err != nil {
		return err
	}
	graphics.Open(window(p, false))
	defer graphics.Close()

	atlas, err := bake(p, log)
	if err != nil {
		return err
	}
	defer atlas.Unload()

	reg := primitives.NewRegistry(p.Lit)
	defer reg.Close()
	quad := p.Mode == engineconfig.ModeQuad
	if quad {
		err = reg.Upload(scene.QuadMesh, meshgen.BuildQuad(p.QuadWidth, p.QuadHeight))
	} else {
		err = reg.Upload(scene.CubeMesh, meshgen.BuildCubeWithStep(uvStep(p.ExactUV)))
	}
	if err != nil {
		return err
	}
	log.Slog().Info("demo started", "mode", p.Mode, "lit", p.Lit, "exact_uv", p.ExactUV)

	scn := scene.New(reg, atlas.Texture, scene.Options{
		Quad:          quad,
		CubeScale:     p.CubeScale,
		RotationSpeed: p.RotationSpeed,
	})
	overlay := debug.New()
	overlay.ShowFPS = p.ShowFPS
	overlay.ShowLog = p.ShowLog
	overlay.Lines = log.Tail

	graphics.Run(scn.Update, func() {
		scn.Draw()
		overlay.Draw()
	})
	return nil
}

func bakeAtlas(p engineconfig.Prefs, log *logger.Logger, out string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	graphics.Open(window(p, true))
	defer graphics.Close()

	atlas, err := bake(p, log)
	if err != nil {
		return err
	}
	defer atlas.Unload()
	if err := graphics.SaveAtlasPNG(out, atlas.Image); err != nil {
		return err
	}
	log.Slog().Info("atlas saved", "path", out)
	fmt.Fprintln(os.Stdout, out)
	return nil
}
