package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cubetext/internal/cubefaces"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the path to the demo config file, relative to the process working directory.
const DefaultPath = "config/demo.yaml"

// Environment variables that override the file.
const (
	EnvConfigPath = "CUBETEXT_CONFIG"
	EnvMode       = "CUBETEXT_MODE"
	EnvFont       = "CUBETEXT_FONT"
	EnvShowFPS    = "CUBETEXT_SHOW_FPS"
)

// Display modes.
const (
	ModeCube = "cube"
	ModeQuad = "quad"
)

// FaceDef is one atlas panel in the config file.
type FaceDef struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// Prefs holds the demo settings. Zero values in the file mean "use the default", so
// boolean settings are phrased so that false is the default.
type Prefs struct {
	Mode string `yaml:"mode,omitempty"`

	WindowWidth  int    `yaml:"window_width,omitempty"`
	WindowHeight int    `yaml:"window_height,omitempty"`
	WindowTitle  string `yaml:"window_title,omitempty"`
	Fullscreen   bool   `yaml:"fullscreen,omitempty"`
	TargetFPS    int    `yaml:"target_fps,omitempty"`
	ShowFPS      bool   `yaml:"show_fps,omitempty"`
	ShowLog      bool   `yaml:"show_log,omitempty"`

	PanelSize int     `yaml:"panel_size,omitempty"`
	FontSize  float32 `yaml:"font_size,omitempty"`
	Font      string  `yaml:"font,omitempty"` // file path or family name under assets/fonts
	CSS       string  `yaml:"css,omitempty"`  // optional stylesheet applied after the generated one

	ExactUV bool `yaml:"exact_uv,omitempty"` // strip width 1/6 instead of 0.16666
	Lit     bool `yaml:"lit,omitempty"`      // shade the cube instead of drawing the atlas unlit

	CubeScale     float32 `yaml:"cube_scale,omitempty"`
	RotationSpeed float32 `yaml:"rotation_speed,omitempty"`
	QuadWidth     float32 `yaml:"quad_width,omitempty"`
	QuadHeight    float32 `yaml:"quad_height,omitempty"`

	Faces []FaceDef `yaml:"faces,omitempty"`

	LogPath string `yaml:"log_path,omitempty"`
}

// Default returns the reference demo: a spinning cube with a 3072x512 atlas.
func Default() Prefs {
	return Prefs{
		Mode:          ModeCube,
		WindowWidth:   1280,
		WindowHeight:  720,
		WindowTitle:   "cubetext - UI rendered to a texture",
		TargetFPS:     60,
		PanelSize:     512,
		FontSize:      300,
		Font:          "FiraSans-Medium",
		CubeScale:     2,
		RotationSpeed: 0.5,
		QuadWidth:     600,
		QuadHeight:    100,
		LogPath:       "logs/demo.txt",
	}
}

// Load reads preferences from path and overlays them on Default(). A missing file is not
// an error. An unreadable or invalid file returns Default() together with the error so the
// caller can report it and carry on.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML preferences and overlays them on Default().
func Parse(data []byte) (Prefs, error) {
	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := copier.CopyWithOption(&p, &loaded, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	return p, nil
}

// ApplyEnv overrides p with any of the CUBETEXT_* variables that are set.
func ApplyEnv(p *Prefs) {
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		p.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFont)); v != "" {
		p.Font = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvShowFPS)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.ShowFPS = b
		}
	}
}

// Path returns the config path from CUBETEXT_CONFIG, or DefaultPath.
func Path() string {
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v
	}
	return DefaultPath
}

// Validate reports settings the demo cannot run with.
func (p Prefs) Validate() error {
	var errs []error
	if p.Mode != ModeCube && p.Mode != ModeQuad {
		errs = append(errs, fmt.Errorf("engineconfig: unknown mode %q (want %s or %s)", p.Mode, ModeCube, ModeQuad))
	}
	if err := (cubefaces.Atlas{PanelSize: p.PanelSize}).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("engineconfig: panel_size: %w", err))
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("engineconfig: window size %dx%d is invalid", p.WindowWidth, p.WindowHeight))
	}
	if n := len(p.Faces); n != 0 && n != 6 {
		errs = append(errs, fmt.Errorf("engineconfig: faces lists %d entries, want 6", n))
	}
	return errors.Join(errs...)
}

// FaceStrings splits Faces into labels and colours.
func (p Prefs) FaceStrings() (labels, colors []string) {
	for _, f := range p.Faces {
		labels = append(labels, f.Text)
		colors = append(colors, f.Color)
	}
	return labels, colors
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
