package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.NoError(t, p.Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	p, err := Parse([]byte(`
mode: quad
panel_size: 256
show_fps: true
faces:
  - {text: A, color: "#ff0000"}
  - {text: B, color: "#00ff00"}
  - {text: C, color: "#0000ff"}
  - {text: D, color: "#ffffff"}
  - {text: E, color: "#000000"}
  - {text: F, color: "#808080"}
`))
	require.NoError(t, err)
	assert.Equal(t, ModeQuad, p.Mode)
	assert.Equal(t, 256, p.PanelSize)
	assert.True(t, p.ShowFPS)
	// untouched keys keep their defaults
	assert.Equal(t, float32(300), p.FontSize)
	assert.Equal(t, float32(0.5), p.RotationSpeed)
	assert.Equal(t, 1280, p.WindowWidth)
	require.Len(t, p.Faces, 6)
	labels, colors := p.FaceStrings()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels)
	assert.Equal(t, "#808080", colors[5])
	assert.NoError(t, p.Validate())
}

func TestParseInvalidYAML(t *testing.T) {
	p, err := Parse([]byte("mode: [cube"))
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestValidate(t *testing.T) {
	p := Default()
	p.Mode = "sphere"
	p.PanelSize = 0
	p.Faces = []FaceDef{{Text: "x"}}
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "sphere")
	assert.ErrorContains(t, err, "panel_size")
	assert.ErrorContains(t, err, "faces")
}

func TestValidateRejectsOversizedAtlas(t *testing.T) {
	p := Default()
	p.PanelSize = 1024
	assert.ErrorContains(t, p.Validate(), "panel_size")
	p.PanelSize = 836
	assert.NoError(t, p.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "demo.yaml")
	p := Default()
	p.Mode = ModeQuad
	p.ExactUV = true
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMode, "quad")
	t.Setenv(EnvFont, "Inter")
	t.Setenv(EnvShowFPS, "true")
	p := Default()
	ApplyEnv(&p)
	assert.Equal(t, ModeQuad, p.Mode)
	assert.Equal(t, "Inter", p.Font)
	assert.True(t, p.ShowFPS)

	t.Setenv(EnvShowFPS, "maybe")
	ApplyEnv(&p)
	assert.True(t, p.ShowFPS, "unparsable bool is ignored")
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvConfigPath, "/tmp/x.yaml")
	assert.Equal(t, "/tmp/x.yaml", Path())
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "demo.yaml"), 0755))
	p, err := Load(filepath.Join(dir, "demo.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}
