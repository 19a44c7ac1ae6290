package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer reports every glyph as half the font size wide and the line as one font size high.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, fontSize float32) (float32, float32) {
	return float32(len(text)) * fontSize / 2, fontSize
}

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* panels */
.face { color: #000; font-size: 300px; justify-content: center; }
#top { background: #00ff00; }
div { background: #fff; }
@media screen { .face { color: #fff; } }
#top { background: #00ff0080 }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".face", sheet.Rules[0].Selector)
	assert.Equal(t, "#000", sheet.Rules[0].Props["color"])
	assert.Equal(t, "300px", sheet.Rules[0].Props["font-size"])
	assert.Equal(t, "#top", sheet.Rules[1].Selector)
	assert.Equal(t, "#00ff0080", sheet.Rules[2].Props["background"])
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#f00")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	c, ok = ParseHexColor("#800000")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 128, A: 255}, c)

	c, ok = ParseHexColor("#00000080")
	assert.True(t, ok)
	assert.Equal(t, uint8(128), c.A)

	c, ok = ParseHexColor("transparent")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{}, c)

	for _, bad := range []string{"", "red", "#12", "#12345", "#gggggg"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#ff0000", "#008000", "#00008080"} {
		c, ok := ParseHexColor(s)
		require.True(t, ok)
		assert.Equal(t, s, HexColor(c))
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"background":     "#123456",
		"font-size":      "300",
		"align-items":    "center",
		"flex-direction": "column",
		"border":         "#fff",
		"padding":        "-3",
	})
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, s.Background)
	assert.Equal(t, float32(300), s.FontSize)
	assert.True(t, s.Center)
	assert.True(t, s.HasBorder)
	assert.Equal(t, Column, s.Direction)
	assert.Equal(t, float32(4), s.Padding, "negative padding is ignored")
}

func TestLayoutRowSplitsEvenly(t *testing.T) {
	root := NewNode("panel", "root", "", "")
	for _, id := range []string{"a", "b", "c"} {
		root.Add(NewNode("panel", "cell", id, id))
	}
	sheet, err := ParseCSS(`.cell { justify-content: center; font-size: 10 } #b { background: #f00 }`)
	require.NoError(t, err)

	e := New()
	e.SetStylesheet(sheet)
	e.SetRoot(root)
	ops := e.Layout(300, 60, fixedMeasurer{})
	require.Len(t, ops, 4)

	assert.Equal(t, Rect{Width: 300, Height: 60}, ops[0].Bounds)
	for i, op := range ops[1:] {
		assert.Equal(t, Rect{X: float32(i) * 100, Width: 100, Height: 60}, op.Bounds)
		// one glyph, 5 wide and 10 high, centred in its cell
		assert.Equal(t, [2]float32{float32(i)*100 + 47.5, 25}, op.TextPos)
	}
	assert.Equal(t, color.RGBA{R: 255, A: 255}, ops[2].Background)
	assert.Equal(t, color.RGBA{}, ops[1].Background)
}

func TestLayoutColumnAndPadding(t *testing.T) {
	root := NewNode("panel", "", "root", "")
	root.Add(NewNode("label", "", "", "hi"), NewNode("label", "", "", ""))
	sheet, err := ParseCSS(`#root { flex-direction: column }`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	e.SetRoot(root)
	ops := e.Layout(100, 200, nil)
	require.Len(t, ops, 3)
	assert.Equal(t, Rect{Width: 100, Height: 100}, ops[1].Bounds)
	assert.Equal(t, Rect{Y: 100, Width: 100, Height: 100}, ops[2].Bounds)
	assert.Equal(t, [2]float32{4, 4}, ops[1].TextPos)
}

func TestLoadCSSOverridesGenerated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faces.css")
	require.NoError(t, os.WriteFile(path, []byte("#a { background: #0000ff; }"), 0o644))

	n := NewNode("panel", "", "a", "")
	e := New()
	e.SetStylesheet(&Stylesheet{Rules: []Rule{{Selector: "#a", Props: map[string]string{"background": "#ff0000"}}}})
	e.SetRoot(n)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, e.Style(n).Background)

	require.NoError(t, e.LoadCSS(path))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, e.Style(n).Background)
	assert.Len(t, e.Stylesheet().Rules, 2)

	assert.Error(t, e.LoadCSS(filepath.Join(dir, "missing.css")))
}

func TestLayoutEmpty(t *testing.T) {
	assert.Nil(t, New().Layout(10, 10, nil))
}
