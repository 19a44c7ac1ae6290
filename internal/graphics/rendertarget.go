package graphics

import (
	"fmt"
	"image"

	"cubetext/internal/cubefaces"
	"cubetext/internal/ui"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const textSpacing = 1

// Font wraps a raylib font and measures text for ui layout.
// The zero value uses raylib's built-in font.
type Font struct {
	rl.Font
	owned bool
}

// LoadFont loads a TTF/OTF file rasterised at size pixels. Needs an open window.
func LoadFont(path string, size float32) (Font, error) {
	f := rl.LoadFontEx(path, int32(size), nil)
	if f.Texture.ID == 0 {
		return Font{}, fmt.Errorf("graphics: cannot load font %s", path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return Font{Font: f, owned: true}, nil
}

// Unload releases a font returned by LoadFont.
func (f *Font) Unload() {
	if f.owned {
		rl.UnloadFont(f.Font)
		*f = Font{}
	}
}

func (f Font) raylib() rl.Font {
	if f.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	return f.Font
}

// MeasureText implements ui.TextMeasurer.
func (f Font) MeasureText(text string, fontSize float32) (float32, float32) {
	v := rl.MeasureTextEx(f.raylib(), text, fontSize, textSpacing)
	return v.X, v.Y
}

// DrawOps draws laid-out ui nodes in order: background, 1px border, then text.
func DrawOps(ops []ui.DrawOp, font Font) {
	rf := font.raylib()
	for _, op := range ops {
		rec := rl.NewRectangle(op.Bounds.X, op.Bounds.Y, op.Bounds.Width, op.Bounds.Height)
		if op.Background.A > 0 {
			rl.DrawRectangleRec(rec, op.Background)
		}
		if op.HasBorder && rec.Width > 0 && rec.Height > 0 {
			rl.DrawRectangleLinesEx(rec, 1, op.Border)
		}
		if op.Text != "" {
			rl.DrawTextEx(rf, op.Text, rl.NewVector2(op.TextPos[0], op.TextPos[1]), op.FontSize, textSpacing, op.TextColor)
		}
	}
}

// Atlas is the baked panel texture and its CPU copy (top row first).
type Atlas struct {
	Texture rl.Texture2D
	Image   *image.RGBA
}

// Unload releases the GPU texture.
func (a *Atlas) Unload() {
	if a.Texture.ID != 0 {
		rl.UnloadTexture(a.Texture)
		a.Texture = rl.Texture2D{}
	}
}

// RenderAtlas draws eng's layout into an off-screen colour+alpha target the size of
// atlas, then re-uploads it as an ordinary texture. Render targets are stored bottom
// row first, so the pixels are flipped on the way through: in the result V=0 samples
// the top of the layout, as the cube's UVs expect.
func RenderAtlas(eng *ui.Engine, atlas cubefaces.Atlas, font Font) (Atlas, error) {
	if err := atlas.Validate(); err != nil {
		return Atlas{}, err
	}
	w, h := atlas.Width(), atlas.Height()
	target := rl.LoadRenderTexture(int32(w), int32(h))
	if !rl.IsRenderTextureValid(target) {
		return Atlas{}, fmt.Errorf("graphics: cannot create %dx%d render target", w, h)
	}
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Blank)
	DrawOps(eng.Layout(float32(w), float32(h), font), font)
	rl.EndTextureMode()

	raw := rl.LoadImageFromTexture(target.Texture)
	if raw == nil {
		return Atlas{}, fmt.Errorf("graphics: cannot read back render target")
	}
	flipped := transform.FlipV(raw.ToImage())
	rl.UnloadImage(raw)

	upload := rl.NewImageFromImage(flipped)
	tex := rl.LoadTextureFromImage(upload)
	rl.UnloadImage(upload)
	if !rl.IsTextureValid(tex) {
		return Atlas{}, fmt.Errorf("graphics: cannot upload atlas texture")
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return Atlas{Texture: tex, Image: flipped}, nil
}

// SaveAtlasPNG writes the atlas image to path.
func SaveAtlasPNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("graphics: save atlas: %w", err)
	}
	return nil
}
