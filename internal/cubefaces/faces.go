// Package cubefaces describes the six labelled panels that are rendered into the
// cube's texture atlas, and the UI tree that lays them out.
package cubefaces

import (
	"fmt"
	"image/color"
	"strconv"

	"cubetext/internal/meshgen"
	"cubetext/internal/ui"
)

// CubeFace is the content of one atlas strip: a solid background and a centred label.
type CubeFace struct {
	Text  string
	Color color.RGBA
}

// DefaultFaces returns one face per atlas strip in meshgen.Faces order
// (top, bottom, right, left, back, forward). Each label names the axis the face points
// along; positive axes are full intensity, negative ones half.
func DefaultFaces() [meshgen.FaceCount]CubeFace {
	return [meshgen.FaceCount]CubeFace{
		meshgen.Top:     {Text: "Y", Color: color.RGBA{G: 255, A: 255}},
		meshgen.Bottom:  {Text: "-Y", Color: color.RGBA{G: 128, A: 255}},
		meshgen.Right:   {Text: "X", Color: color.RGBA{R: 255, A: 255}},
		meshgen.Left:    {Text: "-X", Color: color.RGBA{R: 128, A: 255}},
		meshgen.Back:    {Text: "Z", Color: color.RGBA{B: 255, A: 255}},
		meshgen.Forward: {Text: "-Z", Color: color.RGBA{B: 128, A: 255}},
	}
}

// TextColor is the label colour of every face.
var TextColor = color.RGBA{A: 255}

// DefaultFontSize matches a 512px panel.
const DefaultFontSize = 300

// Class names and ids used in the generated UI tree. User CSS can target them.
const (
	RootID    = "faces"
	FaceClass = "face"
)

// FaceID returns the CSS id of the panel for f, e.g. "top".
func FaceID(f meshgen.Face) string {
	return f.String()
}

// Tree returns the UI tree for faces: a root panel filling the atlas with one child
// per face, left to right in strip order.
func Tree(faces [meshgen.FaceCount]CubeFace) *ui.Node {
	root := ui.NewNode("panel", "", RootID, "")
	for _, f := range meshgen.Faces {
		root.Add(ui.NewNode("panel", FaceClass, FaceID(f), faces[f].Text))
	}
	return root
}

// Stylesheet returns the rules that give each panel its colour and centre its label.
func Stylesheet(faces [meshgen.FaceCount]CubeFace, fontSize float32) *ui.Stylesheet {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	sheet := &ui.Stylesheet{Rules: []ui.Rule{
		{Selector: "#" + RootID, Props: map[string]string{
			"flex-direction": "row",
			"background":     "transparent",
		}},
		{Selector: "." + FaceClass, Props: map[string]string{
			"justify-content": "center",
			"align-items":     "center",
			"color":           ui.HexColor(TextColor),
			"font-size":       strconv.FormatFloat(float64(fontSize), 'f', -1, 32),
		}},
	}}
	for _, f := range meshgen.Faces {
		sheet.Rules = append(sheet.Rules, ui.Rule{
			Selector: "#" + FaceID(f),
			Props:    map[string]string{"background": ui.HexColor(faces[f].Color)},
		})
	}
	return sheet
}

// Engine returns a ui.Engine holding the face tree and its stylesheet.
func Engine(faces [meshgen.FaceCount]CubeFace, fontSize float32) *ui.Engine {
	e := ui.New()
	e.SetStylesheet(Stylesheet(faces, fontSize))
	e.SetRoot(Tree(faces))
	return e
}

// FromStrings builds faces from label/colour pairs in strip order, e.g. from config.
func FromStrings(labels, colors []string) ([meshgen.FaceCount]CubeFace, error) {
	var out [meshgen.FaceCount]CubeFace
	if len(labels) != meshgen.FaceCount || len(colors) != meshgen.FaceCount {
		return out, fmt.Errorf("cubefaces: need %d faces, got %d labels and %d colors", meshgen.FaceCount, len(labels), len(colors))
	}
	for i := range out {
		c, ok := ui.ParseHexColor(colors[i])
		if !ok {
			return out, fmt.Errorf("cubefaces: face %s: bad color %q", meshgen.Faces[i], colors[i])
		}
		out[i] = CubeFace{Text: labels[i], Color: c}
	}
	return out, nil
}
