package ui

import (
	"image/color"
	"os"
)

// TextMeasurer reports the size of text drawn at fontSize. The host engine supplies it.
type TextMeasurer interface {
	MeasureText(text string, fontSize float32) (width, height float32)
}

// DrawOp is one laid-out node ready to be drawn: background and border fill Bounds,
// and Text (if any) is drawn with its top-left corner at TextPos.
type DrawOp struct {
	Node       *Node
	Bounds     Rect
	Background color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Text       string
	TextPos    [2]float32
	TextColor  color.RGBA
	FontSize   float32
}

// Engine holds the current stylesheet and a root node, and lays the tree out into draw ops.
// Draw order is tree order (parents before children, siblings in order).
// Resolved styles are cached and only recomputed when the sheet or tree change.
type Engine struct {
	sheet  *Stylesheet
	root   *Node
	styles map[*Node]ComputedStyle
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Its rules are appended after the
// current stylesheet so they override it.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(e.sheet.Merge(sheet))
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. generated or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.styles = nil
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// SetRoot replaces the node tree.
func (e *Engine) SetRoot(root *Node) {
	e.root = root
	e.styles = nil
}

// Root returns the root node (may be nil).
func (e *Engine) Root() *Node {
	return e.root
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		if sel == "" {
			continue
		}
		matches := false
		switch sel[0] {
		case '.':
			matches = n.Class == sel[1:]
		case '#':
			matches = n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Style returns the computed style for n, resolving the whole tree on first use.
func (e *Engine) Style(n *Node) ComputedStyle {
	if e.styles == nil {
		e.styles = make(map[*Node]ComputedStyle)
		if e.root != nil {
			e.root.Walk(func(c *Node) {
				e.styles[c] = ResolveProps(e.resolveProps(c))
			})
		}
	}
	if s, ok := e.styles[n]; ok {
		return s
	}
	return ResolveProps(e.resolveProps(n))
}

// Layout places the tree inside a width x height target. The root fills the target;
// every node splits its area evenly between its children along its direction, each
// child taking the full cross size. Text is centred when the node's style asks for it,
// otherwise offset by padding from the top-left corner.
func (e *Engine) Layout(width, height float32, m TextMeasurer) []DrawOp {
	if e.root == nil {
		return nil
	}
	var ops []DrawOp
	e.layoutNode(e.root, Rect{Width: width, Height: height}, m, &ops)
	return ops
}

func (e *Engine) layoutNode(n *Node, r Rect, m TextMeasurer, ops *[]DrawOp) {
	style := e.Style(n)
	op := DrawOp{
		Node:       n,
		Bounds:     r,
		Background: style.Background,
		Border:     style.Border,
		HasBorder:  style.HasBorder,
		Text:       n.Text,
		TextColor:  style.Color,
		FontSize:   style.FontSize,
	}
	if n.Text != "" {
		op.TextPos = textPosition(n.Text, r, style, m)
	}
	*ops = append(*ops, op)

	if len(n.Children) == 0 {
		return
	}
	count := float32(len(n.Children))
	for i, c := range n.Children {
		cr := r
		if style.Direction == Column {
			cr.Height = r.Height / count
			cr.Y = r.Y + float32(i)*cr.Height
		} else {
			cr.Width = r.Width / count
			cr.X = r.X + float32(i)*cr.Width
		}
		e.layoutNode(c, cr, m, ops)
	}
}

func textPosition(text string, r Rect, style ComputedStyle, m TextMeasurer) [2]float32 {
	if !style.Center || m == nil {
		return [2]float32{r.X + style.Padding, r.Y + style.Padding}
	}
	w, h := m.MeasureText(text, style.FontSize)
	return [2]float32{r.X + (r.Width-w)/2, r.Y + (r.Height-h)/2}
}
