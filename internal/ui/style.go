package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel" or "#menu"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Merge returns a stylesheet with the rules of s followed by those of other.
func (s *Stylesheet) Merge(other *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if other != nil {
		out.Rules = append(out.Rules, other.Rules...)
	}
	return out
}

// Direction is the main axis along which a node lays out its children.
type Direction int

const (
	Row Direction = iota
	Column
)

// ComputedStyle holds resolved values used for drawing.
// Padding is the offset (in pixels) from the node's left/top when text is not centred.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	FontSize   float32
	Padding    float32
	Center     bool // centre text on both axes (justify-content/align-items: center)
	Direction  Direction
}

// DefaultFontSize is used when no font-size is set.
const DefaultFontSize = 20

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{},
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:     color.RGBA{A: 255},
		FontSize:   DefaultFontSize,
		Padding:    4,
		Direction:  Row,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. "transparent" is accepted too.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.RGBA{}, true
	}
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{A: 255}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return color.RGBA{A: 255}, false
		}
	}
	nib := func(i int) uint8 { v, _ := hexByte(hex[i]); return v }
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6, 8:
		c := color.RGBA{
			R: nib(0)<<4 + nib(1),
			G: nib(2)<<4 + nib(3),
			B: nib(4)<<4 + nib(5),
			A: 255,
		}
		if len(hex) == 8 {
			c.A = nib(6)<<4 + nib(7)
		}
		return c, true
	}
	return color.RGBA{A: 255}, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HexColor formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func HexColor(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#'}
	comps := []uint8{c.R, c.G, c.B}
	if c.A != 255 {
		comps = append(comps, c.A)
	}
	for _, v := range comps {
		b = append(b, digits[v>>4], digits[v&0x0f])
	}
	return string(b)
}

// ParsePx parses a number, with optional "px" suffix. Unitless is treated as pixels.
func ParsePx(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "justify-content", "align-items", "text-align":
			if v == "center" {
				out.Center = true
			}
		case "flex-direction":
			if v == "column" {
				out.Direction = Column
			} else {
				out.Direction = Row
			}
		}
	}
	return out
}
