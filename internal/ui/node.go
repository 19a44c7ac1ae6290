package ui

// Rect is an axis-aligned rectangle in target pixels, origin at the top-left.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// optional text, and child nodes laid out inside it.
type Node struct {
	Type     string // "panel", "label", etc.
	Class    string // e.g. "face" for .face
	ID       string // e.g. "top" for #top
	Text     string
	Children []*Node
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Add appends children and returns n so trees can be built inline.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk calls fn for n and every descendant, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
