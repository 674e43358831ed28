// Package figma adapts Figma file references and the Figma REST API into
// the layout tree the generation pipeline consumes.
package figma

import "encoding/json"

// NodeType discriminates layout tree nodes. Containers, text nodes and
// component references are the kinds the generator cares about; anything
// else passes through untouched inside the raw subtree.
type NodeType string

const (
	NodeTypeFrame     NodeType = "FRAME"
	NodeTypeGroup     NodeType = "GROUP"
	NodeTypeComponent NodeType = "COMPONENT"
	NodeTypeText      NodeType = "TEXT"
	NodeTypeInstance  NodeType = "INSTANCE"
)

// Rect is a node's absolute bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TypeStyle carries the text styling Figma reports on TEXT nodes.
type TypeStyle struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight float64 `json:"fontWeight,omitempty"`
}

// Node is one element of the layout tree. Ownership is strictly
// hierarchical: a parent owns its children and the source format admits
// no cycles.
type Node struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type NodeType `json:"type"`

	Visible  *bool   `json:"visible,omitempty"`
	Locked   bool    `json:"locked,omitempty"`
	Bounds   *Rect   `json:"absoluteBoundingBox,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`

	// Auto-layout descriptor, present on containers.
	LayoutMode         string  `json:"layoutMode,omitempty"`
	PrimaryAxisAlign   string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlign   string  `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft        float64 `json:"paddingLeft,omitempty"`
	PaddingRight       float64 `json:"paddingRight,omitempty"`
	PaddingTop         float64 `json:"paddingTop,omitempty"`
	PaddingBottom      float64 `json:"paddingBottom,omitempty"`
	ItemSpacing        float64 `json:"itemSpacing,omitempty"`
	LayoutWrap         string  `json:"layoutWrap,omitempty"`
	CornerRadius       float64 `json:"cornerRadius,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Text payload.
	Characters          string     `json:"characters,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
	TextAlignHorizontal string     `json:"textAlignHorizontal,omitempty"`

	// Component-reference payload.
	ComponentID         string                     `json:"componentId,omitempty"`
	ComponentProperties map[string]json.RawMessage `json:"componentProperties,omitempty"`
}

// IsVisible treats an absent flag as visible, matching the source format.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// IsContainer reports whether the node can own children.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case NodeTypeFrame, NodeTypeGroup, NodeTypeComponent:
		return true
	}
	return false
}

// Walk visits the subtree depth-first, parent before children, stopping
// a branch when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
