package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrFormNotFound is returned by [Tree.Split] and [Tree.Stack] when the
	// given form id is not present anywhere in the tree.
	ErrFormNotFound = errors.New("form not found")

	// ErrDestinationNotFound is returned by [Tree.Split] and [Tree.Stack]
	// when the destination id does not resolve to a panel in the tree.
	ErrDestinationNotFound = errors.New("destination panel not found")

	// ErrInvalidTopology is returned by [Tree.NewSplitter] and
	// [NewSplitterWithID] when a splitter is asked to hold the same node as
	// both children, or when a child is nil.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrInvalidDirection is returned by [ParseDirection] for strings that
	// name neither orientation.
	ErrInvalidDirection = errors.New("invalid direction")
)

// Direction is the orientation of a splitter: the axis along which its two
// children divide the available space.
type Direction int

const (
	// Horizontal places the two children side by side.
	Horizontal Direction = iota
	// Vertical places the two children one above the other.
	Vertical
)

// String returns "horizontal" or "vertical".
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection converts a direction name to a Direction.
// Accepts "horizontal" and "vertical". Returns ErrInvalidDirection otherwise.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

// DefaultSplitSize is the proportion assigned to a splitter created by
// [Tree.Split]: an even 50/50 division.
const DefaultSplitSize = 50.0

// Node is a node of the layout tree: either a *Panel or a *Splitter.
// The set of implementations is closed.
type Node interface {
	// ID returns the node's unique identifier. Ids are unique across the
	// whole tree for the lifetime of the owning Tree.
	ID() string

	node()
}

// Form is a single content view a user can place into any panel. Content is
// an opaque UI payload the engine never interprets; Icon is an optional icon
// reference. Exactly one panel owns a given form at any time.
type Form struct {
	ID      string
	Title   string
	Content any
	Icon    string
}

// Panel is a leaf of the layout tree holding an ordered collection of forms.
// The order is meaningful: it determines tab/stack order, with new forms
// appended last.
type Panel struct {
	id string

	// Forms is owned by the panel. Mutate it only through Tree operations.
	Forms []*Form
}

// ID returns the panel's unique identifier.
func (p *Panel) ID() string { return p.id }

// Empty reports whether the panel holds no forms.
func (p *Panel) Empty() bool { return len(p.Forms) == 0 }

func (p *Panel) node() {}

// removeForm removes the form with the given id, preserving the order of the
// remaining forms, and returns it. Returns nil if the id is not present.
func (p *Panel) removeForm(formID string) *Form {
	for i, f := range p.Forms {
		if f.ID == formID {
			p.Forms = append(p.Forms[:i], p.Forms[i+1:]...)
			return f
		}
	}
	return nil
}

// Splitter is an interior node dividing space between two children along a
// direction. Size is the share of space given to Primary, as a 0-100
// proportion; renderers must treat it as relative, not absolute geometry.
type Splitter struct {
	id string

	// Primary and Secondary are exclusively owned by the splitter and are
	// never the same node.
	Primary   Node
	Secondary Node

	Direction Direction
	Size      float64
}

// ID returns the splitter's unique identifier.
func (s *Splitter) ID() string { return s.id }

func (s *Splitter) node() {}

// replaceChild rewrites whichever child slot holds old (matched by id) to
// point at with. It is a no-op if neither slot matches.
func (s *Splitter) replaceChild(old, with Node) {
	switch {
	case s.Primary.ID() == old.ID():
		s.Primary = with
	case s.Secondary.ID() == old.ID():
		s.Secondary = with
	}
}

// NewPanelWithID constructs a panel with a caller-supplied id. It is intended
// for deserialization; use [Tree.NewPanel] for normal construction so ids
// stay collision-free. [NewTreeFrom] re-seeds the id counter past adopted ids.
func NewPanelWithID(id string, forms ...*Form) *Panel {
	return &Panel{id: id, Forms: forms}
}

// NewSplitterWithID constructs a splitter with a caller-supplied id. It is
// intended for deserialization; use [Tree.NewSplitter] for normal
// construction. Returns ErrInvalidTopology if either child is nil or both
// children share an id.
func NewSplitterWithID(id string, primary, secondary Node, dir Direction, size float64) (*Splitter, error) {
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("splitter %q: nil child: %w", id, ErrInvalidTopology)
	}
	if primary.ID() == secondary.ID() {
		return nil, fmt.Errorf("splitter %q: children share id %q: %w", id, primary.ID(), ErrInvalidTopology)
	}
	return &Splitter{id: id, Primary: primary, Secondary: secondary, Direction: dir, Size: size}, nil
}
