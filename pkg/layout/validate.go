package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNodeID is returned by [Validate] when two nodes share an
	// id. Node ids must be unique across the whole tree.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDuplicateForm is returned by [Validate] when a form id appears in
	// more than one panel, or twice in the same panel.
	ErrDuplicateForm = errors.New("form owned by more than one panel")

	// ErrNilChild is returned by [Validate] when a splitter has a nil child.
	ErrNilChild = errors.New("splitter has nil child")

	// ErrEmptyPanel is returned by [Validate] when a panel reachable from
	// the root is empty and is not itself the sole root node.
	ErrEmptyPanel = errors.New("empty panel below root")
)

// Validate checks the structural invariants of the tree rooted at root and
// returns nil if they all hold:
//
//  1. Every node id is unique across the tree.
//  2. A splitter's two children exist and are never the same node.
//  3. No reachable panel is empty unless it is the sole root node.
//  4. A form id appears in exactly one panel's form list.
//
// Use this after deserializing a tree, or in tests after a sequence of
// mutations. Trees produced by Tree operations always validate.
func Validate(root Node) error {
	if root == nil {
		return fmt.Errorf("nil root: %w", ErrNilChild)
	}
	seen := make(map[string]struct{})
	forms := make(map[string]string) // form id -> owning panel id
	return validate(root, root, seen, forms)
}

func validate(n, root Node, seen map[string]struct{}, forms map[string]string) error {
	if _, dup := seen[n.ID()]; dup {
		return fmt.Errorf("node %q: %w", n.ID(), ErrDuplicateNodeID)
	}
	seen[n.ID()] = struct{}{}

	switch n := n.(type) {
	case *Panel:
		if n.Empty() && n != root {
			return fmt.Errorf("panel %q: %w", n.ID(), ErrEmptyPanel)
		}
		for _, f := range n.Forms {
			if owner, dup := forms[f.ID]; dup {
				return fmt.Errorf("form %q in panels %q and %q: %w", f.ID, owner, n.ID(), ErrDuplicateForm)
			}
			forms[f.ID] = n.ID()
		}
	case *Splitter:
		if n.Primary == nil || n.Secondary == nil {
			return fmt.Errorf("splitter %q: %w", n.ID(), ErrNilChild)
		}
		if n.Primary.ID() == n.Secondary.ID() {
			return fmt.Errorf("splitter %q: children share id %q: %w", n.ID(), n.Primary.ID(), ErrInvalidTopology)
		}
		if err := validate(n.Primary, root, seen, forms); err != nil {
			return err
		}
		if err := validate(n.Secondary, root, seen, forms); err != nil {
			return err
		}
	}
	return nil
}
