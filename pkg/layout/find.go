package layout

// Location is the result of [FindNode]: the node together with its immediate
// parent splitter and that parent's own parent. Tree surgery needs the parent
// to rewrite its child pointer, and the reclamation pass additionally needs
// the grandparent when the parent itself is removed.
type Location struct {
	Node Node

	// Parent is nil when Node is the root.
	Parent *Splitter

	// Grandparent is nil when Parent is nil or is itself the root.
	Grandparent *Splitter
}

// FindForm searches the tree depth-first, primary subtree before secondary,
// for the form with the given id. It returns the form and its immediate
// owning panel. A form id should appear at most once in a well-formed tree;
// if duplicates exist due to caller error, the first in traversal order wins
// (and [Validate] reports the violation).
func FindForm(root Node, formID string) (*Form, *Panel, bool) {
	switch n := root.(type) {
	case *Panel:
		for _, f := range n.Forms {
			if f.ID == formID {
				return f, n, true
			}
		}
	case *Splitter:
		if f, p, ok := FindForm(n.Primary, formID); ok {
			return f, p, true
		}
		return FindForm(n.Secondary, formID)
	}
	return nil, nil, false
}

// FindNode searches the tree depth-first, primary subtree before secondary,
// for the node with the given id and returns its [Location].
func FindNode(root Node, nodeID string) (Location, bool) {
	return findNode(root, nil, nil, nodeID)
}

func findNode(n Node, parent, grandparent *Splitter, nodeID string) (Location, bool) {
	if n == nil {
		return Location{}, false
	}
	if n.ID() == nodeID {
		return Location{Node: n, Parent: parent, Grandparent: grandparent}, true
	}
	split, ok := n.(*Splitter)
	if !ok {
		return Location{}, false
	}
	if loc, ok := findNode(split.Primary, split, parent, nodeID); ok {
		return loc, true
	}
	return findNode(split.Secondary, split, parent, nodeID)
}

// Walk visits every node in the tree depth-first, primary subtree before
// secondary, calling fn for each. The parent is visited before its children.
func Walk(root Node, fn func(Node)) {
	if root == nil {
		return
	}
	fn(root)
	if split, ok := root.(*Splitter); ok {
		Walk(split.Primary, fn)
		Walk(split.Secondary, fn)
	}
}

// Panels returns every panel in the tree in traversal order.
func Panels(root Node) []*Panel {
	var panels []*Panel
	Walk(root, func(n Node) {
		if p, ok := n.(*Panel); ok {
			panels = append(panels, p)
		}
	})
	return panels
}

// Forms returns every form in the tree, in panel traversal order and stack
// order within each panel.
func Forms(root Node) []*Form {
	var forms []*Form
	for _, p := range Panels(root) {
		forms = append(forms, p.Forms...)
	}
	return forms
}
