package layout

// Clone returns a fully independent deep copy of the subtree rooted at n: no
// node or form is shared with the original, so mutating either side cannot
// affect the other. Ids, order, and all attributes are preserved exactly.
// Form content is an opaque reference and is copied as such, not duplicated.
//
// Clone performs no structural repair; it is not a substitute for the
// reclamation pass.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Panel:
		forms := make([]*Form, len(n.Forms))
		for i, f := range n.Forms {
			c := *f
			forms[i] = &c
		}
		return &Panel{id: n.id, Forms: forms}
	case *Splitter:
		return &Splitter{
			id:        n.id,
			Primary:   Clone(n.Primary),
			Secondary: Clone(n.Secondary),
			Direction: n.Direction,
			Size:      n.Size,
		}
	}
	return nil
}
