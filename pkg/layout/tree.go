package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Id prefixes. A single monotonically increasing counter is shared across all
// three, scoped to one Tree, so ids are unique per tree regardless of kind.
const (
	formPrefix     = "form"
	panelPrefix    = "panel"
	splitterPrefix = "splitter"
)

// Tree owns a layout tree and exposes its mutation API. All structural
// changes go through Tree methods; external callers receive read-only views
// (or clones) for inspection.
//
// The zero value is not usable - use [NewTree] or [NewTreeFrom].
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	root      Node
	counter   int
	notify    []func(Node)
	splitSize float64 // 0 means DefaultSplitSize

	// forms tracks every form the store has created, placed or not. A form
	// enters the tree the first time it is stacked; until then it exists
	// only here.
	forms map[string]*Form
}

// NewTree creates a tree whose root is a single empty panel, the state of a
// freshly initialized layout.
func NewTree() *Tree {
	t := &Tree{forms: make(map[string]*Form)}
	t.root = t.NewPanel()
	return t
}

// NewTreeFrom adopts an existing tree, typically one produced by
// deserialization. The tree is validated against the structural invariants
// and the id counter is re-seeded past the highest numeric suffix found in
// the adopted ids, so nodes created later cannot collide.
func NewTreeFrom(root Node) (*Tree, error) {
	if err := Validate(root); err != nil {
		return nil, err
	}
	t := &Tree{root: root, forms: make(map[string]*Form)}
	Walk(root, func(n Node) {
		t.bumpCounter(n.ID())
		if p, ok := n.(*Panel); ok {
			for _, f := range p.Forms {
				t.bumpCounter(f.ID)
				t.forms[f.ID] = f
			}
		}
	})
	return t, nil
}

// bumpCounter advances the id counter past the numeric suffix of id, if it
// has one. Ids without a parseable suffix are ignored.
func (t *Tree) bumpCounter(id string) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return
	}
	if n > t.counter {
		t.counter = n
	}
}

func (t *Tree) newID(prefix string) string {
	t.counter++
	return fmt.Sprintf("%s-%d", prefix, t.counter)
}

// Root returns the current root node. The returned tree is a read view:
// callers must not mutate it. Use [Tree.Snapshot] for an independent copy.
func (t *Tree) Root() Node { return t.root }

// Snapshot returns a deep copy of the current tree with no shared ownership,
// safe to hold across subsequent mutations.
func (t *Tree) Snapshot() Node { return Clone(t.root) }

// Notify registers fn to be called after every successful mutation with a
// deep-cloned snapshot of the new root. Callbacks run synchronously, in
// registration order, on the mutating goroutine.
func (t *Tree) Notify(fn func(root Node)) {
	t.notify = append(t.notify, fn)
}

func (t *Tree) publish() {
	for _, fn := range t.notify {
		fn(Clone(t.root))
	}
}

// SetSplitSize sets the proportion (percent of the region, 0-100 exclusive)
// the surviving panel keeps when [Tree.Split] creates a splitter. Values
// outside the range are ignored; the default is [DefaultSplitSize].
func (t *Tree) SetSplitSize(size float64) {
	if size > 0 && size < 100 {
		t.splitSize = size
	}
}

// NewForm allocates a form with a fresh id. Title is unconstrained; content
// is an opaque UI payload and icon an optional icon reference, either may be
// zero. The form belongs to no panel until inserted via [Tree.Stack] or
// [Tree.Split].
func (t *Tree) NewForm(title string, content any, icon string) *Form {
	f := &Form{ID: t.newID(formPrefix), Title: title, Content: content, Icon: icon}
	t.forms[f.ID] = f
	return f
}

// NewPanel allocates a panel with a fresh id holding the given forms in
// order. The sequence may be empty.
func (t *Tree) NewPanel(forms ...*Form) *Panel {
	return &Panel{id: t.newID(panelPrefix), Forms: forms}
}

// NewSplitter allocates a splitter with a fresh id over the two children.
// Returns ErrInvalidTopology if either child is nil or both children are the
// same node.
func (t *Tree) NewSplitter(primary, secondary Node, dir Direction, size float64) (*Splitter, error) {
	return NewSplitterWithID(t.newID(splitterPrefix), primary, secondary, dir, size)
}

// Split moves the form with id formID out of its current panel and into a
// brand-new panel grafted next to the destination panel: the destination's
// position in the tree is taken over by a new splitter whose primary child is
// the destination and whose secondary child is the new single-form panel,
// split along dir with an even proportion (or the one set by
// [Tree.SetSplitSize]).
//
// The form must already live in some panel; a freshly created form enters
// the tree via [Tree.Stack] first.
//
// Splitting a form against the panel that already holds it is a defined no-op
// when that panel holds only this one form; with more forms present the split
// proceeds and carves the form out into its own region.
//
// Returns ErrFormNotFound or ErrDestinationNotFound if an id does not
// resolve. The operation is atomic: on any error the tree is unchanged.
func (t *Tree) Split(formID, destinationID string, dir Direction) error {
	form, source, ok := FindForm(t.root, formID)
	if !ok {
		return fmt.Errorf("form %q: %w", formID, ErrFormNotFound)
	}
	dest, loc, ok := t.findPanel(destinationID)
	if !ok {
		return fmt.Errorf("destination %q: %w", destinationID, ErrDestinationNotFound)
	}
	if source.ID() == dest.ID() && len(source.Forms) == 1 {
		return nil
	}

	size := t.splitSize
	if size == 0 {
		size = DefaultSplitSize
	}
	source.removeForm(formID)
	split, err := t.NewSplitter(dest, t.NewPanel(form), dir, size)
	if err != nil {
		return err
	}
	if loc.Parent == nil {
		t.root = split
	} else {
		loc.Parent.replaceChild(dest, split)
	}

	t.reclaim(t.root)
	t.publish()
	return nil
}

// Stack moves the form with id formID out of its current panel and appends
// it to the end of the destination panel's form list, preserving the existing
// order. Stacking a form onto its own panel degenerates to a reorder-to-end,
// which is accepted behavior, not an error. A form created by [Tree.NewForm]
// but not yet placed anywhere is simply appended; this is how forms first
// enter the tree.
//
// Returns ErrFormNotFound or ErrDestinationNotFound if an id does not
// resolve. The operation is atomic: on any error the tree is unchanged.
func (t *Tree) Stack(formID, destinationID string) error {
	form, source, ok := FindForm(t.root, formID)
	if !ok {
		if form, ok = t.forms[formID]; !ok {
			return fmt.Errorf("form %q: %w", formID, ErrFormNotFound)
		}
	}
	dest, _, ok := t.findPanel(destinationID)
	if !ok {
		return fmt.Errorf("destination %q: %w", destinationID, ErrDestinationNotFound)
	}

	if source != nil {
		source.removeForm(formID)
	}
	dest.Forms = append(dest.Forms, form)

	t.reclaim(t.root)
	t.publish()
	return nil
}

// findPanel resolves id to a panel together with its location. Splitter ids
// do not resolve: split and stack destinations are always panels.
func (t *Tree) findPanel(id string) (*Panel, Location, bool) {
	loc, ok := FindNode(t.root, id)
	if !ok {
		return nil, Location{}, false
	}
	p, ok := loc.Node.(*Panel)
	if !ok {
		return nil, Location{}, false
	}
	return p, loc, true
}

// reclaim restores the no-empty-panel invariant after a form removal may
// have emptied a panel. It walks the subtree post-order: child splitters are
// reclaimed first, then any splitter left holding an empty panel is replaced
// in its parent by the surviving sibling (or the sibling becomes the new
// root). The primary child is checked before the secondary, so when both
// children are empty simultaneously the primary check fires and the
// secondary survives. The pass is idempotent.
func (t *Tree) reclaim(n Node) {
	split, ok := n.(*Splitter)
	if !ok {
		return
	}
	if _, ok := split.Primary.(*Splitter); ok {
		t.reclaim(split.Primary)
	}
	if _, ok := split.Secondary.(*Splitter); ok {
		t.reclaim(split.Secondary)
	}

	if p, ok := split.Primary.(*Panel); ok && p.Empty() {
		t.replaceNode(split, split.Secondary)
		return
	}
	if p, ok := split.Secondary.(*Panel); ok && p.Empty() {
		t.replaceNode(split, split.Primary)
	}
}

// replaceNode rewrites the pointer from old's parent to point at with,
// skipping old entirely. When old is the root, with becomes the new root.
func (t *Tree) replaceNode(old *Splitter, with Node) {
	loc, ok := FindNode(t.root, old.ID())
	if !ok {
		return
	}
	if loc.Parent == nil {
		t.root = with
		return
	}
	loc.Parent.replaceChild(old, with)
}
