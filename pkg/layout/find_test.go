package layout

import "testing"

// fixtureTree builds splitter-9(splitter-7(panel-1, panel-3), panel-5) with
// one form per panel.
func fixtureTree(t *testing.T) *Tree {
	t.Helper()
	a := NewPanelWithID("panel-1", &Form{ID: "form-2", Title: "a"})
	b := NewPanelWithID("panel-3", &Form{ID: "form-4", Title: "b"})
	c := NewPanelWithID("panel-5", &Form{ID: "form-6", Title: "c"})
	inner, err := NewSplitterWithID("splitter-7", a, b, Vertical, 50)
	if err != nil {
		t.Fatalf("inner splitter: %v", err)
	}
	outer, err := NewSplitterWithID("splitter-9", inner, c, Horizontal, 50)
	if err != nil {
		t.Fatalf("outer splitter: %v", err)
	}
	tr, err := NewTreeFrom(outer)
	if err != nil {
		t.Fatalf("NewTreeFrom: %v", err)
	}
	return tr
}

func TestFindFormReturnsOwningPanel(t *testing.T) {
	tr := fixtureTree(t)
	f, p, ok := FindForm(tr.Root(), "form-4")
	if !ok {
		t.Fatal("form-4 not found")
	}
	if f.Title != "b" {
		t.Errorf("title = %q, want b", f.Title)
	}
	if p.ID() != "panel-3" {
		t.Errorf("owning panel = %q, want panel-3", p.ID())
	}
}

func TestFindFormMissing(t *testing.T) {
	tr := fixtureTree(t)
	if _, _, ok := FindForm(tr.Root(), "form-99"); ok {
		t.Error("found a form that does not exist")
	}
}

func TestFindFormPrimaryFirst(t *testing.T) {
	// Duplicate form ids are a caller error; traversal order must still be
	// deterministic, primary subtree first.
	dup1 := NewPanelWithID("panel-1", &Form{ID: "form-0", Title: "first"})
	dup2 := NewPanelWithID("panel-2", &Form{ID: "form-0", Title: "second"})
	split, _ := NewSplitterWithID("splitter-3", dup1, dup2, Horizontal, 50)

	if err := Validate(split); err == nil {
		t.Error("Validate accepted a duplicated form id")
	}
	f, p, ok := FindForm(split, "form-0")
	if !ok {
		t.Fatal("form-0 not found")
	}
	if f.Title != "first" || p.ID() != "panel-1" {
		t.Errorf("got %q in %q, want the primary-subtree match", f.Title, p.ID())
	}
}

func TestFindNodeParentAndGrandparent(t *testing.T) {
	tr := fixtureTree(t)

	tests := []struct {
		id          string
		parent      string
		grandparent string
	}{
		{"splitter-9", "", ""},
		{"splitter-7", "splitter-9", ""},
		{"panel-5", "splitter-9", ""},
		{"panel-1", "splitter-7", "splitter-9"},
		{"panel-3", "splitter-7", "splitter-9"},
	}
	for _, tt := range tests {
		loc, ok := FindNode(tr.Root(), tt.id)
		if !ok {
			t.Errorf("%s not found", tt.id)
			continue
		}
		if loc.Node.ID() != tt.id {
			t.Errorf("%s: node = %q", tt.id, loc.Node.ID())
		}
		gotParent := ""
		if loc.Parent != nil {
			gotParent = loc.Parent.ID()
		}
		if gotParent != tt.parent {
			t.Errorf("%s: parent = %q, want %q", tt.id, gotParent, tt.parent)
		}
		gotGrand := ""
		if loc.Grandparent != nil {
			gotGrand = loc.Grandparent.ID()
		}
		if gotGrand != tt.grandparent {
			t.Errorf("%s: grandparent = %q, want %q", tt.id, gotGrand, tt.grandparent)
		}
	}
}

func TestFindNodeMissing(t *testing.T) {
	tr := fixtureTree(t)
	if _, ok := FindNode(tr.Root(), "panel-99"); ok {
		t.Error("found a node that does not exist")
	}
}

func TestWalkVisitsAllNodesPrimaryFirst(t *testing.T) {
	tr := fixtureTree(t)
	var order []string
	Walk(tr.Root(), func(n Node) { order = append(order, n.ID()) })

	want := []string{"splitter-9", "splitter-7", "panel-1", "panel-3", "panel-5"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestPanelsAndForms(t *testing.T) {
	tr := fixtureTree(t)
	if got := len(Panels(tr.Root())); got != 3 {
		t.Errorf("panels = %d, want 3", got)
	}
	forms := Forms(tr.Root())
	if len(forms) != 3 {
		t.Fatalf("forms = %d, want 3", len(forms))
	}
	if forms[0].ID != "form-2" || forms[2].ID != "form-6" {
		t.Errorf("form order = [%s %s %s], want traversal order", forms[0].ID, forms[1].ID, forms[2].ID)
	}
}
