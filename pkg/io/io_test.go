package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tilekit/docktree/pkg/layout"
)

func buildLayout(t *testing.T) *layout.Tree {
	t.Helper()
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)
	editor := tr.NewForm("Editor", "buffer:1", "pencil")
	console := tr.NewForm("Console", nil, "")
	if err := tr.Stack(editor.ID, root.ID()); err != nil {
		t.Fatalf("stack: %v", err)
	}
	if err := tr.Stack(console.ID, root.ID()); err != nil {
		t.Fatalf("stack: %v", err)
	}
	if err := tr.Split(console.ID, root.ID(), layout.Vertical); err != nil {
		t.Fatalf("split: %v", err)
	}
	return tr
}

func TestRoundTrip(t *testing.T) {
	tr := buildLayout(t)

	var buf bytes.Buffer
	if err := WriteJSON(tr.Root(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	want := tr.Root().(*layout.Splitter)
	split, ok := got.(*layout.Splitter)
	if !ok {
		t.Fatalf("root is %T, want *Splitter", got)
	}
	if split.ID() != want.ID() || split.Direction != want.Direction || split.Size != want.Size {
		t.Errorf("splitter = (%s, %s, %v), want (%s, %s, %v)",
			split.ID(), split.Direction, split.Size, want.ID(), want.Direction, want.Size)
	}

	primary, ok := split.Primary.(*layout.Panel)
	if !ok {
		t.Fatalf("primary is %T, want *Panel", split.Primary)
	}
	if len(primary.Forms) != 1 {
		t.Fatalf("primary forms = %d, want 1", len(primary.Forms))
	}
	f := primary.Forms[0]
	if f.Title != "Editor" || f.Icon != "pencil" || f.Content != "buffer:1" {
		t.Errorf("form = %+v, want Editor/pencil/buffer:1", f)
	}

	// The imported tree can seed a new store.
	if _, err := layout.NewTreeFrom(got); err != nil {
		t.Errorf("NewTreeFrom(imported): %v", err)
	}
}

func TestReadJSONValidates(t *testing.T) {
	const doc = `{
	  "id": "splitter-3", "kind": "splitter",
	  "primary": {"id": "panel-1", "kind": "panel"},
	  "secondary": {"id": "panel-2", "kind": "panel", "forms": [{"id": "form-4", "title": "a"}]}
	}`
	_, err := ReadJSON(strings.NewReader(doc))
	if !errors.Is(err, layout.ErrEmptyPanel) {
		t.Errorf("err = %v, want ErrEmptyPanel", err)
	}
}

func TestReadJSONUnknownKind(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"id": "x-1", "kind": "frame"}`))
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("err = %v, want unknown kind", err)
	}
}

func TestReadJSONMissingChild(t *testing.T) {
	const doc = `{"id": "splitter-1", "kind": "splitter", "primary": {"id": "panel-2", "kind": "panel"}}`
	if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
		t.Error("splitter with a missing child accepted")
	}
}

func TestReadJSONBadDirection(t *testing.T) {
	const doc = `{
	  "id": "splitter-3", "kind": "splitter", "direction": "diagonal",
	  "primary": {"id": "panel-1", "kind": "panel", "forms": [{"id": "form-4", "title": "a"}]},
	  "secondary": {"id": "panel-2", "kind": "panel", "forms": [{"id": "form-5", "title": "b"}]}
	}`
	_, err := ReadJSON(strings.NewReader(doc))
	if !errors.Is(err, layout.ErrInvalidDirection) {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}
}

func TestEmptyRootPanelRoundTrips(t *testing.T) {
	tr := layout.NewTree()
	var buf bytes.Buffer
	if err := WriteJSON(tr.Root(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	p, ok := got.(*layout.Panel)
	if !ok || !p.Empty() {
		t.Errorf("got %T, want empty root *Panel", got)
	}
}
