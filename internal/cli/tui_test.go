package cli

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilekit/docktree/pkg/layout"
)

// newTestEditor builds an editor over a two-form layout backed by a temp file.
func newTestEditor(t *testing.T) editorModel {
	t.Helper()

	tree := layout.NewTree()
	rootID := tree.Root().ID()
	for _, title := range []string{"Chart", "Inspector"} {
		f := tree.NewForm(title, nil, "")
		if err := tree.Stack(f.ID, rootID); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := saveTree(tree, path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return newEditorModel(tree, path)
}

func press(t *testing.T, m editorModel, keys ...string) editorModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(editorModel)
		if !ok {
			t.Fatalf("Update returned %T, want editorModel", next)
		}
	}
	return m
}

func TestEditorTabCyclesForms(t *testing.T) {
	m := newTestEditor(t)

	if got := m.selectedForm().ID; got != "form-2" {
		t.Fatalf("initial selection = %s, want form-2", got)
	}
	m = press(t, m, "tab")
	if got := m.selectedForm().ID; got != "form-3" {
		t.Errorf("after tab, selection = %s, want form-3", got)
	}
	m = press(t, m, "tab")
	if got := m.selectedForm().ID; got != "form-2" {
		t.Errorf("tab should wrap, selection = %s, want form-2", got)
	}
}

func TestEditorSplitGesture(t *testing.T) {
	m := newTestEditor(t)

	m = press(t, m, "s", "v", "enter")

	split, ok := m.tree.Root().(*layout.Splitter)
	if !ok {
		t.Fatalf("root = %T, want *layout.Splitter after split gesture", m.tree.Root())
	}
	if split.Direction != layout.Vertical {
		t.Errorf("direction = %v, want vertical", split.Direction)
	}
	if m.mode != modeBrowse {
		t.Errorf("mode = %v, want browse after drop", m.mode)
	}
}

func TestEditorStackGestureCollapses(t *testing.T) {
	m := newTestEditor(t)

	// Split form-2 off, then move the remaining form into the new panel
	// so the emptied original collapses away.
	m = press(t, m, "s", "enter")
	if _, ok := m.tree.Root().(*layout.Splitter); !ok {
		t.Fatalf("root = %T, want splitter after setup", m.tree.Root())
	}

	m = press(t, m, "m", "right", "enter")
	panel, ok := m.tree.Root().(*layout.Panel)
	if !ok {
		t.Fatalf("root = %T, want *layout.Panel after collapse", m.tree.Root())
	}
	if len(panel.Forms) != 2 {
		t.Errorf("panel has %d forms, want 2", len(panel.Forms))
	}
}

func TestEditorEscCancels(t *testing.T) {
	m := newTestEditor(t)

	m = press(t, m, "s", "esc", "enter")
	if _, ok := m.tree.Root().(*layout.Panel); !ok {
		t.Errorf("cancelled gesture should not mutate the tree, root = %T", m.tree.Root())
	}
}

func TestEditorAddForm(t *testing.T) {
	m := newTestEditor(t)

	m = press(t, m, "a")
	if got := len(layout.Forms(m.tree.Root())); got != 3 {
		t.Errorf("layout has %d forms after add, want 3", got)
	}
	if err := layout.Validate(m.tree.Root()); err != nil {
		t.Errorf("layout invalid after add: %v", err)
	}
}

func TestEditorViewRenders(t *testing.T) {
	m := newTestEditor(t)
	m.width, m.height = 60, 20

	out := m.View()
	if out == "" {
		t.Fatal("View() returned empty output")
	}
}
