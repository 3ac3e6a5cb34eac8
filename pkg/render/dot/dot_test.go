package dot

import (
	"strings"
	"testing"

	"github.com/tilekit/docktree/pkg/layout"
)

func testTree(t *testing.T) layout.Node {
	t.Helper()
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)
	a := tr.NewForm("Editor", nil, "pencil")
	b := tr.NewForm("Console", nil, "")
	if err := tr.Stack(a.ID, root.ID()); err != nil {
		t.Fatalf("stack: %v", err)
	}
	if err := tr.Stack(b.ID, root.ID()); err != nil {
		t.Fatalf("stack: %v", err)
	}
	if err := tr.Split(b.ID, root.ID(), layout.Vertical); err != nil {
		t.Fatalf("split: %v", err)
	}
	return tr.Root()
}

func TestToDOTBasic(t *testing.T) {
	dot := ToDOT(testTree(t), Options{})

	if !strings.Contains(dot, "digraph layout") {
		t.Error("output missing digraph declaration")
	}
	if !strings.Contains(dot, "Editor") || !strings.Contains(dot, "Console") {
		t.Error("output missing form titles")
	}
	if !strings.Contains(dot, "vertical 50/50") {
		t.Error("output missing splitter direction/proportion label")
	}
	if !strings.Contains(dot, `[label="primary"]`) || !strings.Contains(dot, `[label="secondary"]`) {
		t.Error("output missing child-slot edge labels")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testTree(t), Options{Detailed: true})

	if !strings.Contains(dot, "[form-2]") {
		t.Error("detailed output missing form id")
	}
	if !strings.Contains(dot, "pencil") {
		t.Error("detailed output missing icon reference")
	}
}

func TestToDOTEmptyRoot(t *testing.T) {
	tr := layout.NewTree()
	dot := ToDOT(tr.Root(), Options{})
	if !strings.Contains(dot, "(empty)") {
		t.Error("empty root panel not labeled")
	}
}
