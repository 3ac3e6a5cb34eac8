package layout_test

import (
	"fmt"

	"github.com/tilekit/docktree/pkg/layout"
)

func ExampleTree_Stack() {
	// A fresh layout is a single empty panel.
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)

	// Forms enter the tree by stacking them into a panel.
	editor := tr.NewForm("Editor", nil, "")
	_ = tr.Stack(editor.ID, root.ID())

	fmt.Println("panels:", len(layout.Panels(tr.Root())))
	fmt.Println("forms in root:", len(root.Forms))
	// Output:
	// panels: 1
	// forms in root: 1
}

func ExampleTree_Split() {
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)

	editor := tr.NewForm("Editor", nil, "")
	console := tr.NewForm("Console", nil, "")
	_ = tr.Stack(editor.ID, root.ID())
	_ = tr.Stack(console.ID, root.ID())

	// Carve the console out into its own region below the editor.
	_ = tr.Split(console.ID, root.ID(), layout.Vertical)

	split := tr.Root().(*layout.Splitter)
	fmt.Println("direction:", split.Direction)
	fmt.Println("size:", split.Size)
	fmt.Println("panels:", len(layout.Panels(tr.Root())))
	// Output:
	// direction: vertical
	// size: 50
	// panels: 2
}

func ExampleTree_Notify() {
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)
	form := tr.NewForm("Chart", nil, "")

	tr.Notify(func(layout.Node) {
		fmt.Println("layout changed")
	})

	_ = tr.Stack(form.ID, root.ID())
	// Output:
	// layout changed
}

func ExampleClone() {
	tr := layout.NewTree()
	root := tr.Root().(*layout.Panel)
	form := tr.NewForm("Editor", nil, "")
	_ = tr.Stack(form.ID, root.ID())

	snapshot := layout.Clone(tr.Root())

	// Later mutations never reach the snapshot.
	other := tr.NewForm("Console", nil, "")
	_ = tr.Stack(other.ID, root.ID())

	fmt.Println("live forms:", len(layout.Forms(tr.Root())))
	fmt.Println("snapshot forms:", len(layout.Forms(snapshot)))
	// Output:
	// live forms: 2
	// snapshot forms: 1
}
