package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	layoutio "github.com/tilekit/docktree/pkg/io"
	"github.com/tilekit/docktree/pkg/layout"
	"github.com/tilekit/docktree/pkg/render/text"
)

// showCommand creates the show command for printing a layout as ASCII art.
func (c *CLI) showCommand() *cobra.Command {
	var (
		width  int
		height int
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "show [layout.json]",
		Short: "Render a layout as ASCII art in the terminal",
		Long: `Render a layout as ASCII art in the terminal.

Panels are drawn as boxes labelled with their id and the titles of the
forms they hold; splitters partition the drawing area proportionally to
their size. Use --list for a flat listing of panels and forms instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultLayoutFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runShow(path, width, height, list)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "drawing width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "drawing height in cells")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print a flat panel/form listing instead of boxes")

	return cmd
}

// runShow loads the layout and prints it.
func (c *CLI) runShow(path string, width, height int, list bool) error {
	root, err := layoutio.ImportJSON(path)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", path, err)
	}

	if list {
		printListing(root)
		return nil
	}

	fmt.Print(text.Render(root, width, height))
	return nil
}

// printListing walks the tree and prints one line per node, indented by depth.
func printListing(root layout.Node) {
	var walk func(n layout.Node, depth int)
	walk = func(n layout.Node, depth int) {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		switch v := n.(type) {
		case *layout.Panel:
			fmt.Println(indent + StyleHighlight.Render(v.ID()))
			for _, f := range v.Forms {
				fmt.Println(indent + "  " + StyleValue.Render(f.ID) + " " + StyleDim.Render(f.Title))
			}
		case *layout.Splitter:
			fmt.Printf("%s%s %s\n", indent, StyleTitle.Render(v.ID()),
				StyleDim.Render(fmt.Sprintf("%s %.0f/%.0f", v.Direction, v.Size, 100-v.Size)))
			walk(v.Primary, depth+1)
			walk(v.Secondary, depth+1)
		}
	}
	walk(root, 0)
}
