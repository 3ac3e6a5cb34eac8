package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilekit/docktree/pkg/errors"
	"github.com/tilekit/docktree/pkg/layout"
)

// initCommand creates the init command for starting a new layout file.
func (c *CLI) initCommand() *cobra.Command {
	var forms []string

	cmd := &cobra.Command{
		Use:   "init [layout.json]",
		Short: "Create a new layout file with an empty root panel",
		Long: `Create a new layout file with an empty root panel.

The layout starts as a single panel. Use --form to seed it with tabbed
forms; each form is stacked onto the root panel in the order given.

Subsequent split and stack commands mutate the file in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultLayoutFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runInit(path, forms)
		},
	}

	cmd.Flags().StringArrayVar(&forms, "form", nil, "seed form title (repeatable)")

	return cmd
}

// runInit builds the initial tree and writes it to path.
func (c *CLI) runInit(path string, titles []string) error {
	for _, title := range titles {
		if err := errors.ValidateFormTitle(title); err != nil {
			return fmt.Errorf("invalid form title %q: %w", title, err)
		}
	}

	tree := layout.NewTree()
	rootID := tree.Root().ID()
	for _, title := range titles {
		f := tree.NewForm(title, nil, "")
		if err := tree.Stack(f.ID, rootID); err != nil {
			return fmt.Errorf("seed form %q: %w", title, err)
		}
		c.Logger.Debug("seeded form", "id", f.ID, "title", title)
	}

	if err := saveTree(tree, path); err != nil {
		return err
	}

	printSuccess("Layout created")
	printFile(path)
	printDetail("root panel %s with %d form(s)", rootID, len(titles))
	printNewline()
	printNextStep("Inspect", "docktree show "+path)

	return nil
}
