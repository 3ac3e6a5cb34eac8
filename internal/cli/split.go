package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilekit/docktree/pkg/errors"
	"github.com/tilekit/docktree/pkg/layout"
	"github.com/tilekit/docktree/pkg/observability"
)

// splitCommand creates the split command for dividing a panel in two.
func (c *CLI) splitCommand() *cobra.Command {
	var (
		file      string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "split <form-id> <panel-id>",
		Short: "Divide a panel in two and move a form into the new half",
		Long: `Divide a panel in two and move a form into the new half.

The destination panel becomes the primary child of a new splitter; the
form is removed from its current panel and placed alone in a fresh panel
that becomes the secondary child. If removing the form empties its old
panel, the surrounding region collapses to reclaim the space.

The form must already live in some panel. Splitting a panel off of
itself when the form is its only occupant is a no-op.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSplit(cmd.Context(), file, args[0], args[1], direction)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultLayoutFile, "layout file to mutate")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "split orientation: horizontal, vertical (default from config)")

	return cmd
}

// runSplit loads the layout, performs the split, and writes it back.
func (c *CLI) runSplit(ctx context.Context, file, formID, destinationID, direction string) error {
	if err := errors.ValidateNodeID(formID); err != nil {
		return err
	}
	if err := errors.ValidateNodeID(destinationID); err != nil {
		return err
	}
	if direction == "" {
		direction = c.Config.Direction
	}
	dir, err := layout.ParseDirection(direction)
	if err != nil {
		return err
	}

	tree, err := loadTree(file)
	if err != nil {
		return err
	}
	tree.SetSplitSize(c.Config.SplitSize)

	p := newProgress(c.Logger)
	start := time.Now()
	err = tree.Split(formID, destinationID, dir)
	observability.Layout().OnSplit(ctx, formID, destinationID, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("split %s at %s: %w", formID, destinationID, err)
	}

	if err := saveTree(tree, file); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Split %s %s at %s", formID, dir, destinationID))

	printSuccess("Split %s %s %s (%s)", formID, iconArrow, destinationID, dir)
	printFile(file)

	return nil
}
