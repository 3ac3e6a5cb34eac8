package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilekit/docktree/pkg/errors"
	"github.com/tilekit/docktree/pkg/observability"
)

// stackCommand creates the stack command for moving a form onto a panel.
func (c *CLI) stackCommand() *cobra.Command {
	var (
		file  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "stack <form-id> <panel-id>",
		Short: "Move a form onto an existing panel",
		Long: `Move a form onto an existing panel.

The form is removed from its current panel and appended to the
destination's tab order as the last entry. If removing the form empties
its old panel, the surrounding region collapses to reclaim the space.

With --title, a brand new form is created with that title and stacked
onto the destination instead; the form-id argument is omitted:

  docktree stack --title "Inspector" panel-1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title != "" {
				if len(args) != 1 {
					return fmt.Errorf("--title takes only a destination panel id")
				}
				return c.runStackNew(file, title, args[0])
			}
			if len(args) != 2 {
				return fmt.Errorf("stack requires <form-id> <panel-id>")
			}
			return c.runStack(cmd.Context(), file, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultLayoutFile, "layout file to mutate")
	cmd.Flags().StringVarP(&title, "title", "t", "", "create a new form with this title instead of moving one")

	return cmd
}

// runStack loads the layout, moves the form, and writes it back.
func (c *CLI) runStack(ctx context.Context, file, formID, destinationID string) error {
	if err := errors.ValidateNodeID(formID); err != nil {
		return err
	}
	if err := errors.ValidateNodeID(destinationID); err != nil {
		return err
	}

	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	start := time.Now()
	err = tree.Stack(formID, destinationID)
	observability.Layout().OnStack(ctx, formID, destinationID, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("stack %s onto %s: %w", formID, destinationID, err)
	}

	if err := saveTree(tree, file); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Stacked %s onto %s", formID, destinationID))

	printSuccess("Stacked %s %s %s", formID, iconArrow, destinationID)
	printFile(file)

	return nil
}

// runStackNew creates a fresh form and stacks it onto the destination.
func (c *CLI) runStackNew(file, title, destinationID string) error {
	if err := errors.ValidateFormTitle(title); err != nil {
		return err
	}
	if err := errors.ValidateNodeID(destinationID); err != nil {
		return err
	}

	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	f := tree.NewForm(title, nil, "")
	if err := tree.Stack(f.ID, destinationID); err != nil {
		return fmt.Errorf("stack new form onto %s: %w", destinationID, err)
	}

	if err := saveTree(tree, file); err != nil {
		return err
	}

	printSuccess("Created %s (%q) %s %s", f.ID, title, iconArrow, destinationID)
	printFile(file)

	return nil
}
