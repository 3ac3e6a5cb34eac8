// Package cli implements the docktree command-line interface.
//
// This package provides commands for creating docking layouts, mutating them
// with split and stack operations, rendering them as ASCII art or Graphviz
// images, and serving them over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - init: Create a new layout file with an empty root panel
//   - split: Divide a panel in two and move a form into the new half
//   - stack: Move a form onto an existing panel
//   - show: Render a layout as ASCII art in the terminal
//   - render: Generate DOT, SVG, or PNG visualizations
//   - serve: Expose a layout over HTTP for remote mutation
//   - tui: Manipulate a layout interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/tilekit/docktree/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tilekit/docktree/pkg/buildinfo"
	layoutio "github.com/tilekit/docktree/pkg/io"
	"github.com/tilekit/docktree/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "docktree"

	// defaultLayoutFile is the layout file commands operate on when --file
	// is not given.
	defaultLayoutFile = "layout.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration
// loaded from the user config file (or defaults if none exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "docktree",
		Short:        "Docktree manages dockable split-panel layouts",
		Long:         `Docktree is a CLI tool for building and manipulating docking layouts: binary trees of resizable split regions whose leaves are panels holding tabbed forms.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	var cfgPath string
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: <user-config-dir>/docktree/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgPath != "" {
			loadConfigFile(cfgPath, &c.Config)
		}
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.initCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Layout File Helpers
// =============================================================================

// loadTree reads a layout file and adopts it into a mutable tree.
func loadTree(path string) (*layout.Tree, error) {
	root, err := layoutio.ImportJSON(path)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	tree, err := layout.NewTreeFrom(root)
	if err != nil {
		return nil, fmt.Errorf("adopt layout %s: %w", path, err)
	}
	return tree, nil
}

// saveTree writes the tree's current root back to a layout file.
func saveTree(tree *layout.Tree, path string) error {
	if err := layoutio.ExportJSON(tree.Root(), path); err != nil {
		return fmt.Errorf("write layout %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory (~/.config/docktree/ on Linux).
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
