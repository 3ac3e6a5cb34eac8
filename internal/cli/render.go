package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	layoutio "github.com/tilekit/docktree/pkg/io"
	"github.com/tilekit/docktree/pkg/render/dot"
)

// Render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderCommand creates the render command for producing Graphviz output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Generate DOT, SVG, or PNG visualizations",
		Long: `Generate DOT, SVG, or PNG visualizations of a layout.

The layout tree is rendered as a Graphviz digraph: splitters appear as
dashed boxes labelled with their orientation and ratio, panels as solid
boxes listing their forms. SVG and PNG output is produced with an
embedded Graphviz engine; no external binary is required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultLayoutFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRender(path, output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "F", formatSVG, "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include per-form detail in panel labels")

	return cmd
}

// runRender loads the layout, renders it, and writes the output file.
func (c *CLI) runRender(input, output, format string, detailed bool) error {
	root, err := layoutio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	p := newProgress(c.Logger)
	src := dot.ToDOT(root, dot.Options{Detailed: detailed})

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(src)
	case formatSVG:
		data, err = dot.RenderSVG(src)
	case formatPNG:
		data, err = dot.RenderPNG(src)
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or png)", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	p.done("Rendered " + format)

	printSuccess("Render complete")
	printFile(outputPath)

	return nil
}
