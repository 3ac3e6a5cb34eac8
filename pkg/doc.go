// Package pkg provides the core libraries for docktree layout management.
//
// # Overview
//
// Docktree models a docking workspace as a binary tree of resizable split
// regions whose leaves are panels holding tabbed forms. The pkg directory
// is organized into five main areas:
//
//  1. [layout] - The layout engine (tree, split/stack operations, reclamation)
//  2. [io] - JSON serialization for layout files
//  3. [render] - Visualization backends (ASCII art, Graphviz)
//  4. [errors] - Coded errors shared by the CLI and HTTP surfaces
//  5. [observability] - Optional hooks for metrics and tracing
//
// # Architecture
//
// The typical data flow through docktree:
//
//	layout.json file
//	         ↓
//	    [io] package (import, validate)
//	         ↓
//	    [layout] package (split, stack, reclaim)
//	         ↓
//	    [io] / [render] packages
//	         ↓
//	    layout.json / ASCII / SVG / PNG output
//
// # Quick Start
//
// Build a layout and move forms around:
//
//	tree := layout.NewTree()
//	chart := tree.NewForm("Chart", nil, "")
//	if err := tree.Stack(chart.ID, tree.Root().ID()); err != nil {
//	    return err
//	}
//	inspector := tree.NewForm("Inspector", nil, "")
//	if err := tree.Stack(inspector.ID, tree.Root().ID()); err != nil {
//	    return err
//	}
//	if err := tree.Split(inspector.ID, tree.Root().ID(), layout.Vertical); err != nil {
//	    return err
//	}
//
// Persist and render it:
//
//	if err := io.ExportJSON(tree.Root(), "layout.json"); err != nil {
//	    return err
//	}
//	fmt.Print(text.Render(tree.Root(), 80, 24))
//
// # Design Principles
//
// The engine owns every node it creates and hands out deep clones at its
// boundaries; callers never share mutable state with the tree. Operations
// are atomic: a failed split or stack leaves the layout exactly as it was.
// Free space is reclaimed eagerly, so an empty panel never survives an
// operation unless it is the root.
//
// [layout]: github.com/tilekit/docktree/pkg/layout
// [io]: github.com/tilekit/docktree/pkg/io
// [render]: github.com/tilekit/docktree/pkg/render
// [errors]: github.com/tilekit/docktree/pkg/errors
// [observability]: github.com/tilekit/docktree/pkg/observability
package pkg
