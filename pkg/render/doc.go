// Package render groups the layout visualization backends.
//
// # Overview
//
// Rendering is split by output medium:
//
//   - [text] draws a layout as ASCII art for terminal inspection
//   - [dot] emits Graphviz DOT and rasterizes it to SVG or PNG
//
// Both backends consume the immutable tree shape from [layout] and never
// mutate it, so a snapshot can be rendered concurrently with further edits
// to the live tree.
//
// [text]: github.com/tilekit/docktree/pkg/render/text
// [dot]: github.com/tilekit/docktree/pkg/render/dot
// [layout]: github.com/tilekit/docktree/pkg/layout
package render
