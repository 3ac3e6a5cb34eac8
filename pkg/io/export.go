package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tilekit/docktree/pkg/layout"
)

const (
	kindPanel    = "panel"
	kindSplitter = "splitter"
)

type node struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	// Panel fields.
	Forms []form `json:"forms,omitempty"`

	// Splitter fields.
	Direction string  `json:"direction,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Primary   *node   `json:"primary,omitempty"`
	Secondary *node   `json:"secondary,omitempty"`
}

type form struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content any    `json:"content,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// WriteJSON encodes a layout tree as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
// Form content is carried through as-is; payloads that are not JSON
// representable (e.g. live UI handles) are encoded as their JSON default and
// will not round-trip, which is acceptable at this boundary.
func WriteJSON(root layout.Node, w io.Writer) error {
	out := encode(root)
	if out == nil {
		return fmt.Errorf("encode: nil root")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(root layout.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(root, f)
}

func encode(n layout.Node) *node {
	switch n := n.(type) {
	case *layout.Panel:
		out := &node{ID: n.ID(), Kind: kindPanel}
		for _, f := range n.Forms {
			out.Forms = append(out.Forms, form{ID: f.ID, Title: f.Title, Content: f.Content, Icon: f.Icon})
		}
		return out
	case *layout.Splitter:
		return &node{
			ID:        n.ID(),
			Kind:      kindSplitter,
			Direction: n.Direction.String(),
			Size:      n.Size,
			Primary:   encode(n.Primary),
			Secondary: encode(n.Secondary),
		}
	}
	return nil
}
