package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tilekit/docktree/pkg/layout"
)

// ReadJSON decodes a JSON layout tree from r.
//
// Every node must have an "id" and a "kind" of "panel" or "splitter". A
// splitter must carry both "primary" and "secondary" children and may carry
// "direction" ("horizontal", the default, or "vertical") and "size". A panel
// may carry a "forms" array; each form needs an "id" and "title".
//
// The decoded tree is validated against the structural invariants (unique
// ids, no aliased splitter children, no empty panel below the root, single
// form ownership). Errors are wrapped with the offending node id; use
// errors.Is to check for specific layout sentinels.
//
// The returned tree is independent of r and safe to hand to
// [layout.NewTreeFrom]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (layout.Node, error) {
	var data node
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	root, err := decode(&data)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(root); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return root, nil
}

// ImportJSON reads a JSON file at path and returns the decoded layout tree.
// It returns the same validation errors as [ReadJSON]; open and decode
// failures are wrapped with the file path for context.
func ImportJSON(path string) (layout.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func decode(n *node) (layout.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("missing node")
	}
	if n.ID == "" {
		return nil, fmt.Errorf("node without id")
	}

	switch n.Kind {
	case kindPanel:
		forms := make([]*layout.Form, len(n.Forms))
		for i, f := range n.Forms {
			if f.ID == "" {
				return nil, fmt.Errorf("panel %s: form without id", n.ID)
			}
			forms[i] = &layout.Form{ID: f.ID, Title: f.Title, Content: f.Content, Icon: f.Icon}
		}
		return layout.NewPanelWithID(n.ID, forms...), nil

	case kindSplitter:
		dir := layout.Horizontal
		if n.Direction != "" {
			var err error
			if dir, err = layout.ParseDirection(n.Direction); err != nil {
				return nil, fmt.Errorf("splitter %s: %w", n.ID, err)
			}
		}
		primary, err := decode(n.Primary)
		if err != nil {
			return nil, fmt.Errorf("splitter %s: primary: %w", n.ID, err)
		}
		secondary, err := decode(n.Secondary)
		if err != nil {
			return nil, fmt.Errorf("splitter %s: secondary: %w", n.ID, err)
		}
		return layout.NewSplitterWithID(n.ID, primary, secondary, dir, n.Size)

	default:
		return nil, fmt.Errorf("node %s: unknown kind %q", n.ID, n.Kind)
	}
}
