// Package io provides JSON import and export for layout trees.
//
// The format is the boundary between the engine and its consumers: renderers
// read it to paint nested split containers, and the CLI uses it to carry a
// layout between invocations. The engine itself never touches storage.
//
// A document is the root node, serialized recursively:
//
//	{
//	  "id": "splitter-5",
//	  "kind": "splitter",
//	  "direction": "vertical",
//	  "size": 50,
//	  "primary":   {"id": "panel-1", "kind": "panel", "forms": [...]},
//	  "secondary": {"id": "panel-4", "kind": "panel", "forms": [...]}
//	}
//
// Import validates the tree, so export → re-import produces an identical,
// well-formed layout.
package io
