// Package layout implements a dynamic docking-layout engine.
//
// The engine maintains a binary tree of resizable split regions. Interior
// nodes are [Splitter] values that divide space between two children along a
// direction with a 0-100 proportion. Leaves are [Panel] values that hold an
// ordered collection of movable content views ([Form]). A [Tree] owns the
// root node and exposes the mutation API: [Tree.Split] moves a form into a
// brand-new panel paired with an existing one via a new splitter, and
// [Tree.Stack] moves a form into an existing panel's collection without
// creating new structure.
//
// After every mutation the engine runs a free-space reclamation pass that
// removes splitters whose panel child became empty, promoting the sibling in
// its place. The tree therefore never contains an empty panel except when a
// lone empty panel is the root (a freshly initialized layout).
//
// # Ownership
//
// A splitter exclusively owns both children and a panel owns its forms: no
// node appears as a child of two splitters, and a form lives in exactly one
// panel at a time. Moving a form is a transfer of ownership, never a copy.
// Callers that need an aliasing-free snapshot should use [Clone] or
// [Tree.Snapshot].
//
// # Concurrency
//
// Tree is not safe for concurrent use. Callers exposed to genuinely
// concurrent mutation must serialize all mutating calls behind a single
// writer, because tree surgery rewrites shared nodes in place before
// re-deriving the root.
package layout
