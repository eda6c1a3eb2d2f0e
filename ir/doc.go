// Package ir provides the in-memory representation of a decoded ABX
// document.
//
// # Node Structure
//
// A Node is one markup element: a name, optional textual content, an
// ordered attribute list, and an ordered list of child elements. The
// tree is strict: every node is exclusively owned by its parent (or by
// the caller, for the root), is never shared, and is always acyclic.
// There are no parent pointers; navigation is top-down.
//
// # Attributes
//
// Attributes keep first-insertion order and unique names. Setting an
// existing name overwrites its value in place (last write wins), so
// iteration order is deterministic within a single decode.
//
// # Text
//
// Text accumulates: each append concatenates to any existing content
// with no separator. Whitespace suppression is the decoder's concern,
// not the tree's.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone a tree before sharing it
// across goroutines.
package ir
