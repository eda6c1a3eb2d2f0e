// Package parse decodes ABX binary documents into element trees.
//
// # Usage
//
//	// Decode a document
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Decode a document with multiple top-level elements
//	root, err := parse.Parse(data, parse.MultiRoot(true))
//
// In multi-root mode the returned root is a synthetic "root" element
// wrapping the top-level siblings.
//
// # Related Packages
//
//   - github.com/abx-format/go-abx/ir - Element tree representation
//   - github.com/abx-format/go-abx/encode - Encode trees to XML text
//   - github.com/abx-format/go-abx/token - Binary token layer
package parse
