// Package token provides the binary token layer for ABX documents.
//
// An ABX document is a stream of one-byte tokens following a 4-byte
// magic preamble. The low nibble of a token names its structural kind
// (document/tag/text/attribute boundary) and the high nibble names the
// type of its payload. All multi-byte values are big-endian. Repeated
// tag and attribute names are interned: transmitted once and referenced
// thereafter by a 16-bit index.
//
// # Related Packages
//
//   - github.com/abx-format/go-abx/parse - Decodes token streams to trees
//   - github.com/abx-format/go-abx/encode - Encodes trees to XML text
package token
