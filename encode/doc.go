// Package encode renders element trees as XML text.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(root, os.Stdout)
//
//	// Encode with options
//	err = encode.Encode(root, w, encode.EncodeIndent(4), encode.EncodeEscape(true))
//
// By default no markup characters are escaped in text or attribute
// values, reproducing the reference abx2xml tool byte for byte.
// EncodeEscape opts in to well-formed output instead.
//
// # Related Packages
//
//   - github.com/abx-format/go-abx/ir - Element tree representation
//   - github.com/abx-format/go-abx/parse - Decode ABX documents to trees
package encode
