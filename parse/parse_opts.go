package parse

type parseOpts struct {
	multiRoot bool
}

type ParseOption func(*parseOpts)

// MultiRoot tolerates more than one top-level element by wrapping the
// document in a synthetic "root" element.
func MultiRoot(v bool) ParseOption {
	return func(o *parseOpts) { o.multiRoot = v }
}
