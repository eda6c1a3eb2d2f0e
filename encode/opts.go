package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeDeclaration controls the leading XML declaration line.
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) { es.declaration = v }
}

// EncodeEscape escapes markup characters in text and attribute values.
// The reference abx2xml tool never escapes; leave this off for
// byte-compatible output.
func EncodeEscape(v bool) EncodeOption {
	return func(es *EncState) { es.escape = v }
}

// EncodeColors colorizes output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
