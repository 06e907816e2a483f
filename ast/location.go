package ast

// SourceLocation is the position of a construct in its source file.
// End positions are zero when the parser did not record a range.
type SourceLocation struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Location derives a SourceLocation from node metadata. ok is false when
// the metadata carries no positional information.
func Location(m Meta) (SourceLocation, bool) {
	if !m.HasPosition() {
		return SourceLocation{}, false
	}
	return SourceLocation{
		StartLine:   m.Line,
		StartColumn: m.Column,
		EndLine:     m.EndLine,
		EndColumn:   m.EndColumn,
	}, true
}

// NodeLocation derives a SourceLocation from a node, for the variants
// that carry metadata.
func NodeLocation(n Node) (SourceLocation, bool) {
	m, ok := NodeMeta(n)
	if !ok {
		return SourceLocation{}, false
	}
	return Location(m)
}
