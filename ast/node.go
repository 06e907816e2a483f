// Package ast defines the tagged-tree representation of Elixir quoted
// forms that all extractors consume. The tree is produced by an external
// parser (the Elixir compiler front end) and handed across a process
// boundary; this package models it as a closed sum type so classification
// can be checked exhaustively instead of trusting pattern fallthrough.
package ast

// Node is the discriminated union over every quoted-form shape.
// Extractors classify nodes purely by variant, tag, and argument shape,
// never by semantic meaning.
type Node interface {
	node()
}

// Atom is a literal atom such as :ok.
type Atom struct {
	Name string
}

// Integer is a literal integer.
type Integer struct {
	Value int64
}

// Float is a literal float.
type Float struct {
	Value float64
}

// String is a literal binary string.
type String struct {
	Value string
}

// Call is the generic 3-part node: a symbolic tag (operator, keyword, or
// function name), positional metadata, and an ordered argument list. This
// is the universal shape for definitions, operators, control flow, and
// local calls alike.
type Call struct {
	Tag  string
	Meta Meta
	Args []Node
}

// RemoteCall is a qualified call Receiver.function(args).
type RemoteCall struct {
	Receiver Node
	Function string
	Meta     Meta
	Args     []Node
}

// Variable is a bare identifier. Context distinguishes lexical scope tags
// (macro hygiene contexts); it is empty for plain source variables.
type Variable struct {
	Name    string
	Context string
	Meta    Meta
}

// List is a literal list.
type List struct {
	Elements []Node
}

// Tuple is a literal tuple. Two-element tuples are self-quoting in the
// source grammar, which makes them ambiguous with the 3-part node shape;
// resolving that ambiguity is the extractors' job, not this package's.
type Tuple struct {
	Elements []Node
}

// Map is a literal map of ordered key-value pairs.
type Map struct {
	Pairs []Pair
}

// Pair is one key-value entry of a Map.
type Pair struct {
	Key   Node
	Value Node
}

func (*Atom) node()       {}
func (*Integer) node()    {}
func (*Float) node()      {}
func (*String) node()     {}
func (*Call) node()       {}
func (*RemoteCall) node() {}
func (*Variable) node()   {}
func (*List) node()       {}
func (*Tuple) node()      {}
func (*Map) node()        {}

// Meta carries the positional metadata attached to Call, RemoteCall, and
// Variable nodes. Line and Column are 1-based; zero means the parser
// supplied no position.
type Meta struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int

	// Delimiter is the sigil or string delimiter when the parser recorded
	// one, e.g. "/" for ~r/.../ or "\"\"\"" for heredocs.
	Delimiter string
}

// HasPosition reports whether the metadata carries a source position.
func (m Meta) HasPosition() bool {
	return m.Line > 0
}

// Arity returns the number of arguments of the call.
func (c *Call) Arity() int {
	return len(c.Args)
}

// NodeMeta returns the metadata attached to a node, if the variant
// carries any.
func NodeMeta(n Node) (Meta, bool) {
	switch v := n.(type) {
	case *Call:
		return v.Meta, true
	case *RemoteCall:
		return v.Meta, true
	case *Variable:
		return v.Meta, true
	default:
		return Meta{}, false
	}
}

// AtomName returns the atom's name when the node is an atom.
func AtomName(n Node) (string, bool) {
	if a, ok := n.(*Atom); ok {
		return a.Name, true
	}
	return "", false
}

// IsKeywordPair reports whether the node is a 2-tuple whose first
// component is an atom.
func IsKeywordPair(n Node) bool {
	t, ok := n.(*Tuple)
	if !ok || len(t.Elements) != 2 {
		return false
	}
	_, ok = t.Elements[0].(*Atom)
	return ok
}

// IsKeywordList reports whether the node is a non-empty list in which
// every element is a keyword pair. This ambiguity between plain lists and
// keyword lists is load-bearing throughout the grammar: parameter lists,
// option lists, and patterns all rely on it.
func IsKeywordList(n Node) bool {
	l, ok := n.(*List)
	if !ok || len(l.Elements) == 0 {
		return false
	}
	for _, el := range l.Elements {
		if !IsKeywordPair(el) {
			return false
		}
	}
	return true
}

// KeywordPairs returns the (atom, value) pairs of a keyword list in
// source order. ok is false when the node is not a keyword list.
func KeywordPairs(n Node) ([]Pair, bool) {
	if !IsKeywordList(n) {
		return nil, false
	}
	l := n.(*List)
	pairs := make([]Pair, 0, len(l.Elements))
	for _, el := range l.Elements {
		t := el.(*Tuple)
		pairs = append(pairs, Pair{Key: t.Elements[0], Value: t.Elements[1]})
	}
	return pairs, true
}

// KeywordGet returns the value bound to key in a keyword list. ok is
// false when the node is not a keyword list or the key is absent. The
// first occurrence wins.
func KeywordGet(n Node, key string) (Node, bool) {
	pairs, ok := KeywordPairs(n)
	if !ok {
		return nil, false
	}
	for _, p := range pairs {
		if a, ok := p.Key.(*Atom); ok && a.Name == key {
			return p.Value, true
		}
	}
	return nil, false
}
