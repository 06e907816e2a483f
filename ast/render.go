package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendering caps keep error payloads bounded: a malformed node embedded in
// an error message must never drag a whole subtree along with it.
const (
	renderMaxElements = 5
	renderMaxString   = 40
	renderMaxDepth    = 4
)

// Render produces a bounded, human-readable rendering of a node for error
// messages and logs. Element counts, string lengths, and nesting depth are
// all capped; elided content is shown as "...".
func Render(n Node) string {
	var b strings.Builder
	render(&b, n, renderMaxDepth)
	return b.String()
}

func render(b *strings.Builder, n Node, depth int) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	if depth <= 0 {
		b.WriteString("...")
		return
	}

	switch v := n.(type) {
	case *Atom:
		b.WriteString(":")
		b.WriteString(truncate(v.Name))
	case *Integer:
		b.WriteString(strconv.FormatInt(v.Value, 10))
	case *Float:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *String:
		fmt.Fprintf(b, "%q", truncate(v.Value))
	case *Variable:
		b.WriteString(truncate(v.Name))
	case *Call:
		b.WriteString(truncate(v.Tag))
		b.WriteString("(")
		renderList(b, v.Args, depth-1)
		b.WriteString(")")
	case *RemoteCall:
		render(b, v.Receiver, depth-1)
		b.WriteString(".")
		b.WriteString(truncate(v.Function))
		b.WriteString("(")
		renderList(b, v.Args, depth-1)
		b.WriteString(")")
	case *List:
		b.WriteString("[")
		renderList(b, v.Elements, depth-1)
		b.WriteString("]")
	case *Tuple:
		b.WriteString("{")
		renderList(b, v.Elements, depth-1)
		b.WriteString("}")
	case *Map:
		b.WriteString("%{")
		for i, p := range v.Pairs {
			if i >= renderMaxElements {
				b.WriteString(", ...")
				break
			}
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, p.Key, depth-1)
			b.WriteString(" => ")
			render(b, p.Value, depth-1)
		}
		b.WriteString("}")
	default:
		b.WriteString("?")
	}
}

func renderList(b *strings.Builder, nodes []Node, depth int) {
	for i, n := range nodes {
		if i >= renderMaxElements {
			b.WriteString(", ...")
			return
		}
		if i > 0 {
			b.WriteString(", ")
		}
		render(b, n, depth)
	}
}

func truncate(s string) string {
	if len(s) <= renderMaxString {
		return s
	}
	return s[:renderMaxString] + "..."
}
