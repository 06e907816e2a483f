package ast

import (
	"encoding/json"
	"fmt"
)

// Decode converts the JSON interchange encoding of a quoted form into a
// Node tree. The external parser (running inside the Elixir toolchain)
// emits this encoding when handing trees across the process boundary:
//
//	{"atom": "ok"}                                    atom
//	42, 3.14, "text"                                  scalar literals
//	true, false, null                                 the atoms true/false/nil
//	[ ... ]                                           list
//	{"tuple": [ ... ]}                                tuple
//	{"map": [[k, v], ...]}                            map
//	{"var": {"name": "x", "context": "", "meta": m}}  variable
//	{"call": {"tag": "if", "meta": m, "args": [...]}} 3-part node
//	{"remote": {"receiver": n, "function": "f",
//	            "meta": m, "args": [...]}}            qualified call
//
// Meta objects carry optional "line", "column", "end_line", "end_column",
// and "delimiter" keys.
func Decode(data []byte) (Node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode quoted form: %w", err)
	}
	return decodeValue(raw)
}

type rawMeta struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
	Delimiter string `json:"delimiter"`
}

func (m rawMeta) meta() Meta {
	return Meta{
		Line:      m.Line,
		Column:    m.Column,
		EndLine:   m.EndLine,
		EndColumn: m.EndColumn,
		Delimiter: m.Delimiter,
	}
}

type rawCall struct {
	Tag  string            `json:"tag"`
	Meta rawMeta           `json:"meta"`
	Args []json.RawMessage `json:"args"`
}

type rawRemote struct {
	Receiver json.RawMessage   `json:"receiver"`
	Function string            `json:"function"`
	Meta     rawMeta           `json:"meta"`
	Args     []json.RawMessage `json:"args"`
}

type rawVar struct {
	Name    string  `json:"name"`
	Context string  `json:"context"`
	Meta    rawMeta `json:"meta"`
}

func decodeValue(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("decode quoted form: empty value")
	}

	switch raw[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		nodes, err := decodeSlice(elems)
		if err != nil {
			return nil, err
		}
		return &List{Elements: nodes}, nil

	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode string: %w", err)
		}
		return &String{Value: s}, nil

	case '{':
		return decodeObject(raw)

	case 't', 'f', 'n':
		// Booleans and null are atoms on the Elixir side; accept both the
		// bare JSON scalars and the {"atom": ...} spelling.
		switch string(raw) {
		case "true":
			return &Atom{Name: "true"}, nil
		case "false":
			return &Atom{Name: "false"}, nil
		case "null":
			return &Atom{Name: "nil"}, nil
		}
		return nil, fmt.Errorf("decode scalar %q: unrecognized literal", string(raw))

	default:
		// Numbers: integers stay integers, anything with a fractional or
		// exponent part becomes a float.
		var i int64
		if err := json.Unmarshal(raw, &i); err == nil {
			return &Integer{Value: i}, nil
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("decode scalar %q: %w", string(raw), err)
		}
		return &Float{Value: f}, nil
	}
}

func decodeObject(raw json.RawMessage) (Node, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode node object: %w", err)
	}

	if v, ok := obj["atom"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return nil, fmt.Errorf("decode atom: %w", err)
		}
		return &Atom{Name: name}, nil
	}

	if v, ok := obj["tuple"]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(v, &elems); err != nil {
			return nil, fmt.Errorf("decode tuple: %w", err)
		}
		nodes, err := decodeSlice(elems)
		if err != nil {
			return nil, err
		}
		return &Tuple{Elements: nodes}, nil
	}

	if v, ok := obj["map"]; ok {
		var entries [][]json.RawMessage
		if err := json.Unmarshal(v, &entries); err != nil {
			return nil, fmt.Errorf("decode map: %w", err)
		}
		pairs := make([]Pair, 0, len(entries))
		for _, entry := range entries {
			if len(entry) != 2 {
				return nil, fmt.Errorf("decode map: entry has %d elements, want 2", len(entry))
			}
			key, err := decodeValue(entry[0])
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(entry[1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		return &Map{Pairs: pairs}, nil
	}

	if v, ok := obj["var"]; ok {
		var rv rawVar
		if err := json.Unmarshal(v, &rv); err != nil {
			return nil, fmt.Errorf("decode variable: %w", err)
		}
		return &Variable{Name: rv.Name, Context: rv.Context, Meta: rv.Meta.meta()}, nil
	}

	if v, ok := obj["call"]; ok {
		var rc rawCall
		if err := json.Unmarshal(v, &rc); err != nil {
			return nil, fmt.Errorf("decode call: %w", err)
		}
		args, err := decodeSlice(rc.Args)
		if err != nil {
			return nil, err
		}
		return &Call{Tag: rc.Tag, Meta: rc.Meta.meta(), Args: args}, nil
	}

	if v, ok := obj["remote"]; ok {
		var rr rawRemote
		if err := json.Unmarshal(v, &rr); err != nil {
			return nil, fmt.Errorf("decode remote call: %w", err)
		}
		receiver, err := decodeValue(rr.Receiver)
		if err != nil {
			return nil, err
		}
		args, err := decodeSlice(rr.Args)
		if err != nil {
			return nil, err
		}
		return &RemoteCall{Receiver: receiver, Function: rr.Function, Meta: rr.Meta.meta(), Args: args}, nil
	}

	return nil, fmt.Errorf("decode node object: unrecognized variant keys")
}

func decodeSlice(raws []json.RawMessage) ([]Node, error) {
	nodes := make([]Node, 0, len(raws))
	for _, r := range raws {
		n, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
