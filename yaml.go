package easylife

import (
	"gopkg.in/yaml.v3"
)

func isNode(v any) bool {
	switch n := v.(type) {
	case *yaml.Node:
		return n != nil
	case yaml.Node:
		return true
	default:
		return false
	}
}

// normalize replaces a yaml node with a value of the same shape: mappings
// become [Mappable], sequences and multi-document streams become [Sequence],
// aliases resolve to their target and scalars become their literal text.
// Any other value is returned unchanged.
func normalize(v any) any {
	var n *yaml.Node
	switch x := v.(type) {
	case *yaml.Node:
		n = x
	case yaml.Node:
		n = &x
	default:
		return v
	}
	if n == nil {
		return v
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 1 {
			return normalize(n.Content[0])
		}
		return nodeSeq(n.Content)
	case yaml.SequenceNode:
		return nodeSeq(n.Content)
	case yaml.MappingNode:
		return nodeMap(n.Content)
	case yaml.AliasNode:
		if n.Alias == nil {
			return ""
		}
		return normalize(n.Alias)
	default:
		return n.Value
	}
}

type nodeSeq []*yaml.Node

func (s nodeSeq) Items() []any {
	out := make([]any, len(s))
	for i, n := range s {
		out[i] = n
	}
	return out
}

// nodeMap holds mapping content as alternating key and value nodes.
type nodeMap []*yaml.Node

func (m nodeMap) Pairs() []KeyValue {
	out := make([]KeyValue, 0, len(m)/2)
	for i := 0; i+1 < len(m); i += 2 {
		out = append(out, KeyValue{Key: m[i], Value: m[i+1]})
	}
	return out
}
