/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributes

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// ErrUnknownAttribute is returned when a canonical name is not present in a
// message structure.
var ErrUnknownAttribute = errors.New("attribute not present in message structure")

// Node is one position in a message structure. It is a closed variant:
// Placeholder, Structure and NodeList are the only implementations.
type Node interface {
	isNode()
}

// Placeholder marks a leaf attribute position. It carries no value; message
// structures describe shape only.
type Placeholder struct{}

// Structure is a value-free template describing the shape and names of a
// credential's attributes. It is authored once per credential schema, shared
// out-of-band by all parties and never mutated in place.
type Structure map[string]Node

// NodeList is the structure analogue of List.
type NodeList []Node

func (Placeholder) isNode() {}
func (Structure) isNode()   {}
func (NodeList) isNode()    {}

// Flatten returns the lexicographically sorted canonical names of all leaves
// in the structure. The position of a name in this list is its canonical
// index.
func (s Structure) Flatten() []string {
	names := make([]string, 0)
	names = flattenNode(names, "", s)

	slices.Sort(names)

	return names
}

func flattenNode(dst []string, prefix string, n Node) []string {
	switch t := n.(type) {
	case Structure:
		for k, cn := range t {
			dst = flattenNode(dst, joinPath(prefix, k), cn)
		}
	case NodeList:
		for i, cn := range t {
			dst = flattenNode(dst, joinPath(prefix, strconv.Itoa(i)), cn)
		}
	default:
		dst = append(dst, prefix)
	}

	return dst
}

// Indices resolves canonical names to their canonical indices within the
// structure. The result preserves the order of the input names, not sorted
// order. Each absent name is a structural-mismatch error.
func (s Structure) Indices(names []string) ([]int, error) {
	flat := s.Flatten()

	positions := make(map[string]int, len(flat))
	for i, name := range flat {
		positions[name] = i
	}

	indices := make([]int, len(names))

	for i, name := range names {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("attribute %q: %w", name, ErrUnknownAttribute)
		}

		indices[i] = pos
	}

	return indices, nil
}

// StructureOf extracts the shape of a collection as a message structure.
func StructureOf(c Collection) Structure {
	s := make(Structure, len(c))

	for k, v := range c {
		s[k] = nodeOf(v)
	}

	return s
}

func nodeOf(v Value) Node {
	switch t := v.(type) {
	case Collection:
		return StructureOf(t)
	case List:
		l := make(NodeList, len(t))
		for i, cv := range t {
			l[i] = nodeOf(cv)
		}

		return l
	default:
		return Placeholder{}
	}
}

// Conforms reports whether the collection has exactly the shape described by
// the structure, i.e. both flatten to identical canonical name sequences.
func (s Structure) Conforms(c Collection) error {
	structNames := s.Flatten()
	collNames, _ := Flatten(c)

	if len(structNames) != len(collNames) {
		return fmt.Errorf("structure has %d attributes, collection has %d",
			len(structNames), len(collNames))
	}

	for i := range structNames {
		if structNames[i] != collNames[i] {
			return fmt.Errorf("attribute mismatch at canonical index %d: structure has %q, collection has %q",
				i, structNames[i], collNames[i])
		}
	}

	return nil
}
