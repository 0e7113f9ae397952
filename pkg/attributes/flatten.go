/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributes

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PathSeparator joins nesting levels in a canonical attribute name.
const PathSeparator = "."

// Flatten turns a nested collection into two aligned sequences: the
// lexicographically sorted canonical names of all leaves and their values.
// Nil list elements count as absent leaves and produce no name.
// It is a pure function of its input; signer, prover and verifier reproduce
// identical sequences from identical collections.
func Flatten(c Collection) ([]string, []Value) {
	leaves := make(map[string]Value)

	flattenValue(leaves, "", c)

	names := maps.Keys(leaves)
	slices.Sort(names)

	values := make([]Value, len(names))
	for i, name := range names {
		values[i] = leaves[name]
	}

	return names, values
}

func flattenValue(dst map[string]Value, prefix string, v Value) {
	switch t := v.(type) {
	case nil:
		// A nil element is an absent leaf, not a value. Partially revealed
		// lists carry nil holes at the hidden positions.
	case Collection:
		for k, cv := range t {
			flattenValue(dst, joinPath(prefix, k), cv)
		}
	case List:
		for i, cv := range t {
			flattenValue(dst, joinPath(prefix, strconv.Itoa(i)), cv)
		}
	default:
		dst[prefix] = v
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + PathSeparator + key
}
