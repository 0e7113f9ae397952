/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package disclosure splits an encoded attribute collection into revealed
// and hidden partitions keyed by canonical index, the shape the proof
// composer consumes for selective disclosure.
package disclosure

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
	"github.com/docknetwork/anoncreds-go/pkg/encoder"
)

// Disclosure is the result of partitioning a collection for selective
// disclosure. Revealed and Hidden cover disjoint canonical index subsets
// whose union is the full index range of the collection.
type Disclosure struct {
	// Revealed maps canonical indices of disclosed attributes to their
	// encoded values.
	Revealed map[int][]byte

	// Hidden maps canonical indices of undisclosed attributes to their
	// encoded values; these become proof witnesses.
	Hidden map[int][]byte

	// RevealedRaw holds only the disclosed leaves with their original,
	// unencoded values. A verifier re-encodes these independently and must
	// obtain the exact Revealed buffers, so it never has to trust the
	// prover's encoding.
	RevealedRaw attributes.Collection
}

// Partition flattens and encodes the collection, splitting the result by the
// requested revealed names. Every requested name must match exactly one
// leaf; a mismatch (typically a misspelled attribute) fails loudly instead
// of silently dropping names.
func Partition(c attributes.Collection, revealedNames []string, enc *encoder.Encoder) (*Disclosure, error) {
	names, values := attributes.Flatten(c)

	reveal := make(map[string]bool, len(revealedNames))

	for _, name := range revealedNames {
		if reveal[name] {
			return nil, fmt.Errorf("attribute %q requested for reveal more than once", name)
		}

		reveal[name] = true
	}

	d := &Disclosure{
		Revealed:    make(map[int][]byte, len(revealedNames)),
		Hidden:      make(map[int][]byte, len(names)-len(revealedNames)),
		RevealedRaw: make(attributes.Collection),
	}

	for i, name := range names {
		encoded, err := enc.Encode(name, values[i], false)
		if err != nil {
			return nil, err
		}

		if reveal[name] {
			d.Revealed[i] = encoded

			insertPath(d.RevealedRaw, strings.Split(name, attributes.PathSeparator), values[i])
		} else {
			d.Hidden[i] = encoded
		}
	}

	if len(d.Revealed) != len(revealedNames) {
		return nil, fmt.Errorf("%d attributes requested for reveal but %d matched; unmatched: %v",
			len(revealedNames), len(d.Revealed), unmatchedNames(reveal, names))
	}

	return d, nil
}

// EncodeRevealed is the verifier-side counterpart of Partition: it encodes
// the plaintext revealed values against the shared message structure,
// producing the index-keyed map to cross-check against the prover's claim.
func EncodeRevealed(raw attributes.Collection, s attributes.Structure,
	enc *encoder.Encoder) (map[int][]byte, error) {
	names, values := attributes.Flatten(raw)

	indices, err := s.Indices(names)
	if err != nil {
		return nil, err
	}

	revealed := make(map[int][]byte, len(names))

	for i, name := range names {
		encoded, err := enc.Encode(name, values[i], false)
		if err != nil {
			return nil, err
		}

		revealed[indices[i]] = encoded
	}

	return revealed, nil
}

func unmatchedNames(reveal map[string]bool, names []string) []string {
	matched := make(map[string]bool, len(names))
	for _, name := range names {
		matched[name] = true
	}

	var unmatched []string

	for name := range reveal {
		if !matched[name] {
			unmatched = append(unmatched, name)
		}
	}

	slices.Sort(unmatched)

	return unmatched
}

// insertPath writes a leaf value back into a nested collection, recreating
// intermediate collections and lists along the dotted path. A numeric path
// segment addresses a list element.
func insertPath(c attributes.Collection, segments []string, v attributes.Value) {
	head := segments[0]

	if len(segments) == 1 {
		c[head] = v

		return
	}

	if idx, err := strconv.Atoi(segments[1]); err == nil {
		l, _ := c[head].(attributes.List)
		c[head] = insertListPath(l, idx, segments[2:], v)

		return
	}

	child, ok := c[head].(attributes.Collection)
	if !ok {
		child = make(attributes.Collection)
		c[head] = child
	}

	insertPath(child, segments[1:], v)
}

func insertListPath(l attributes.List, idx int, rest []string, v attributes.Value) attributes.List {
	for len(l) <= idx {
		l = append(l, nil)
	}

	if len(rest) == 0 {
		l[idx] = v

		return l
	}

	if nested, err := strconv.Atoi(rest[0]); err == nil {
		inner, _ := l[idx].(attributes.List)
		l[idx] = insertListPath(inner, nested, rest[1:], v)

		return l
	}

	child, ok := l[idx].(attributes.Collection)
	if !ok {
		child = make(attributes.Collection)
		l[idx] = child
	}

	insertPath(child, rest, v)

	return l
}
