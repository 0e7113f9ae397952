/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package engine implements the boundary to the pairing-based cryptographic
// engine over BLS12-381 G1. It offers exactly the primitives the
// orchestration layer consumes: deterministic generator derivation from a
// seed label and Pedersen commitments over index-keyed encoded attributes.
// A 32-byte encoded attribute is treated as an opaque field element.
package engine

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	ml "github.com/IBM/mathlib"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// nolint:gochecknoglobals
var curve = ml.Curves[ml.BLS12_381_BBS]

// Deriver expands a seed label into deterministic G1 generators. The same
// label and index always yield the same generator, so extending a generator
// vector preserves its prefix.
type Deriver struct{}

// NewDeriver creates a Deriver.
func NewDeriver() *Deriver {
	return &Deriver{}
}

// DeriveGenerators derives count generators from the label, in compressed
// form. The label must not be empty; derivation without a stable seed would
// produce generators no other party can reproduce.
func (*Deriver) DeriveGenerators(label []byte, count int) ([][]byte, error) {
	if len(label) == 0 {
		return nil, errors.New("generator label must not be empty")
	}

	if count <= 0 {
		return nil, fmt.Errorf("generator count must be positive, got %d", count)
	}

	gens := make([][]byte, count)

	seed := make([]byte, len(label)+4)
	copy(seed, label)

	for i := 0; i < count; i++ {
		binary.BigEndian.PutUint32(seed[len(label):], uint32(i))

		okm := blake2b.Sum256(seed)

		gens[i] = curve.HashToG1(okm[:]).Compressed()
	}

	return gens, nil
}

// PedersenCommitter commits to index-keyed encoded attributes under a
// blinding factor: commitment = H0^blinding * Π Hi^mi. The generator at
// position 0 is the blinding generator; generator i+1 serves attribute
// index i, matching the signature parameters' ordering.
type PedersenCommitter struct {
	h0 *ml.G1
	h  []*ml.G1
}

// NewPedersenCommitter parses the compressed generators produced by a
// Deriver (or taken from signature parameters) into a committer.
func NewPedersenCommitter(generators [][]byte) (*PedersenCommitter, error) {
	if len(generators) < 2 {
		return nil, fmt.Errorf("at least two generators required, got %d", len(generators))
	}

	points := make([]*ml.G1, len(generators))

	for i, g := range generators {
		point, err := curve.NewG1FromCompressed(g)
		if err != nil {
			return nil, fmt.Errorf("parse generator %d: %w", i, err)
		}

		points[i] = point
	}

	return &PedersenCommitter{
		h0: points[0],
		h:  points[1:],
	}, nil
}

// RandomBlinding draws a fresh blinding scalar.
func (*PedersenCommitter) RandomBlinding() ([]byte, error) {
	return curve.NewRandomZr(rand.Reader).Bytes(), nil
}

// Commit commits to the messages under the blinding factor. Message indices
// are iterated in ascending order; iteration order does not change the
// commitment value but keeps the engine input construction reproducible.
func (c *PedersenCommitter) Commit(blinding []byte, messages map[int][]byte) ([]byte, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to commit to")
	}

	if len(blinding) == 0 {
		return nil, errors.New("blinding must not be empty")
	}

	commitment := c.h0.Copy()
	commitment = commitment.Mul(curve.NewZrFromBytes(blinding))

	indices := maps.Keys(messages)
	slices.Sort(indices)

	for _, i := range indices {
		if i < 0 || i >= len(c.h) {
			return nil, fmt.Errorf("no generator for attribute index %d", i)
		}

		tmp := c.h[i].Copy()
		tmp = tmp.Mul(curve.NewZrFromBytes(messages[i]))
		commitment.Add(tmp)
	}

	return commitment.Compressed(), nil
}
