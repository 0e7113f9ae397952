/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sigparams resizes signature public parameters to a required
// attribute count, so one provisioned parameter set serves many
// differently-shaped credentials. Shrinking slices the existing generator
// vector; growing re-derives from the parameters' stable label through the
// engine.
package sigparams

import (
	"errors"
	"fmt"

	"github.com/bluele/gcache"
	"github.com/hyperledger/aries-framework-go/component/log"
	"golang.org/x/crypto/blake2b"
)

var logger = log.New("anoncreds-go/sigparams")

// ErrMissingLabel is returned when parameters must be extended but carry no
// label. Without the original derivation seed the extra generators would be
// unverifiably related to the existing ones.
var ErrMissingLabel = errors.New("cannot extend signature parameters without the original label")

// GeneratorDeriver is the engine boundary for generator derivation: a
// deterministic, per-index expansion of a seed label into group elements.
type GeneratorDeriver interface {
	DeriveGenerators(label []byte, count int) ([][]byte, error)
}

// Params are signature public parameters: a blinding generator H0 and one
// generator per supported attribute. The group elements are opaque to this
// package.
type Params struct {
	// Label is the deterministic seed the generators were derived from.
	// Empty for parameters provisioned without one; such parameters cannot
	// be extended.
	Label []byte

	// H0 is the blinding generator.
	H0 []byte

	// H holds one generator per attribute, in canonical index order.
	H [][]byte
}

// SupportedAttributeCount returns the number of attributes the parameters
// can sign.
func (p *Params) SupportedAttributeCount() int {
	return len(p.H)
}

// Generate provisions fresh parameters for the given attribute count from a
// label.
func Generate(d GeneratorDeriver, label []byte, count int) (*Params, error) {
	if count <= 0 {
		return nil, fmt.Errorf("attribute count must be positive, got %d", count)
	}

	gens, err := d.DeriveGenerators(label, count+1)
	if err != nil {
		return nil, fmt.Errorf("derive generators: %w", err)
	}

	return &Params{
		Label: label,
		H0:    gens[0],
		H:     gens[1:],
	}, nil
}

// Adapter resizes parameters, caching derived generator sets so repeated
// adaptations of widely-shared parameters stay cheap.
type Adapter struct {
	deriver GeneratorDeriver
	cache   gcache.Cache
}

// NewAdapter creates an Adapter keeping up to cacheSize derived parameter
// sets.
func NewAdapter(d GeneratorDeriver, cacheSize int) *Adapter {
	return &Adapter{
		deriver: d,
		cache:   gcache.New(cacheSize).LRU().Build(),
	}
}

// Adapt returns parameters supporting exactly count attributes. A count
// within the provisioned range reuses a prefix of the existing generators
// without touching the engine; the output is semantically identical to
// re-derivation over the overlapping range. A larger count requires the
// original label and delegates to the engine.
func (a *Adapter) Adapt(p *Params, count int) (*Params, error) {
	if count <= 0 {
		return nil, fmt.Errorf("attribute count must be positive, got %d", count)
	}

	if count == len(p.H) {
		return p, nil
	}

	if count < len(p.H) {
		return &Params{
			Label: p.Label,
			H0:    p.H0,
			H:     p.H[:count],
		}, nil
	}

	if len(p.Label) == 0 {
		return nil, ErrMissingLabel
	}

	key := cacheKey(p.Label, count)

	if cached, err := a.cache.Get(key); err == nil {
		logger.Debugf("reusing cached parameters for %d attributes", count)

		return cached.(*Params), nil
	}

	adapted, err := Generate(a.deriver, p.Label, count)
	if err != nil {
		return nil, err
	}

	_ = a.cache.Set(key, adapted) //nolint:errcheck

	logger.Debugf("extended parameters from %d to %d attributes", len(p.H), count)

	return adapted, nil
}

func cacheKey(label []byte, count int) string {
	sum := blake2b.Sum256(label)

	return fmt.Sprintf("%x/%d", sum, count)
}
