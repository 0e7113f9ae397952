/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package blindsign builds commitment-based signature requests for
// attributes a requester wants hidden from the signer, and validates such
// requests on the signer side before the engine's blind-sign primitive runs.
package blindsign

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/component/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

var logger = log.New("anoncreds-go/blindsign")

// Committer is the engine boundary for commitment generation: a
// Pedersen-style commitment over index-keyed encoded attributes using
// engine-provided generators.
type Committer interface {
	// RandomBlinding draws a fresh blinding factor.
	RandomBlinding() ([]byte, error)

	// Commit commits to the messages under the blinding factor.
	Commit(blinding []byte, messages map[int][]byte) ([]byte, error)
}

// BlindSigner is the engine boundary for the blind-sign primitive itself.
type BlindSigner interface {
	BlindSign(commitment []byte, known map[int][]byte, blindedIndices []int) ([]byte, error)
}

// Request asks a signer for a signature over attributes it never sees in
// plaintext.
type Request struct {
	// ID correlates the request with the eventual blind signature in
	// out-of-band exchanges. It has no cryptographic effect.
	ID string

	// Commitment is the engine-produced commitment to the hidden
	// attributes.
	Commitment []byte

	// BlindedIndices lists the canonical indices of the hidden attributes
	// in ascending order. The signer aligns the commitment with the
	// signature parameters' generator ordering through this list.
	BlindedIndices []int

	// Unblinded carries optional informational attributes the requester
	// discloses to the signer in plaintext. Advisory only; nothing is
	// committed to them.
	Unblinded attributes.Collection
}

// BuildRequest commits to the hidden attributes and assembles the request.
// When blinding is nil a fresh one is drawn from the committer; the blinding
// in use is returned alongside the request, since the requester needs it
// later to unblind the signature.
func BuildRequest(committer Committer, hidden map[int][]byte, blinding []byte,
	unblinded attributes.Collection) ([]byte, *Request, error) {
	if len(hidden) == 0 {
		return nil, nil, errors.New("at least one attribute must be hidden in a blind signature request")
	}

	if blinding == nil {
		var err error

		blinding, err = committer.RandomBlinding()
		if err != nil {
			return nil, nil, fmt.Errorf("generate blinding: %w", err)
		}
	}

	commitment, err := committer.Commit(blinding, hidden)
	if err != nil {
		return nil, nil, fmt.Errorf("commit to hidden attributes: %w", err)
	}

	indices := maps.Keys(hidden)
	slices.Sort(indices)

	req := &Request{
		ID:             uuid.New().String(),
		Commitment:     commitment,
		BlindedIndices: indices,
	}

	if len(unblinded) > 0 {
		req.Unblinded = unblinded.Clone()
	}

	logger.Debugf("built blind signature request %s over %d hidden attributes", req.ID, len(indices))

	return blinding, req, nil
}

// Sign validates a request against the shared message structure and invokes
// the engine's blind-sign primitive. The informationally-known and blinded
// indices together must cover the structure exactly; anything else signals a
// protocol-level mismatch between requester and signer.
func Sign(signer BlindSigner, req *Request, known map[int][]byte,
	structure attributes.Structure) ([]byte, error) {
	total := len(structure.Flatten())

	if len(known)+len(req.BlindedIndices) != total {
		return nil, fmt.Errorf("%d known and %d blinded attributes do not cover the %d attributes of the message structure",
			len(known), len(req.BlindedIndices), total)
	}

	blinded := make(map[int]bool, len(req.BlindedIndices))

	for _, idx := range req.BlindedIndices {
		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("blinded index %d outside the message structure range [0, %d)", idx, total)
		}

		if blinded[idx] {
			return nil, fmt.Errorf("duplicate blinded index %d", idx)
		}

		blinded[idx] = true
	}

	for idx := range known {
		if blinded[idx] {
			return nil, fmt.Errorf("attribute index %d is both known and blinded", idx)
		}

		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("known index %d outside the message structure range [0, %d)", idx, total)
		}
	}

	logger.Debugf("blind signing request %s: %d known, %d blinded attributes",
		req.ID, len(known), len(req.BlindedIndices))

	return signer.BlindSign(req.Commitment, known, req.BlindedIndices)
}
