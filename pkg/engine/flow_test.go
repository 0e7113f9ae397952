/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
	"github.com/docknetwork/anoncreds-go/pkg/blindsign"
	"github.com/docknetwork/anoncreds-go/pkg/disclosure"
	"github.com/docknetwork/anoncreds-go/pkg/encoder"
	"github.com/docknetwork/anoncreds-go/pkg/engine"
	"github.com/docknetwork/anoncreds-go/pkg/sigparams"
)

type capturingSigner struct {
	indices []int
}

func (s *capturingSigner) BlindSign(commitment []byte, known map[int][]byte, blindedIndices []int) ([]byte, error) {
	s.indices = blindedIndices

	return []byte("blind-signature"), nil
}

// Full requester/signer round over the real engine: encode a collection,
// partition it, commit to the hidden part and validate the request against
// the shared structure.
func TestBlindSigningFlow(t *testing.T) {
	c := attributes.Collection{
		"fname": attributes.String("John"),
		"lname": attributes.String("Smith"),
		"sensitive": attributes.Collection{
			"SSN": attributes.String("123-456789-0"),
		},
	}

	structure := attributes.StructureOf(c)
	total := len(structure.Flatten())

	enc, err := encoder.New(encoder.WithDefault(encoder.Default()))
	require.NoError(t, err)

	// The requester hides the SSN and last name from the signer.
	parts, err := disclosure.Partition(c, []string{"fname"}, enc)
	require.NoError(t, err)
	require.Len(t, parts.Hidden, total-1)

	params, err := sigparams.Generate(engine.NewDeriver(), []byte("issuer-params-v1"), total)
	require.NoError(t, err)

	committer, err := engine.NewPedersenCommitter(append([][]byte{params.H0}, params.H...))
	require.NoError(t, err)

	blinding, req, err := blindsign.BuildRequest(committer, parts.Hidden, nil, parts.RevealedRaw)
	require.NoError(t, err)
	require.NotEmpty(t, blinding)

	signer := &capturingSigner{}

	sig, err := blindsign.Sign(signer, req, parts.Revealed, structure)
	require.NoError(t, err)
	require.Equal(t, []byte("blind-signature"), sig)
	require.Equal(t, req.BlindedIndices, signer.indices)
}
