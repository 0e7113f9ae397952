/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
	"github.com/docknetwork/anoncreds-go/pkg/presentation"
)

// Three credentials carry the holder's last name at different nesting
// depths. One link must assert equality across all three without anyone
// hand-counting indices.
func TestLinkEqualityAcrossStructures(t *testing.T) {
	flat := attributes.Structure{
		"fname": attributes.Placeholder{},
		"lname": attributes.Placeholder{},
	}

	nested := attributes.Structure{
		"fname": attributes.Placeholder{},
		"sensitive": attributes.Structure{
			"lname": attributes.Placeholder{},
			"SSN":   attributes.Placeholder{},
		},
	}

	profile := attributes.Structure{
		"profile": attributes.Structure{
			"lname": attributes.Placeholder{},
			"age":   attributes.Placeholder{},
		},
		"issued": attributes.Placeholder{},
	}

	link, err := presentation.LinkEquality([]presentation.StatementAttributes{
		{Statement: 0, Names: []string{"lname"}, Structure: flat},
		{Statement: 1, Names: []string{"sensitive.lname"}, Structure: nested},
		{Statement: 2, Names: []string{"profile.lname"}, Structure: profile},
	})
	require.NoError(t, err)
	require.Len(t, link, 3)

	// flat: [fname, lname] -> 1
	// nested: [fname, sensitive.SSN, sensitive.lname] -> 2
	// profile: [issued, profile.age, profile.lname] -> 2
	require.Equal(t, presentation.EqualityLink{
		{StatementIndex: 0, AttributeIndex: 1},
		{StatementIndex: 1, AttributeIndex: 2},
		{StatementIndex: 2, AttributeIndex: 2},
	}, link)
}

func TestLinkEqualityUnknownName(t *testing.T) {
	flat := attributes.Structure{
		"fname": attributes.Placeholder{},
		"lname": attributes.Placeholder{},
	}

	_, err := presentation.LinkEquality([]presentation.StatementAttributes{
		{Statement: 0, Names: []string{"lname"}, Structure: flat},
		{Statement: 4, Names: []string{"middleName"}, Structure: flat},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, attributes.ErrUnknownAttribute)
	require.Contains(t, err.Error(), "statement 4")
}

func TestLinkEqualityTooFewReferences(t *testing.T) {
	flat := attributes.Structure{
		"lname": attributes.Placeholder{},
	}

	_, err := presentation.LinkEquality([]presentation.StatementAttributes{
		{Statement: 0, Names: []string{"lname"}, Structure: flat},
	})
	require.Error(t, err)
}

func TestLinkEqualityNoNames(t *testing.T) {
	flat := attributes.Structure{
		"lname": attributes.Placeholder{},
	}

	_, err := presentation.LinkEquality([]presentation.StatementAttributes{
		{Statement: 0, Names: nil, Structure: flat},
		{Statement: 1, Names: []string{"lname"}, Structure: flat},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "statement 0")
}

func TestMetaStatementsIndependentLinks(t *testing.T) {
	s := attributes.Structure{
		"lname": attributes.Placeholder{},
		"SSN":   attributes.Placeholder{},
	}

	var meta presentation.MetaStatements

	lnameLink, err := meta.AddWitnessEquality(
		presentation.StatementAttributes{Statement: 0, Names: []string{"lname"}, Structure: s},
		presentation.StatementAttributes{Statement: 1, Names: []string{"lname"}, Structure: s},
	)
	require.NoError(t, err)

	ssnLink, err := meta.AddWitnessEquality(
		presentation.StatementAttributes{Statement: 0, Names: []string{"SSN"}, Structure: s},
		presentation.StatementAttributes{Statement: 1, Names: []string{"SSN"}, Structure: s},
	)
	require.NoError(t, err)

	require.Len(t, meta.Links, 2)
	require.Equal(t, lnameLink, meta.Links[0])
	require.Equal(t, ssnLink, meta.Links[1])
	require.NotEqual(t, lnameLink, ssnLink)
}
