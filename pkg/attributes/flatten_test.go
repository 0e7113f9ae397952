/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

func testCollection() attributes.Collection {
	return attributes.Collection{
		"fname": attributes.String("John"),
		"lname": attributes.String("Smith"),
		"sensitive": attributes.Collection{
			"email": attributes.String("john.smith@example.com"),
			"SSN":   attributes.String("123-456789-0"),
		},
		"physical": attributes.Collection{
			"height": attributes.Decimal(181.5),
			"weight": attributes.Decimal(78.25),
		},
		"scores": attributes.List{
			attributes.Integer(90),
			attributes.Integer(85),
		},
		"verified": attributes.Bool(true),
	}
}

func TestFlatten(t *testing.T) {
	names, values := attributes.Flatten(testCollection())

	expectedNames := []string{
		"fname",
		"lname",
		"physical.height",
		"physical.weight",
		"scores.0",
		"scores.1",
		"sensitive.SSN",
		"sensitive.email",
		"verified",
	}
	require.Equal(t, expectedNames, names)
	require.Len(t, values, len(names))

	require.Equal(t, attributes.String("John"), values[0])
	require.Equal(t, attributes.Decimal(78.25), values[3])
	require.Equal(t, attributes.Integer(85), values[5])
	require.Equal(t, attributes.String("123-456789-0"), values[6])
	require.Equal(t, attributes.Bool(true), values[8])
}

func TestFlattenSkipsListHoles(t *testing.T) {
	names, values := attributes.Flatten(attributes.Collection{
		"scores": attributes.List{
			nil,
			attributes.Integer(85),
		},
	})

	require.Equal(t, []string{"scores.1"}, names)
	require.Equal(t, []attributes.Value{attributes.Integer(85)}, values)
}

func TestFlattenDeterminism(t *testing.T) {
	names1, values1 := attributes.Flatten(testCollection())
	names2, values2 := attributes.Flatten(testCollection())

	require.Equal(t, names1, names2)
	require.Equal(t, values1, values2)
}

func TestFlattenAgreesWithStructure(t *testing.T) {
	c := testCollection()

	names, _ := attributes.Flatten(c)
	structNames := attributes.StructureOf(c).Flatten()

	require.Equal(t, structNames, names)
}

func TestCollectionClone(t *testing.T) {
	original := attributes.Collection{
		"name": attributes.String("John"),
		"physical": attributes.Collection{
			"height": attributes.Decimal(181.5),
		},
		"scores": attributes.List{
			attributes.Integer(90),
		},
		"key": attributes.Bytes{0x01, 0x02},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	original["physical"].(attributes.Collection)["height"] = attributes.Decimal(170)
	original["scores"].(attributes.List)[0] = attributes.Integer(0)
	original["key"].(attributes.Bytes)[0] = 0xff

	require.Equal(t, attributes.Decimal(181.5), clone["physical"].(attributes.Collection)["height"])
	require.Equal(t, attributes.Integer(90), clone["scores"].(attributes.List)[0])
	require.Equal(t, attributes.Bytes{0x01, 0x02}, clone["key"])
}

func TestFromStruct(t *testing.T) {
	type physical struct {
		Height float64 `mapstructure:"height"`
		Weight float64 `mapstructure:"weight"`
	}

	type person struct {
		FName    string   `mapstructure:"fname"`
		Age      int      `mapstructure:"age"`
		Physical physical `mapstructure:"physical"`
	}

	c, err := attributes.FromStruct(&person{
		FName: "John",
		Age:   25,
		Physical: physical{
			Height: 181.5,
			Weight: 78.25,
		},
	})
	require.NoError(t, err)

	names, values := attributes.Flatten(c)
	require.Equal(t, []string{"age", "fname", "physical.height", "physical.weight"}, names)
	require.Equal(t, attributes.Integer(25), values[0])
	require.Equal(t, attributes.String("John"), values[1])
	require.Equal(t, attributes.Decimal(181.5), values[2])
}
