/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoder

import (
	"fmt"
	"strconv"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

type defaultStringEncoder struct{}

// Default returns the irreversible fallback encoder: any scalar value is
// stringified and hashed into a field element. Suitable as the registry-wide
// default for free-form attributes.
func Default() AttributeEncoder {
	return defaultStringEncoder{}
}

func (defaultStringEncoder) Encode(v attributes.Value) ([]byte, error) {
	s, err := stringify(v)
	if err != nil {
		return nil, err
	}

	return frFromOKM(s).ToBytes(), nil
}

func stringify(v attributes.Value) ([]byte, error) {
	switch t := v.(type) {
	case attributes.String:
		return []byte(t), nil
	case attributes.Bytes:
		return t, nil
	case attributes.Integer:
		return []byte(strconv.FormatInt(int64(t), 10)), nil
	case attributes.Decimal:
		return []byte(strconv.FormatFloat(float64(t), 'f', -1, 64)), nil
	case attributes.Bool:
		return []byte(strconv.FormatBool(bool(t))), nil
	default:
		return nil, fmt.Errorf("default encoder: cannot encode %T, expected a scalar attribute", v)
	}
}
