/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoder

import (
	"fmt"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

type positiveIntegerEncoder struct{}

// PositiveInteger returns an encoder for non-negative integers. The integer
// is encoded directly as a field element.
func PositiveInteger() AttributeEncoder {
	return positiveIntegerEncoder{}
}

func (positiveIntegerEncoder) Encode(v attributes.Value) ([]byte, error) {
	i, ok := v.(attributes.Integer)
	if !ok {
		return nil, fmt.Errorf("positive integer encoder: expected integer, got %T", v)
	}

	if i < 0 {
		return nil, fmt.Errorf("positive integer encoder: negative value %d", i)
	}

	return frFromUint64(uint64(i)).ToBytes(), nil
}

type offsetIntegerEncoder struct {
	minimum int64
}

// OffsetInteger returns an encoder for integers greater than or equal to
// minimum. The absolute value of minimum is added before positive-integer
// encoding, so the full declared range maps onto non-negative scalars.
func OffsetInteger(minimum int64) AttributeEncoder {
	return offsetIntegerEncoder{minimum: minimum}
}

func (e offsetIntegerEncoder) Encode(v attributes.Value) ([]byte, error) {
	i, ok := v.(attributes.Integer)
	if !ok {
		return nil, fmt.Errorf("offset integer encoder: expected integer, got %T", v)
	}

	if int64(i) < e.minimum {
		return nil, fmt.Errorf("offset integer encoder: value %d below minimum %d", i, e.minimum)
	}

	return frFromUint64(offsetUint64(int64(i), e.minimum)).ToBytes(), nil
}

// offsetUint64 computes v + |minimum| without int64 overflow.
func offsetUint64(v, minimum int64) uint64 {
	var off uint64
	if minimum < 0 {
		off = uint64(-(minimum + 1)) + 1
	} else {
		off = uint64(minimum)
	}

	if v >= 0 {
		return uint64(v) + off
	}

	return off - (uint64(-(v + 1)) + 1)
}

type booleanEncoder struct{}

// Boolean returns an encoder mapping false/true to the positive integers
// 0/1.
func Boolean() AttributeEncoder {
	return booleanEncoder{}
}

func (booleanEncoder) Encode(v attributes.Value) ([]byte, error) {
	b, ok := v.(attributes.Bool)
	if !ok {
		return nil, fmt.Errorf("boolean encoder: expected boolean, got %T", v)
	}

	var u uint64
	if b {
		u = 1
	}

	return frFromUint64(u).ToBytes(), nil
}
