/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

// maxDecimalPlaces bounds the declarable precision; beyond 15 places a
// float64 can no longer represent every value of the domain exactly.
const maxDecimalPlaces = 15

type positiveDecimalEncoder struct {
	places int
}

// PositiveDecimal returns an encoder for non-negative decimal numbers with
// at most places decimal digits. The value is scaled by 10^places and the
// integral result is positive-integer encoded.
func PositiveDecimal(places int) (AttributeEncoder, error) {
	if places < 1 || places > maxDecimalPlaces {
		return nil, fmt.Errorf("decimal places must be between 1 and %d, got %d", maxDecimalPlaces, places)
	}

	return positiveDecimalEncoder{places: places}, nil
}

func (e positiveDecimalEncoder) Encode(v attributes.Value) ([]byte, error) {
	d, ok := v.(attributes.Decimal)
	if !ok {
		return nil, fmt.Errorf("positive decimal encoder: expected decimal, got %T", v)
	}

	f := float64(d)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("positive decimal encoder: non-finite value")
	}

	if f < 0 {
		return nil, fmt.Errorf("positive decimal encoder: negative value %v", f)
	}

	if p := decimalPlaces(f); p > e.places {
		return nil, fmt.Errorf("positive decimal encoder: value %v has %d decimal places, at most %d allowed",
			f, p, e.places)
	}

	return frFromUint64(scaleDecimal(f, e.places)).ToBytes(), nil
}

type decimalEncoder struct {
	minimum float64
	places  int
}

// Decimal returns an encoder for signed decimal numbers: the composition of
// the offset-integer and positive-decimal encodings. Values below minimum or
// with more than places decimal digits are rejected.
func Decimal(minimum float64, places int) (AttributeEncoder, error) {
	if places < 1 || places > maxDecimalPlaces {
		return nil, fmt.Errorf("decimal places must be between 1 and %d, got %d", maxDecimalPlaces, places)
	}

	if math.IsNaN(minimum) || math.IsInf(minimum, 0) {
		return nil, fmt.Errorf("decimal minimum must be finite")
	}

	if p := decimalPlaces(minimum); p > places {
		return nil, fmt.Errorf("decimal minimum %v has %d decimal places, at most %d allowed", minimum, p, places)
	}

	return decimalEncoder{minimum: minimum, places: places}, nil
}

func (e decimalEncoder) Encode(v attributes.Value) ([]byte, error) {
	d, ok := v.(attributes.Decimal)
	if !ok {
		return nil, fmt.Errorf("decimal encoder: expected decimal, got %T", v)
	}

	f := float64(d)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("decimal encoder: non-finite value")
	}

	if f < e.minimum {
		return nil, fmt.Errorf("decimal encoder: value %v below minimum %v", f, e.minimum)
	}

	if p := decimalPlaces(f); p > e.places {
		return nil, fmt.Errorf("decimal encoder: value %v has %d decimal places, at most %d allowed",
			f, p, e.places)
	}

	return frFromUint64(scaleDecimal(f+math.Abs(e.minimum), e.places)).ToBytes(), nil
}

// decimalPlaces counts the decimal digits in the shortest exact decimal
// rendering of f.
func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)

	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}

	return 0
}

// scaleDecimal multiplies f by 10^places. f is known to carry at most that
// many decimal digits, so the scaled value is integral; rounding absorbs the
// binary representation error.
func scaleDecimal(f float64, places int) uint64 {
	return uint64(math.Round(f * math.Pow10(places)))
}
