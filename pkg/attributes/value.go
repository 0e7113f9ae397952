/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package attributes defines the typed attribute model shared by credential
// signers, provers and verifiers: nested attribute collections, value-free
// message structures and the canonical name/index scheme derived from them.
//
// All parties must agree on attribute positions without communicating index
// assignments. The only coordination point is the message structure, from
// which every party independently derives the same lexicographic ordering of
// dotted attribute names.
package attributes

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

// Value is a single attribute value. It is a closed variant: the concrete
// types below are the only implementations.
type Value interface {
	isValue()
}

// String is a free-form text attribute.
type String string

// Integer is a whole-number attribute.
type Integer int64

// Decimal is a fractional-number attribute.
type Decimal float64

// Bytes is a raw byte attribute. It is the only value kind accepted by the
// encoder's generic fallback.
type Bytes []byte

// Bool is a true/false attribute.
type Bool bool

// Collection is a nested attribute collection. It must be tree-shaped; the
// caller contract forbids cycles.
type Collection map[string]Value

// List is an ordered attribute sequence. Its elements flatten to indexed
// sub-paths (`key.0`, `key.1`, ...).
type List []Value

func (String) isValue()     {}
func (Integer) isValue()    {}
func (Decimal) isValue()    {}
func (Bytes) isValue()      {}
func (Bool) isValue()       {}
func (Collection) isValue() {}
func (List) isValue()       {}

// Clone returns a deep copy of the collection. Nested collections and lists
// are copied recursively, so mutating the original afterwards cannot reach
// the clone.
func (c Collection) Clone() Collection {
	clone := make(Collection, len(c))

	for k, v := range c {
		clone[k] = cloneValue(v)
	}

	return clone
}

func cloneValue(v Value) Value {
	switch t := v.(type) {
	case Collection:
		return t.Clone()
	case List:
		l := make(List, len(t))

		for i, cv := range t {
			l[i] = cloneValue(cv)
		}

		return l
	case Bytes:
		b := make(Bytes, len(t))
		copy(b, t)

		return b
	default:
		return v
	}
}

// FromStruct builds a Collection from an application struct or map, using
// mapstructure field resolution. Numeric fields become Integer when the Go
// type is integral and Decimal otherwise.
func FromStruct(v interface{}) (Collection, error) {
	var raw map[string]interface{}

	if err := mapstructure.Decode(v, &raw); err != nil {
		return nil, fmt.Errorf("decode attribute struct: %w", err)
	}

	c := make(Collection, len(raw))

	for k, rv := range raw {
		value, err := valueOf(rv)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}

		c[k] = value
	}

	return c, nil
}

//nolint:gocyclo
func valueOf(v interface{}) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Integer(t), nil
	case int8:
		return Integer(t), nil
	case int16:
		return Integer(t), nil
	case int32:
		return Integer(t), nil
	case int64:
		return Integer(t), nil
	case uint:
		return Integer(t), nil
	case uint8:
		return Integer(t), nil
	case uint16:
		return Integer(t), nil
	case uint32:
		return Integer(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("integer attribute %d overflows int64", t)
		}

		return Integer(t), nil
	case float32:
		return Decimal(t), nil
	case float64:
		return Decimal(t), nil
	case []byte:
		return Bytes(t), nil
	case map[string]interface{}:
		c := make(Collection, len(t))

		for k, cv := range t {
			value, err := valueOf(cv)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}

			c[k] = value
		}

		return c, nil
	case []interface{}:
		l := make(List, len(t))

		for i, cv := range t {
			value, err := valueOf(cv)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			l[i] = value
		}

		return l, nil
	default:
		return nil, fmt.Errorf("unsupported attribute type %T", v)
	}
}
