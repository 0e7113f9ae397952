/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package encoder turns typed attribute values into the fixed-width field
// elements the signature engine consumes. An Encoder is a write-once registry
// mapping canonical attribute names to encoding functions, with an optional
// registry-wide default.
//
// Two encoding classes exist: irreversible encodings hash the value into a
// scalar, reversible encodings pack the value's bytes so the original can be
// recovered later (for example for verifiable encryption).
package encoder

import (
	"errors"
	"fmt"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

// EncodedLength is the size of every encoded attribute. The engine treats
// such a buffer as an opaque field element.
const EncodedLength = 32

// AttributeEncoder encodes one attribute value into an EncodedLength buffer.
// Implementations are total over their declared domain and fail on anything
// outside it; callers depend on fail-fast behavior rather than coercion.
type AttributeEncoder interface {
	Encode(v attributes.Value) ([]byte, error)
}

// EncodingError reports an encoding-domain violation for a named attribute.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode attribute %q: %s", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Encoder resolves attribute names to encoding functions. The function table
// is fixed at construction and read-only thereafter.
type Encoder struct {
	attrs map[string]AttributeEncoder
	deflt AttributeEncoder
}

// Option configures an Encoder at construction.
type Option func(*Encoder)

// WithAttribute registers an encoding function for one canonical name.
func WithAttribute(name string, enc AttributeEncoder) Option {
	return func(e *Encoder) {
		e.attrs[name] = enc
	}
}

// WithDefault sets the fallback encoding function used for names without a
// registered entry.
func WithDefault(enc AttributeEncoder) Option {
	return func(e *Encoder) {
		e.deflt = enc
	}
}

// New creates an Encoder. At least one per-name encoder or a default must be
// supplied; an empty registry is a configuration error.
func New(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		attrs: make(map[string]AttributeEncoder),
	}

	for _, opt := range opts {
		opt(e)
	}

	if len(e.attrs) == 0 && e.deflt == nil {
		return nil, errors.New("encoder requires at least one attribute encoder or a default")
	}

	return e, nil
}

// Encode encodes the value of the named attribute. Resolution order: the
// per-name encoder, then the default, then — only when strict is false and
// the value is already byte-shaped — the generic irreversible encoding.
// Anything else is an encoding error naming the attribute.
func (e *Encoder) Encode(name string, v attributes.Value, strict bool) ([]byte, error) {
	if enc, ok := e.attrs[name]; ok {
		return e.runEncoder(name, enc, v)
	}

	if e.deflt != nil {
		return e.runEncoder(name, e.deflt, v)
	}

	if !strict {
		if b, ok := v.(attributes.Bytes); ok {
			return frFromOKM(b).ToBytes(), nil
		}
	}

	return nil, &EncodingError{Name: name, Err: errors.New("no encoder registered")}
}

func (e *Encoder) runEncoder(name string, enc AttributeEncoder, v attributes.Value) ([]byte, error) {
	encoded, err := enc.Encode(v)
	if err != nil {
		return nil, &EncodingError{Name: name, Err: err}
	}

	return encoded, nil
}

// EncodeCollection flattens the collection and encodes every leaf, returning
// the sorted canonical names and the aligned encoded values. This is the
// signer/prover input path.
func (e *Encoder) EncodeCollection(c attributes.Collection, strict bool) ([]string, [][]byte, error) {
	names, values := attributes.Flatten(c)

	encoded := make([][]byte, len(names))

	for i, name := range names {
		b, err := e.Encode(name, values[i], strict)
		if err != nil {
			return nil, nil, err
		}

		encoded[i] = b
	}

	return names, encoded, nil
}
