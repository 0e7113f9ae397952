/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

type reversibleStringEncoder struct {
	compress bool
}

// ReversibleString returns an encoder that packs a string's bytes into the
// fixed-width buffer, left-aligned and zero-padded, so the original value
// can later be recovered with DecodeReversibleString. With compress set, the
// bytes are deflate-compressed before packing. Strings whose (compressed)
// byte length exceeds EncodedLength are rejected.
func ReversibleString(compress bool) AttributeEncoder {
	return reversibleStringEncoder{compress: compress}
}

func (e reversibleStringEncoder) Encode(v attributes.Value) ([]byte, error) {
	s, ok := v.(attributes.String)
	if !ok {
		return nil, fmt.Errorf("reversible string encoder: expected string, got %T", v)
	}

	b := []byte(s)

	if e.compress {
		var err error

		b, err = deflate(b)
		if err != nil {
			return nil, fmt.Errorf("reversible string encoder: %w", err)
		}
	}

	if len(b) > EncodedLength {
		return nil, fmt.Errorf("reversible string encoder: encoded length %d exceeds %d bytes", len(b), EncodedLength)
	}

	buf := make([]byte, EncodedLength)
	copy(buf, b)

	return buf, nil
}

// DecodeReversibleString recovers the string packed by ReversibleString.
// Without compression the buffer is trimmed at the first zero byte; a string
// containing an intentional embedded zero character therefore does not
// survive the round trip. This is a known limitation of the packing format,
// kept as-is.
func DecodeReversibleString(buf []byte, compressed bool) (string, error) {
	if len(buf) != EncodedLength {
		return "", fmt.Errorf("reversible string decoder: expected %d bytes, got %d", EncodedLength, len(buf))
	}

	if compressed {
		r := flate.NewReader(bytes.NewReader(buf))
		defer r.Close() //nolint:errcheck

		out, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("reversible string decoder: %w", err)
		}

		if len(out) > EncodedLength {
			return "", fmt.Errorf("reversible string decoder: decompressed length %d exceeds %d bytes",
				len(out), EncodedLength)
		}

		return string(out), nil
	}

	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		end = len(buf)
	}

	return string(buf[:end]), nil
}

func deflate(b []byte) ([]byte, error) {
	var out bytes.Buffer

	w, err := flate.NewWriter(&out, flate.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err = w.Write(b); err != nil {
		return nil, err
	}

	if err = w.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
