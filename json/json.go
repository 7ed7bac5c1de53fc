package json

import (
	"bytes"
	"io"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON. Map keys are sorted.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// NewDecoder creates a streaming decoder.
func NewDecoder(r io.Reader) Decoder {
	return api.NewDecoder(r)
}

// Decoder is a JSON decoder.
type Decoder = sonic.Decoder

// DecodeObject decodes a single JSON object. Numbers are kept as
// [encoding/json.Number] so integers survive without a float round trip.
// A literal null, or blank input, yields a nil map.
func DecodeObject(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var v any
	dec := NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "json: decode object")
	}
	if dec.More() {
		return nil, errors.New("json: trailing data after object")
	}

	switch obj := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return obj, nil
	default:
		return nil, errors.Newf("json: expected an object, got %T", v)
	}
}
