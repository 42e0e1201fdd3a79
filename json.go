package goclone

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// DeepCopyJSON copies v by encoding it to JSON and decoding into a fresh T.
// The result never shares storage with v, but only state visible to JSON
// survives: unexported fields are dropped unless T implements json.Marshaler
// and json.Unmarshaler, interface values decode as generic JSON values, and
// shared references become separate objects.
func DeepCopyJSON[T any](v T) (T, error) {
	var out T
	data, err := gojson.Marshal(v)
	if err != nil {
		return out, Issues{Root().Issue(CodeCodec, fmt.Sprintf("encode: %v", err), "stage", "encode").withCause(err)}
	}
	if err := gojson.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, Issues{Root().Issue(CodeCodec, fmt.Sprintf("decode: %v", err), "stage", "decode").withCause(err)}
	}
	return out, nil
}

func (it Issue) withCause(err error) Issue {
	it.Cause = err
	return it
}
