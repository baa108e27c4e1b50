package attr

import (
	"encoding/json"

	"github.com/luxalpa/houdini-node/codec"
	"github.com/luxalpa/houdini-node/errors"
)

// The wire shape of a Data is a single-key object tagging the scalar kind:
//
//	{"float": [0.0, 1.5, ...]}
//	{"prim_vertex": [[0, 1, 2], [2, 3]]}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// MarshalJSON encodes the union as its single-key wire object.
func (d Data) MarshalJSON() ([]byte, error) {
	var payload any
	switch d.kind {
	case KindFloat:
		payload = nonNil(d.floats)
	case KindInt:
		payload = nonNil(d.ints)
	case KindString:
		payload = nonNil(d.strings)
	case KindIndex:
		payload = nonNil(d.indices)
	case KindPrimVertex:
		payload = nonNil(d.primVerts)
	case KindFloatArray:
		payload = nonNil(d.floatArrays)
	case KindIntArray:
		payload = nonNil(d.intArrays)
	case KindStringArray:
		payload = nonNil(d.stringArrays)
	default:
		return nil, errors.InvalidData(errors.PhaseTransport, "attribute data has no populated kind")
	}
	return codec.Default.Marshal(map[string]any{d.kind.String(): payload})
}

// UnmarshalJSON decodes the single-key wire object, rejecting payloads that
// populate zero or more than one kind.
func (d *Data) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := codec.Default.Unmarshal(b, &m); err != nil {
		return errors.Transport(err, "parse attribute data")
	}
	if len(m) != 1 {
		return errors.InvalidData(errors.PhaseTransport,
			"attribute data must populate exactly one kind")
	}

	for name, raw := range m {
		kind, ok := ParseKind(name)
		if !ok {
			return errors.InvalidData(errors.PhaseTransport,
				"unknown attribute data kind "+name)
		}

		var err error
		switch kind {
		case KindFloat:
			var v []float32
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = Floats(v)
			}
		case KindInt:
			var v []int32
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = Ints(v)
			}
		case KindString:
			var v []string
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = Strings(v)
			}
		case KindIndex:
			var v []int
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = Indices(v)
			}
		case KindPrimVertex:
			var v [][]int
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = PrimVertices(v)
			}
		case KindFloatArray:
			var v [][]float32
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = FloatArrays(v)
			}
		case KindIntArray:
			var v [][]int32
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = IntArrays(v)
			}
		case KindStringArray:
			var v [][]string
			if err = codec.Default.Unmarshal(raw, &v); err == nil {
				*d = StringArrays(v)
			}
		}
		if err != nil {
			return errors.Transport(err, "parse "+name+" attribute data")
		}
	}
	return nil
}
