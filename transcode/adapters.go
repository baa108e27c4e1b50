package transcode

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
)

// The adapter table: a closed set of bijections between one scalar chunk
// and one domain value. None of these perform I/O or validate geometric
// semantics; they are pure transforms over already-chunked data.
//
//	field type                chunk shape         column kind
//	float32                   1 float             float
//	int32                     1 int               int
//	string                    1 string            string
//	int                       1 index             index
//	bool                      1 int (v != 0)      int
//	[]int                     1 vertex list       prim_vertex
//	[]float32                 1 ragged list       float_array
//	[]int32                   1 ragged list       int_array
//	[]string                  1 ragged list       string_array
//	mgl32.Vec2/Vec3/Vec4      2/3/4 floats        float
//	mgl32.Quat                4 floats (x,y,z,w)  float
//	mgl32.Mat2/Mat3/Mat4      4/9/16 floats,      float
//	                          column-major
//	[N]float32/int32/string   N scalars           float/int/string
//	*T                        same as T           same as T (absent ok)

var quatType = reflect.TypeOf(mgl32.Quat{})

func floatScalar() valueCodec {
	return &codec[float32]{
		n:    1,
		get:  attr.Data.Floats,
		pack: attr.Floats,
		set:  func(dst reflect.Value, chunk []float32) { dst.SetFloat(float64(chunk[0])) },
		read: func(src reflect.Value, chunk []float32) { chunk[0] = float32(src.Float()) },
	}
}

func intScalar() valueCodec {
	return &codec[int32]{
		n:    1,
		get:  attr.Data.Ints,
		pack: attr.Ints,
		set:  func(dst reflect.Value, chunk []int32) { dst.SetInt(int64(chunk[0])) },
		read: func(src reflect.Value, chunk []int32) { chunk[0] = int32(src.Int()) },
	}
}

func stringScalar() valueCodec {
	return &codec[string]{
		n:    1,
		get:  attr.Data.Strings,
		pack: attr.Strings,
		set:  func(dst reflect.Value, chunk []string) { dst.SetString(chunk[0]) },
		read: func(src reflect.Value, chunk []string) { chunk[0] = src.String() },
	}
}

func indexScalar() valueCodec {
	return &codec[int]{
		n:    1,
		get:  attr.Data.Indices,
		pack: attr.Indices,
		set:  func(dst reflect.Value, chunk []int) { dst.SetInt(int64(chunk[0])) },
		read: func(src reflect.Value, chunk []int) { chunk[0] = int(src.Int()) },
	}
}

// boolAdapter stores booleans in an int column: nonzero decodes to true,
// true encodes to 1.
func boolAdapter() valueCodec {
	return &codec[int32]{
		n:    1,
		get:  attr.Data.Ints,
		pack: attr.Ints,
		set:  func(dst reflect.Value, chunk []int32) { dst.SetBool(chunk[0] != 0) },
		read: func(src reflect.Value, chunk []int32) {
			if src.Bool() {
				chunk[0] = 1
			} else {
				chunk[0] = 0
			}
		},
	}
}

// raggedCodec passes one ragged list through per row (arity 1 on the wire;
// the raggedness lives inside the element).
func raggedCodec[E any](get func(attr.Data) ([][]E, error), pack func([][]E) attr.Data) valueCodec {
	sliceType := reflect.TypeOf([]E(nil))
	return &codec[[]E]{
		n:    1,
		get:  get,
		pack: pack,
		set: func(dst reflect.Value, chunk [][]E) {
			dst.Set(reflect.ValueOf(chunk[0]).Convert(dst.Type()))
		},
		read: func(src reflect.Value, chunk [][]E) {
			chunk[0] = src.Convert(sliceType).Interface().([]E)
		},
	}
}

// tupleCodec groups n same-kind scalars into a Go array value, covering the
// mgl32 vector and matrix types ([N]float32 underneath, column-major for
// matrices) as well as plain [N]E fields.
func tupleCodec[E any](n int, get func(attr.Data) ([]E, error), pack func([]E) attr.Data,
	setElem func(dst reflect.Value, v E), readElem func(src reflect.Value) E) valueCodec {
	return &codec[E]{
		n:    n,
		get:  get,
		pack: pack,
		set: func(dst reflect.Value, chunk []E) {
			for i := 0; i < n; i++ {
				setElem(dst.Index(i), chunk[i])
			}
		},
		read: func(src reflect.Value, chunk []E) {
			for i := 0; i < n; i++ {
				chunk[i] = readElem(src.Index(i))
			}
		},
	}
}

func floatTuple(n int) valueCodec {
	return tupleCodec(n, attr.Data.Floats, attr.Floats,
		func(dst reflect.Value, v float32) { dst.SetFloat(float64(v)) },
		func(src reflect.Value) float32 { return float32(src.Float()) })
}

func intTuple(n int) valueCodec {
	return tupleCodec(n, attr.Data.Ints, attr.Ints,
		func(dst reflect.Value, v int32) { dst.SetInt(int64(v)) },
		func(src reflect.Value) int32 { return int32(src.Int()) })
}

func stringTuple(n int) valueCodec {
	return tupleCodec(n, attr.Data.Strings, attr.Strings,
		func(dst reflect.Value, v string) { dst.SetString(v) },
		func(src reflect.Value) string { return src.String() })
}

func indexTuple(n int) valueCodec {
	return tupleCodec(n, attr.Data.Indices, attr.Indices,
		func(dst reflect.Value, v int) { dst.SetInt(int64(v)) },
		func(src reflect.Value) int { return int(src.Int()) })
}

// quatAdapter maps four floats in x,y,z,w order onto mgl32.Quat, which
// stores W first.
func quatAdapter() valueCodec {
	return &codec[float32]{
		n:    4,
		get:  attr.Data.Floats,
		pack: attr.Floats,
		set: func(dst reflect.Value, chunk []float32) {
			q := mgl32.Quat{W: chunk[3], V: mgl32.Vec3{chunk[0], chunk[1], chunk[2]}}
			dst.Set(reflect.ValueOf(q))
		},
		read: func(src reflect.Value, chunk []float32) {
			q := src.Interface().(mgl32.Quat)
			chunk[0], chunk[1], chunk[2], chunk[3] = q.V[0], q.V[1], q.V[2], q.W
		},
	}
}

// adapterFor selects the codec for a row field type. The set is closed;
// anything else is a compile-phase error.
func adapterFor(t reflect.Type) (valueCodec, error) {
	switch t.Kind() {
	case reflect.Float32:
		return floatScalar(), nil
	case reflect.Int32:
		return intScalar(), nil
	case reflect.String:
		return stringScalar(), nil
	case reflect.Int:
		return indexScalar(), nil
	case reflect.Bool:
		return boolAdapter(), nil

	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Pointer {
			return nil, errors.Unsupported(errors.PhaseCompile,
				"nested optional "+t.String()+" has no column representation")
		}
		inner, err := adapterFor(t.Elem())
		if err != nil {
			return nil, err
		}
		return &optionalCodec{inner: inner, elem: t.Elem()}, nil

	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Int:
			return raggedCodec(attr.Data.PrimVertices, attr.PrimVertices), nil
		case reflect.Float32:
			return raggedCodec(attr.Data.FloatArrays, attr.FloatArrays), nil
		case reflect.Int32:
			return raggedCodec(attr.Data.IntArrays, attr.IntArrays), nil
		case reflect.String:
			return raggedCodec(attr.Data.StringArrays, attr.StringArrays), nil
		}

	case reflect.Struct:
		if t == quatType {
			return quatAdapter(), nil
		}

	case reflect.Array:
		switch t.Elem().Kind() {
		case reflect.Float32:
			return floatTuple(t.Len()), nil
		case reflect.Int32:
			return intTuple(t.Len()), nil
		case reflect.String:
			return stringTuple(t.Len()), nil
		case reflect.Int:
			return indexTuple(t.Len()), nil
		}
	}

	return nil, errors.Unsupported(errors.PhaseCompile,
		"no attribute adapter for field type "+t.String())
}
