// Package attr implements the host's columnar attribute model.
//
// One attribute is a Column: a declared tuple size plus a flat vector of
// scalars of exactly one Kind. The number of logical tuples is
// Data.Len() / TupleSize; producers keep Data.Len() a multiple of
// TupleSize by construction.
package attr

import (
	"github.com/luxalpa/houdini-node/errors"
)

// Kind identifies the scalar kind populating a Data union.
//
// The set is closed: the wire format defines exactly these kinds and the
// transcoding tables switch over them exhaustively.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindString
	KindIndex       // a point reference
	KindPrimVertex  // ragged per-primitive vertex-index lists
	KindFloatArray  // ragged per-element float lists
	KindIntArray    // ragged per-element int lists
	KindStringArray // ragged per-element string lists
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindIndex:
		return "index"
	case KindPrimVertex:
		return "prim_vertex"
	case KindFloatArray:
		return "float_array"
	case KindIntArray:
		return "int_array"
	case KindStringArray:
		return "string_array"
	default:
		return "invalid"
	}
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "float":
		return KindFloat, true
	case "int":
		return KindInt, true
	case "string":
		return KindString, true
	case "index":
		return KindIndex, true
	case "prim_vertex":
		return KindPrimVertex, true
	case "float_array":
		return KindFloatArray, true
	case "int_array":
		return KindIntArray, true
	case "string_array":
		return KindStringArray, true
	default:
		return KindInvalid, false
	}
}

// Data is a tagged union over homogeneous scalar vectors. Exactly one kind
// populates a given Data; the constructors below are the only way to build
// one.
type Data struct {
	floats       []float32
	ints         []int32
	strings      []string
	indices      []int
	primVerts    [][]int
	floatArrays  [][]float32
	intArrays    [][]int32
	stringArrays [][]string
	kind         Kind
}

// Floats builds a float column vector.
func Floats(v []float32) Data { return Data{kind: KindFloat, floats: v} }

// Ints builds an int column vector.
func Ints(v []int32) Data { return Data{kind: KindInt, ints: v} }

// Strings builds a string column vector.
func Strings(v []string) Data { return Data{kind: KindString, strings: v} }

// Indices builds a point-reference column vector.
func Indices(v []int) Data { return Data{kind: KindIndex, indices: v} }

// PrimVertices builds a per-primitive vertex-list column vector.
func PrimVertices(v [][]int) Data { return Data{kind: KindPrimVertex, primVerts: v} }

// FloatArrays builds a ragged float-list column vector.
func FloatArrays(v [][]float32) Data { return Data{kind: KindFloatArray, floatArrays: v} }

// IntArrays builds a ragged int-list column vector.
func IntArrays(v [][]int32) Data { return Data{kind: KindIntArray, intArrays: v} }

// StringArrays builds a ragged string-list column vector.
func StringArrays(v [][]string) Data { return Data{kind: KindStringArray, stringArrays: v} }

// Kind returns the populated scalar kind.
func (d Data) Kind() Kind { return d.kind }

// Len returns the flat element count.
func (d Data) Len() int {
	switch d.kind {
	case KindFloat:
		return len(d.floats)
	case KindInt:
		return len(d.ints)
	case KindString:
		return len(d.strings)
	case KindIndex:
		return len(d.indices)
	case KindPrimVertex:
		return len(d.primVerts)
	case KindFloatArray:
		return len(d.floatArrays)
	case KindIntArray:
		return len(d.intArrays)
	case KindStringArray:
		return len(d.stringArrays)
	default:
		return 0
	}
}

// IsEmpty reports whether the vector holds no elements.
func (d Data) IsEmpty() bool { return d.Len() == 0 }

func (d Data) typeErr(expected Kind) *errors.Error {
	return errors.InvalidAttrType(errors.PhaseDecode, expected.String(), d.kind.String())
}

// Floats returns the float vector, or InvalidAttributeType.
func (d Data) Floats() ([]float32, error) {
	if d.kind != KindFloat {
		return nil, d.typeErr(KindFloat)
	}
	return d.floats, nil
}

// Ints returns the int vector, or InvalidAttributeType.
func (d Data) Ints() ([]int32, error) {
	if d.kind != KindInt {
		return nil, d.typeErr(KindInt)
	}
	return d.ints, nil
}

// Strings returns the string vector, or InvalidAttributeType.
func (d Data) Strings() ([]string, error) {
	if d.kind != KindString {
		return nil, d.typeErr(KindString)
	}
	return d.strings, nil
}

// Indices returns the point-reference vector, or InvalidAttributeType.
func (d Data) Indices() ([]int, error) {
	if d.kind != KindIndex {
		return nil, d.typeErr(KindIndex)
	}
	return d.indices, nil
}

// PrimVertices returns the vertex-list vector, or InvalidAttributeType.
func (d Data) PrimVertices() ([][]int, error) {
	if d.kind != KindPrimVertex {
		return nil, d.typeErr(KindPrimVertex)
	}
	return d.primVerts, nil
}

// FloatArrays returns the ragged float-list vector, or InvalidAttributeType.
func (d Data) FloatArrays() ([][]float32, error) {
	if d.kind != KindFloatArray {
		return nil, d.typeErr(KindFloatArray)
	}
	return d.floatArrays, nil
}

// IntArrays returns the ragged int-list vector, or InvalidAttributeType.
func (d Data) IntArrays() ([][]int32, error) {
	if d.kind != KindIntArray {
		return nil, d.typeErr(KindIntArray)
	}
	return d.intArrays, nil
}

// StringArrays returns the ragged string-list vector, or InvalidAttributeType.
func (d Data) StringArrays() ([][]string, error) {
	if d.kind != KindStringArray {
		return nil, d.typeErr(KindStringArray)
	}
	return d.stringArrays, nil
}

// Attribute is one named column: a tuple arity plus the flat scalar vector.
type Attribute struct {
	TupleSize int  `json:"tuple_size"`
	Data      Data `json:"data"`
}

// Tuples returns the number of logical tuples in the column.
func (a Attribute) Tuples() int {
	if a.TupleSize <= 0 {
		return 0
	}
	return a.Data.Len() / a.TupleSize
}

// Map is one entity collection: attribute name to column. Names are unique
// by construction of the map; insertion order carries no meaning.
type Map map[string]Attribute

// Float builds a float column with the given arity.
func Float(tupleSize int, v []float32) Attribute {
	return Attribute{TupleSize: tupleSize, Data: Floats(v)}
}

// Int builds an int column with the given arity.
func Int(tupleSize int, v []int32) Attribute {
	return Attribute{TupleSize: tupleSize, Data: Ints(v)}
}

// String builds a string column with the given arity.
func String(tupleSize int, v []string) Attribute {
	return Attribute{TupleSize: tupleSize, Data: Strings(v)}
}

// Index builds a point-reference column.
func Index(v []int) Attribute {
	return Attribute{TupleSize: 1, Data: Indices(v)}
}

// PrimVertex builds a per-primitive vertex-list column.
func PrimVertex(v [][]int) Attribute {
	return Attribute{TupleSize: 1, Data: PrimVertices(v)}
}
