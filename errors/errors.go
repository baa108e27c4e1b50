package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a conversion the error occurred
type Phase string

const (
	PhaseCompile   Phase = "compile"   // row-struct plan construction
	PhaseDecode    Phase = "decode"    // columns to rows
	PhaseEncode    Phase = "encode"    // rows to columns
	PhaseAssemble  Phase = "assemble"  // geometry-level assembly and remap
	PhaseTransport Phase = "transport" // wire payload I/O
	PhaseRuntime   Phase = "runtime"   // node entry point
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidAttrType      Kind = "invalid_attribute_type"
	KindInvalidAttrLength    Kind = "invalid_attribute_length"
	KindMissingAttr          Kind = "missing_attr"
	KindNoDetail             Kind = "no_detail"
	KindGeometryMissing      Kind = "geometry_missing"
	KindRowCountMismatch     Kind = "row_count_mismatch"
	KindMissingOutPrimVerts  Kind = "missing_out_prim_vertices"
	KindMissingOutVertPtnums Kind = "missing_out_vertex_ptnums"
	KindInvalidOutVertPtnum  Kind = "invalid_out_vertex_ptnum"
	KindInvalidOutPrimVertex Kind = "invalid_out_prim_vertex"
	KindAttrNameCollision    Kind = "attr_name_collision"
	KindUnsupported          Kind = "unsupported"
	KindInvalidData          Kind = "invalid_data"
	KindUser                 Kind = "user"
)

// Entity is the geometry entity kind an error refers to.
type Entity string

const (
	EntityPoint  Entity = "point"
	EntityVertex Entity = "vertex"
	EntityPrim   Entity = "prim"
	EntityDetail Entity = "detail"
)

// Error is the structured error type used throughout the library.
//
// InputIndex and Index use -1 as "not set" so that slot 0 and vertex 0
// remain representable.
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Entity     Entity
	Attr       string
	Expected   string
	Actual     string
	Detail     string
	InputIndex int
	Index      int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.InputIndex >= 0 {
		fmt.Fprintf(&b, " (input %d)", e.InputIndex)
	}
	if e.Entity != "" {
		b.WriteString(" at ")
		b.WriteString(string(e.Entity))
		if e.Attr != "" {
			b.WriteByte('.')
			b.WriteString(e.Attr)
		}
	} else if e.Attr != "" {
		b.WriteString(" at ")
		b.WriteString(e.Attr)
	}

	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, ": expected %s, actual %s", e.Expected, e.Actual)
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err or any error it wraps is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:      phase,
			Kind:       kind,
			InputIndex: -1,
			Index:      -1,
		},
	}
}

// Entity sets the entity kind
func (b *Builder) Entity(e Entity) *Builder {
	b.err.Entity = e
	return b
}

// Input sets the batch input index
func (b *Builder) Input(i int) *Builder {
	b.err.InputIndex = i
	return b
}

// Attr sets the attribute name
func (b *Builder) Attr(name string) *Builder {
	b.err.Attr = name
	return b
}

// Index sets the offending index value
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Expected sets the expected shape description
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Actual sets the actual shape description
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the conversion error taxonomy

// InvalidAttrType creates a column scalar-kind mismatch error
func InvalidAttrType(phase Phase, expected, actual string) *Error {
	return New(phase, KindInvalidAttrType).
		Expected(expected).
		Actual(actual).
		Build()
}

// InvalidAttrLength creates a tuple-size mismatch error
func InvalidAttrLength(phase Phase, expected, actual int) *Error {
	return New(phase, KindInvalidAttrLength).
		Expected(fmt.Sprintf("tuple_size %d", expected)).
		Actual(fmt.Sprintf("tuple_size %d", actual)).
		Build()
}

// MissingAttr creates a missing required attribute error
func MissingAttr(inputIndex int, entity Entity, attr string) *Error {
	return New(PhaseDecode, KindMissingAttr).
		Input(inputIndex).
		Entity(entity).
		Attr(attr).
		Detail("input %d missing %s attribute %q", inputIndex, entity, attr).
		Build()
}

// NoDetail creates an error for a detail collection with no row and no default
func NoDetail() *Error {
	return New(PhaseAssemble, KindNoDetail).
		Entity(EntityDetail).
		Detail("no detail attribute found").
		Build()
}

// GeometryMissing creates an error for an absent input slot
func GeometryMissing(index int) *Error {
	return New(PhaseRuntime, KindGeometryMissing).
		Input(index).
		Detail("missing geometry at input %d", index).
		Build()
}

// RowCountMismatch creates an error for columns that disagree in tuple count
func RowCountMismatch(entity Entity, attr string, expected, actual int) *Error {
	return New(PhaseDecode, KindRowCountMismatch).
		Entity(entity).
		Attr(attr).
		Expected(fmt.Sprintf("%d rows", expected)).
		Actual(fmt.Sprintf("%d rows", actual)).
		Build()
}

// MissingOutPrimVertices creates an error for encoded primitives without a
// vertices pseudo-attribute
func MissingOutPrimVertices() *Error {
	return New(PhaseAssemble, KindMissingOutPrimVerts).
		Entity(EntityPrim).
		Attr("vertices").
		Detail("output primitives declare no vertices attribute").
		Build()
}

// MissingOutVertexPtnums creates an error for an encoded vertex collection
// without a ptnum pseudo-attribute
func MissingOutVertexPtnums() *Error {
	return New(PhaseAssemble, KindMissingOutVertPtnums).
		Entity(EntityVertex).
		Attr("ptnum").
		Detail("output vertices declare no ptnum attribute").
		Build()
}

// InvalidOutVertexPtnum creates an error for a ptnum attribute of the wrong
// scalar kind
func InvalidOutVertexPtnum(actualKind string) *Error {
	return New(PhaseAssemble, KindInvalidOutVertPtnum).
		Entity(EntityVertex).
		Attr("ptnum").
		Expected("index").
		Actual(actualKind).
		Build()
}

// InvalidOutPrimVertex creates an error naming a dangling vertex index
func InvalidOutPrimVertex(index int) *Error {
	return New(PhaseAssemble, KindInvalidOutPrimVertex).
		Entity(EntityPrim).
		Index(index).
		Detail("vertex index %d out of bounds for vertex table", index).
		Build()
}

// AttrNameCollision creates an error for a user attribute shadowing a
// reserved name
func AttrNameCollision(entity Entity, name string) *Error {
	return New(PhaseAssemble, KindAttrNameCollision).
		Entity(entity).
		Attr(name).
		Detail("attribute name %q is reserved", name).
		Build()
}

// Unsupported creates an error for a row field type with no adapter
func Unsupported(phase Phase, detail string) *Error {
	return New(phase, KindUnsupported).
		Detail("%s", detail).
		Build()
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return New(phase, KindInvalidData).
		Detail("%s", detail).
		Build()
}

// Transport wraps a wire payload or I/O failure, surfaced as-is
func Transport(cause error, detail string) *Error {
	return New(PhaseTransport, KindInvalidData).
		Cause(cause).
		Detail("%s", detail).
		Build()
}

// User creates a caller-raised failure passed through unchanged
func User(msg string) *Error {
	return New(PhaseRuntime, KindUser).
		Detail("%s", msg).
		Build()
}
