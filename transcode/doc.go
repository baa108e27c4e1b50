// Package transcode converts between the host's columnar attribute storage
// and caller-defined row structs.
//
// # Layers
//
// Three layers stack bottom-up, and both directions run through all three:
//
//	Scalar Codec   chunk.go     flat vectors <-> fixed-arity chunks
//	Type Adapter   adapters.go  chunks <-> domain values (vectors, quats, ...)
//	Row Transcoder decoder.go / encoder.go
//	               named columns <-> struct rows
//
// # Field plans
//
// For each row struct a field-descriptor table is compiled once via
// reflection and cached (compiler.go). A field maps to the attribute named
// by its `attr` tag, defaulting to the snake_case of the field name;
// `attr:"-"` skips the field. Pointer fields are optional: a missing
// column decodes to nil rows instead of failing.
//
//	type Point struct {
//	    Pos  mgl32.Vec3 `attr:"P"`
//	    Name string               // attribute "name"
//	    Mass *float32             // optional attribute "mass"
//	}
//
// # Checking
//
// Column shape is validated at the boundary: a tuple-size mismatch is an
// invalid_attribute_length error, a scalar-kind mismatch an
// invalid_attribute_type error, and present columns that disagree in tuple
// count a row_count_mismatch error. Chunking itself never re-validates;
// the producer keeps the flat length a multiple of the tuple size by
// construction.
//
// Everything is single-threaded and single-pass: cursors are pull-based,
// finite and non-restartable, and nothing is shared across conversions.
package transcode
