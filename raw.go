package houdininode

import (
	"github.com/luxalpa/houdini-node/attr"
)

// RawGeometry is one geometry snapshot in the host's columnar form: four
// entity collections, each a mapping from attribute name to column. It is
// both what the host sends (one element of the input batch) and what it
// receives back.
type RawGeometry struct {
	Points   attr.Map `json:"points"`
	Vertices attr.Map `json:"vertices"`
	Prims    attr.Map `json:"prims"`
	Detail   attr.Map `json:"detail"`
}

// RawConverter is satisfied by any typed geometry that can lower itself to
// the host's columnar form. Geometry implements it; node entry points
// accept it so the runtime never needs the row type parameters.
type RawConverter interface {
	IntoRaw() (RawGeometry, error)
}

// Reserved attribute names consumed or produced by the output-side
// connectivity remap.
const (
	// AttrPrimVertices is the per-primitive list of vertex-row indices a
	// caller declares on its primitive rows.
	AttrPrimVertices = "vertices"
	// AttrVertexPtnum maps each vertex row to its owning point index.
	AttrVertexPtnum = "ptnum"
	// AttrPrimPoints is the remapped per-primitive point list written by
	// the assembler; user primitives must not declare it.
	AttrPrimPoints = "points"
)
