package houdininode

import (
	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
	"github.com/luxalpa/houdini-node/transcode"
)

// Geometry is one snapshot in row form: one struct instance per point,
// vertex and primitive, plus a singleton detail record. The aggregate is
// owned exclusively by the caller for the duration of one conversion.
type Geometry[Pt, Vt, Pr, Dt any] struct {
	Points   []Pt
	Vertices []Vt
	Prims    []Pr
	Detail   Dt
}

// Defaultable marks an entity type with a defined empty instance. When the
// detail collection yields no row, a Defaultable detail type decodes to
// its zero value instead of failing with no_detail.
type Defaultable interface {
	DefaultEntity()
}

// None is the unit entity: it declares no attributes and has a defined
// empty instance. Use it for any entity kind a node does not touch.
type None struct{}

// DefaultEntity marks None as Defaultable.
func (None) DefaultEntity() {}

// FromRaw assembles a typed geometry from one columnar snapshot.
// inputIndex is the snapshot's slot in the batch, used only for error
// messages.
func FromRaw[Pt, Vt, Pr, Dt any](raw RawGeometry, inputIndex int) (*Geometry[Pt, Vt, Pr, Dt], error) {
	details, err := transcode.Decode[Dt](raw.Detail, transcode.Context{
		InputIndex: inputIndex,
		Entity:     errors.EntityDetail,
	})
	if err != nil {
		return nil, err
	}

	var detail Dt
	if len(details) > 0 {
		detail = details[0]
	} else if _, ok := any(detail).(Defaultable); !ok {
		return nil, errors.NoDetail()
	}

	points, err := transcode.Decode[Pt](raw.Points, transcode.Context{
		InputIndex: inputIndex,
		Entity:     errors.EntityPoint,
	})
	if err != nil {
		return nil, err
	}
	vertices, err := transcode.Decode[Vt](raw.Vertices, transcode.Context{
		InputIndex: inputIndex,
		Entity:     errors.EntityVertex,
	})
	if err != nil {
		return nil, err
	}
	prims, err := transcode.Decode[Pr](raw.Prims, transcode.Context{
		InputIndex: inputIndex,
		Entity:     errors.EntityPrim,
	})
	if err != nil {
		return nil, err
	}

	return &Geometry[Pt, Vt, Pr, Dt]{
		Points:   points,
		Vertices: vertices,
		Prims:    prims,
		Detail:   detail,
	}, nil
}

// Load assembles the typed geometry at one slot of an input batch,
// failing with geometry_missing when the slot has no snapshot.
func Load[Pt, Vt, Pr, Dt any](geos []RawGeometry, index int) (*Geometry[Pt, Vt, Pr, Dt], error) {
	if index < 0 || index >= len(geos) {
		return nil, errors.GeometryMissing(index)
	}
	return FromRaw[Pt, Vt, Pr, Dt](geos[index], index)
}

// LoadPoints is shorthand for nodes that only read point attributes.
func LoadPoints[Pt any](geos []RawGeometry, index int) (*Geometry[Pt, None, None, None], error) {
	return Load[Pt, None, None, None](geos, index)
}

// IntoRaw lowers the typed geometry back to columnar form, running the
// vertex-to-point connectivity remap the host's primitive model requires.
func (g *Geometry[Pt, Vt, Pr, Dt]) IntoRaw() (RawGeometry, error) {
	points, err := transcode.Encode(g.Points)
	if err != nil {
		return RawGeometry{}, err
	}
	vertices, err := transcode.Encode(g.Vertices)
	if err != nil {
		return RawGeometry{}, err
	}
	prims, err := transcode.Encode(g.Prims)
	if err != nil {
		return RawGeometry{}, err
	}
	detail, err := transcode.Encode([]Dt{g.Detail})
	if err != nil {
		return RawGeometry{}, err
	}

	if len(g.Prims) > 0 {
		if err := remapPrimVertices(prims, vertices); err != nil {
			return RawGeometry{}, err
		}
	}

	return RawGeometry{
		Points:   points,
		Vertices: vertices,
		Prims:    prims,
		Detail:   detail,
	}, nil
}

// remapPrimVertices rewrites each primitive's vertex-index list into point
// indices via the vertex collection's ptnum table, in original order, and
// moves the column under the reserved points name. The rewritten lists are
// fresh allocations: the encoded column still aliases the caller's row
// slices, which must come out of the conversion untouched.
func remapPrimVertices(prims, vertices attr.Map) error {
	va, ok := prims[AttrPrimVertices]
	if !ok {
		return errors.MissingOutPrimVertices()
	}
	if va.Data.Kind() != attr.KindPrimVertex {
		return errors.New(errors.PhaseAssemble, errors.KindInvalidAttrType).
			Entity(errors.EntityPrim).
			Attr(AttrPrimVertices).
			Expected(attr.KindPrimVertex.String()).
			Actual(va.Data.Kind().String()).
			Build()
	}

	pa, ok := vertices[AttrVertexPtnum]
	if !ok {
		return errors.MissingOutVertexPtnums()
	}
	if pa.Data.Kind() != attr.KindIndex {
		return errors.InvalidOutVertexPtnum(pa.Data.Kind().String())
	}

	if _, ok := prims[AttrPrimPoints]; ok {
		return errors.AttrNameCollision(errors.EntityPrim, AttrPrimPoints)
	}

	ptnums, err := pa.Data.Indices()
	if err != nil {
		return err
	}
	lists, err := va.Data.PrimVertices()
	if err != nil {
		return err
	}

	remapped := make([][]int, len(lists))
	for li, list := range lists {
		out := make([]int, len(list))
		for i, v := range list {
			if v < 0 || v >= len(ptnums) {
				return errors.InvalidOutPrimVertex(v)
			}
			out[i] = ptnums[v]
		}
		remapped[li] = out
	}

	delete(prims, AttrPrimVertices)
	prims[AttrPrimPoints] = attr.Attribute{TupleSize: va.TupleSize, Data: attr.PrimVertices(remapped)}
	return nil
}
