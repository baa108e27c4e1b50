// Package houdininode lets strongly-typed Go code exchange geometry with a
// 3D-authoring host that speaks a generic, columnar attribute format.
//
// The host describes a geometry snapshot as four entity collections
// (points, vertices, prims, detail), each mapping an attribute name to a
// column: a tagged vector of same-kind scalars plus a declared tuple
// arity. Node code instead works with ordinary row structs, one instance
// per entity.
//
// # Architecture
//
// The library is organized into focused packages:
//
//	houdini-node/    Root package: RawGeometry, Geometry, assembly + remap
//	├── attr/        Columnar attribute model and its JSON wire shape
//	├── transcode/   Column <-> row transcoding (scalar codec, adapters,
//	│                reflection-compiled field plans)
//	├── errors/      Structured conversion errors (phase x kind + context)
//	├── codec/       Pluggable JSON codec for the wire format
//	├── runtime/     Process boundary: batch input, single output, Main
//	└── cmd/geodump/ CLI inspector for snapshot batches
//
// # Quick start
//
// Declare row structs and run a node:
//
//	type Point struct {
//	    Pos mgl32.Vec3 `attr:"P"`
//	}
//
//	func main() {
//	    runtime.Main(func(b *runtime.Batch) (houdininode.RawConverter, error) {
//	        geo, err := houdininode.LoadPoints[Point](b.Geos, 0)
//	        if err != nil {
//	            return nil, err
//	        }
//	        for i := range geo.Points {
//	            geo.Points[i].Pos[1] += 1 // move everything up
//	        }
//	        return geo, nil
//	    })
//	}
//
// # Connectivity remap
//
// The host addresses primitive connectivity in point space, while node
// code builds it in vertex space: primitive rows declare a "vertices"
// attribute listing vertex-row indices, and vertex rows declare "ptnum"
// mapping each vertex to its owning point. On output the assembler
// rewrites every vertex index into the corresponding point index and
// stores the result under the reserved "points" primitive attribute,
// failing on dangling indices and on user attributes that collide with
// the reserved name.
//
// # Failure model
//
// A conversion either completes or fails with the first error
// encountered; there is no retry, aggregation or partial result. Each
// snapshot of a batch converts independently. See the errors package for
// the taxonomy.
package houdininode
