package transcode

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
)

type testPoint struct {
	Pos  mgl32.Vec3 `attr:"P"`
	Name string
}

func pointAttrs() attr.Map {
	return attr.Map{
		"P":    attr.Float(3, []float32{0, 0, 0, 1, 0, 0, 1, 1, 0}),
		"name": attr.String(1, []string{"a", "b", "c"}),
	}
}

func TestDecode_Rows(t *testing.T) {
	rows, err := Decode[testPoint](pointAttrs(), Context{Entity: errors.EntityPoint})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Pos != (mgl32.Vec3{1, 0, 0}) || rows[1].Name != "b" {
		t.Errorf("unexpected row 1: %+v", rows[1])
	}
	if rows[2].Pos != (mgl32.Vec3{1, 1, 0}) || rows[2].Name != "c" {
		t.Errorf("unexpected row 2: %+v", rows[2])
	}
}

func TestDecode_MissingRequiredAttr(t *testing.T) {
	attrs := pointAttrs()
	delete(attrs, "name")

	_, err := Decode[testPoint](attrs, Context{InputIndex: 1, Entity: errors.EntityPoint})
	if !errors.IsKind(err, errors.KindMissingAttr) {
		t.Fatalf("expected missing_attr, got %v", err)
	}
	e := err.(*errors.Error)
	if e.InputIndex != 1 || e.Entity != errors.EntityPoint || e.Attr != "name" {
		t.Errorf("incomplete error context: %+v", e)
	}
}

func TestDecode_ArityCheck(t *testing.T) {
	attrs := pointAttrs()
	attrs["P"] = attr.Float(4, []float32{0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0})

	_, err := Decode[testPoint](attrs, Context{Entity: errors.EntityPoint})
	if !errors.IsKind(err, errors.KindInvalidAttrLength) {
		t.Fatalf("expected invalid_attribute_length, got %v", err)
	}
	e := err.(*errors.Error)
	if e.Expected != "tuple_size 3" || e.Actual != "tuple_size 4" {
		t.Errorf("unexpected shape context: %+v", e)
	}
}

func TestDecode_KindCheck(t *testing.T) {
	// Lengths match the expected arity exactly; the kind check must still
	// fire.
	attrs := attr.Map{
		"P":    attr.Int(3, []int32{0, 0, 0, 1, 0, 0, 1, 1, 0}),
		"name": attr.String(1, []string{"a", "b", "c"}),
	}

	_, err := Decode[testPoint](attrs, Context{Entity: errors.EntityPoint})
	if !errors.IsKind(err, errors.KindInvalidAttrType) {
		t.Fatalf("expected invalid_attribute_type, got %v", err)
	}
}

func TestDecode_RowCountMismatch(t *testing.T) {
	attrs := pointAttrs()
	attrs["name"] = attr.String(1, []string{"a", "b", "c", "d", "e"})

	_, err := Decode[testPoint](attrs, Context{Entity: errors.EntityPoint})
	if !errors.IsKind(err, errors.KindRowCountMismatch) {
		t.Fatalf("expected row_count_mismatch, got %v", err)
	}
}

type optionalPoint struct {
	Pos  mgl32.Vec3 `attr:"P"`
	Mass *float32
}

func TestDecode_OptionalAbsent(t *testing.T) {
	attrs := attr.Map{"P": attr.Float(3, []float32{0, 0, 0, 1, 0, 0})}

	rows, err := Decode[optionalPoint](attrs, Context{Entity: errors.EntityPoint})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.Mass != nil {
			t.Errorf("row %d: expected nil mass, got %v", i, *r.Mass)
		}
	}
}

func TestDecode_OptionalPresent(t *testing.T) {
	attrs := attr.Map{
		"P":    attr.Float(3, []float32{0, 0, 0, 1, 0, 0}),
		"mass": attr.Float(1, []float32{2.5, 4}),
	}

	rows, err := Decode[optionalPoint](attrs, Context{Entity: errors.EntityPoint})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rows[0].Mass == nil || *rows[0].Mass != 2.5 {
		t.Errorf("unexpected row 0 mass: %v", rows[0].Mass)
	}
	if rows[1].Mass == nil || *rows[1].Mass != 4 {
		t.Errorf("unexpected row 1 mass: %v", rows[1].Mass)
	}
}

func TestEncode_OptionalAllNilOmitsColumn(t *testing.T) {
	rows := []optionalPoint{
		{Pos: mgl32.Vec3{1, 2, 3}},
		{Pos: mgl32.Vec3{4, 5, 6}},
	}

	out, err := Encode(rows)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, ok := out["mass"]; ok {
		t.Error("all-nil optional field must not produce a column")
	}
	if _, ok := out["P"]; !ok {
		t.Error("required field column missing")
	}
}

func TestEncode_OptionalMixedNilFails(t *testing.T) {
	m := float32(1)
	rows := []optionalPoint{{Mass: &m}, {}}

	_, err := Encode(rows)
	if !errors.IsKind(err, errors.KindInvalidData) {
		t.Fatalf("expected invalid_data, got %v", err)
	}
}

type allTypes struct {
	F     float32
	I     int32
	S     string
	Idx   int
	Flag  bool
	Pos   mgl32.Vec2
	Rot   mgl32.Quat
	Xform mgl32.Mat3
	Verts []int
	Ramp  []float32
}

func TestRoundTrip_AllAdapterTypes(t *testing.T) {
	rows := []allTypes{
		{
			F: 1.5, I: -4, S: "x", Idx: 7, Flag: true,
			Pos:   mgl32.Vec2{1, 2},
			Rot:   mgl32.Quat{W: 1, V: mgl32.Vec3{0, 0.5, 0.25}},
			Xform: mgl32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9},
			Verts: []int{0, 1, 2},
			Ramp:  []float32{0.1, 0.9},
		},
		{
			F: -2, I: 9, S: "y", Idx: 0, Flag: false,
			Pos:   mgl32.Vec2{3, 4},
			Rot:   mgl32.Quat{W: 0, V: mgl32.Vec3{1, 0, 0}},
			Xform: mgl32.Mat3{9, 8, 7, 6, 5, 4, 3, 2, 1},
			Verts: []int{2, 1},
			Ramp:  nil,
		},
	}

	cols, err := Encode(rows)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if cols["xform"].TupleSize != 9 {
		t.Errorf("expected mat3 tuple size 9, got %d", cols["xform"].TupleSize)
	}
	if cols["flag"].Data.Kind() != attr.KindInt {
		t.Errorf("bool must encode as int column, got %s", cols["flag"].Data.Kind())
	}
	if rot, _ := cols["rot"].Data.Floats(); len(rot) != 8 || rot[3] != 1 {
		// Row 0 is identity-ish: (x,y,z,w) = (0, 0.5, 0.25, 1).
		t.Errorf("unexpected quat flattening: %v", rot)
	}

	back, err := Decode[allTypes](cols, Context{Entity: errors.EntityDetail})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(back) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(back))
	}
	for i := range rows {
		a, b := rows[i], back[i]
		if a.F != b.F || a.I != b.I || a.S != b.S || a.Idx != b.Idx || a.Flag != b.Flag {
			t.Errorf("row %d scalar mismatch: %+v vs %+v", i, a, b)
		}
		if a.Pos != b.Pos || a.Rot != b.Rot || a.Xform != b.Xform {
			t.Errorf("row %d value-type mismatch: %+v vs %+v", i, a, b)
		}
		if len(a.Verts) != len(b.Verts) {
			t.Errorf("row %d verts mismatch: %v vs %v", i, a.Verts, b.Verts)
		}
		if len(a.Ramp) != len(b.Ramp) {
			t.Errorf("row %d ramp mismatch: %v vs %v", i, a.Ramp, b.Ramp)
		}
	}
}

func TestEncode_EmptyRowsProduceEmptyColumns(t *testing.T) {
	out, err := Encode([]testPoint{})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if out["P"].TupleSize != 3 || out["P"].Data.Len() != 0 {
		t.Errorf("unexpected empty P column: %+v", out["P"])
	}
	if out["name"].Data.Kind() != attr.KindString {
		t.Errorf("unexpected empty name column: %+v", out["name"])
	}
}

type taggedRow struct {
	Position  mgl32.Vec3 `attr:"P"`
	SomeValue float32
	Scratch   int `attr:"-"`
	hidden    int
}

func TestPlan_NamingAndSkips(t *testing.T) {
	_ = taggedRow{hidden: 0}

	out, err := Encode([]taggedRow{{Position: mgl32.Vec3{1, 2, 3}, SomeValue: 4, Scratch: 9}})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, ok := out["P"]; !ok {
		t.Error("tag override not honored")
	}
	if _, ok := out["some_value"]; !ok {
		t.Error("default snake_case name not derived")
	}
	if len(out) != 2 {
		t.Errorf("skipped fields leaked into output: %v", out)
	}
}

type emptyRow struct{}

func TestDecode_NoDeclaredFields(t *testing.T) {
	rows, err := Decode[emptyRow](pointAttrs(), Context{Entity: errors.EntityVertex})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected zero rows, got %d", len(rows))
	}
}

type badRow struct {
	When float64
}

func TestPlan_UnsupportedFieldType(t *testing.T) {
	_, err := Decode[badRow](attr.Map{}, Context{})
	if !errors.IsKind(err, errors.KindUnsupported) {
		t.Fatalf("expected unsupported, got %v", err)
	}
}

func TestAttrName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Position", "position"},
		{"SomeDetail", "some_detail"},
		{"P", "p"},
		{"UV", "u_v"},
		{"Name2", "name2"},
	}
	for _, tt := range tests {
		if got := attrName(tt.in); got != tt.want {
			t.Errorf("attrName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
