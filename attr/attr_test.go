package attr

import (
	"strings"
	"testing"

	"github.com/luxalpa/houdini-node/codec"
	"github.com/luxalpa/houdini-node/errors"
)

func TestAttribute_WireShape(t *testing.T) {
	a := Float(3, []float32{0, 0, 0, 1, 0, 0})

	b, err := codec.Default.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"tuple_size":3`) {
		t.Errorf("missing tuple_size in %s", s)
	}
	if !strings.Contains(s, `"float":[`) {
		t.Errorf("missing tagged float array in %s", s)
	}

	var back Attribute
	if err := codec.Default.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.TupleSize != 3 || back.Data.Kind() != KindFloat || back.Data.Len() != 6 {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if back.Tuples() != 2 {
		t.Errorf("expected 2 tuples, got %d", back.Tuples())
	}
}

func TestData_UnmarshalRaggedKinds(t *testing.T) {
	var a Attribute
	payload := `{"tuple_size":1,"data":{"prim_vertex":[[0,1,2],[2,3]]}}`
	if err := codec.Default.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	lists, err := a.Data.PrimVertices()
	if err != nil {
		t.Fatalf("accessor failed: %v", err)
	}
	if len(lists) != 2 || len(lists[0]) != 3 || lists[1][1] != 3 {
		t.Errorf("unexpected lists: %v", lists)
	}

	var fa Attribute
	payload = `{"tuple_size":1,"data":{"float_array":[[1.5],[0.25,0.5]]}}`
	if err := codec.Default.Unmarshal([]byte(payload), &fa); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if fa.Data.Kind() != KindFloatArray || fa.Data.Len() != 2 {
		t.Errorf("unexpected float_array data: %+v", fa.Data)
	}
}

func TestData_UnmarshalRejectsBadUnions(t *testing.T) {
	var d Data
	if err := codec.Default.Unmarshal([]byte(`{}`), &d); err == nil {
		t.Error("expected error for empty union")
	}
	if err := codec.Default.Unmarshal([]byte(`{"float":[1],"int":[1]}`), &d); err == nil {
		t.Error("expected error for two populated kinds")
	}
	if err := codec.Default.Unmarshal([]byte(`{"double":[1]}`), &d); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestData_AccessorKindMismatch(t *testing.T) {
	d := Ints([]int32{1, 2, 3})

	_, err := d.Floats()
	if !errors.IsKind(err, errors.KindInvalidAttrType) {
		t.Fatalf("expected invalid_attribute_type, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "expected float") || !strings.Contains(msg, "actual int") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestData_MarshalEmptyVectors(t *testing.T) {
	b, err := codec.Default.Marshal(Index(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"index":[]`) {
		t.Errorf("nil vector should encode as empty array: %s", b)
	}

	if _, err := codec.Default.Marshal(Attribute{TupleSize: 1}); err == nil {
		t.Error("expected error marshaling unpopulated data")
	}
}

func TestKind_Names(t *testing.T) {
	kinds := []Kind{
		KindFloat, KindInt, KindString, KindIndex,
		KindPrimVertex, KindFloatArray, KindIntArray, KindStringArray,
	}
	for _, k := range kinds {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Errorf("kind %d does not round trip through %q", k, k.String())
		}
	}
	if _, ok := ParseKind("invalid"); ok {
		t.Error("ParseKind accepted invalid name")
	}
}
