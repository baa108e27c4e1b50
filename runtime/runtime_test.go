package runtime

import (
	"bytes"
	"strings"
	"testing"

	houdininode "github.com/luxalpa/houdini-node"
	"github.com/luxalpa/houdini-node/codec"
	"github.com/luxalpa/houdini-node/errors"
)

type point struct {
	Height float32
}

const batchJSON = `[
	{
		"points": {
			"height": {"tuple_size": 1, "data": {"float": [1, 2, 3]}}
		},
		"vertices": {},
		"prims": {},
		"detail": {}
	}
]`

func TestReadBatch(t *testing.T) {
	b, err := ReadBatch(strings.NewReader(batchJSON))
	if err != nil {
		t.Fatalf("ReadBatch failed: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 input, got %d", b.Len())
	}

	raw, err := b.Raw(0)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if raw.Points["height"].Data.Len() != 3 {
		t.Errorf("unexpected height column: %+v", raw.Points["height"])
	}

	_, err = b.Raw(1)
	if !errors.IsKind(err, errors.KindGeometryMissing) {
		t.Fatalf("expected geometry_missing, got %v", err)
	}
}

func TestReadBatch_MalformedPayload(t *testing.T) {
	_, err := ReadBatch(strings.NewReader(`{"not": "an array"`))
	if err == nil {
		t.Fatal("expected transport error")
	}
	if e, ok := err.(*errors.Error); !ok || e.Phase != errors.PhaseTransport {
		t.Fatalf("expected transport phase, got %v", err)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	var out bytes.Buffer

	err := Run(strings.NewReader(batchJSON), &out, func(b *Batch) (houdininode.RawConverter, error) {
		geo, err := houdininode.LoadPoints[point](b.Geos, 0)
		if err != nil {
			return nil, err
		}
		for i := range geo.Points {
			geo.Points[i].Height *= 2
		}
		return geo, nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var result houdininode.RawGeometry
	if err := codec.Default.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output not a snapshot object: %v", err)
	}
	heights, err := result.Points["height"].Data.Floats()
	if err != nil {
		t.Fatalf("accessor failed: %v", err)
	}
	if len(heights) != 3 || heights[0] != 2 || heights[2] != 6 {
		t.Errorf("unexpected heights: %v", heights)
	}
}

func TestRun_UserErrorPassthrough(t *testing.T) {
	var out bytes.Buffer

	err := Run(strings.NewReader(batchJSON), &out, func(b *Batch) (houdininode.RawConverter, error) {
		return nil, errors.User("needs at least two inputs")
	})
	if !errors.IsKind(err, errors.KindUser) {
		t.Fatalf("expected user error, got %v", err)
	}
	if !strings.Contains(err.Error(), "needs at least two inputs") {
		t.Errorf("user message not preserved: %q", err.Error())
	}
	if out.Len() != 0 {
		t.Error("failed invocation must not write output")
	}
}
