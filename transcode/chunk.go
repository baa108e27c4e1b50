package transcode

import (
	"reflect"

	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
)

// valueCodec converts between one column and one row field. Implementations
// form a closed table (see adapters.go); each pairs a scalar kind and a
// tuple arity with a domain value bijection.
type valueCodec interface {
	// arity is the tuple size the codec consumes/produces per value.
	arity() int
	// reader validates the column's tuple size and scalar kind, then
	// returns a single-pass cursor over its tuples.
	reader(a attr.Attribute) (valueReader, error)
	// writer accumulates one field value per row and flattens them into a
	// column.
	writer(rows int) valueWriter
}

// valueReader is a finite, non-restartable cursor. Each next call decodes
// one tuple into dst, a settable value of the field's type.
type valueReader interface {
	next(dst reflect.Value)
}

// valueWriter is the inverse: append consumes one field value per row and
// finish produces the column. ok is false when no column should be emitted
// (an all-absent optional field).
type valueWriter interface {
	append(src reflect.Value)
	finish() (a attr.Attribute, ok bool, err error)
}

// codec is the generic scalar codec: it owns arity bookkeeping and chunks
// the flat vector into n-sized runs, delegating the per-chunk bijection to
// set/read. All adapter instances in adapters.go are built on it.
type codec[T any] struct {
	get  func(attr.Data) ([]T, error)
	pack func([]T) attr.Data
	// set decodes one chunk (length n) into dst.
	set func(dst reflect.Value, chunk []T)
	// read encodes dst into chunk (length n).
	read func(src reflect.Value, chunk []T)
	n    int
}

func (c *codec[T]) arity() int { return c.n }

func (c *codec[T]) reader(a attr.Attribute) (valueReader, error) {
	if a.TupleSize != c.n {
		return nil, errors.InvalidAttrLength(errors.PhaseDecode, c.n, a.TupleSize)
	}
	data, err := c.get(a.Data)
	if err != nil {
		return nil, err
	}
	return &chunkReader[T]{codec: c, data: data}, nil
}

func (c *codec[T]) writer(rows int) valueWriter {
	return &chunkWriter[T]{codec: c, buf: make([]T, 0, rows*c.n), chunk: make([]T, c.n)}
}

// chunkReader walks the flat vector in n-sized steps. The vector length is
// a multiple of n by construction (the producer stamps tuple_size); no
// partial final chunk is ever produced.
type chunkReader[T any] struct {
	codec *codec[T]
	data  []T
	pos   int
}

func (r *chunkReader[T]) next(dst reflect.Value) {
	r.codec.set(dst, r.data[r.pos:r.pos+r.codec.n])
	r.pos += r.codec.n
}

type chunkWriter[T any] struct {
	codec *codec[T]
	buf   []T
	chunk []T
}

func (w *chunkWriter[T]) append(src reflect.Value) {
	w.codec.read(src, w.chunk)
	w.buf = append(w.buf, w.chunk...)
}

func (w *chunkWriter[T]) finish() (attr.Attribute, bool, error) {
	return attr.Attribute{TupleSize: w.codec.n, Data: w.codec.pack(w.buf)}, true, nil
}

// optionalCodec wraps another codec for pointer fields. Absence is handled
// by the decoder (see missingReader); a present column decodes through the
// inner codec into freshly allocated values.
type optionalCodec struct {
	inner valueCodec
	elem  reflect.Type
}

func (c *optionalCodec) arity() int { return c.inner.arity() }

func (c *optionalCodec) reader(a attr.Attribute) (valueReader, error) {
	r, err := c.inner.reader(a)
	if err != nil {
		return nil, err
	}
	return &optionalReader{inner: r, elem: c.elem}, nil
}

func (c *optionalCodec) writer(rows int) valueWriter {
	return &optionalWriter{inner: c.inner.writer(rows)}
}

type optionalReader struct {
	inner valueReader
	elem  reflect.Type
}

func (r *optionalReader) next(dst reflect.Value) {
	v := reflect.New(r.elem)
	r.inner.next(v.Elem())
	dst.Set(v)
}

// missingReader synthesizes the absent-column case: every row gets the
// zero pointer and the inner decoder is never invoked.
type missingReader struct{}

func (missingReader) next(dst reflect.Value) {}

type optionalWriter struct {
	inner  valueWriter
	sawNil bool
	sawVal bool
}

func (w *optionalWriter) append(src reflect.Value) {
	if src.IsNil() {
		w.sawNil = true
		return
	}
	w.sawVal = true
	w.inner.append(src.Elem())
}

func (w *optionalWriter) finish() (attr.Attribute, bool, error) {
	if w.sawNil && w.sawVal {
		return attr.Attribute{}, false, errors.InvalidData(errors.PhaseEncode,
			"optional field mixes nil and non-nil values; a column cannot represent partial absence")
	}
	if w.sawNil || !w.sawVal {
		// All nil (or zero rows): the absent case is not represented in
		// a column at all.
		return attr.Attribute{}, false, nil
	}
	return w.inner.finish()
}
