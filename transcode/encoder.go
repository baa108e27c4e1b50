package transcode

import (
	"reflect"

	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
)

// Encode splits a slice of row structs into one column per declared field,
// keyed by attribute name. Optional (pointer) fields whose values are all
// nil produce no column at all; mixing nil and non-nil values in one field
// is an error because a column cannot represent partial absence.
func Encode[T any](rows []T) (attr.Map, error) {
	p, err := planFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	out := make(attr.Map, len(p.fields))
	for _, f := range p.fields {
		w := f.codec.writer(len(rows))
		for r := range rows {
			w.append(reflect.ValueOf(&rows[r]).Elem().Field(f.index))
		}

		a, ok, err := w.finish()
		if err != nil {
			if e, isStructured := err.(*errors.Error); isStructured && e.Attr == "" {
				e.Attr = f.name
			}
			return nil, err
		}
		if ok {
			out[f.name] = a
		}
	}
	return out, nil
}
