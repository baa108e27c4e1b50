package transcode

import (
	"reflect"

	"github.com/luxalpa/houdini-node/attr"
	"github.com/luxalpa/houdini-node/errors"
)

// Context locates a decode within a batch for error reporting.
type Context struct {
	InputIndex int
	Entity     errors.Entity
}

// Decode synchronizes the named columns of one entity collection into a
// slice of row structs.
//
// For each declared field the attribute is looked up by name; a missing
// required attribute is a MissingAttr error, a missing optional (pointer)
// field decodes to nil for every row without invoking the inner adapter.
// All present columns must agree in tuple count; a disagreement is a
// RowCountMismatch error rather than silent truncation.
//
// A row type with no declared fields decodes to zero rows regardless of
// the collection's contents.
func Decode[T any](attrs attr.Map, ctx Context) ([]T, error) {
	p, err := planFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	if len(p.fields) == 0 {
		return nil, nil
	}

	readers := make([]valueReader, len(p.fields))
	rowCount := -1
	countAttr := ""

	for i, f := range p.fields {
		a, ok := attrs[f.name]
		if !ok {
			if f.optional {
				readers[i] = missingReader{}
				continue
			}
			return nil, errors.MissingAttr(ctx.InputIndex, ctx.Entity, f.name)
		}

		r, err := f.codec.reader(a)
		if err != nil {
			return nil, contextualize(err, ctx, f.name)
		}

		n := a.Data.Len() / f.codec.arity()
		if rowCount < 0 {
			rowCount, countAttr = n, f.name
		} else if n != rowCount {
			err := errors.RowCountMismatch(ctx.Entity, f.name, rowCount, n)
			err.InputIndex = ctx.InputIndex
			err.Detail = "column " + f.name + " disagrees with " + countAttr
			return nil, err
		}
		readers[i] = r
	}

	if rowCount < 0 {
		// Every field optional and every column absent.
		rowCount = 0
	}

	rows := make([]T, rowCount)
	for r := 0; r < rowCount; r++ {
		rv := reflect.ValueOf(&rows[r]).Elem()
		for i, f := range p.fields {
			readers[i].next(rv.Field(f.index))
		}
	}
	return rows, nil
}

// contextualize stamps entity, attribute and input-slot context onto shape
// errors raised below the field level.
func contextualize(err error, ctx Context, name string) error {
	if e, ok := err.(*errors.Error); ok {
		if e.Entity == "" {
			e.Entity = ctx.Entity
		}
		if e.Attr == "" {
			e.Attr = name
		}
		if e.InputIndex < 0 {
			e.InputIndex = ctx.InputIndex
		}
	}
	return err
}
