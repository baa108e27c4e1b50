package transcode

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/luxalpa/houdini-node/errors"
)

// plan is the compiled field-descriptor table for one row struct: one entry
// per declared field, in declaration order. Plans are built once per type
// and cached.
type plan struct {
	typ    reflect.Type
	fields []fieldPlan
}

type fieldPlan struct {
	codec    valueCodec
	name     string // attribute name
	index    int    // struct field index
	optional bool
}

var planCache sync.Map // reflect.Type -> *plan

// planFor compiles (or fetches) the field plan for a row struct type.
func planFor(t reflect.Type) (*plan, error) {
	if cached, ok := planCache.Load(t); ok {
		return cached.(*plan), nil
	}

	if t.Kind() != reflect.Struct {
		return nil, errors.Unsupported(errors.PhaseCompile,
			"row type must be a struct, got "+t.String())
	}

	p := &plan{typ: t}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Tag.Get("attr")
		if name == "-" {
			continue
		}
		if name == "" {
			name = attrName(f.Name)
		}

		c, err := adapterFor(f.Type)
		if err != nil {
			if e, ok := err.(*errors.Error); ok && e.Attr == "" {
				e.Attr = t.Name() + "." + f.Name
			}
			return nil, err
		}

		p.fields = append(p.fields, fieldPlan{
			codec:    c,
			name:     name,
			index:    i,
			optional: f.Type.Kind() == reflect.Pointer,
		})
	}

	planCache.Store(t, p)
	return p, nil
}

// attrName derives the default attribute name from a Go field name:
// snake_case of the exported name (Position -> position, SomeDetail ->
// some_detail). Host attributes with other spellings ("P", "Cd") take an
// explicit attr tag.
func attrName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
