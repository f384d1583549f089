package types

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ByField orders structs (or pointers to structs) by the field at fieldPath,
// e.g. "Key" or "Info.Age". The path is resolved once against T. Integer,
// unsigned, float and string fields are supported. A nil pointer met along the
// path orders before any value.
func ByField[T any](fieldPath string) (Less[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	indices, kind, err := fieldPath2Index(typ, fieldPath)
	if err != nil {
		return nil, err
	}

	var less func(a, b reflect.Value) bool
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		less = func(a, b reflect.Value) bool { return a.Int() < b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		less = func(a, b reflect.Value) bool { return a.Uint() < b.Uint() }
	case reflect.Float32, reflect.Float64:
		less = func(a, b reflect.Value) bool { return cmp.Less(a.Float(), b.Float()) }
	case reflect.String:
		less = func(a, b reflect.Value) bool { return a.String() < b.String() }
	default:
		return nil, errors.Errorf("types: field %q of %s has unordered kind %s", fieldPath, typ, kind)
	}

	field := func(e *T) reflect.Value {
		v := reflect.ValueOf(e).Elem()
		for _, i := range indices {
			for v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return reflect.Value{}
				}
				v = v.Elem()
			}
			v = v.Field(i)
		}
		return v
	}

	return func(a, b T) bool {
		va, vb := field(&a), field(&b)
		if !va.IsValid() || !vb.IsValid() {
			return !va.IsValid() && vb.IsValid()
		}
		return less(va, vb)
	}, nil
}

func fieldPath2Index(typ reflect.Type, fieldPath string) ([]int, reflect.Kind, error) {
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, reflect.Invalid, errors.Errorf("types: cannot select %q from non-struct %s", name, typ)
		}
		field, ok := typ.FieldByName(name)
		if !ok {
			return nil, reflect.Invalid, errors.Errorf("types: %s has no field %q", typ, name)
		}
		indices = append(indices, field.Index...)
		typ = field.Type
	}
	return indices, typ.Kind(), nil
}
