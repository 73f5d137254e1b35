package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"wirepath/codable"
	"wirepath/internal/common"
	"wirepath/internal/match"
)

var ErrUnknownField = errors.New("unknown field")

// goSegment is one step of a Go field path.
type goSegment struct {
	Name    string
	IsSlice bool
}

// parseGoPath parses a Go field path.
// Supports: "Field", "Nested.Field", "Items[]", "Items[].ProductID".
func parseGoPath(path string) ([]goSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrUnknownField)
	}

	var segments []goSegment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: invalid path %q: empty segment", ErrUnknownField, path)
		}

		name, isSlice := strings.CutSuffix(part, "[]")
		if !isValidIdent(name) {
			return nil, fmt.Errorf("%w: invalid path %q: invalid identifier %q", ErrUnknownField, path, name)
		}

		segments = append(segments, goSegment{Name: name, IsSlice: isSlice})
	}

	return segments, nil
}

// FieldByName references a property by its Go field path, e.g.
// "Address.City" or "Items[].ProductID". Pointers are followed and "[]"
// selects the first element of a slice; a nil pointer or an empty slice makes
// the property absent from that instance.
func FieldByName[T any, PT Decodable[T]](goPath string) (*Property, error) {
	segments, err := parseGoPath(goPath)
	if err != nil {
		return nil, err
	}

	schema := SchemaOf[T, PT]()

	t := schema.Type
	indexes := make([][]int, len(segments))

	for i, seg := range segments {
		t = deref(t)
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s in %q is not a struct", ErrUnknownField, t, goPath)
		}

		field, ok := t.FieldByName(seg.Name)
		if !ok || !field.IsExported() {
			return nil, unknownField(t, seg.Name)
		}

		indexes[i] = field.Index
		t = field.Type

		if seg.IsSlice {
			if t.Kind() != reflect.Slice {
				return nil, fmt.Errorf("%w: %s.%s is not a slice", ErrUnknownField, schema.Type, seg.Name)
			}

			t = t.Elem()
		}
	}

	return &Property{
		schema: schema,
		value:  t,
		label:  goPath,
		get: func(root codable.Decodable) (reflect.Value, bool) {
			return walk(reflect.ValueOf(root), segments, indexes)
		},
	}, nil
}

func walk(v reflect.Value, segments []goSegment, indexes [][]int) (reflect.Value, bool) {
	for i, seg := range segments {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}

			v = v.Elem()
		}

		var err error

		v, err = v.FieldByIndexErr(indexes[i])
		if err != nil {
			return reflect.Value{}, false
		}

		if seg.IsSlice {
			if v.Len() == 0 {
				return reflect.Value{}, false
			}

			v = v.Index(0)
		}
	}

	return v, true
}

func unknownField(t reflect.Type, name string) error {
	var names []string
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}

	if best, ok := common.First(match.Suggest(name, names, 1)); ok {
		return fmt.Errorf("%w: %s has no field %q (did you mean %q?)", ErrUnknownField, t, name, best)
	}

	return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, t, name)
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || isLetter(r) || (i > 0 && isDigit(r)) {
			continue
		}

		return false
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
