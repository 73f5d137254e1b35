package sentinel

import "reflect"

// ShapeEnum is the composition rule the catalog applies to a type it has no entry for.
type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapeScalar
	ShapeOptional
	ShapeSequence
	ShapeSet
	ShapeMapping
	ShapeStruct
	ShapeInterface
)

func (s ShapeEnum) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeOptional:
		return "optional"
	case ShapeSequence:
		return "sequence"
	case ShapeSet:
		return "set"
	case ShapeMapping:
		return "mapping"
	case ShapeStruct:
		return "struct"
	case ShapeInterface:
		return "interface"
	default:
		return "unknown"
	}
}

var emptyStructType = reflect.TypeFor[struct{}]()

// Dispatch classifies t by its Go shape. Registered leaf types such as
// []byte or time.Time are classified by shape too; the catalog consults its
// entries before dispatching.
func Dispatch(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	switch t.Kind() {
	case reflect.Pointer:
		return ShapeOptional
	case reflect.Slice:
		return ShapeSequence
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return ShapeSet
		}

		return ShapeMapping
	case reflect.Struct:
		return ShapeStruct
	case reflect.Interface:
		return ShapeInterface
	}

	if scalarKind(t.Kind()) != 0 {
		return ShapeScalar
	}

	return ShapeUnknown
}
