package sentinel

import (
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the leaf types the catalog knows out of the box.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindUUID
	KindBytes
	KindURL
	KindNamedScalar // named type over a bool, number or string, e.g. `type Status string`

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindDuration:
		return true
	}
}

var kindTypes = map[KindEnum]reflect.Type{
	KindInt:      reflect.TypeFor[int](),
	KindInt8:     reflect.TypeFor[int8](),
	KindInt16:    reflect.TypeFor[int16](),
	KindInt32:    reflect.TypeFor[int32](),
	KindInt64:    reflect.TypeFor[int64](),
	KindUint:     reflect.TypeFor[uint](),
	KindUint8:    reflect.TypeFor[uint8](),
	KindUint16:   reflect.TypeFor[uint16](),
	KindUint32:   reflect.TypeFor[uint32](),
	KindUint64:   reflect.TypeFor[uint64](),
	KindFloat32:  reflect.TypeFor[float32](),
	KindFloat64:  reflect.TypeFor[float64](),
	KindBool:     reflect.TypeFor[bool](),
	KindString:   reflect.TypeFor[string](),
	KindTime:     reflect.TypeFor[time.Time](),
	KindDuration: reflect.TypeFor[time.Duration](),
	KindUUID:     reflect.TypeFor[uuid.UUID](),
	KindBytes:    reflect.TypeFor[[]byte](),
	KindURL:      reflect.TypeFor[url.URL](),
}

// Type returns the Go type backing a built-in kind, or nil for KindNamedScalar and invalid kinds.
func (k KindEnum) Type() reflect.Type {
	return kindTypes[k]
}

// FromReflectType returns the built-in kind of rtype, or 0 when rtype is not a built-in leaf.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	for kind, t := range kindTypes {
		if t == rtype {
			return kind
		}
	}

	if scalarKind(rtype.Kind()) != 0 {
		return KindNamedScalar
	}

	return 0
}

// scalarKind maps a reflect.Kind to the built-in kind of its unnamed Go type.
func scalarKind(k reflect.Kind) KindEnum {
	switch k {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
