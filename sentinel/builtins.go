package sentinel

import (
	"bytes"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// builtinEntry returns the catalog entry for a built-in kind.
func builtinEntry(k KindEnum) entry {
	t := k.Type()

	if k.IsNumber() {
		return valueEntry(t, reflect.Zero(t), reflect.ValueOf(1).Convert(t))
	}

	switch k {
	case KindBool:
		return valueEntry(t, reflect.ValueOf(false), reflect.ValueOf(true))
	case KindString:
		return valueEntry(t, reflect.ValueOf("0"), reflect.ValueOf("1"))
	case KindTime:
		left, right := time.Unix(1, 0).UTC(), time.Unix(0, 0).UTC()
		return funcEntry(left, right, func(v time.Time) bool { return v.Equal(left) })
	case KindUUID:
		left := uuid.UUID{15: 1}
		right := uuid.UUID{15: 2}
		return valueEntry(t, reflect.ValueOf(left), reflect.ValueOf(right))
	case KindBytes:
		return entry{
			pair: func() (reflect.Value, reflect.Value) {
				return reflect.ValueOf([]byte{0x00}), reflect.ValueOf([]byte{0x01})
			},
			isLeft: func(v reflect.Value) (bool, error) {
				return bytes.Equal(v.Bytes(), []byte{0x00}), nil
			},
		}
	case KindURL:
		left := url.URL{Scheme: "https", Host: "left.fake.url"}
		right := url.URL{Scheme: "https", Host: "right.fake.url"}
		return funcEntry(left, right, func(v url.URL) bool { return v.String() == left.String() })
	default:
		panic("no built-in sentinel pair for kind: " + k.String())
	}
}
