package sentinel_test

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"

	"wirepath/sentinel"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf("")))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(url.URL{})))
	fmt.Println(sentinel.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindNamedScalar
	// KindNamedScalar
	// KindDuration
	// KindTime
	// KindUUID
	// KindURL
	// KindEnum(0)
}

func ExampleDispatch() {
	for _, v := range []any{new(int), []string{}, map[string]struct{}{}, map[string]int{}, struct{}{}, 0} {
		fmt.Println(sentinel.Dispatch(reflect.TypeOf(v)))
	}
	// Output:
	// optional
	// sequence
	// set
	// mapping
	// struct
	// scalar
}
