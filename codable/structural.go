package codable

import (
	"fmt"
	"reflect"
)

var decodableType = reflect.TypeFor[Decodable]()

// IsDecodable reports whether *t implements Decodable.
func IsDecodable(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(decodableType)
}

// DecodeInto fills the value v points at from d.
//
// A Decodable decodes itself. Otherwise the shape of the value picks the
// container: pointers are allocated unless the input is null, slices read an
// unkeyed container, maps with string-like keys read a keyed container, and
// everything else is read as a single value.
func DecodeInto(d Decoder, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: need a non-nil pointer, got %T", ErrTypeMismatch, v)
	}

	if dec, ok := v.(Decodable); ok {
		return dec.DecodeFrom(d)
	}

	elem := rv.Elem()

	switch elem.Kind() {
	case reflect.Pointer:
		return decodePointer(d, elem)
	case reflect.Slice:
		return decodeSlice(d, elem)
	case reflect.Map:
		return decodeMap(d, elem)
	default:
		c, err := d.SingleValue()
		if err != nil {
			return err
		}

		return c.Decode(v)
	}
}

func decodePointer(d Decoder, elem reflect.Value) error {
	c, err := d.SingleValue()
	if err != nil {
		return err
	}

	if c.DecodeNil() {
		elem.SetZero()
		return nil
	}

	ptr := reflect.New(elem.Type().Elem())
	if err := DecodeInto(d, ptr.Interface()); err != nil {
		return err
	}

	elem.Set(ptr)

	return nil
}

func decodeSlice(d Decoder, elem reflect.Value) error {
	u, err := d.Unkeyed()
	if err != nil {
		return err
	}

	n, _ := u.Count()
	out := reflect.MakeSlice(elem.Type(), 0, n)

	for !u.IsAtEnd() {
		item := reflect.New(elem.Type().Elem())
		if err := u.Decode(item.Interface()); err != nil {
			return fmt.Errorf("%s[%d]: %w", u.CodingPath(), u.Index(), err)
		}

		out = reflect.Append(out, item.Elem())
	}

	elem.Set(out)

	return nil
}

func decodeMap(d Decoder, elem reflect.Value) error {
	mt := elem.Type()
	if mt.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key %s is not string-like", ErrTypeMismatch, mt.Key())
	}

	c, err := d.Keyed()
	if err != nil {
		return err
	}

	keys := c.Keys()
	out := reflect.MakeMapWithSize(mt, len(keys))

	for _, key := range keys {
		val := reflect.New(mt.Elem())
		if err := c.Decode(key, val.Interface()); err != nil {
			return err
		}

		out.SetMapIndex(reflect.ValueOf(key).Convert(mt.Key()), val.Elem())
	}

	elem.Set(out)

	return nil
}
