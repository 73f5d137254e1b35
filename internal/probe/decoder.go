package probe

import (
	"errors"
	"fmt"
	"reflect"

	"wirepath/codable"
	"wirepath/sentinel"
)

// Decoder is a synthetic codable.Decoder. Instead of reading input it hands
// out sentinel values and records every value the Decodable asks for.
type Decoder struct {
	path codable.Path
	ctx  *Context
}

var _ codable.Decoder = (*Decoder)(nil)

// NewDecoder returns a decoder positioned at path within the pass ctx.
func NewDecoder(path codable.Path, ctx *Context) *Decoder {
	return &Decoder{path: path, ctx: ctx}
}

// Run drives one pass: root decodes itself from a fresh decoder at the empty path.
func Run(root codable.Decodable, ctx *Context) error {
	return root.DecodeFrom(NewDecoder(nil, ctx))
}

func (d *Decoder) CodingPath() codable.Path { return d.path }

func (d *Decoder) Keyed() (codable.KeyedContainer, error) {
	return &keyedContainer{path: d.path, ctx: d.ctx}, nil
}

func (d *Decoder) Unkeyed() (codable.UnkeyedContainer, error) {
	return newUnkeyedContainer(d.path, d.ctx), nil
}

func (d *Decoder) SingleValue() (codable.SingleValueContainer, error) {
	return &singleValueContainer{path: d.path, ctx: d.ctx}, nil
}

type keyedContainer struct {
	path codable.Path
	ctx  *Context

	// optionalKey is the key last probed with Contains; its next Decode is
	// recorded as optional.
	optionalKey string
	hasOptional bool
}

func (k *keyedContainer) CodingPath() codable.Path { return k.path }

func (k *keyedContainer) Keys() []string { return nil }

// Contains always reports presence so optional fields are traversed.
func (k *keyedContainer) Contains(key string) bool {
	k.optionalKey = key
	k.hasOptional = true

	return true
}

func (k *keyedContainer) DecodeNil(string) (bool, error) {
	return k.ctx.stopAt(k.path), nil
}

func (k *keyedContainer) Decode(key string, v any) error {
	dst, err := target(v)
	if err != nil {
		return err
	}

	path := k.path.Append(key)

	declared := dst.Type()
	if k.hasOptional && k.optionalKey == key {
		declared = reflect.PointerTo(declared)
		k.hasOptional = false
	}

	k.ctx.Record(path, declared)

	pair, err := k.ctx.catalog.Pair(dst.Type())
	switch {
	case err == nil:
		k.ctx.leaf(path, dst, pair)
		return nil
	case errors.Is(err, sentinel.ErrNotReflectable):
		return codable.DecodeInto(NewDecoder(path, k.ctx), v)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}

func (k *keyedContainer) Nested(key string) (codable.KeyedContainer, error) {
	return &keyedContainer{path: k.path.Append(key), ctx: k.ctx}, nil
}

func (k *keyedContainer) NestedUnkeyed(key string) (codable.UnkeyedContainer, error) {
	return newUnkeyedContainer(k.path.Append(key), k.ctx), nil
}

func (k *keyedContainer) Super(key string) (codable.Decoder, error) {
	return NewDecoder(k.path.Append(key), k.ctx), nil
}

// unkeyedContainer yields a single element when the pass activates it and
// none otherwise, so inactive sequences consume exactly one ordinal.
type unkeyedContainer struct {
	path  codable.Path
	ctx   *Context
	count int
	index int
}

func newUnkeyedContainer(path codable.Path, ctx *Context) *unkeyedContainer {
	u := &unkeyedContainer{path: path, ctx: ctx}
	if ctx.next() {
		ctx.activate(path)
		u.count = 1
	}

	return u
}

func (u *unkeyedContainer) CodingPath() codable.Path { return u.path }

func (u *unkeyedContainer) Count() (int, bool) { return u.count, true }

func (u *unkeyedContainer) IsAtEnd() bool { return u.index >= u.count }

func (u *unkeyedContainer) Index() int { return u.index }

func (u *unkeyedContainer) DecodeNil() (bool, error) {
	u.index = u.count
	return true, nil
}

// Decode records the element as a one-element sequence at the container path.
// Leaf elements always receive the left sentinel.
func (u *unkeyedContainer) Decode(v any) error {
	dst, err := target(v)
	if err != nil {
		return err
	}

	u.ctx.Record(u.path, reflect.SliceOf(dst.Type()))
	u.index = u.count

	pair, err := u.ctx.catalog.Pair(dst.Type())
	switch {
	case err == nil:
		dst.Set(pair.Left)
		return nil
	case errors.Is(err, sentinel.ErrNotReflectable):
		return codable.DecodeInto(NewDecoder(u.path, u.ctx), v)
	default:
		return fmt.Errorf("%s: %w", u.path, err)
	}
}

func (u *unkeyedContainer) Nested() (codable.KeyedContainer, error) {
	u.index = u.count
	return &keyedContainer{path: u.path, ctx: u.ctx}, nil
}

func (u *unkeyedContainer) NestedUnkeyed() (codable.UnkeyedContainer, error) {
	u.index = u.count
	return newUnkeyedContainer(u.path, u.ctx), nil
}

type singleValueContainer struct {
	path codable.Path
	ctx  *Context
}

func (s *singleValueContainer) CodingPath() codable.Path { return s.path }

// DecodeNil applies the depth bound of the enclosing container.
func (s *singleValueContainer) DecodeNil() bool {
	if len(s.path) == 0 {
		return false
	}

	return s.ctx.stopAt(s.path[:len(s.path)-1])
}

func (s *singleValueContainer) Decode(v any) error {
	dst, err := target(v)
	if err != nil {
		return err
	}

	s.ctx.Record(s.path, dst.Type())

	pair, err := s.ctx.catalog.Pair(dst.Type())
	if err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}

	s.ctx.leaf(s.path, dst, pair)

	return nil
}

func target(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: need a non-nil pointer, got %T", codable.ErrTypeMismatch, v)
	}

	return rv.Elem(), nil
}
