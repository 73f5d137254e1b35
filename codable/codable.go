package codable

import "errors"

// ErrTypeMismatch is returned by decoders when the input cannot be stored in the requested value.
var ErrTypeMismatch = errors.New("type mismatch")

// Decodable is implemented by types that construct themselves from a Decoder.
// Implementations must be deterministic: given the same input they request the
// same keys in the same order.
type Decodable interface {
	DecodeFrom(d Decoder) error
}

// Decoder is a source of structured data. A Decodable picks exactly one
// container kind for the value it is decoding.
type Decoder interface {
	CodingPath() Path
	Keyed() (KeyedContainer, error)
	Unkeyed() (UnkeyedContainer, error)
	SingleValue() (SingleValueContainer, error)
}

// KeyedContainer reads values stored under string keys.
//
// Decode methods accept a non-nil pointer; the pointed-to type is the
// declared type of the value being read.
type KeyedContainer interface {
	CodingPath() Path
	// Keys lists the keys present in the input, in input order when known.
	Keys() []string
	Contains(key string) bool
	// DecodeNil reports whether the value under key is null.
	DecodeNil(key string) (bool, error)
	Decode(key string, v any) error
	Nested(key string) (KeyedContainer, error)
	NestedUnkeyed(key string) (UnkeyedContainer, error)
	// Super returns a Decoder positioned at key, for delegating to another Decodable.
	Super(key string) (Decoder, error)
}

// UnkeyedContainer reads an ordered sequence of values.
type UnkeyedContainer interface {
	CodingPath() Path
	// Count is the number of elements, when known.
	Count() (int, bool)
	IsAtEnd() bool
	Index() int
	DecodeNil() (bool, error)
	Decode(v any) error
	Nested() (KeyedContainer, error)
	NestedUnkeyed() (UnkeyedContainer, error)
}

// SingleValueContainer reads one primitive value.
type SingleValueContainer interface {
	CodingPath() Path
	DecodeNil() bool
	Decode(v any) error
}
