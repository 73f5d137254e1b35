package reflection

import (
	"reflect"

	"wirepath/codable"
)

// Decodable constrains PT to be *T implementing codable.Decodable, so that
// generic helpers can allocate a T and decode into it.
type Decodable[T any] interface {
	*T
	codable.Decodable
}

// Schema identifies a decodable root type.
type Schema struct {
	Type reflect.Type

	alloc func() codable.Decodable
}

// SchemaOf returns the schema of T.
func SchemaOf[T any, PT Decodable[T]]() Schema {
	return Schema{
		Type:  reflect.TypeFor[T](),
		alloc: func() codable.Decodable { return PT(new(T)) },
	}
}

func (s Schema) String() string {
	return s.Type.String()
}

// Property is an opaque reference to one property of a schema: a getter with
// no knowledge of the coding path it is decoded from. Properties are compared
// by pointer identity, so keep the value returned by Field and friends around
// (typically in a package-level variable) to benefit from caching.
type Property struct {
	schema Schema
	value  reflect.Type
	label  string

	get func(root codable.Decodable) (reflect.Value, bool)
}

// Field references the property returned by get.
func Field[T any, V any, PT Decodable[T]](get func(*T) V) *Property {
	return &Property{
		schema: SchemaOf[T, PT](),
		value:  reflect.TypeFor[V](),
		get: func(root codable.Decodable) (reflect.Value, bool) {
			v := get((*T)(root.(PT)))
			return reflect.ValueOf(&v).Elem(), true
		},
	}
}

// FieldLookup references a property that may be unreachable in a given
// instance, e.g. behind a nil pointer or inside an empty slice; get reports
// false in that case.
func FieldLookup[T any, V any, PT Decodable[T]](get func(*T) (V, bool)) *Property {
	return &Property{
		schema: SchemaOf[T, PT](),
		value:  reflect.TypeFor[V](),
		get: func(root codable.Decodable) (reflect.Value, bool) {
			v, ok := get((*T)(root.(PT)))
			if !ok {
				return reflect.Value{}, false
			}

			return reflect.ValueOf(&v).Elem(), true
		},
	}
}

// Named labels p for logs and diagnostics and returns it. It modifies p in
// place without locking, so call it where p is created, e.g. in a package-level
// variable initializer, and never while p may be passed to Locate concurrently.
func (p *Property) Named(label string) *Property {
	p.label = label
	return p
}

// Schema is the root type the property belongs to.
func (p *Property) Schema() Schema { return p.schema }

// Type is the declared type of the property value.
func (p *Property) Type() reflect.Type { return p.value }

func (p *Property) String() string {
	if p.label != "" {
		return p.schema.String() + "." + p.label
	}

	return p.schema.String() + ".<" + p.value.String() + ">"
}
