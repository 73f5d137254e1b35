package reflection

import (
	"reflect"

	"wirepath/codable"
	"wirepath/internal/probe"
)

// ReflectedProperty is a resolved property: its declared type and the coding
// path it is decoded from.
type ReflectedProperty struct {
	Type reflect.Type
	Path codable.Path
}

// String renders "address.city: string".
func (p ReflectedProperty) String() string {
	return p.Path.String() + ": " + p.Type.String()
}

// PassResult exposes a single decode pass.
type PassResult struct {
	// Instance is the synthetic value the pass decoded.
	Instance codable.Decodable

	// Activated is the path that received the left sentinel; Active is false
	// when the activation ordinal was never reached.
	Activated codable.Path
	Active    bool

	// Ordinals is the number of activation ordinals the pass consumed.
	Ordinals int

	// Properties lists every recorded path with its declared type.
	Properties []ReflectedProperty
}

func fromProbe(props []probe.Property) []ReflectedProperty {
	out := make([]ReflectedProperty, 0, len(props))
	for _, p := range props {
		out = append(out, ReflectedProperty{Type: p.Type, Path: p.Path})
	}

	return out
}
