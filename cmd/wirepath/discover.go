package main

import (
	"wirepath/reflection"
)

// discovery is the union of what every pass over a schema recorded.
type discovery struct {
	Properties []reflection.ReflectedProperty
	Passes     int
}

// discover runs one pass per activation ordinal at the reflector's depth
// bound. Unlike a single enumeration it also sees the element fields of
// sequences, which are only decoded when the sequence is activated.
func discover(schema reflection.Schema) (discovery, error) {
	var out discovery

	seen := make(map[string]int)

	for activation := 0; ; activation++ {
		res, err := reflector.Probe(schema, activation, reflector.MaxDepth())
		if err != nil {
			return discovery{}, err
		}

		out.Passes++

		for _, p := range res.Properties {
			key := p.Path.String()
			if i, ok := seen[key]; ok {
				out.Properties[i] = p
				continue
			}

			seen[key] = len(out.Properties)
			out.Properties = append(out.Properties, p)
		}

		if !res.Active {
			return out, nil
		}
	}
}
