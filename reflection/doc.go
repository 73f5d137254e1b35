// Package reflection discovers the coding paths of decodable types without
// any field tags or generated metadata.
//
// A type describes its wire layout only through its DecodeFrom method. The
// reflector runs that method against a synthetic decoder which answers every
// leaf request with a sentinel value and records the path and declared type
// of each request. Enumerate lists what one such pass sees. Locate maps a
// getter (a Property) to a coding path: pass after pass, exactly one leaf
// receives the "left" sentinel, and the pass in which the getter reads that
// left sentinel names the path.
//
//	var city = reflection.FieldLookup(func(c *Customer) (string, bool) {
//		if c.Address == nil {
//			return "", false
//		}
//		return c.Address.City, true
//	})
//
//	prop, found, err := reflection.Locate(city) // "address.city: string"
//
// Results are cached per *Property for the lifetime of the Reflector.
// Self-referential schemas are bounded by Config.MaxDepth.
package reflection
