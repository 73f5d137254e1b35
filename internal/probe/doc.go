// Package probe implements the synthetic decoder behind the reflection API.
//
// A pass drives a Decodable's own DecodeFrom with a Decoder that invents its
// input. Every leaf request is numbered; the request whose number equals the
// pass's activation ordinal receives the left sentinel of its declared type
// and marks its coding path as activated, all others receive the right
// sentinel. The Context records the declared type seen at each path.
//
// Keyed containers report every key as present and not null until the
// configured depth is reached, which bounds recursive schemas. Unkeyed
// containers hold one element only when they are themselves activated.
package probe
