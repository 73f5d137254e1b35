// Package fixtures holds sample decodable schemas: orders and customers,
// a self-referential category tree, a shipment covering every built-in leaf
// kind and an envelope that cannot be probed. Tests and the CLI share them.
package fixtures
