// Package yamlcodec feeds YAML documents to codable.Decodable types.
//
// Coding keys are mapping keys and sequence elements are addressed by index.
// Scalars are decoded by yaml.v3, except for types implementing
// encoding.TextUnmarshaler or encoding.BinaryUnmarshaler (uuid.UUID,
// url.URL), which receive the raw scalar text.
package yamlcodec
