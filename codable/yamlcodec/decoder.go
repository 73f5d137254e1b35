package yamlcodec

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"wirepath/codable"
)

var ErrKeyNotFound = errors.New("key not found")

// Unmarshal parses a YAML document and decodes it into v.
func Unmarshal(data []byte, v any) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return codable.DecodeInto(NewDecoder(&doc), v)
}

// Decoder reads a yaml.v3 node tree through the codable containers.
type Decoder struct {
	node *yaml.Node
	path codable.Path
}

var _ codable.Decoder = (*Decoder)(nil)

// NewDecoder returns a decoder for node. Document nodes are unwrapped.
func NewDecoder(node *yaml.Node) *Decoder {
	return newDecoder(node, nil)
}

func newDecoder(node *yaml.Node, path codable.Path) *Decoder {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	return &Decoder{node: node, path: path}
}

func (d *Decoder) CodingPath() codable.Path { return d.path }

func (d *Decoder) Keyed() (codable.KeyedContainer, error) {
	if d.node.Kind != yaml.MappingNode {
		return nil, mismatch(d.node, d.path, "a mapping")
	}

	k := &keyedContainer{node: d.node, path: d.path, values: make(map[string]*yaml.Node, len(d.node.Content)/2)}
	for i := 0; i+1 < len(d.node.Content); i += 2 {
		key := d.node.Content[i].Value
		if _, dup := k.values[key]; !dup {
			k.keys = append(k.keys, key)
		}

		k.values[key] = d.node.Content[i+1]
	}

	return k, nil
}

func (d *Decoder) Unkeyed() (codable.UnkeyedContainer, error) {
	switch {
	case isNull(d.node):
		return &unkeyedContainer{path: d.path}, nil
	case d.node.Kind == yaml.SequenceNode:
		return &unkeyedContainer{items: d.node.Content, path: d.path}, nil
	default:
		return nil, mismatch(d.node, d.path, "a sequence")
	}
}

func (d *Decoder) SingleValue() (codable.SingleValueContainer, error) {
	return &singleValueContainer{node: d.node, path: d.path}, nil
}

type keyedContainer struct {
	node   *yaml.Node
	path   codable.Path
	keys   []string
	values map[string]*yaml.Node
}

func (k *keyedContainer) CodingPath() codable.Path { return k.path }

func (k *keyedContainer) Keys() []string { return k.keys }

func (k *keyedContainer) Contains(key string) bool {
	_, ok := k.values[key]
	return ok
}

func (k *keyedContainer) DecodeNil(key string) (bool, error) {
	child, err := k.child(key)
	if err != nil {
		return false, err
	}

	return isNull(child), nil
}

func (k *keyedContainer) Decode(key string, v any) error {
	child, err := k.child(key)
	if err != nil {
		return err
	}

	return decodeNode(child, k.path.Append(key), v)
}

func (k *keyedContainer) Nested(key string) (codable.KeyedContainer, error) {
	d, err := k.Super(key)
	if err != nil {
		return nil, err
	}

	return d.Keyed()
}

func (k *keyedContainer) NestedUnkeyed(key string) (codable.UnkeyedContainer, error) {
	d, err := k.Super(key)
	if err != nil {
		return nil, err
	}

	return d.Unkeyed()
}

func (k *keyedContainer) Super(key string) (codable.Decoder, error) {
	child, err := k.child(key)
	if err != nil {
		return nil, err
	}

	return newDecoder(child, k.path.Append(key)), nil
}

func (k *keyedContainer) child(key string) (*yaml.Node, error) {
	child, ok := k.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q at %s (line %d)", ErrKeyNotFound, key, pathString(k.path), k.node.Line)
	}

	return child, nil
}

type unkeyedContainer struct {
	items []*yaml.Node
	path  codable.Path
	index int
}

func (u *unkeyedContainer) CodingPath() codable.Path { return u.path }

func (u *unkeyedContainer) Count() (int, bool) { return len(u.items), true }

func (u *unkeyedContainer) IsAtEnd() bool { return u.index >= len(u.items) }

func (u *unkeyedContainer) Index() int { return u.index }

func (u *unkeyedContainer) DecodeNil() (bool, error) {
	item, err := u.current()
	if err != nil {
		return false, err
	}

	if !isNull(item) {
		return false, nil
	}

	u.index++

	return true, nil
}

func (u *unkeyedContainer) Decode(v any) error {
	d, err := u.next()
	if err != nil {
		return err
	}

	return decodeNode(d.node, d.path, v)
}

func (u *unkeyedContainer) Nested() (codable.KeyedContainer, error) {
	d, err := u.next()
	if err != nil {
		return nil, err
	}

	return d.Keyed()
}

func (u *unkeyedContainer) NestedUnkeyed() (codable.UnkeyedContainer, error) {
	d, err := u.next()
	if err != nil {
		return nil, err
	}

	return d.Unkeyed()
}

func (u *unkeyedContainer) current() (*yaml.Node, error) {
	if u.IsAtEnd() {
		return nil, fmt.Errorf("%w: %s has %d elements", ErrKeyNotFound, pathString(u.path), len(u.items))
	}

	return u.items[u.index], nil
}

// next returns a decoder for the current element, addressed by its index, and advances.
func (u *unkeyedContainer) next() (*Decoder, error) {
	item, err := u.current()
	if err != nil {
		return nil, err
	}

	d := newDecoder(item, u.path.Append(strconv.Itoa(u.index)))
	u.index++

	return d, nil
}

type singleValueContainer struct {
	node *yaml.Node
	path codable.Path
}

func (s *singleValueContainer) CodingPath() codable.Path { return s.path }

func (s *singleValueContainer) DecodeNil() bool { return isNull(s.node) }

func (s *singleValueContainer) Decode(v any) error {
	return decodeScalar(s.node, s.path, v)
}

// decodeNode routes v to its own DecodeFrom, to structural decoding when a
// Decodable hides inside a container type, or to yaml itself.
func decodeNode(node *yaml.Node, path codable.Path, v any) error {
	if _, ok := v.(codable.Decodable); ok {
		return codable.DecodeInto(newDecoder(node, path), v)
	}

	if t := reflect.TypeOf(v); t != nil && t.Kind() == reflect.Pointer && holdsDecodable(t.Elem()) {
		return codable.DecodeInto(newDecoder(node, path), v)
	}

	return decodeScalar(node, path, v)
}

func decodeScalar(node *yaml.Node, path codable.Path, v any) error {
	if node.Kind == yaml.ScalarNode && node.Tag != "!!timestamp" {
		switch u := v.(type) {
		case encoding.TextUnmarshaler:
			return wrap(path, u.UnmarshalText([]byte(node.Value)))
		case encoding.BinaryUnmarshaler:
			return wrap(path, u.UnmarshalBinary([]byte(node.Value)))
		}
	}

	return wrap(path, node.Decode(v))
}

func holdsDecodable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
		return codable.IsDecodable(t.Elem()) || holdsDecodable(t.Elem())
	default:
		return false
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func wrap(path codable.Path, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w: %w", pathString(path), codable.ErrTypeMismatch, err)
}

func mismatch(node *yaml.Node, path codable.Path, want string) error {
	return fmt.Errorf("%w: %s expects %s, found %s (line %d)",
		codable.ErrTypeMismatch, pathString(path), want, kindName(node), node.Line)
}

func pathString(path codable.Path) string {
	if len(path) == 0 {
		return "<root>"
	}

	return path.String()
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "a document"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	case yaml.ScalarNode:
		if isNull(node) {
			return "null"
		}

		return "scalar " + strconv.Quote(node.Value)
	default:
		return "an unknown node"
	}
}
