package probe

import (
	"reflect"
	"strings"

	"wirepath/codable"
	"wirepath/sentinel"
)

// Property is a registry entry: the declared type last seen at a coding path.
type Property struct {
	Path codable.Path
	Type reflect.Type
}

// Context is the mutable state of a single decode pass. It is shared by every
// container the pass opens and must not be reused across passes.
type Context struct {
	catalog *sentinel.Catalog

	activation int
	current    int
	maxDepth   int

	activated    codable.Path
	hasActivated bool

	properties []Property
	index      map[string]int
}

// NewContext prepares a pass in which the leaf request numbered activation
// receives the left sentinel and containers deeper than maxDepth read as null.
func NewContext(catalog *sentinel.Catalog, activation, maxDepth int) *Context {
	return &Context{
		catalog:    catalog,
		activation: activation,
		maxDepth:   maxDepth,
		index:      make(map[string]int),
	}
}

// Record stores the declared type for path, replacing an earlier type at the same path.
func (c *Context) Record(path codable.Path, t reflect.Type) {
	key := pathKey(path)
	if i, ok := c.index[key]; ok {
		c.properties[i].Type = t
		return
	}

	c.index[key] = len(c.properties)
	c.properties = append(c.properties, Property{Path: path, Type: t})
}

// ChildrenAt returns the recorded properties nested exactly depth levels below the root.
func (c *Context) ChildrenAt(depth int) []Property {
	var out []Property

	for _, p := range c.properties {
		if p.Path.Depth() == depth {
			out = append(out, p)
		}
	}

	return out
}

// Properties returns every recorded property in first-seen order.
func (c *Context) Properties() []Property {
	return append([]Property(nil), c.properties...)
}

// Activated returns the path whose leaf received the left sentinel, if any.
func (c *Context) Activated() (codable.Path, bool) {
	return c.activated, c.hasActivated
}

// Ordinals is the number of activation ordinals consumed so far.
func (c *Context) Ordinals() int {
	return c.current
}

// MaxDepth is the container depth at which values read as null.
func (c *Context) MaxDepth() int {
	return c.maxDepth
}

// next consumes one ordinal and reports whether it is the activated one.
func (c *Context) next() bool {
	active := c.current == c.activation
	c.current++

	return active
}

func (c *Context) activate(path codable.Path) {
	if c.hasActivated {
		return
	}

	c.activated = path
	c.hasActivated = true
}

// stopAt reports whether a value inside a container at path should read as null.
func (c *Context) stopAt(containerPath codable.Path) bool {
	return len(containerPath) >= c.maxDepth
}

// leaf hands out a sentinel for the value at path and advances the ordinal.
func (c *Context) leaf(path codable.Path, dst reflect.Value, pair sentinel.Pair) {
	if c.next() {
		c.activate(path)
		dst.Set(pair.Left)

		return
	}

	dst.Set(pair.Right)
}

func pathKey(path codable.Path) string {
	return strings.Join(path, "\x00")
}
