package probe_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirepath/codable"
	"wirepath/internal/probe"
	"wirepath/sentinel"
)

type user struct {
	ID   int
	Name string
}

func (u *user) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if u.ID, err = codable.Decode[int](c, "id"); err != nil {
		return err
	}

	u.Name, err = codable.Decode[string](c, "name")

	return err
}

type note struct {
	Title string
	Body  *string
	Tags  []string
	Owner user
}

func (n *note) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if n.Title, err = codable.Decode[string](c, "title"); err != nil {
		return err
	}

	if n.Body, err = codable.DecodeIfPresent[string](c, "body"); err != nil {
		return err
	}

	tags, err := c.NestedUnkeyed("tags")
	if err != nil {
		return err
	}

	if n.Tags, err = codable.DecodeElements[string](tags); err != nil {
		return err
	}

	n.Owner, err = codable.Decode[user](c, "owner")

	return err
}

// link recurses through a pointer read with a plain Decode.
type link struct {
	Value int
	Next  *link
}

func (l *link) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if l.Value, err = codable.Decode[int](c, "value"); err != nil {
		return err
	}

	l.Next, err = codable.Decode[*link](c, "next")

	return err
}

type opaque struct{ Payload any }

func (o *opaque) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	o.Payload, err = codable.Decode[any](c, "payload")

	return err
}

// retyped reads the same key twice with different types.
type retyped struct{ A int }

func (r *retyped) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if _, err = codable.Decode[string](c, "a"); err != nil {
		return err
	}

	r.A, err = codable.Decode[int](c, "a")

	return err
}

// profile reads through every nested container kind.
type profile struct {
	City   string
	Owner  user
	Grid   [][]int
	Points []*int
	Corner int
}

func (p *profile) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	address, err := c.Nested("address")
	if err != nil {
		return err
	}

	if p.City, err = codable.Decode[string](address, "city"); err != nil {
		return err
	}

	owner, err := c.Super("owner")
	if err != nil {
		return err
	}

	if err = p.Owner.DecodeFrom(owner); err != nil {
		return err
	}

	rows, err := c.NestedUnkeyed("grid")
	if err != nil {
		return err
	}

	for !rows.IsAtEnd() {
		row, err := rows.NestedUnkeyed()
		if err != nil {
			return err
		}

		cells, err := codable.DecodeElements[int](row)
		if err != nil {
			return err
		}

		p.Grid = append(p.Grid, cells)
	}

	points, err := c.NestedUnkeyed("points")
	if err != nil {
		return err
	}

	for !points.IsAtEnd() {
		isNil, err := points.DecodeNil()
		if err != nil {
			return err
		}

		if isNil {
			p.Points = append(p.Points, nil)
			continue
		}

		var v int
		if err = points.Decode(&v); err != nil {
			return err
		}

		p.Points = append(p.Points, &v)
	}

	corners, err := c.NestedUnkeyed("corners")
	if err != nil {
		return err
	}

	if !corners.IsAtEnd() {
		corner, err := corners.Nested()
		if err != nil {
			return err
		}

		p.Corner, err = codable.Decode[int](corner, "x")

		return err
	}

	return nil
}

func run(t *testing.T, root codable.Decodable, activation, maxDepth int) *probe.Context {
	t.Helper()

	ctx := probe.NewContext(sentinel.New(), activation, maxDepth)
	require.NoError(t, probe.Run(root, ctx))

	return ctx
}

func TestActivation(t *testing.T) {
	var u user
	ctx := run(t, &u, 1, 0)

	path, ok := ctx.Activated()
	require.True(t, ok)
	assert.Equal(t, codable.Path{"name"}, path)
	assert.Equal(t, 2, ctx.Ordinals())
	assert.Equal(t, user{ID: 1, Name: "0"}, u, "only the activated leaf gets left")

	ctx = run(t, &u, 2, 0)
	_, ok = ctx.Activated()
	assert.False(t, ok, "ordinal exhausted")
	assert.Equal(t, user{ID: 1, Name: "1"}, u)
}

func TestRegistry(t *testing.T) {
	ctx := run(t, new(note), 0, 42)

	got := ctx.Properties()
	want := []probe.Property{
		{Path: codable.Path{"title"}, Type: reflect.TypeFor[string]()},
		{Path: codable.Path{"body"}, Type: reflect.TypeFor[*string]()},
		{Path: codable.Path{"owner"}, Type: reflect.TypeFor[user]()},
		{Path: codable.Path{"owner", "id"}, Type: reflect.TypeFor[int]()},
		{Path: codable.Path{"owner", "name"}, Type: reflect.TypeFor[string]()},
	}
	assert.Equal(t, want, got, "inactive sequences record nothing")

	assert.Len(t, ctx.ChildrenAt(0), 3)
	assert.Len(t, ctx.ChildrenAt(1), 2)
	assert.Empty(t, ctx.ChildrenAt(2))
}

func TestOptionalDepth(t *testing.T) {
	var n note

	ctx := run(t, &n, 1, 0)
	assert.Nil(t, n.Body, "root container reads null at depth 0")

	path, ok := ctx.Activated()
	require.True(t, ok)
	assert.Equal(t, codable.Path{"tags"}, path, "sequence construction consumes an ordinal")

	ctx = run(t, &n, 1, 1)
	require.NotNil(t, n.Body)
	assert.Equal(t, "0", *n.Body)

	path, _ = ctx.Activated()
	assert.Equal(t, codable.Path{"body"}, path)
}

func TestUnkeyed(t *testing.T) {
	var n note

	ctx := run(t, &n, 2, 1)
	path, ok := ctx.Activated()
	require.True(t, ok)
	assert.Equal(t, codable.Path{"tags"}, path)
	assert.Equal(t, []string{"0"}, n.Tags, "the single element receives left")

	var tagsType reflect.Type
	for _, p := range ctx.Properties() {
		if p.Path.Equal(codable.Path{"tags"}) {
			tagsType = p.Type
		}
	}
	assert.Equal(t, reflect.TypeFor[[]string](), tagsType)

	run(t, &n, 0, 1)
	assert.Empty(t, n.Tags)
}

func TestRecursionIsBounded(t *testing.T) {
	var l link
	ctx := run(t, &l, 0, 3)

	depth := 0
	for cur := &l; cur.Next != nil; cur = cur.Next {
		depth++
	}

	assert.Equal(t, 3, depth)
	assert.Equal(t, 4, ctx.Ordinals())
}

func TestRecordOverwrites(t *testing.T) {
	ctx := run(t, new(retyped), 0, 0)

	props := ctx.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, reflect.TypeFor[int](), props[0].Type)
}

func TestNotReflectable(t *testing.T) {
	ctx := probe.NewContext(sentinel.New(), 0, 0)

	err := probe.Run(new(opaque), ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotReflectable)
	assert.Contains(t, err.Error(), "payload")
}

func TestNestedContainersShareThePass(t *testing.T) {
	want := []codable.Path{
		{"address", "city"},
		{"owner", "id"},
		{"owner", "name"},
		{"grid"},
		{"points"},
		{"corners"},
	}

	for activation, path := range want {
		ctx := run(t, new(profile), activation, 1)

		got, ok := ctx.Activated()
		require.True(t, ok, "activation %d", activation)
		assert.Equal(t, path, got, "activation %d", activation)
	}

	ctx := run(t, new(profile), len(want), 1)
	_, ok := ctx.Activated()
	assert.False(t, ok)
	assert.Equal(t, len(want), ctx.Ordinals())

	var p profile

	run(t, &p, 2, 1)
	assert.Equal(t, user{ID: 1, Name: "0"}, p.Owner, "the delegated decoder counts on the same ordinals")

	p = profile{}
	ctx = run(t, &p, 3, 1)
	assert.Len(t, p.Grid, 1)
	assert.Empty(t, p.Grid[0])
	assert.Equal(t, len(want)+1, ctx.Ordinals(), "the inner row consumes its own ordinal")

	p = profile{}
	run(t, &p, 4, 1)
	assert.Equal(t, []*int{nil}, p.Points, "elements of an active sequence read as null")

	p = profile{}
	ctx = run(t, &p, 5, 1)
	assert.Equal(t, 1, p.Corner, "fields of a sequence element get the right sentinel")
	assert.Equal(t, len(want)+1, ctx.Ordinals())

	var recorded []string
	for _, prop := range ctx.Properties() {
		recorded = append(recorded, prop.Path.String())
	}

	assert.Equal(t, []string{"address.city", "owner.id", "owner.name", "corners.x"}, recorded)
}
