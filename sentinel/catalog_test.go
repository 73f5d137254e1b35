package sentinel_test

import (
	"net/url"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirepath/sentinel"
)

type color int

const (
	red color = iota
	green
	blue
)

type point struct{ X, Y int }

type level string

func assertPair(t *testing.T, c *sentinel.Catalog, rt reflect.Type) sentinel.Pair {
	t.Helper()

	pair, err := c.Pair(rt)
	require.NoError(t, err, rt.String())
	require.Equal(t, rt, pair.Left.Type(), rt.String())
	require.Equal(t, rt, pair.Right.Type(), rt.String())

	isLeft, err := pair.IsLeft(pair.Left)
	require.NoError(t, err)
	assert.True(t, isLeft, "left of %s: %s", rt, spew.Sdump(pair.Left.Interface()))

	isLeft, err = pair.IsLeft(pair.Right)
	require.NoError(t, err)
	assert.False(t, isLeft, "right of %s: %s", rt, spew.Sdump(pair.Right.Interface()))

	return pair
}

func TestBuiltinPairs(t *testing.T) {
	c := sentinel.New()

	for k := sentinel.KindInt; int(k) < sentinel.KindTotal; k++ {
		if k == sentinel.KindNamedScalar {
			continue
		}

		t.Run(k.String(), func(t *testing.T) {
			assertPair(t, c, k.Type())
		})
	}
}

func TestBuiltinValues(t *testing.T) {
	c := sentinel.New()

	pair := assertPair(t, c, reflect.TypeFor[int]())
	assert.Equal(t, 0, pair.Left.Interface())
	assert.Equal(t, 1, pair.Right.Interface())

	pair = assertPair(t, c, reflect.TypeFor[string]())
	assert.Equal(t, "0", pair.Left.Interface())
	assert.Equal(t, "1", pair.Right.Interface())

	pair = assertPair(t, c, reflect.TypeFor[bool]())
	assert.Equal(t, false, pair.Left.Interface())
	assert.Equal(t, true, pair.Right.Interface())

	pair = assertPair(t, c, reflect.TypeFor[time.Time]())
	assert.True(t, pair.Left.Interface().(time.Time).Equal(time.Unix(1, 0)))
	assert.True(t, pair.Right.Interface().(time.Time).Equal(time.Unix(0, 0)))

	// Equal instants in another location still count as left.
	isLeft, err := pair.IsLeft(reflect.ValueOf(time.Unix(1, 0).In(time.FixedZone("X", 3600))))
	require.NoError(t, err)
	assert.True(t, isLeft)

	pair = assertPair(t, c, reflect.TypeFor[uuid.UUID]())
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", pair.Left.Interface().(uuid.UUID).String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", pair.Right.Interface().(uuid.UUID).String())

	pair = assertPair(t, c, reflect.TypeFor[url.URL]())
	u := pair.Left.Interface().(url.URL)
	assert.Equal(t, "https://left.fake.url", u.String())

	pair = assertPair(t, c, reflect.TypeFor[[]byte]())
	assert.Equal(t, []byte{0}, pair.Left.Interface())
}

func TestComposedPairs(t *testing.T) {
	c := sentinel.New()

	types := []reflect.Type{
		reflect.TypeFor[*int](),
		reflect.TypeFor[**string](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[[][]string](),
		reflect.TypeFor[map[string]struct{}](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[map[int][]time.Time](),
		reflect.TypeFor[[]*uuid.UUID](),
		reflect.TypeFor[level](),
		reflect.TypeFor[color](),
		reflect.TypeFor[*color](),
	}

	for _, rt := range types {
		t.Run(rt.String(), func(t *testing.T) {
			assertPair(t, c, rt)
		})
	}
}

func TestComposedPredicates(t *testing.T) {
	c := sentinel.New()

	isLeft, err := c.IsLeft(reflect.TypeFor[*int](), reflect.ValueOf((*int)(nil)))
	require.NoError(t, err)
	assert.False(t, isLeft, "nil optional")

	isLeft, err = c.IsLeft(reflect.TypeFor[[]int](), reflect.ValueOf([]int{}))
	require.NoError(t, err)
	assert.False(t, isLeft, "empty sequence")

	isLeft, err = c.IsLeft(reflect.TypeFor[[]int](), reflect.ValueOf([]int{0, 1}))
	require.NoError(t, err)
	assert.True(t, isLeft, "element 0 decides")

	isLeft, err = c.IsLeft(reflect.TypeFor[map[string]int](), reflect.ValueOf(map[string]int{"1": 0}))
	require.NoError(t, err)
	assert.False(t, isLeft, "left key missing")

	isLeft, err = c.IsLeft(reflect.TypeFor[map[string]int](), reflect.ValueOf(map[string]int{"0": 0}))
	require.NoError(t, err)
	assert.True(t, isLeft)

	pair, err := c.Pair(reflect.TypeFor[map[string]int]())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 0}, pair.Left.Interface())
	assert.Equal(t, map[string]int{"0": 1}, pair.Right.Interface())
}

func TestPairsAreFresh(t *testing.T) {
	c := sentinel.New()

	first, err := c.Pair(reflect.TypeFor[[]int]())
	require.NoError(t, err)

	first.Left.Index(0).SetInt(42)

	second, err := c.Pair(reflect.TypeFor[[]int]())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, second.Left.Interface())
}

func TestRegisteredPairsAreFresh(t *testing.T) {
	type ids []int

	c := sentinel.New()
	require.NoError(t, sentinel.Register(c, ids{0}, ids{1}))

	pair := assertPair(t, c, reflect.TypeFor[ids]())

	decoded := reflect.New(pair.Type).Elem()
	decoded.Set(pair.Left)
	decoded.Interface().(ids)[0] = 7

	again := assertPair(t, c, reflect.TypeFor[ids]())
	assert.Equal(t, ids{0}, again.Left.Interface())

	isLeft, err := again.IsLeft(reflect.ValueOf(ids{0}))
	require.NoError(t, err)
	assert.True(t, isLeft)
}

func TestBuiltinPairsAreFresh(t *testing.T) {
	c := sentinel.New()

	for _, rt := range []reflect.Type{
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[url.URL](),
		reflect.TypeFor[uuid.UUID](),
		reflect.TypeFor[string](),
	} {
		pair := assertPair(t, c, rt)
		assert.False(t, pair.Left.CanSet(), "left of %s is shared", rt)
		assert.False(t, pair.Right.CanSet(), "right of %s is shared", rt)
	}

	again := assertPair(t, c, reflect.TypeFor[time.Time]())
	isLeft, err := again.IsLeft(again.Left)
	require.NoError(t, err)
	assert.True(t, isLeft)
	assert.Equal(t, time.Unix(1, 0).UTC(), again.Left.Interface())
}

func TestNotReflectable(t *testing.T) {
	c := sentinel.New()

	for _, rt := range []reflect.Type{
		reflect.TypeFor[point](),
		reflect.TypeFor[any](),
		reflect.TypeFor[[]point](),
		reflect.TypeFor[map[string]point](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[complex128](),
		nil,
	} {
		_, err := c.Pair(rt)
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrNotReflectable)
		assert.False(t, c.Has(rt))
	}
}

func TestMismatch(t *testing.T) {
	c := sentinel.New()

	pair, err := c.Pair(reflect.TypeFor[int]())
	require.NoError(t, err)

	_, err = pair.IsLeft(reflect.ValueOf("0"))
	require.Error(t, err)

	var mismatch *sentinel.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, reflect.TypeFor[int](), mismatch.Want)
	assert.Equal(t, reflect.TypeFor[string](), mismatch.Got)
	assert.Equal(t, "sentinel predicate for int received string", err.Error())

	_, err = pair.IsLeft(reflect.Value{})
	require.ErrorAs(t, err, &mismatch)
	assert.Nil(t, mismatch.Got)
}

func TestRegisterEnum(t *testing.T) {
	c := sentinel.New()

	err := sentinel.RegisterEnum(c, red)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrInsufficientVariants)

	err = sentinel.RegisterEnum[color](c)
	assert.ErrorIs(t, err, sentinel.ErrInsufficientVariants)

	_, err = c.Pair(reflect.TypeFor[color]())
	require.ErrorIs(t, err, sentinel.ErrInsufficientVariants, "a rejected enum does not fall back to int")
	assert.False(t, c.Has(reflect.TypeFor[color]()))
	assert.False(t, c.Has(reflect.TypeFor[[]color]()))

	require.NoError(t, sentinel.RegisterEnum(c, red, green, blue))

	pair := assertPair(t, c, reflect.TypeFor[color]())
	assert.Equal(t, red, pair.Left.Interface())

	require.Error(t, sentinel.RegisterEnum(c, level("only")))
	c.Reset()
	assert.True(t, c.Has(reflect.TypeFor[level]()), "reset forgets rejected enums")
	assert.Equal(t, blue, pair.Right.Interface())

	isLeft, err := pair.IsLeft(reflect.ValueOf(green))
	require.NoError(t, err)
	assert.False(t, isLeft)
}

func TestRegister(t *testing.T) {
	c := sentinel.New()
	before := c.Count()

	require.NoError(t, sentinel.Register(c, point{X: 1}, point{X: 2}))
	assert.Equal(t, before+1, c.Count())
	assert.True(t, c.Has(reflect.TypeFor[point]()))
	assert.True(t, c.Has(reflect.TypeFor[[]point]()), "composition picks up registrations")

	pair := assertPair(t, c, reflect.TypeFor[point]())
	assert.Equal(t, point{X: 1}, pair.Left.Interface())

	err := sentinel.Register(c, point{}, point{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrDegeneratePair)

	require.NoError(t, sentinel.RegisterFunc(c, "left", "right", func(s string) bool {
		return strings.HasPrefix(s, "l")
	}))

	isLeft, err := c.IsLeft(reflect.TypeFor[string](), reflect.ValueOf("lemon"))
	require.NoError(t, err)
	assert.True(t, isLeft, "custom predicate replaces the built-in")

	c.Reset()
	assert.Equal(t, before, c.Count())
	assert.False(t, c.Has(reflect.TypeFor[point]()))

	pair = assertPair(t, c, reflect.TypeFor[string]())
	assert.Equal(t, "0", pair.Left.Interface())
}

func TestRegisterDeepEqual(t *testing.T) {
	type tags []string

	c := sentinel.New()
	require.NoError(t, sentinel.Register(c, tags{"a"}, tags{"b"}))

	isLeft, err := c.IsLeft(reflect.TypeFor[tags](), reflect.ValueOf(tags{"a"}))
	require.NoError(t, err)
	assert.True(t, isLeft)
}

func TestRequests(t *testing.T) {
	c := sentinel.New()
	assert.Zero(t, c.Requests())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				_, _ = c.Pair(reflect.TypeFor[[]string]())
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(800), c.Requests())

	c.Has(reflect.TypeFor[int]())
	assert.Equal(t, int64(800), c.Requests(), "Has does not count")
}

func TestTypes(t *testing.T) {
	c := sentinel.New()
	types := c.Types()

	require.Len(t, types, c.Count())
	assert.Equal(t, "[]uint8", types[0].String())
}
