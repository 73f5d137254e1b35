package sentinel

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Default is the process-wide catalog used when no other is configured.
var Default = New()

// Pair holds the two sentinel values of Type and the predicate telling them apart.
type Pair struct {
	Type  reflect.Type
	Left  reflect.Value
	Right reflect.Value

	isLeft func(reflect.Value) (bool, error)
}

// IsLeft reports whether v equals the left sentinel. A value of another type
// yields a *MismatchError.
func (p Pair) IsLeft(v reflect.Value) (bool, error) {
	if !v.IsValid() {
		return false, &MismatchError{Want: p.Type}
	}

	if v.Type() != p.Type {
		return false, &MismatchError{Want: p.Type, Got: v.Type()}
	}

	return p.isLeft(v)
}

type entry struct {
	pair   func() (left, right reflect.Value)
	isLeft func(v reflect.Value) (bool, error)
}

// Catalog provides sentinel pairs for leaf types. Registered types are looked
// up directly; pointers, slices, sets and maps are composed from their
// element pairs on demand.
type Catalog struct {
	mu       sync.RWMutex
	entries  map[reflect.Type]entry
	rejected map[reflect.Type]error
	requests atomic.Int64
}

// New returns a catalog holding only the built-in leaf types.
func New() *Catalog {
	c := &Catalog{}
	c.Reset()

	return c
}

// Reset drops every registration made after construction.
func (c *Catalog) Reset() {
	entries := make(map[reflect.Type]entry, KindTotal)

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k == KindNamedScalar {
			continue
		}

		entries[k.Type()] = builtinEntry(k)
	}

	c.mu.Lock()
	c.entries = entries
	c.rejected = make(map[reflect.Type]error)
	c.mu.Unlock()
}

// Requests counts Pair lookups since construction.
func (c *Catalog) Requests() int64 {
	return c.requests.Load()
}

// Count returns the number of registered types, built-ins included.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Types returns the registered types ordered by name.
func (c *Catalog) Types() []reflect.Type {
	c.mu.RLock()
	out := make([]reflect.Type, 0, len(c.entries))
	for t := range c.entries {
		out = append(out, t)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}

// Pair returns fresh sentinel values for t. The values are copies owned by
// the caller; changing them does not affect later pairs.
func (c *Catalog) Pair(t reflect.Type) (Pair, error) {
	c.requests.Add(1)

	e, err := c.lookup(t)
	if err != nil {
		return Pair{}, err
	}

	left, right := e.pair()

	return Pair{Type: t, Left: left, Right: right, isLeft: e.isLeft}, nil
}

// Has reports whether t resolves to a sentinel pair, without counting as a request.
func (c *Catalog) Has(t reflect.Type) bool {
	_, err := c.lookup(t)
	return err == nil
}

// IsLeft reports whether v is the left sentinel of t.
func (c *Catalog) IsLeft(t reflect.Type, v reflect.Value) (bool, error) {
	p, err := c.Pair(t)
	if err != nil {
		return false, err
	}

	return p.IsLeft(v)
}

// Register adds T with the given sentinels, compared with == when T is
// comparable and reflect.DeepEqual otherwise.
func Register[T any](c *Catalog, left, right T) error {
	t := reflect.TypeFor[T]()

	return c.register(t, valueEntry(t, reflect.ValueOf(&left).Elem(), reflect.ValueOf(&right).Elem()))
}

// RegisterFunc adds T with a custom left-sentinel predicate.
func RegisterFunc[T any](c *Catalog, left, right T, isLeft func(T) bool) error {
	return c.register(reflect.TypeFor[T](), funcEntry(left, right, isLeft))
}

// RegisterEnum adds an enumeration given its declared cases in order. The
// first case is the left sentinel and the last one the right sentinel.
//
// An enumeration with fewer than two cases is rejected and remembered: until
// it is registered again or the catalog is reset, lookups of T fail with
// ErrInsufficientVariants instead of falling back to the underlying kind.
func RegisterEnum[T comparable](c *Catalog, cases ...T) error {
	if len(cases) < 2 {
		t := reflect.TypeFor[T]()
		err := fmt.Errorf("%w: %s declares %d", ErrInsufficientVariants, t, len(cases))

		c.mu.Lock()
		c.rejected[t] = err
		c.mu.Unlock()

		return err
	}

	return Register(c, cases[0], cases[len(cases)-1])
}

func (c *Catalog) register(t reflect.Type, e entry) error {
	left, right := e.pair()

	isLeft, err := e.isLeft(left)
	if err != nil {
		return err
	}

	isRight, err := e.isLeft(right)
	if err != nil {
		return err
	}

	if !isLeft || isRight {
		return fmt.Errorf("%w: %s", ErrDegeneratePair, t)
	}

	c.mu.Lock()
	c.entries[t] = e
	delete(c.rejected, t)
	c.mu.Unlock()

	return nil
}

func (c *Catalog) lookup(t reflect.Type) (entry, error) {
	if t == nil {
		return entry{}, notReflectable(t)
	}

	c.mu.RLock()
	e, ok := c.entries[t]
	rejected := c.rejected[t]
	c.mu.RUnlock()

	if ok {
		return e, nil
	}

	if rejected != nil {
		return entry{}, rejected
	}

	switch Dispatch(t) {
	case ShapeOptional:
		return c.optional(t)
	case ShapeSequence:
		return c.sequence(t)
	case ShapeSet:
		return c.set(t)
	case ShapeMapping:
		return c.mapping(t)
	case ShapeScalar:
		return c.namedScalar(t)
	case ShapeUnknown, ShapeStruct, ShapeInterface:
	}

	return entry{}, notReflectable(t)
}

func valueEntry(t reflect.Type, left, right reflect.Value) entry {
	e := entry{
		pair: func() (reflect.Value, reflect.Value) { return clone(left), clone(right) },
	}

	if t.Comparable() {
		e.isLeft = func(v reflect.Value) (bool, error) { return v.Equal(left), nil }
	} else {
		e.isLeft = func(v reflect.Value) (bool, error) {
			return reflect.DeepEqual(v.Interface(), left.Interface()), nil
		}
	}

	return e
}

func funcEntry[T any](left, right T, isLeft func(T) bool) entry {
	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			return clone(reflect.ValueOf(&left).Elem()), clone(reflect.ValueOf(&right).Elem())
		},
		isLeft: func(v reflect.Value) (bool, error) {
			return isLeft(v.Interface().(T)), nil
		},
	}
}

// clone copies v so the stored sentinels never leak. Slices and maps are
// copied deeply; other values are returned as non-addressable copies.
func clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}

		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(clone(v.Index(i)))
		}

		return out
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}

		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		for iter := v.MapRange(); iter.Next(); {
			out.SetMapIndex(clone(iter.Key()), clone(iter.Value()))
		}

		return out
	case reflect.Interface:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)

		return out
	default:
		return reflect.ValueOf(v.Interface())
	}
}
