package sentinel

import "reflect"

// optional wraps the element pair: (&left, &right). A nil pointer never matches.
func (c *Catalog) optional(t reflect.Type) (entry, error) {
	inner, err := c.lookup(t.Elem())
	if err != nil {
		return entry{}, err
	}

	wrap := func(v reflect.Value) reflect.Value {
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)

		return ptr.Convert(t)
	}

	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			left, right := inner.pair()
			return wrap(left), wrap(right)
		},
		isLeft: func(v reflect.Value) (bool, error) {
			if v.IsNil() {
				return false, nil
			}

			return inner.isLeft(v.Elem())
		},
	}, nil
}

// sequence builds single-element slices; the predicate inspects element 0.
func (c *Catalog) sequence(t reflect.Type) (entry, error) {
	inner, err := c.lookup(t.Elem())
	if err != nil {
		return entry{}, err
	}

	wrap := func(v reflect.Value) reflect.Value {
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(v)

		return s
	}

	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			left, right := inner.pair()
			return wrap(left), wrap(right)
		},
		isLeft: func(v reflect.Value) (bool, error) {
			if v.Len() == 0 {
				return false, nil
			}

			return inner.isLeft(v.Index(0))
		},
	}, nil
}

// set builds single-member map[K]struct{} values; the predicate inspects the first member.
func (c *Catalog) set(t reflect.Type) (entry, error) {
	inner, err := c.lookup(t.Key())
	if err != nil {
		return entry{}, err
	}

	wrap := func(k reflect.Value) reflect.Value {
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(k, reflect.Zero(t.Elem()))

		return m
	}

	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			left, right := inner.pair()
			return wrap(left), wrap(right)
		},
		isLeft: func(v reflect.Value) (bool, error) {
			iter := v.MapRange()
			if !iter.Next() {
				return false, nil
			}

			return inner.isLeft(iter.Key())
		},
	}, nil
}

// mapping builds {leftK: leftV} and {leftK: rightV}, so only the value differs.
func (c *Catalog) mapping(t reflect.Type) (entry, error) {
	key, err := c.lookup(t.Key())
	if err != nil {
		return entry{}, err
	}

	val, err := c.lookup(t.Elem())
	if err != nil {
		return entry{}, err
	}

	wrap := func(k, v reflect.Value) reflect.Value {
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(k, v)

		return m
	}

	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			leftKey, _ := key.pair()
			left, right := val.pair()

			return wrap(leftKey, left), wrap(leftKey, right)
		},
		isLeft: func(v reflect.Value) (bool, error) {
			leftKey, _ := key.pair()

			found := v.MapIndex(leftKey)
			if !found.IsValid() {
				return false, nil
			}

			return val.isLeft(found)
		},
	}, nil
}

// namedScalar converts the pair of the underlying basic type, so `type Status string`
// gets ("0", "1") unless it was registered explicitly.
func (c *Catalog) namedScalar(t reflect.Type) (entry, error) {
	base := scalarKind(t.Kind()).Type()

	inner, err := c.lookup(base)
	if err != nil {
		return entry{}, err
	}

	return entry{
		pair: func() (reflect.Value, reflect.Value) {
			left, right := inner.pair()
			return left.Convert(t), right.Convert(t)
		},
		isLeft: func(v reflect.Value) (bool, error) {
			return inner.isLeft(v.Convert(base))
		},
	}, nil
}
