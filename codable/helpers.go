package codable

// Decode reads the value under key as a T.
func Decode[T any](c KeyedContainer, key string) (T, error) {
	var v T
	err := c.Decode(key, &v)

	return v, err
}

// DecodeIfPresent reads an optional value: nil when the key is missing or null.
func DecodeIfPresent[T any](c KeyedContainer, key string) (*T, error) {
	if !c.Contains(key) {
		return nil, nil
	}

	null, err := c.DecodeNil(key)
	if err != nil || null {
		return nil, err
	}

	var v T
	if err := c.Decode(key, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// DecodeElements reads every remaining element of an unkeyed container.
func DecodeElements[T any](u UnkeyedContainer) ([]T, error) {
	var out []T
	if n, ok := u.Count(); ok {
		out = make([]T, 0, n)
	}

	for !u.IsAtEnd() {
		var v T
		if err := u.Decode(&v); err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// DecodeValue reads the single primitive value held by d.
func DecodeValue[T any](d Decoder) (T, error) {
	var v T

	c, err := d.SingleValue()
	if err != nil {
		return v, err
	}

	err = c.Decode(&v)

	return v, err
}
