package fixtures

import (
	"time"

	"wirepath/codable"
)

// Category is a node of a product taxonomy. It refers to itself both
// through the optional parent and through the children sequence.
type Category struct {
	Name     string
	Parent   *Category
	Children []Category
}

func (ca *Category) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if ca.Name, err = codable.Decode[string](c, "name"); err != nil {
		return err
	}

	if ca.Parent, err = codable.DecodeIfPresent[Category](c, "parent"); err != nil {
		return err
	}

	ca.Children, err = codable.Decode[[]Category](c, "children")

	return err
}

// Ancestor walks n parents up, reporting false when the chain is shorter.
func (ca *Category) Ancestor(n int) (*Category, bool) {
	cur := ca
	for range n {
		if cur.Parent == nil {
			return nil, false
		}

		cur = cur.Parent
	}

	return cur, true
}

// Level is a named integer the catalog derives sentinels for without registration.
type Level int8

// Shipment carries the remaining leaf kinds: durations, floats, bytes,
// booleans, a set and a nested record that is itself a single value.
type Shipment struct {
	Carrier   string
	Transit   time.Duration
	WeightKg  float32
	Label     []byte
	Insured   bool
	Priority  Level
	Regions   map[string]struct{}
	Tracking  TrackingCode
	Delivered *time.Time
}

func (s *Shipment) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if s.Carrier, err = codable.Decode[string](c, "carrier"); err != nil {
		return err
	}

	if s.Transit, err = codable.Decode[time.Duration](c, "transit"); err != nil {
		return err
	}

	if s.WeightKg, err = codable.Decode[float32](c, "weight_kg"); err != nil {
		return err
	}

	if s.Label, err = codable.Decode[[]byte](c, "label"); err != nil {
		return err
	}

	if s.Insured, err = codable.Decode[bool](c, "insured"); err != nil {
		return err
	}

	if s.Priority, err = codable.Decode[Level](c, "priority"); err != nil {
		return err
	}

	if s.Regions, err = codable.Decode[map[string]struct{}](c, "regions"); err != nil {
		return err
	}

	if s.Tracking, err = codable.Decode[TrackingCode](c, "tracking"); err != nil {
		return err
	}

	s.Delivered, err = codable.Decode[*time.Time](c, "delivered")

	return err
}

// TrackingCode decodes itself from a single string value.
type TrackingCode struct {
	Code string
}

func (t *TrackingCode) DecodeFrom(d codable.Decoder) error {
	code, err := codable.DecodeValue[string](d)
	if err != nil {
		return err
	}

	t.Code = code

	return nil
}

// Envelope wraps an arbitrary payload. It has no sentinel pair for its
// payload and cannot be probed.
type Envelope struct {
	Kind    string
	Payload any
}

func (e *Envelope) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if e.Kind, err = codable.Decode[string](c, "kind"); err != nil {
		return err
	}

	e.Payload, err = codable.Decode[any](c, "payload")

	return err
}
