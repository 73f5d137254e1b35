package fixtures

import (
	"slices"
	"strings"

	"wirepath/reflection"
	"wirepath/sentinel"
)

// Entry is a named fixture schema.
type Entry struct {
	Name        string
	Description string
	Schema      reflection.Schema

	// FieldByName references a property of the schema by Go field path.
	FieldByName func(goPath string) (*reflection.Property, error)
}

func entry[T any, PT reflection.Decodable[T]](name, description string) Entry {
	return Entry{
		Name:        name,
		Description: description,
		Schema:      reflection.SchemaOf[T, PT](),
		FieldByName: reflection.FieldByName[T, PT],
	}
}

var entries = []Entry{
	entry[Address]("address", "postal address"),
	entry[Category]("category", "self-referential taxonomy node"),
	entry[Customer]("customer", "customer with optional address"),
	entry[Envelope]("envelope", "untyped payload, not reflectable"),
	entry[Order]("order", "order with customer and items"),
	entry[OrderItem]("order_item", "order line"),
	entry[Shipment]("shipment", "every built-in leaf kind"),
}

// Entries returns every fixture schema ordered by name.
func Entries() []Entry {
	return slices.Clone(entries)
}

// Names returns the fixture names in order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}

	return out
}

// Lookup finds a fixture by name, ignoring case.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}

	return Entry{}, false
}

// Register adds the fixture enumerations to c.
func Register(c *sentinel.Catalog) error {
	return sentinel.RegisterEnum(c, OrderStatuses...)
}
