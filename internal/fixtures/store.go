package fixtures

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"wirepath/codable"
)

// OrderStatus is a closed set of order states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists the cases in declaration order.
var OrderStatuses = []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}

// Address is a postal address.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

func (a *Address) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if a.Street, err = codable.Decode[string](c, "street"); err != nil {
		return err
	}

	if a.City, err = codable.Decode[string](c, "city"); err != nil {
		return err
	}

	if a.PostalCode, err = codable.Decode[string](c, "postal_code"); err != nil {
		return err
	}

	a.Country, err = codable.Decode[string](c, "country")

	return err
}

// Customer places orders. Address is optional on the wire.
type Customer struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Address   *Address
	Website   url.URL
	Tags      []string
	CreatedAt time.Time
}

func (cu *Customer) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if cu.ID, err = codable.Decode[uuid.UUID](c, "id"); err != nil {
		return err
	}

	if cu.Email, err = codable.Decode[string](c, "email"); err != nil {
		return err
	}

	if cu.FullName, err = codable.Decode[string](c, "full_name"); err != nil {
		return err
	}

	if cu.Address, err = codable.DecodeIfPresent[Address](c, "address"); err != nil {
		return err
	}

	if cu.Website, err = codable.Decode[url.URL](c, "website"); err != nil {
		return err
	}

	if cu.Tags, err = codable.Decode[[]string](c, "tags"); err != nil {
		return err
	}

	cu.CreatedAt, err = codable.Decode[time.Time](c, "created_at")

	return err
}

// OrderItem snapshots a product line at purchase time.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

func (i *OrderItem) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if i.ProductID, err = codable.Decode[int64](c, "product_id"); err != nil {
		return err
	}

	if i.Name, err = codable.Decode[string](c, "name"); err != nil {
		return err
	}

	if i.Quantity, err = codable.Decode[int](c, "quantity"); err != nil {
		return err
	}

	i.UnitPrice, err = codable.Decode[int64](c, "unit_price")

	return err
}

// Order is a purchase. Items are read element by element from a nested
// unkeyed container; Attributes is a free-form string map.
type Order struct {
	ID          int64
	Customer    Customer
	Status      OrderStatus
	Items       []OrderItem
	TotalCents  int64
	DiscountPct *float64
	Attributes  map[string]string
	OrderedAt   time.Time
}

func (o *Order) DecodeFrom(d codable.Decoder) error {
	c, err := d.Keyed()
	if err != nil {
		return err
	}

	if o.ID, err = codable.Decode[int64](c, "id"); err != nil {
		return err
	}

	if o.Customer, err = codable.Decode[Customer](c, "customer"); err != nil {
		return err
	}

	if o.Status, err = codable.Decode[OrderStatus](c, "status"); err != nil {
		return err
	}

	items, err := c.NestedUnkeyed("items")
	if err != nil {
		return err
	}

	if o.Items, err = codable.DecodeElements[OrderItem](items); err != nil {
		return err
	}

	if o.TotalCents, err = codable.Decode[int64](c, "total_cents"); err != nil {
		return err
	}

	if o.DiscountPct, err = codable.DecodeIfPresent[float64](c, "discount_pct"); err != nil {
		return err
	}

	if o.Attributes, err = codable.Decode[map[string]string](c, "attributes"); err != nil {
		return err
	}

	o.OrderedAt, err = codable.Decode[time.Time](c, "ordered_at")

	return err
}
