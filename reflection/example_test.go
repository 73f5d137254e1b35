package reflection_test

import (
	"fmt"

	"wirepath/internal/fixtures"
	"wirepath/reflection"
)

var shipmentTransit = reflection.Field(func(s *fixtures.Shipment) any { return s.Transit })

func ExampleLocate() {
	postalCode := reflection.FieldLookup(func(c *fixtures.Customer) (string, bool) {
		if c.Address == nil {
			return "", false
		}

		return c.Address.PostalCode, true
	})

	prop, found, err := reflection.Locate(postalCode)
	fmt.Println(prop, found, err)

	_, _, err = reflection.Locate(shipmentTransit)
	fmt.Println(err)
	// Output:
	// address.postal_code: string true <nil>
	// locate fixtures.Shipment.<interface {}>: type has no sentinel pair: interface {}
}

func ExampleProperties() {
	props, err := reflection.Properties[fixtures.Address](0)
	if err != nil {
		panic(err)
	}

	for _, p := range props {
		fmt.Println(p)
	}
	// Output:
	// street: string
	// city: string
	// postal_code: string
	// country: string
}

func ExampleFieldByName() {
	prop, err := reflection.FieldByName[fixtures.Shipment]("Transit")
	if err != nil {
		panic(err)
	}

	located, found, err := reflection.Locate(prop)
	fmt.Println(located, found, err)

	_, err = reflection.FieldByName[fixtures.Shipment]("Carier")
	fmt.Println(err)
	// Output:
	// transit: time.Duration true <nil>
	// unknown field: fixtures.Shipment has no field "Carier" (did you mean "Carrier"?)
}
