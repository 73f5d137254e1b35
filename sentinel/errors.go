package sentinel

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotReflectable       = errors.New("type has no sentinel pair")
	ErrInsufficientVariants = errors.New("enumeration needs at least two cases")
	ErrDegeneratePair       = errors.New("sentinel pair is not distinguishable")
)

// MismatchError is returned when a value handed to a predicate is not of the pair's type.
type MismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *MismatchError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("sentinel predicate for %s received an invalid value", e.Want)
	}

	return fmt.Sprintf("sentinel predicate for %s received %s", e.Want, e.Got)
}

func notReflectable(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrNotReflectable, t)
}
