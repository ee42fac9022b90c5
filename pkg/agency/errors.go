package agency

import (
	"errors"
	"fmt"
)

// ErrUnsupportedEntity marks a request about a route, trip or label outside the
// single recognised route family. Callers must never substitute a default value.
var ErrUnsupportedEntity = errors.New("unsupported entity")

type UnsupportedEntityError struct {
	Kind   string
	Entity string
}

func (e *UnsupportedEntityError) Error() string {
	return fmt.Sprintf("unexpected %s %s", e.Kind, e.Entity)
}

func (e *UnsupportedEntityError) Unwrap() error {
	return ErrUnsupportedEntity
}

func unsupported(kind string, entity any) error {
	return &UnsupportedEntityError{
		Kind:   kind,
		Entity: fmt.Sprint(entity),
	}
}
