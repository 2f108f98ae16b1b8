package models

import (
	"errors"
	"fmt"
)

// Diagnostic records a field that was degraded to its default value during
// construction instead of failing the whole entity.
type Diagnostic struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s.%s=%q: %s", d.Entity, d.Field, d.Value, d.Reason)
}

// Diagnostics is the list of field issues produced by a constructor.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(entity, field string, value interface{}, reason string) {
	*ds = append(*ds, Diagnostic{
		Entity: entity,
		Field:  field,
		Value:  fmt.Sprint(value),
		Reason: reason,
	})
}

// Err joins all diagnostics into one error, or returns nil when there are none.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	errs := make([]error, 0, len(ds))
	for _, d := range ds {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}
