// Package form holds the mutable state of one mounted form: field values,
// per-field errors and the submit entry point.
package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go-course-portal/internal/validation"
)

var ErrUnknownField = errors.New("unknown form field")

// Mode selects when validation runs.
type Mode int

const (
	// ValidateOnSubmit validates only when Submit is called.
	ValidateOnSubmit Mode = iota
	// ValidateOnChange also refreshes a field's error every time it is set.
	ValidateOnChange
)

func (m Mode) String() string {
	if m == ValidateOnChange {
		return "change"
	}
	return "submit"
}

// ParseMode accepts "submit" and "change".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "submit":
		return ValidateOnSubmit, nil
	case "change":
		return ValidateOnChange, nil
	}
	return ValidateOnSubmit, fmt.Errorf("unknown validation mode %q", s)
}

// Fields exposes the string fields of an input struct by their form names.
type Fields interface {
	Field(name string) (*string, bool)
}

// Submitter receives the validated values.
type Submitter[T any] interface {
	Submit(values T) error
}

// Controller binds a schema to the current values of one form.
// P is always *T; it lets the controller reach the fields of its own copy.
type Controller[T any, P interface {
	*T
	Fields
}] struct {
	mu        sync.Mutex
	schema    *validation.Schema[T]
	submitter Submitter[T]
	mode      Mode
	values    T
	errors    validation.FieldErrors
}

func New[T any, P interface {
	*T
	Fields
}](schema *validation.Schema[T], submitter Submitter[T], mode Mode) *Controller[T, P] {
	return &Controller[T, P]{
		schema:    schema,
		submitter: submitter,
		mode:      mode,
		errors:    validation.FieldErrors{},
	}
}

func (c *Controller[T, P]) Mode() Mode {
	return c.mode
}

// SetField overwrites the value of name.
func (c *Controller[T, P]) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ptr, ok := P(&c.values).Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	*ptr = value

	if c.mode == ValidateOnChange {
		c.refreshLocked(name)
	}
	return nil
}

// refreshLocked revalidates name plus every field already showing an error,
// so cross-field errors follow the field they depend on.
func (c *Controller[T, P]) refreshLocked(name string) {
	res := c.schema.Validate(c.values)

	stale := append(c.errors.Fields(), name)
	for _, field := range stale {
		if e, failed := res.Errors[field]; failed {
			c.errors[field] = e
		} else {
			delete(c.errors, field)
		}
	}
}

// Submit validates the whole value set. Invalid input only records the
// errors; valid input clears them and goes to the submitter. The returned
// error comes from the submitter, never from validation.
func (c *Controller[T, P]) Submit() (validation.Result[T], error) {
	c.mu.Lock()
	res := c.schema.Validate(c.values)
	if !res.Valid {
		c.errors = res.Errors.Clone()
		c.mu.Unlock()
		return res, nil
	}
	c.errors = validation.FieldErrors{}
	c.mu.Unlock()

	if err := c.submitter.Submit(res.Value); err != nil {
		return res, err
	}
	return res, nil
}

// Reset restores empty values and clears errors.
func (c *Controller[T, P]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.values = zero
	c.errors = validation.FieldErrors{}
}

func (c *Controller[T, P]) Values() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

func (c *Controller[T, P]) Errors() validation.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}
