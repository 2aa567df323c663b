// Package validation checks form input against declarative struct-tag rules
// and reports one message per failing field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating one input value.
type Result[T any] struct {
	Valid  bool
	Value  T
	Errors FieldErrors
}

// Schema validates values of T using the `validate` struct tags on T.
// Field paths use the JSON names of the fields.
type Schema[T any] struct {
	validate *validator.Validate
	messages Messages
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func sharedEngine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		if err := v.RegisterValidation("mailbox", isMailbox); err != nil {
			panic("validation: register mailbox: " + err.Error())
		}
		engine = v
	})
	return engine
}

func NewSchema[T any](messages Messages) *Schema[T] {
	var zero T
	if reflect.TypeOf(zero).Kind() != reflect.Struct {
		panic(fmt.Sprintf("validation: schema type %T is not a struct", zero))
	}
	if messages == nil {
		messages = Messages{}
	}
	return &Schema[T]{validate: sharedEngine(), messages: messages}
}

// Validate checks every field rule independently. A field reports only the
// first rule it broke; the cross-field rules sit last in their tag list so
// they are reached only when the field's own rules pass.
func (s *Schema[T]) Validate(in T) Result[T] {
	res := Result[T]{Value: in, Errors: FieldErrors{}}

	err := s.validate.Struct(in)
	if err == nil {
		res.Valid = true
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens for non-struct input, which
		// NewSchema already rejects.
		panic("validation: " + err.Error())
	}

	for _, fe := range verrs {
		field := fe.Field()
		if res.Errors.Has(field) {
			continue
		}
		kind := kindOf(fe.Tag())
		res.Errors[field] = Error{
			Field:   field,
			Kind:    kind,
			Message: s.messages.lookup(field, kind, fe.Param()),
			Param:   fe.Param(),
		}
	}
	return res
}

// ValidateField reports the error of a single field, if any. The whole value
// is needed because of cross-field rules.
func (s *Schema[T]) ValidateField(in T, field string) (Error, bool) {
	res := s.Validate(in)
	e, ok := res.Errors[field]
	return e, ok
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// isMailbox requires local@domain with a dot inside the domain part.
func isMailbox(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	at := strings.LastIndexByte(v, '@')
	if at <= 0 || at == len(v)-1 {
		return false
	}
	domain := v[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1 && !strings.HasSuffix(domain, ".")
}
