package validation

import "sort"

// Kind classifies why a field failed.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "min-length"
	KindFormat    Kind = "format"
	KindMismatch  Kind = "mismatch"
)

// Error is a single field-scoped failure. It is returned as data and shown
// inline next to the field.
type Error struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

func (e Error) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors maps a field name to the first rule it broke. Fields that pass
// are absent.
type FieldErrors map[string]Error

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Messages flattens the errors to field -> message, the shape views render.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for field, err := range fe {
		out[field] = err.Message
	}
	return out
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for field := range fe {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}
