package validation

import "fmt"

// Messages holds the user-facing text per field and kind. Missing entries
// fall back to the kind defaults.
type Messages map[string]map[Kind]string

func (m Messages) lookup(field string, kind Kind, param string) string {
	if byKind, ok := m[field]; ok {
		if msg, ok := byKind[kind]; ok {
			return msg
		}
	}
	return defaultMessage(kind, param)
}

func defaultMessage(kind Kind, param string) string {
	switch kind {
	case KindRequired:
		return "Поле обязательно для заполнения"
	case KindMinLength:
		return fmt.Sprintf("Минимум %s символов", param)
	case KindMismatch:
		return "Значения не совпадают"
	default:
		return "Некорректное значение"
	}
}

// kindOf maps a validator tag to a Kind.
func kindOf(tag string) Kind {
	switch tag {
	case "required":
		return KindRequired
	case "min", "len":
		return KindMinLength
	case "eqfield", "eqcsfield":
		return KindMismatch
	default:
		return KindFormat
	}
}
