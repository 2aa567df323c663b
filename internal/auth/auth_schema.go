package auth

import "go-course-portal/internal/validation"

const (
	LoginNotice       = "Выполнен вход в систему"
	ResetConfirmation = "Инструкции по восстановлению пароля отправлены на указанный контакт."
)

var (
	RegistrationFields  = []string{"fullName", "phone", "email", "password", "confirmPassword"}
	LoginFields         = []string{"identifier", "password"}
	PasswordResetFields = []string{"contact"}

	secretFields = map[string]bool{"password": true, "confirmPassword": true}
)

var registrationSchema = validation.NewSchema[RegistrationInput](validation.Messages{
	"fullName": {
		validation.KindMinLength: "ФИО должно содержать минимум 2 символа",
	},
	"phone": {
		validation.KindMinLength: "Введите корректный номер телефона",
	},
	"email": {
		validation.KindFormat: "Введите корректный email",
	},
	"password": {
		validation.KindMinLength: "Пароль должен содержать минимум 6 символов",
	},
	"confirmPassword": {
		validation.KindMismatch: "Пароли не совпадают",
	},
})

var loginSchema = validation.NewSchema[LoginInput](validation.Messages{
	"identifier": {
		validation.KindMinLength: "Пожалуйста, введите ваш логин, email или телефон",
	},
	"password": {
		validation.KindRequired: "Пожалуйста, введите пароль",
	},
})

var passwordResetSchema = validation.NewSchema[PasswordResetInput](validation.Messages{
	"contact": {
		validation.KindMinLength: "Введите корректный email или телефон",
	},
})

// publicValues turns the fields into a map without the secrets.
func publicValues(fields []string, lookup func(string) (*string, bool)) map[string]string {
	out := make(map[string]string, len(fields))
	for _, name := range fields {
		if secretFields[name] {
			continue
		}
		if p, ok := lookup(name); ok {
			out[name] = *p
		}
	}
	return out
}
