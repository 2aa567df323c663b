package auth

import "go.uber.org/zap/zapcore"

const maskedSecret = "***"

type Kind string

const (
	KindRegistration Kind = "registration"
	KindLogin        Kind = "login"
)

type RegistrationInput struct {
	FullName        string `json:"fullName" validate:"min=2"`
	Phone           string `json:"phone" validate:"min=10"`
	Email           string `json:"email" validate:"email,mailbox"`
	Password        string `json:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

func (in *RegistrationInput) Field(name string) (*string, bool) {
	switch name {
	case "fullName":
		return &in.FullName, true
	case "phone":
		return &in.Phone, true
	case "email":
		return &in.Email, true
	case "password":
		return &in.Password, true
	case "confirmPassword":
		return &in.ConfirmPassword, true
	}
	return nil, false
}

func (in RegistrationInput) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("fullName", in.FullName)
	enc.AddString("phone", in.Phone)
	enc.AddString("email", in.Email)
	enc.AddString("password", maskedSecret)
	enc.AddString("confirmPassword", maskedSecret)
	return nil
}

// LoginInput.Identifier may be a login name, an email or a phone; no format
// is enforced.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"min=2"`
	Password   string `json:"password" validate:"required"`
}

func (in *LoginInput) Field(name string) (*string, bool) {
	switch name {
	case "identifier":
		return &in.Identifier, true
	case "password":
		return &in.Password, true
	}
	return nil, false
}

func (in LoginInput) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("identifier", in.Identifier)
	enc.AddString("password", maskedSecret)
	return nil
}

type PasswordResetInput struct {
	Contact string `json:"contact" validate:"min=5"`
}

func (in *PasswordResetInput) Field(name string) (*string, bool) {
	if name == "contact" {
		return &in.Contact, true
	}
	return nil, false
}

func (in PasswordResetInput) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("contact", in.Contact)
	return nil
}

// FormView is what a view renders for one form session. Secret fields are
// never echoed back.
type FormView struct {
	ID              string            `json:"id"`
	Kind            Kind              `json:"kind"`
	State           string            `json:"state"`
	IsSubmitting    bool              `json:"isSubmitting"`
	IsSuccess       bool              `json:"isSuccess"`
	Values          map[string]string `json:"values"`
	Errors          map[string]string `json:"errors"`
	SubmissionError string            `json:"submissionError,omitempty"`
	Redirect        string            `json:"redirect,omitempty"`
	Notice          string            `json:"notice,omitempty"`
	Reset           *ResetView        `json:"reset,omitempty"`
}

type ResetView struct {
	Open            bool              `json:"open"`
	State           string            `json:"state"`
	IsSubmitting    bool              `json:"isSubmitting"`
	IsSuccess       bool              `json:"isSuccess"`
	Values          map[string]string `json:"values"`
	Errors          map[string]string `json:"errors"`
	SubmissionError string            `json:"submissionError,omitempty"`
	Confirmation    string            `json:"confirmation,omitempty"`
}

// SubmitResult tells whether the submission was handed to the workflow.
type SubmitResult struct {
	Accepted bool     `json:"accepted"`
	View     FormView `json:"view"`
}

type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required,min=1"`
}
