package autherrors

import (
	"net/http"

	"go-course-portal/internal/pkg/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Form session not found or expired",
		http.StatusNotFound,
	)

	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown form field",
		http.StatusBadRequest,
	)

	ErrValidationFailed = apperror.New(
		apperror.CodeValidationError,
		"Invalid input",
		http.StatusUnprocessableEntity,
	)

	ErrSubmissionInProgress = apperror.New(
		apperror.CodeConflict,
		"Submission is already in progress",
		http.StatusConflict,
	)

	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"Form has already been submitted",
		http.StatusConflict,
	)

	ErrSessionClosed = apperror.New(
		apperror.CodeInvalidState,
		"Form session has been closed",
		http.StatusGone,
	)

	ErrWrongSessionKind = apperror.New(
		apperror.CodeInvalidInput,
		"Operation is not available for this form",
		http.StatusBadRequest,
	)

	ErrResetClosed = apperror.New(
		apperror.CodeInvalidState,
		"Password reset dialog is not open",
		http.StatusConflict,
	)

	ErrNothingToAcknowledge = apperror.New(
		apperror.CodeInvalidState,
		"There is no notice to acknowledge",
		http.StatusConflict,
	)
)
