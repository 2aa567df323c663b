package workflow

import "errors"

var (
	ErrInProgress       = errors.New("submission already in progress")
	ErrAlreadySucceeded = errors.New("submission already succeeded")
	ErrClosed           = errors.New("workflow closed")
	ErrRemoteFailure    = errors.New("remote submission failed")
)
