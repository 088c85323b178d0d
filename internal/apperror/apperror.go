package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	// ErrCorruptSession marks an undecodable persisted session slot.
	// Callers must treat it as "no session", never as a fatal condition.
	ErrCorruptSession = errors.New("corrupt session")

	// ErrSuperseded marks a login/register call that resolved after a newer
	// one was issued. The superseded call commits nothing to the store.
	ErrSuperseded = errors.New("superseded")

	// ErrLoginRejected is the credential-failure sentinel. The default
	// verifier never produces it — it exists for verifiers backed by a real
	// credential check.
	ErrLoginRejected = errors.New("login rejected")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Forbidden returns an AppError indicating the caller lacks permission.
// HTTP handlers map this to 403 Forbidden.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

// CorruptSession wraps a decode failure of the persisted session slot.
// The cause stays in the chain for logging; errors.Is(err, ErrCorruptSession)
// is how the session store recognises it.
func CorruptSession(cause error) *AppError {
	return &AppError{
		Err:     ErrCorruptSession,
		Message: fmt.Sprintf("persisted session is corrupt: %v", cause),
	}
}

// Superseded marks the named lifecycle operation as overtaken by a newer one.
func Superseded(op string) *AppError {
	return &AppError{
		Err:     ErrSuperseded,
		Message: fmt.Sprintf("%s superseded by a newer request", op),
	}
}

// LoginRejected returns the credential-failure error for the given email.
func LoginRejected(email string) *AppError {
	return &AppError{
		Err:     ErrLoginRejected,
		Message: fmt.Sprintf("invalid credentials for %s", email),
	}
}
