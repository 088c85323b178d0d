package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string // Descriptive name for test output
		err       error  // The error to test
		target    error  // What we expect it to match
		wantMatch bool   // Should errors.Is() return true?
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("event", "ev42"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("email", "email is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "CorruptSession wraps ErrCorruptSession",
			err:       CorruptSession(errors.New("unexpected end of JSON input")),
			target:    ErrCorruptSession,
			wantMatch: true,
		},
		{
			name:      "Superseded wraps ErrSuperseded",
			err:       Superseded("login"),
			target:    ErrSuperseded,
			wantMatch: true,
		},
		{
			name:      "LoginRejected wraps ErrLoginRejected",
			err:       LoginRejected("student@demo.com"),
			target:    ErrLoginRejected,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("event", "ev42"),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "CorruptSession does NOT match ErrLoginRejected",
			err:       CorruptSession(errors.New("bad payload")),
			target:    ErrLoginRejected,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound message includes resource and id",
			err:         NotFound("job", "j7"),
			wantMessage: "job not found with id j7",
		},
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("role", "role must be student, alumni, or admin"),
			wantMessage: "role must be student, alumni, or admin",
		},
		{
			name:        "Superseded names the operation",
			err:         Superseded("register"),
			wantMessage: "register superseded by a newer request",
		},
		{
			name:        "LoginRejected names the email",
			err:         LoginRejected("alumni@demo.com"),
			wantMessage: "invalid credentials for alumni@demo.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	// Unwrap() must return the underlying sentinel — this is what makes
	// errors.Is() walk the chain.
	err := NotFound("event", "ev1")
	if unwrapped := err.Unwrap(); unwrapped != ErrNotFound {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNotFound)
	}
}

func TestCorruptSessionKeepsCause(t *testing.T) {
	// The original decode failure should survive a further fmt.Errorf wrap so
	// log lines can show what actually broke.
	cause := errors.New("invalid character 'n' looking for beginning of value")
	err := fmt.Errorf("restoring session: %w", CorruptSession(cause))

	if !errors.Is(err, ErrCorruptSession) {
		t.Fatal("wrapped CorruptSession no longer matches ErrCorruptSession")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As failed to extract *AppError")
	}
	if appErr.Message == "" {
		t.Error("Message should describe the decode failure")
	}
}

func TestValidationFailedField(t *testing.T) {
	err := ValidationFailed("email", "invalid email format")
	if err.Field != "email" {
		t.Errorf("Field = %q, want %q", err.Field, "email")
	}
}
