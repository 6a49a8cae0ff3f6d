package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in business logic terms, not HTTP terms.
type Code string

const (
	// Lookup failures.
	CodeNotFound       Code = "not_found"
	CodeMissingSubject Code = "missing_subject"

	// Temporal / state failures.
	CodeExpired Code = "expired"
	CodeRevoked Code = "revoked"
	CodePaused  Code = "paused"

	// Mismatch failures.
	CodeSubjectMismatch   Code = "subject_mismatch"
	CodeClaimTypeMismatch Code = "claim_type_mismatch"

	// Authorization failures.
	CodeAccessDenied     Code = "access_denied"
	CodeUnauthorized     Code = "unauthorized"
	CodeForbidden        Code = "forbidden"
	CodeUnchanged        Code = "unchanged"
	CodeInvalidPrincipal Code = "invalid_principal"

	// Configuration failures.
	CodeSchemaNotRegistered    Code = "schema_not_registered"
	CodeInvalidInternalKey     Code = "invalid_internal_key"
	CodeInvalidLedgerClaimType Code = "invalid_ledger_claim_type"
	CodeInvalidIndexerAddress  Code = "invalid_indexer_address"

	// Batch accounting failures.
	CodeInsufficientValue Code = "insufficient_value"
	CodeLengthMismatch    Code = "length_mismatch"

	// Input validation failures.
	CodeInvalidRecipient Code = "invalid_recipient"
	CodeInvalidCountry   Code = "invalid_country"
	CodeInvalidInput     Code = "invalid_input"
	CodeBadRequest       Code = "bad_request"
	CodeValidation       Code = "validation_failed"

	// Traffic shaping.
	CodeRateLimited Code = "rate_limited"

	// Data corruption.
	CodeInvariantViolation Code = "invariant_violation"

	CodeConflict Code = "conflict"
	CodeInternal Code = "internal_error"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across service, store, and other layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		// Preserve the original domain code, update message
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the domain code carried by err, or CodeInternal when err is
// not a domain error. Audit records use this to log a single error kind.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
