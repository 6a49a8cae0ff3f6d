package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "attestry/pkg/domain-errors"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so encoding
	// errors are ignored here.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError centralizes domain error translation to HTTP responses. It is
// the only place transport-agnostic error codes meet HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		response := map[string]string{
			"error": DomainCodeToHTTPCode(domainErr.Code),
		}
		if domainErr.Message != "" {
			response["error_description"] = domainErr.Message
		}
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), response)
		return
	}

	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error": DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound, dErrors.CodeSchemaNotRegistered:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput,
		dErrors.CodeInvalidPrincipal, dErrors.CodeInvalidInternalKey,
		dErrors.CodeInvalidLedgerClaimType, dErrors.CodeInvalidIndexerAddress,
		dErrors.CodeInvalidRecipient, dErrors.CodeInvalidCountry,
		dErrors.CodeLengthMismatch, dErrors.CodeMissingSubject:
		return http.StatusBadRequest
	case dErrors.CodeConflict, dErrors.CodeUnchanged:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden, dErrors.CodeAccessDenied:
		return http.StatusForbidden
	case dErrors.CodeExpired, dErrors.CodeRevoked, dErrors.CodeSubjectMismatch,
		dErrors.CodeClaimTypeMismatch:
		return http.StatusForbidden
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodePaused:
		return http.StatusServiceUnavailable
	case dErrors.CodeInsufficientValue:
		return http.StatusUnprocessableEntity
	case dErrors.CodeInvariantViolation, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the stable error
// strings carried in JSON responses.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeSchemaNotRegistered:
		return "schema_not_registered"
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return "bad_request"
	case dErrors.CodeValidation:
		return "validation_error"
	case dErrors.CodeInvalidPrincipal:
		return "invalid_principal"
	case dErrors.CodeInvalidInternalKey:
		return "invalid_internal_key"
	case dErrors.CodeInvalidLedgerClaimType:
		return "invalid_ledger_claim_type"
	case dErrors.CodeInvalidIndexerAddress:
		return "invalid_indexer_address"
	case dErrors.CodeInvalidRecipient:
		return "invalid_recipient"
	case dErrors.CodeInvalidCountry:
		return "invalid_country"
	case dErrors.CodeLengthMismatch:
		return "length_mismatch"
	case dErrors.CodeMissingSubject:
		return "missing_subject"
	case dErrors.CodeConflict:
		return "conflict"
	case dErrors.CodeUnchanged:
		return "unchanged"
	case dErrors.CodeUnauthorized:
		return "unauthorized"
	case dErrors.CodeForbidden:
		return "forbidden"
	case dErrors.CodeAccessDenied:
		return "access_denied"
	case dErrors.CodeExpired:
		return "expired"
	case dErrors.CodeRevoked:
		return "revoked"
	case dErrors.CodeSubjectMismatch:
		return "subject_mismatch"
	case dErrors.CodeClaimTypeMismatch:
		return "claim_type_mismatch"
	case dErrors.CodeRateLimited:
		return "rate_limited"
	case dErrors.CodePaused:
		return "paused"
	case dErrors.CodeInsufficientValue:
		return "insufficient_value"
	case dErrors.CodeInvariantViolation, dErrors.CodeInternal:
		return "internal_error"
	default:
		return "internal_error"
	}
}
