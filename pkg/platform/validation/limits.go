package validation

import (
	"fmt"

	dErrors "attestry/pkg/domain-errors"
)

// Slice element count limits
const (
	// MaxBatchItems is the maximum number of attestation requests per batch.
	MaxBatchItems = 100

	// MaxRevokeUIDs is the maximum number of attestation UIDs per batch
	// revocation.
	MaxRevokeUIDs = 100
)

// String and payload length limits
const (
	// MaxSchemaKeyLength is the maximum length of an internal schema key.
	MaxSchemaKeyLength = 100

	// MaxDataBytes is the maximum size of one attestation payload.
	MaxDataBytes = 16 * 1024
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckByteLength validates that a payload does not exceed the maximum size.
func CheckByteLength(fieldName string, value []byte, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max size of %d bytes", fieldName, max))
	}
	return nil
}
