package httptransport

import (
	"time"

	"attestry/internal/relay"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/validation"
)

// Request DTOs. Parsing from wire strings to domain identifiers happens
// here, at the trust boundary, so handlers and services only see typed IDs.

type attestRequest struct {
	Key            string `json:"key"`
	Subject        string `json:"subject"`
	ExpirationTime string `json:"expiration_time,omitempty"`
	Revocable      bool   `json:"revocable"`
	Data           []byte `json:"data,omitempty"`
	Value          uint64 `json:"value,omitempty"`
}

func (r attestRequest) toArgs() (relay.AttestArgs, error) {
	if r.Key == "" {
		return relay.AttestArgs{}, dErrors.New(dErrors.CodeInvalidInternalKey, "key is required")
	}
	if err := validation.CheckStringLength("key", r.Key, validation.MaxSchemaKeyLength); err != nil {
		return relay.AttestArgs{}, err
	}
	if err := validation.CheckByteLength("data", r.Data, validation.MaxDataBytes); err != nil {
		return relay.AttestArgs{}, err
	}
	subject, err := id.ParseAddress(r.Subject)
	if err != nil {
		return relay.AttestArgs{}, err
	}
	var expiration time.Time
	if r.ExpirationTime != "" {
		expiration, err = time.Parse(time.RFC3339, r.ExpirationTime)
		if err != nil {
			return relay.AttestArgs{}, dErrors.New(dErrors.CodeInvalidInput, "expiration_time must be RFC 3339")
		}
	}
	return relay.AttestArgs{
		Key:            r.Key,
		Subject:        subject,
		ExpirationTime: expiration,
		Revocable:      r.Revocable,
		Data:           r.Data,
		Value:          r.Value,
	}, nil
}

type attestBatchItem struct {
	Subject        string `json:"subject"`
	ExpirationTime string `json:"expiration_time,omitempty"`
	Revocable      bool   `json:"revocable"`
	Data           []byte `json:"data,omitempty"`
	Value          uint64 `json:"value,omitempty"`
}

type attestBatchRequest struct {
	Key   string            `json:"key"`
	Items []attestBatchItem `json:"items"`
	Total uint64            `json:"total,omitempty"`
}

func (r attestBatchRequest) toArgs() ([]relay.AttestArgs, error) {
	if r.Key == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInternalKey, "key is required")
	}
	if len(r.Items) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "items cannot be empty")
	}
	if err := validation.CheckSliceCount("items", len(r.Items), validation.MaxBatchItems); err != nil {
		return nil, err
	}
	args := make([]relay.AttestArgs, len(r.Items))
	for i, item := range r.Items {
		one, err := attestRequest{
			Key:            r.Key,
			Subject:        item.Subject,
			ExpirationTime: item.ExpirationTime,
			Revocable:      item.Revocable,
			Data:           item.Data,
			Value:          item.Value,
		}.toArgs()
		if err != nil {
			return nil, err
		}
		args[i] = one
	}
	return args, nil
}

type revokeRequest struct {
	UID   string `json:"uid"`
	Value uint64 `json:"value,omitempty"`
}

type revokeBatchRequest struct {
	UIDs   []string `json:"uids"`
	Values []uint64 `json:"values"`
	Total  uint64   `json:"total,omitempty"`
}

func (r revokeBatchRequest) toUIDs() ([]id.UID, error) {
	if len(r.UIDs) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "uids cannot be empty")
	}
	if err := validation.CheckSliceCount("uids", len(r.UIDs), validation.MaxRevokeUIDs); err != nil {
		return nil, err
	}
	uids := make([]id.UID, len(r.UIDs))
	for i, raw := range r.UIDs {
		uid, err := id.ParseUID(raw)
		if err != nil {
			return nil, err
		}
		uids[i] = uid
	}
	return uids, nil
}

type accountClaimRequest struct {
	Subject string `json:"subject"`
}

type countryClaimRequest struct {
	Packed string `json:"packed"`
}

type allowlistRequest struct {
	Schema    string `json:"schema"`
	Principal string `json:"principal"`
}

type registerSchemaRequest struct {
	Key    string `json:"key"`
	Schema string `json:"schema"`
}

type capabilityRequest struct {
	Capability string `json:"capability"`
	Principal  string `json:"principal"`
}

type rotateIndexerRequest struct {
	Old  string `json:"old"`
	Next string `json:"next"`
}

// Response DTOs.

type uidResponse struct {
	UID string `json:"uid"`
}

type uidsResponse struct {
	UIDs []string `json:"uids"`
}

type claimStatusResponse struct {
	Subject string `json:"subject"`
	Schema  string `json:"schema"`
	Status  string `json:"status"`
}

type indexLookupResponse struct {
	Subject string `json:"subject"`
	Schema  string `json:"schema"`
	UID     string `json:"uid,omitempty"`
	Indexed bool   `json:"indexed"`
}

type attestationResponse struct {
	UID            string `json:"uid"`
	Schema         string `json:"schema"`
	Subject        string `json:"subject"`
	Attester       string `json:"attester"`
	Time           string `json:"time"`
	ExpirationTime string `json:"expiration_time,omitempty"`
	RevocationTime string `json:"revocation_time,omitempty"`
	Revocable      bool   `json:"revocable"`
	Data           []byte `json:"data,omitempty"`
	Value          uint64 `json:"value,omitempty"`
}
