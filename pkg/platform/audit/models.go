package audit

import (
	"context"
	"time"

	id "attestry/pkg/domain"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	Action    Action
	Actor     string // principal address or admin actor ID
	Subject   id.Address
	Schema    id.SchemaUID
	UID       id.UID
	Principal id.Address // allowlist/capability target, when relevant
	Decision  string     // "accepted" / "rejected" where applicable
	Reason    string     // single error kind for rejected operations
	Detail    string     // free-form supplement, e.g. a schema registry key
	RequestID string     // correlation ID from HTTP request context
	UserAgent string     // caller client annotation, when available
}

// Action names an auditable event.
type Action string

const (
	ActionIndexUpdated          Action = "index_updated"
	ActionAllowlistAdded        Action = "allowlist_added"
	ActionAllowlistRemoved      Action = "allowlist_removed"
	ActionSchemaRegistered      Action = "schema_registered"
	ActionIndexerAddressChanged Action = "indexer_address_changed"
	ActionAttestationAccepted   Action = "attestation_accepted"
	ActionAttestationRejected   Action = "attestation_rejected"
	ActionRevocationAccepted    Action = "revocation_accepted"
	ActionCapabilityGranted     Action = "capability_granted"
	ActionCapabilityRevoked     Action = "capability_revoked"
	ActionPaused                Action = "paused"
	ActionUnpaused              Action = "unpaused"
)

// Store persists audit events. Implementations must be safe for concurrent use.
type Store interface {
	Append(ctx context.Context, event Event) error
	// List returns events in append order. Intended for tests and the
	// operator surface, not for hot paths.
	List(ctx context.Context) ([]Event, error)
}
