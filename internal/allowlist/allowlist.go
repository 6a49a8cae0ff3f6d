// Package allowlist maintains the set of principals authorized to issue a
// given schema. Entries are consulted, never mutated, during issuance.
package allowlist

import (
	"context"
	"log/slog"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/requestcontext"
)

// Store persists allowlist entries.
type Store interface {
	Set(ctx context.Context, schema id.SchemaUID, principal id.Address) (changed bool, err error)
	Unset(ctx context.Context, schema id.SchemaUID, principal id.Address) (changed bool, err error)
	Has(ctx context.Context, schema id.SchemaUID, principal id.Address) (bool, error)
}

// Publisher emits allowlist change notifications.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// Service owns allowlist administration and the check consulted by the
// resolver pipeline.
type Service struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithPublisher sets the audit publisher for change notifications.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add authorizes a principal to issue attestations for a schema. Fails with
// InvalidPrincipal for the zero principal and Unchanged when the principal
// is already allowlisted, so a silent no-op is never mistaken for success.
func (s *Service) Add(ctx context.Context, actor string, schema id.SchemaUID, principal id.Address) error {
	if principal.IsZero() {
		return dErrors.New(dErrors.CodeInvalidPrincipal, "principal cannot be the zero address")
	}
	changed, err := s.store.Set(ctx, schema, principal)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update allowlist")
	}
	if !changed {
		return dErrors.New(dErrors.CodeUnchanged, "principal already allowlisted")
	}
	s.emit(ctx, audit.ActionAllowlistAdded, actor, schema, principal)
	return nil
}

// Remove withdraws a principal's issuance authorization for a schema.
func (s *Service) Remove(ctx context.Context, actor string, schema id.SchemaUID, principal id.Address) error {
	if principal.IsZero() {
		return dErrors.New(dErrors.CodeInvalidPrincipal, "principal cannot be the zero address")
	}
	changed, err := s.store.Unset(ctx, schema, principal)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update allowlist")
	}
	if !changed {
		return dErrors.New(dErrors.CodeUnchanged, "principal not allowlisted")
	}
	s.emit(ctx, audit.ActionAllowlistRemoved, actor, schema, principal)
	return nil
}

// Check reports whether a principal may issue attestations for a schema.
// Unknown principals and removed principals are simply not allowed; Check
// itself never fails on policy grounds.
func (s *Service) Check(ctx context.Context, schema id.SchemaUID, principal id.Address) (bool, error) {
	allowed, err := s.store.Has(ctx, schema, principal)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read allowlist")
	}
	return allowed, nil
}

func (s *Service) emit(ctx context.Context, action audit.Action, actor string, schema id.SchemaUID, principal id.Address) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Actor:     actor,
		Schema:    schema,
		Principal: principal,
		RequestID: requestcontext.RequestID(ctx),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to publish allowlist event",
			"error", err,
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
