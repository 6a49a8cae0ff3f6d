// Package indexer maintains the mapping from (subject, schema) to the most
// recently indexed attestation UID.
//
// The index is a pure acceleration structure over an append-only ledger:
// the most recent successful index call wins, regardless of the relative
// validity of the previous entry. An indexed attestation may expire or be
// revoked later and remains indexed; consumers must always re-verify after
// lookup, so index staleness cannot silently grant access.
package indexer

import (
	"context"
	"log/slog"

	"attestry/internal/attestation"
	"attestry/internal/capability"
	indexermetrics "attestry/internal/indexer/metrics"
	"attestry/internal/verifier"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/requestcontext"
)

// Ledger fetches full attestation records; indexing never mutates the
// ledger.
type Ledger interface {
	Get(ctx context.Context, uid id.UID) (attestation.Attestation, error)
}

// Authorizer is the capability decision function consulted before direct
// index calls.
type Authorizer interface {
	Authorized(principal id.Address, c capability.Capability) bool
}

// Publisher emits index-updated notifications.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// Service owns the index mapping.
type Service struct {
	store     Store
	ledger    Ledger
	auth      Authorizer
	publisher Publisher
	metrics   *indexermetrics.Metrics
	logger    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *indexermetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, lgr Ledger, auth Authorizer, opts ...Option) *Service {
	s := &Service{store: store, ledger: lgr, auth: auth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index fetches the record for uid, verifies it is valid right now, and
// unconditionally overwrites the (subject, schema) entry with uid. Callers
// need the indexer capability; the resolver holds it and calls Index on
// behalf of the ledger.
//
// Validity is only guaranteed at the moment of indexing. Later revocation
// or expiry leaves the entry in place until a newer valid issuance
// overwrites it.
func (s *Service) Index(ctx context.Context, caller id.Address, uid id.UID) error {
	if !s.auth.Authorized(caller, capability.Indexer) {
		return dErrors.New(dErrors.CodeAccessDenied, "caller lacks the indexer capability")
	}

	att, err := s.ledger.Get(ctx, uid)
	if err != nil {
		return err
	}
	if err := verifier.Check(att, requestcontext.Now(ctx)); err != nil {
		s.incrementRejected()
		return err
	}
	if att.Subject.IsZero() {
		// An unindexable record provides no lookup benefit.
		s.incrementRejected()
		return dErrors.New(dErrors.CodeMissingSubject, "attestation has no subject")
	}

	overwrote, err := s.store.Put(ctx, att.Subject, att.Schema, uid)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write index entry")
	}
	if s.metrics != nil {
		s.metrics.IncrementIndexed(overwrote)
	}
	s.emitIndexUpdated(ctx, caller, att.Subject, att.Schema, uid)
	return nil
}

// Lookup returns the most recently indexed UID for (subject, schema), or
// the zero UID when nothing has been indexed. Lookup never fails and makes
// no validity promise; callers re-verify via the guard.
func (s *Service) Lookup(ctx context.Context, subject id.Address, schema id.SchemaUID) (id.UID, error) {
	if s.metrics != nil {
		s.metrics.IncrementLookups()
	}
	uid, err := s.store.Get(ctx, subject, schema)
	if err != nil {
		return id.ZeroUID, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read index entry")
	}
	return uid, nil
}

func (s *Service) incrementRejected() {
	if s.metrics != nil {
		s.metrics.IncrementRejected()
	}
}

func (s *Service) emitIndexUpdated(ctx context.Context, caller id.Address, subject id.Address, schema id.SchemaUID, uid id.UID) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    audit.ActionIndexUpdated,
		Actor:     caller.String(),
		Subject:   subject,
		Schema:    schema,
		UID:       uid,
		RequestID: requestcontext.RequestID(ctx),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to publish index event",
			"error", err,
			"uid", uid,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
