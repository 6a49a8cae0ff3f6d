// Package resolver is the gate the ledger invokes on every issuance and
// revocation of a gated schema.
//
// The gate is an explicit ordered pipeline of validator functions over a
// single (attestation, value) input, combined by short-circuiting AND. The
// pipeline has two phases: checks (pause gate, allowlist, subject presence)
// that are free of side effects, and effects (the index forward) that run
// only once every check has passed. Batches run all checks for all items
// before any effect, so a rejected batch leaves nothing indexed.
package resolver

import (
	"context"
	"log/slog"
	"sync/atomic"

	"attestry/internal/attestation"
	"attestry/internal/resolver/tracer"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/requestcontext"
)

// AllowlistChecker answers whether a principal may issue for a schema.
type AllowlistChecker interface {
	Check(ctx context.Context, schema id.SchemaUID, principal id.Address) (bool, error)
}

// Indexer forwards accepted attestations into the latest-record index.
type Indexer interface {
	Index(ctx context.Context, caller id.Address, uid id.UID) error
}

// Publisher emits acceptance and pause notifications.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// Validator is one step of the gate pipeline. A non-nil error rejects the
// operation and stops the pipeline.
type Validator func(ctx context.Context, att attestation.Attestation, value uint64) error

// Service composes the issuance gate. It accepts hook calls only from the
// ledger identity it was bound to, and presents its own identity to the
// indexer (the service principal holds the indexer capability).
type Service struct {
	ledger    id.Address
	self      id.Address
	allowlist AllowlistChecker
	indexer   Indexer
	paused    atomic.Bool

	attestChecks  []Validator
	attestEffects []Validator
	revokeChecks  []Validator
	revokeEffects []Validator

	tracer    tracer.Tracer
	publisher Publisher
	logger    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService binds the gate to its ledger. ledgerID is the only caller the
// hooks accept; self is the principal the resolver acts as when indexing.
func NewService(ledgerID, self id.Address, allow AllowlistChecker, idx Indexer, opts ...Option) *Service {
	s := &Service{
		ledger:    ledgerID,
		self:      self,
		allowlist: allow,
		indexer:   idx,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	// Issuance runs the full gate; revocation only respects the pause
	// switch. Un-indexing on revoke buys nothing because validity is always
	// re-checked live against the ledger, never trusted from the index.
	// Subject presence is checked up front so the effect phase cannot fail
	// on it after earlier batch items have already been indexed.
	s.attestChecks = []Validator{s.checkPaused, s.checkAllowlisted, s.checkSubjectPresent}
	s.attestEffects = []Validator{s.forwardToIndexer}
	s.revokeChecks = []Validator{s.checkPaused}
	return s
}

// Pause makes the gate reject every issuance and revocation before any
// other validator runs.
func (s *Service) Pause(ctx context.Context, actor string) {
	s.paused.Store(true)
	s.emitPause(ctx, audit.ActionPaused, actor)
}

// Unpause restores normal gate operation.
func (s *Service) Unpause(ctx context.Context, actor string) {
	s.paused.Store(false)
	s.emitPause(ctx, audit.ActionUnpaused, actor)
}

// Paused reports the current gate state.
func (s *Service) Paused() bool {
	return s.paused.Load()
}

// OnAttest decides a single issuance. The allowlist check and the index
// call form a strict AND: the indexer is not touched when the allowlist
// check fails.
func (s *Service) OnAttest(ctx context.Context, caller id.Address, att attestation.Attestation, value uint64) error {
	ctx, span := s.tracer.Start(ctx, tracer.SpanOnAttest,
		tracer.String(tracer.AttrSchema, att.Schema.String()),
		tracer.String(tracer.AttrAttester, att.Attester.String()),
		tracer.Int64(tracer.AttrValue, int64(value)),
	)
	var err error
	defer func() { span.End(err) }()

	if err = s.requireLedger(caller); err != nil {
		return err
	}
	if err = s.run(ctx, s.attestChecks, att, value); err == nil {
		err = s.run(ctx, s.attestEffects, att, value)
	}
	if err != nil {
		s.emitDecision(ctx, audit.ActionAttestationRejected, att, err)
		return err
	}
	span.AddEvent(tracer.EventIndexed, tracer.String(tracer.AttrUID, att.UID.String()))
	s.emitDecision(ctx, audit.ActionAttestationAccepted, att, nil)
	return nil
}

// OnRevoke decides a single revocation. Apart from the pause gate it always
// accepts; this is deliberate, documented policy rather than a swallowed
// error.
func (s *Service) OnRevoke(ctx context.Context, caller id.Address, att attestation.Attestation, value uint64) error {
	ctx, span := s.tracer.Start(ctx, tracer.SpanOnRevoke,
		tracer.String(tracer.AttrSchema, att.Schema.String()),
		tracer.String(tracer.AttrUID, att.UID.String()),
	)
	var err error
	defer func() { span.End(err) }()

	if err = s.requireLedger(caller); err != nil {
		return err
	}
	if err = s.run(ctx, s.revokeChecks, att, value); err == nil {
		err = s.run(ctx, s.revokeEffects, att, value)
	}
	if err != nil {
		return err
	}
	s.emitDecision(ctx, audit.ActionRevocationAccepted, att, nil)
	return nil
}

// MultiOnAttest decides a batch of issuances with declared values drawn
// from a single pool of total. Items are processed in order; the first
// failure rejects the whole batch.
func (s *Service) MultiOnAttest(ctx context.Context, caller id.Address, atts []attestation.Attestation, values []uint64, total uint64) error {
	ctx, span := s.tracer.Start(ctx, tracer.SpanMultiOnAttest,
		tracer.Int64(tracer.AttrBatchSize, int64(len(atts))),
	)
	var err error
	defer func() { span.End(err) }()

	if err = s.requireLedger(caller); err != nil {
		return err
	}
	err = s.runBatch(ctx, s.attestChecks, s.attestEffects, atts, values, total)
	return err
}

// MultiOnRevoke decides a batch of revocations under the same value
// accounting discipline as MultiOnAttest.
func (s *Service) MultiOnRevoke(ctx context.Context, caller id.Address, atts []attestation.Attestation, values []uint64, total uint64) error {
	ctx, span := s.tracer.Start(ctx, tracer.SpanMultiOnRevoke,
		tracer.Int64(tracer.AttrBatchSize, int64(len(atts))),
	)
	var err error
	defer func() { span.End(err) }()

	if err = s.requireLedger(caller); err != nil {
		return err
	}
	err = s.runBatch(ctx, s.revokeChecks, s.revokeEffects, atts, values, total)
	return err
}

// run applies the pipeline to one item, short-circuiting on the first
// failure.
func (s *Service) run(ctx context.Context, pipeline []Validator, att attestation.Attestation, value uint64) error {
	for _, validate := range pipeline {
		if err := validate(ctx, att, value); err != nil {
			return err
		}
	}
	return nil
}

// runBatch decides a batch in two phases. Phase one walks the items in
// order, decrementing a running remaining-value counter and failing with
// InsufficientValue the instant a declared value would exceed what remains,
// then applying the side-effect-free checks. Only when every item has
// passed does phase two run the effects, so a rejection anywhere in the
// batch leaves nothing indexed.
func (s *Service) runBatch(ctx context.Context, checks, effects []Validator, atts []attestation.Attestation, values []uint64, total uint64) error {
	if len(atts) != len(values) {
		return dErrors.New(dErrors.CodeLengthMismatch, "attestations and values differ in length")
	}
	remaining := total
	for i, att := range atts {
		if values[i] > remaining {
			return dErrors.New(dErrors.CodeInsufficientValue, "declared value exceeds remaining batch value")
		}
		remaining -= values[i]
		if err := s.run(ctx, checks, att, values[i]); err != nil {
			return err
		}
	}
	for i, att := range atts {
		if err := s.run(ctx, effects, att, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// requireLedger rejects hook invocations from anything but the ledger.
func (s *Service) requireLedger(caller id.Address) error {
	if caller != s.ledger {
		return dErrors.New(dErrors.CodeAccessDenied, "hook may only be invoked by the ledger")
	}
	return nil
}

// checkPaused is the first pipeline step for every operation.
func (s *Service) checkPaused(_ context.Context, _ attestation.Attestation, _ uint64) error {
	if s.paused.Load() {
		return dErrors.New(dErrors.CodePaused, "resolver is paused")
	}
	return nil
}

// checkAllowlisted rejects issuers not allowlisted for the schema.
func (s *Service) checkAllowlisted(ctx context.Context, att attestation.Attestation, _ uint64) error {
	allowed, err := s.allowlist.Check(ctx, att.Schema, att.Attester)
	if err != nil {
		return err
	}
	if !allowed {
		return dErrors.New(dErrors.CodeAccessDenied, "attester not allowlisted for schema")
	}
	return nil
}

// checkSubjectPresent rejects attestations the index could never hold.
func (s *Service) checkSubjectPresent(_ context.Context, att attestation.Attestation, _ uint64) error {
	if att.Subject.IsZero() {
		return dErrors.New(dErrors.CodeMissingSubject, "attestation has no subject to index")
	}
	return nil
}

// forwardToIndexer records the accepted attestation in the latest-record
// index, acting as the resolver's own principal.
func (s *Service) forwardToIndexer(ctx context.Context, att attestation.Attestation, _ uint64) error {
	return s.indexer.Index(ctx, s.self, att.UID)
}

func (s *Service) emitDecision(ctx context.Context, action audit.Action, att attestation.Attestation, cause error) {
	if s.publisher == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Actor:     att.Attester.String(),
		Subject:   att.Subject,
		Schema:    att.Schema,
		UID:       att.UID,
		Decision:  "accepted",
		RequestID: requestcontext.RequestID(ctx),
	}
	if cause != nil {
		event.Decision = "rejected"
		event.Reason = string(dErrors.CodeOf(cause))
	}
	if err := s.publisher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to publish resolver event",
			"error", err,
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) emitPause(ctx context.Context, action audit.Action, actor string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Actor:     actor,
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to publish pause event",
			"error", err,
			"action", action,
		)
	}
}

