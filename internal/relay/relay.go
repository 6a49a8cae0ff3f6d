// Package relay is the static attester: a service principal that issues
// attestations on the ledger on behalf of authenticated API callers. It
// keeps the caller-facing claim vocabulary stable through a registry of
// internal permanent keys bound to rotatable ledger schemas, and offers
// templated issuance for the account and country claim shapes.
package relay

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"attestry/internal/attestation"
	"attestry/internal/capability"
	"attestry/internal/ledger"
	relaymetrics "attestry/internal/relay/metrics"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/requestcontext"
)

// Authorizer is the capability decision function consulted before every
// relay operation.
type Authorizer interface {
	Authorized(principal id.Address, c capability.Capability) bool
}

// Publisher emits schema registration notifications.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// AttestArgs describes one issuance request against an internal key.
type AttestArgs struct {
	Key            string
	Subject        id.Address
	ExpirationTime time.Time
	Revocable      bool
	Data           []byte
	Value          uint64
}

// Service is the relay. It issues to the ledger under its own identity, so
// the ledger sees a single static attester for every relayed claim.
type Service struct {
	self      id.Address
	ledger    ledger.Ledger
	schemas   SchemaRegistry
	auth      Authorizer
	paused    atomic.Bool
	publisher Publisher
	metrics   *relaymetrics.Metrics
	logger    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *relaymetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService binds the relay to its ledger identity. self is the address
// the relay attests as; it must be allowlisted for every gated schema the
// relay issues against.
func NewService(self id.Address, lgr ledger.Ledger, schemas SchemaRegistry, auth Authorizer, opts ...Option) *Service {
	s := &Service{self: self, ledger: lgr, schemas: schemas, auth: auth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Identity returns the address the relay attests as.
func (s *Service) Identity() id.Address {
	return s.self
}

// Pause blocks every relay operation, including templated issuance.
func (s *Service) Pause(ctx context.Context, actor string) {
	s.paused.Store(true)
	s.emit(ctx, audit.ActionPaused, actor, "", id.ZeroSchema)
}

// Unpause restores relay operation.
func (s *Service) Unpause(ctx context.Context, actor string) {
	s.paused.Store(false)
	s.emit(ctx, audit.ActionUnpaused, actor, "", id.ZeroSchema)
}

// Paused reports the current relay state.
func (s *Service) Paused() bool {
	return s.paused.Load()
}

// RegisterSchema binds an internal permanent key to the current ledger
// schema, replacing any previous binding. Rotating the schema behind a key
// never changes what API callers send.
func (s *Service) RegisterSchema(ctx context.Context, actor string, key string, schema id.SchemaUID) error {
	if key == "" {
		return dErrors.New(dErrors.CodeInvalidInternalKey, "internal key cannot be empty")
	}
	if schema.IsZero() {
		return dErrors.New(dErrors.CodeInvalidLedgerClaimType, "ledger schema cannot be zero")
	}
	if err := s.schemas.Bind(ctx, key, schema); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to bind schema")
	}
	s.emit(ctx, audit.ActionSchemaRegistered, actor, key, schema)
	return nil
}

// SchemaFor resolves the ledger schema currently bound to key.
func (s *Service) SchemaFor(ctx context.Context, key string) (id.SchemaUID, error) {
	schema, ok, err := s.schemas.Resolve(ctx, key)
	if err != nil {
		return id.ZeroSchema, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve schema")
	}
	if !ok {
		return id.ZeroSchema, dErrors.New(dErrors.CodeSchemaNotRegistered, "no schema registered for key")
	}
	return schema, nil
}

// IssueAccountClaim issues the templated verified-account claim: a
// boolean-true payload attesting the subject controls an account.
func (s *Service) IssueAccountClaim(ctx context.Context, caller, subject id.Address) (id.UID, error) {
	if err := s.admit(caller); err != nil {
		return id.ZeroUID, err
	}
	if subject.IsZero() {
		s.reject()
		return id.ZeroUID, dErrors.New(dErrors.CodeInvalidRecipient, "subject cannot be the zero address")
	}
	schema, err := s.SchemaFor(ctx, KeyVerifiedAccount)
	if err != nil {
		return id.ZeroUID, err
	}
	uid, err := s.ledger.Attest(ctx, s.self, attestation.Request{
		Schema:    schema,
		Subject:   subject,
		Revocable: true,
		Data:      []byte{0x01},
	})
	if err != nil {
		return id.ZeroUID, err
	}
	s.recordTemplated(KeyVerifiedAccount)
	return uid, nil
}

// IssueCountryClaim issues the templated verified-country claim from one
// packed subject+country value. The payload is the two-letter country code.
func (s *Service) IssueCountryClaim(ctx context.Context, caller id.Address, packed Packed) (id.UID, error) {
	if err := s.admit(caller); err != nil {
		return id.ZeroUID, err
	}
	subject, country, err := packed.Unpack()
	if err != nil {
		s.reject()
		return id.ZeroUID, err
	}
	schema, err := s.SchemaFor(ctx, KeyVerifiedCountry)
	if err != nil {
		return id.ZeroUID, err
	}
	uid, err := s.ledger.Attest(ctx, s.self, attestation.Request{
		Schema:    schema,
		Subject:   subject,
		Revocable: true,
		Data:      []byte(country),
	})
	if err != nil {
		return id.ZeroUID, err
	}
	s.recordTemplated(KeyVerifiedCountry)
	return uid, nil
}

// Attest relays one free-form issuance against an internal key.
func (s *Service) Attest(ctx context.Context, caller id.Address, args AttestArgs) (id.UID, error) {
	if err := s.admit(caller); err != nil {
		return id.ZeroUID, err
	}
	req, err := s.buildRequest(ctx, args)
	if err != nil {
		return id.ZeroUID, err
	}
	uid, err := s.ledger.Attest(ctx, s.self, req)
	if err != nil {
		return id.ZeroUID, err
	}
	if s.metrics != nil {
		s.metrics.IncrementAttestations(1)
	}
	return uid, nil
}

// MultiAttest relays a batch of issuances sharing one internal key, with
// declared values drawn from total. The ledger owns atomicity; a rejected
// item leaves nothing issued.
func (s *Service) MultiAttest(ctx context.Context, caller id.Address, key string, items []AttestArgs, total uint64) ([]id.UID, error) {
	if err := s.admit(caller); err != nil {
		return nil, err
	}
	schema, err := s.SchemaFor(ctx, key)
	if err != nil {
		return nil, err
	}
	reqs := make([]attestation.Request, len(items))
	values := make([]uint64, len(items))
	for i, item := range items {
		reqs[i] = attestation.Request{
			Schema:         schema,
			Subject:        item.Subject,
			ExpirationTime: item.ExpirationTime,
			Revocable:      item.Revocable,
			Data:           item.Data,
		}
		values[i] = item.Value
	}
	uids, err := s.ledger.MultiAttest(ctx, s.self, reqs, values, total)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementAttestations(len(uids))
	}
	return uids, nil
}

// Revoke relays one revocation of an attestation the relay issued.
func (s *Service) Revoke(ctx context.Context, caller id.Address, uid id.UID, value uint64) error {
	if err := s.admit(caller); err != nil {
		return err
	}
	if err := s.ledger.Revoke(ctx, s.self, uid, value); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementRevocations(1)
	}
	return nil
}

// MultiRevoke relays a batch of revocations with declared values drawn
// from total.
func (s *Service) MultiRevoke(ctx context.Context, caller id.Address, uids []id.UID, values []uint64, total uint64) error {
	if err := s.admit(caller); err != nil {
		return err
	}
	if err := s.ledger.MultiRevoke(ctx, s.self, uids, values, total); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementRevocations(len(uids))
	}
	return nil
}

func (s *Service) buildRequest(ctx context.Context, args AttestArgs) (attestation.Request, error) {
	schema, err := s.SchemaFor(ctx, args.Key)
	if err != nil {
		return attestation.Request{}, err
	}
	return attestation.Request{
		Schema:         schema,
		Subject:        args.Subject,
		ExpirationTime: args.ExpirationTime,
		Revocable:      args.Revocable,
		Data:           args.Data,
		Value:          args.Value,
	}, nil
}

// admit is the common gate: the pause switch first, then the attester
// capability.
func (s *Service) admit(caller id.Address) error {
	if s.paused.Load() {
		s.reject()
		return dErrors.New(dErrors.CodePaused, "relay is paused")
	}
	if !s.auth.Authorized(caller, capability.Attester) {
		s.reject()
		return dErrors.New(dErrors.CodeAccessDenied, "caller lacks the attester capability")
	}
	return nil
}

func (s *Service) recordTemplated(key string) {
	if s.metrics != nil {
		s.metrics.IncrementTemplated(key)
		s.metrics.IncrementAttestations(1)
	}
}

func (s *Service) reject() {
	if s.metrics != nil {
		s.metrics.IncrementRejected()
	}
}

func (s *Service) emit(ctx context.Context, action audit.Action, actor, key string, schema id.SchemaUID) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Actor:     actor,
		Schema:    schema,
		Detail:    key,
		RequestID: requestcontext.RequestID(ctx),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to publish relay event",
			"error", err,
			"action", action,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
