package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/google/uuid"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/requestcontext"
)

// InMemory is the demo-environment ledger. reqMu serializes whole mutating
// requests, so issuance keeps a single-writer total order and every request
// observes a consistent snapshot. mu guards the maps only and is never held
// while a hook runs: hooks are free to call Get re-entrantly. Issuance stages
// the record before dispatching the hook, so the resolver's index forward can
// fetch it, and unstages on rejection; revocation dispatches the hook first
// and commits only on acceptance.
type InMemory struct {
	reqMu   sync.Mutex
	mu      sync.RWMutex
	self    id.Address
	records map[id.UID]attestation.Attestation
	hooks   map[id.SchemaUID]Hook
}

// NewInMemory creates an in-memory ledger. self is the identity the ledger
// presents to resolver hooks.
func NewInMemory(self id.Address) *InMemory {
	return &InMemory{
		self:    self,
		records: make(map[id.UID]attestation.Attestation),
		hooks:   make(map[id.SchemaUID]Hook),
	}
}

// RegisterHook binds a resolver hook to a schema. Issuance and revocation
// for a schema without a hook commit unconditionally.
func (l *InMemory) RegisterHook(schema id.SchemaUID, hook Hook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks[schema] = hook
}

// Attest issues one attestation. The hook registered for the schema decides
// acceptance; rejection leaves no trace.
func (l *InMemory) Attest(ctx context.Context, attester id.Address, req attestation.Request) (id.UID, error) {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()

	att, err := l.build(ctx, attester, req)
	if err != nil {
		return id.ZeroUID, err
	}
	l.put(att)
	if hook := l.hookFor(att.Schema); hook != nil {
		if err := hook.OnAttest(ctx, l.self, att, req.Value); err != nil {
			l.remove(att.UID)
			return id.ZeroUID, err
		}
	}
	return att.UID, nil
}

// MultiAttest issues a batch. All requests must share one schema so a single
// hook call covers the whole batch; declared values are accounted against
// total by the hook. Nothing persists unless every item is accepted.
func (l *InMemory) MultiAttest(ctx context.Context, attester id.Address, reqs []attestation.Request, values []uint64, total uint64) ([]id.UID, error) {
	if len(reqs) != len(values) {
		return nil, dErrors.New(dErrors.CodeLengthMismatch, "requests and values differ in length")
	}
	if len(reqs) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "empty batch")
	}

	l.reqMu.Lock()
	defer l.reqMu.Unlock()

	schema := reqs[0].Schema
	atts := make([]attestation.Attestation, 0, len(reqs))
	for _, req := range reqs {
		if req.Schema != schema {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "batch items must share one schema")
		}
		att, err := l.build(ctx, attester, req)
		if err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}

	for _, att := range atts {
		l.put(att)
	}
	if hook := l.hookFor(schema); hook != nil {
		if err := hook.MultiOnAttest(ctx, l.self, atts, values, total); err != nil {
			for _, att := range atts {
				l.remove(att.UID)
			}
			return nil, err
		}
	}

	uids := make([]id.UID, 0, len(atts))
	for _, att := range atts {
		uids = append(uids, att.UID)
	}
	return uids, nil
}

// Revoke marks an attestation revoked. Only the original attester may
// revoke, and only revocable records.
func (l *InMemory) Revoke(ctx context.Context, attester id.Address, uid id.UID, value uint64) error {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()

	att, err := l.prepareRevocation(ctx, attester, uid)
	if err != nil {
		return err
	}
	if hook := l.hookFor(att.Schema); hook != nil {
		if err := hook.OnRevoke(ctx, l.self, att, value); err != nil {
			return err
		}
	}
	l.put(att)
	return nil
}

// MultiRevoke revokes a batch sharing one schema, all-or-nothing.
func (l *InMemory) MultiRevoke(ctx context.Context, attester id.Address, uids []id.UID, values []uint64, total uint64) error {
	if len(uids) != len(values) {
		return dErrors.New(dErrors.CodeLengthMismatch, "uids and values differ in length")
	}
	if len(uids) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "empty batch")
	}

	l.reqMu.Lock()
	defer l.reqMu.Unlock()

	atts := make([]attestation.Attestation, 0, len(uids))
	var schema id.SchemaUID
	for i, uid := range uids {
		att, err := l.prepareRevocation(ctx, attester, uid)
		if err != nil {
			return err
		}
		if i == 0 {
			schema = att.Schema
		} else if att.Schema != schema {
			return dErrors.New(dErrors.CodeInvalidInput, "batch items must share one schema")
		}
		atts = append(atts, att)
	}

	if hook := l.hookFor(schema); hook != nil {
		if err := hook.MultiOnRevoke(ctx, l.self, atts, values, total); err != nil {
			return err
		}
	}

	for _, att := range atts {
		l.put(att)
	}
	return nil
}

// Get returns the stored record, or the zero record when uid is unknown.
// A stored record missing its schema or attester is corrupt. Get is safe to
// call from within a hook.
func (l *InMemory) Get(_ context.Context, uid id.UID) (attestation.Attestation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	att, ok := l.records[uid]
	if !ok {
		return attestation.Attestation{}, nil
	}
	if att.Schema.IsZero() || att.Attester.IsZero() {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeInvariantViolation, "stored attestation is corrupt")
	}
	return att, nil
}

func (l *InMemory) put(att attestation.Attestation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[att.UID] = att
}

func (l *InMemory) remove(uid id.UID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, uid)
}

func (l *InMemory) hookFor(schema id.SchemaUID) Hook {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hooks[schema]
}

// build validates a request and materializes the record it describes.
func (l *InMemory) build(ctx context.Context, attester id.Address, req attestation.Request) (attestation.Attestation, error) {
	if req.Schema.IsZero() {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeInvalidInput, "schema is required")
	}
	if attester.IsZero() {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeInvalidPrincipal, "attester cannot be the zero address")
	}
	now := requestcontext.Now(ctx)
	if !req.ExpirationTime.IsZero() && !req.ExpirationTime.After(now) {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeExpired, "expiration time is in the past")
	}

	att := attestation.Attestation{
		Schema:         req.Schema,
		Subject:        req.Subject,
		Attester:       attester,
		Time:           now,
		ExpirationTime: req.ExpirationTime,
		Revocable:      req.Revocable,
		Data:           req.Data,
		Value:          req.Value,
	}
	att.UID = l.newUID(att)
	return att, nil
}

// prepareRevocation validates a revocation and returns the record with its
// revocation time set, without committing it.
func (l *InMemory) prepareRevocation(ctx context.Context, attester id.Address, uid id.UID) (attestation.Attestation, error) {
	l.mu.RLock()
	att, ok := l.records[uid]
	l.mu.RUnlock()
	if !ok {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeNotFound, "attestation not found")
	}
	if att.Attester != attester {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeAccessDenied, "only the original attester may revoke")
	}
	if !att.Revocable {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeValidation, "attestation is not revocable")
	}
	if att.Revoked() {
		return attestation.Attestation{}, dErrors.New(dErrors.CodeRevoked, "attestation already revoked")
	}
	att.RevocationTime = requestcontext.Now(ctx)
	return att, nil
}

// newUID derives a fresh identifier from the record's canonical fields plus
// a random salt, so identical requests never collide.
func (l *InMemory) newUID(att attestation.Attestation) id.UID {
	h := sha256.New()
	h.Write(att.Schema[:])
	h.Write(att.Subject[:])
	h.Write(att.Attester[:])

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(att.Time.UnixNano()))
	h.Write(ts[:])
	if !att.ExpirationTime.IsZero() {
		binary.BigEndian.PutUint64(ts[:], uint64(att.ExpirationTime.UnixNano()))
		h.Write(ts[:])
	}
	if att.Revocable {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write(att.Data)

	salt := uuid.New()
	h.Write(salt[:])

	var uid id.UID
	copy(uid[:], h.Sum(nil))
	return uid
}
