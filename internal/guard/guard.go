// Package guard is the single supported way for downstream consumers to
// gate behavior on claim possession. It always re-verifies live ledger
// state and never trusts the index alone.
package guard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"attestry/internal/attestation"
	"attestry/internal/verifier"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/requestcontext"
)

// Index resolves the latest indexed UID for a (subject, schema) pair.
type Index interface {
	Lookup(ctx context.Context, subject id.Address, schema id.SchemaUID) (id.UID, error)
}

// Ledger fetches full attestation records.
type Ledger interface {
	Get(ctx context.Context, uid id.UID) (attestation.Attestation, error)
}

// Guard composes index lookup, ledger fetch, and verification.
type Guard struct {
	index  Index
	ledger Ledger
}

func New(index Index, ledger Ledger) *Guard {
	return &Guard{index: index, ledger: ledger}
}

// RequireClaim fails with NotFound when nothing is indexed for the pair,
// and otherwise propagates whatever the verifier reports about the fetched
// record. A revoked or expired record fails here even while it is still the
// one indexed.
func (g *Guard) RequireClaim(ctx context.Context, subject id.Address, schema id.SchemaUID) error {
	uid, err := g.index.Lookup(ctx, subject, schema)
	if err != nil {
		return err
	}
	if uid.IsZero() {
		return dErrors.New(dErrors.CodeNotFound, "no attestation indexed for subject and schema")
	}
	att, err := g.ledger.Get(ctx, uid)
	if err != nil {
		return err
	}
	return verifier.CheckFor(att, subject, schema, requestcontext.Now(ctx))
}

// RequireAll checks several claim types for one subject concurrently. All
// checks are read-only, so fan-out is safe; the first failure wins.
func (g *Guard) RequireAll(ctx context.Context, subject id.Address, schemas ...id.SchemaUID) error {
	if len(schemas) == 0 {
		return nil
	}
	eg, ctx := errgroup.WithContext(ctx)
	for _, schema := range schemas {
		schema := schema
		eg.Go(func() error {
			return g.RequireClaim(ctx, subject, schema)
		})
	}
	return eg.Wait()
}
