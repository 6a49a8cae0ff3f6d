package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/httputil"
	"attestry/pkg/requestcontext"
)

// IndexLookup resolves the latest indexed UID for a pair.
type IndexLookup interface {
	Lookup(ctx context.Context, subject id.Address, schema id.SchemaUID) (id.UID, error)
}

// ClaimGuard is the live claim check.
type ClaimGuard interface {
	RequireClaim(ctx context.Context, subject id.Address, schema id.SchemaUID) error
}

// LedgerReader fetches attestation records.
type LedgerReader interface {
	Get(ctx context.Context, uid id.UID) (attestation.Attestation, error)
}

// QueryHandler serves the read-only surface: index lookups, guard checks,
// and ledger record fetches.
type QueryHandler struct {
	index  IndexLookup
	guard  ClaimGuard
	ledger LedgerReader
	logger *slog.Logger
}

func NewQueryHandler(index IndexLookup, guard ClaimGuard, ledger LedgerReader, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{index: index, guard: guard, ledger: ledger, logger: logger}
}

func (h *QueryHandler) Register(r chi.Router) {
	r.Get("/index/{subject}/{schema}", h.handleIndexLookup)
	r.Get("/claims/{subject}/{schema}", h.handleClaimCheck)
	r.Get("/attestations/{uid}", h.handleGetAttestation)
}

func (h *QueryHandler) handleIndexLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject, schema, err := pairParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	uid, err := h.index.Lookup(ctx, subject, schema)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := indexLookupResponse{
		Subject: subject.String(),
		Schema:  schema.String(),
		Indexed: !uid.IsZero(),
	}
	if resp.Indexed {
		resp.UID = uid.String()
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *QueryHandler) handleClaimCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject, schema, err := pairParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.guard.RequireClaim(ctx, subject, schema); err != nil {
		if h.logger != nil {
			h.logger.InfoContext(ctx, "claim check failed",
				"error", err,
				"subject", subject,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, claimStatusResponse{
		Subject: subject.String(),
		Schema:  schema.String(),
		Status:  "valid",
	})
}

func (h *QueryHandler) handleGetAttestation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, err := id.ParseUID(chi.URLParam(r, "uid"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	att, err := h.ledger.Get(ctx, uid)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if att.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no attestation with this uid"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toAttestationResponse(att))
}

func pairParams(r *http.Request) (id.Address, id.SchemaUID, error) {
	subject, err := id.ParseAddress(chi.URLParam(r, "subject"))
	if err != nil {
		return id.ZeroAddress, id.ZeroSchema, err
	}
	schema, err := id.ParseSchemaUID(chi.URLParam(r, "schema"))
	if err != nil {
		return id.ZeroAddress, id.ZeroSchema, err
	}
	return subject, schema, nil
}

func toAttestationResponse(att attestation.Attestation) attestationResponse {
	resp := attestationResponse{
		UID:       att.UID.String(),
		Schema:    att.Schema.String(),
		Subject:   att.Subject.String(),
		Attester:  att.Attester.String(),
		Time:      att.Time.UTC().Format(time.RFC3339),
		Revocable: att.Revocable,
		Data:      att.Data,
		Value:     att.Value,
	}
	if !att.ExpirationTime.IsZero() {
		resp.ExpirationTime = att.ExpirationTime.UTC().Format(time.RFC3339)
	}
	if !att.RevocationTime.IsZero() {
		resp.RevocationTime = att.RevocationTime.UTC().Format(time.RFC3339)
	}
	return resp
}
