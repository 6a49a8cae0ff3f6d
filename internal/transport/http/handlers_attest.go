package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"attestry/internal/relay"
	id "attestry/pkg/domain"
	"attestry/pkg/platform/httputil"
	"attestry/pkg/platform/middleware/auth"
	"attestry/pkg/requestcontext"
)

// RelayService is the relay surface the attest handler depends on.
type RelayService interface {
	Attest(ctx context.Context, caller id.Address, args relay.AttestArgs) (id.UID, error)
	MultiAttest(ctx context.Context, caller id.Address, key string, items []relay.AttestArgs, total uint64) ([]id.UID, error)
	Revoke(ctx context.Context, caller id.Address, uid id.UID, value uint64) error
	MultiRevoke(ctx context.Context, caller id.Address, uids []id.UID, values []uint64, total uint64) error
	IssueAccountClaim(ctx context.Context, caller, subject id.Address) (id.UID, error)
	IssueCountryClaim(ctx context.Context, caller id.Address, packed relay.Packed) (id.UID, error)
}

// AttestHandler exposes the relay operations to authenticated attesters.
type AttestHandler struct {
	relay  RelayService
	logger *slog.Logger
}

func NewAttestHandler(relaySvc RelayService, logger *slog.Logger) *AttestHandler {
	return &AttestHandler{relay: relaySvc, logger: logger}
}

// Register mounts the attester routes. The caller wraps them with the auth
// middleware; every handler reads the principal from context.
func (h *AttestHandler) Register(r chi.Router) {
	r.Post("/attest", h.handleAttest)
	r.Post("/attest/batch", h.handleAttestBatch)
	r.Post("/attest/account", h.handleAccountClaim)
	r.Post("/attest/country", h.handleCountryClaim)
	r.Post("/revoke", h.handleRevoke)
	r.Post("/revoke/batch", h.handleRevokeBatch)
}

func (h *AttestHandler) handleAttest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[attestRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	args, err := req.toArgs()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	uid, err := h.relay.Attest(ctx, auth.Principal(ctx), args)
	if err != nil {
		h.logFailure(ctx, "attest rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, uidResponse{UID: uid.String()})
}

func (h *AttestHandler) handleAttestBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[attestBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	args, err := req.toArgs()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	uids, err := h.relay.MultiAttest(ctx, auth.Principal(ctx), req.Key, args, req.Total)
	if err != nil {
		h.logFailure(ctx, "batch attest rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}

	out := make([]string, len(uids))
	for i, uid := range uids {
		out[i] = uid.String()
	}
	httputil.WriteJSON(w, http.StatusCreated, uidsResponse{UIDs: out})
}

func (h *AttestHandler) handleAccountClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[accountClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	subject, err := id.ParseAddress(req.Subject)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	uid, err := h.relay.IssueAccountClaim(ctx, auth.Principal(ctx), subject)
	if err != nil {
		h.logFailure(ctx, "account claim rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, uidResponse{UID: uid.String()})
}

func (h *AttestHandler) handleCountryClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[countryClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	packed, err := relay.ParsePacked(req.Packed)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	uid, err := h.relay.IssueCountryClaim(ctx, auth.Principal(ctx), packed)
	if err != nil {
		h.logFailure(ctx, "country claim rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, uidResponse{UID: uid.String()})
}

func (h *AttestHandler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[revokeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	uid, err := id.ParseUID(req.UID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.relay.Revoke(ctx, auth.Principal(ctx), uid, req.Value); err != nil {
		h.logFailure(ctx, "revoke rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AttestHandler) handleRevokeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[revokeBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	uids, err := req.toUIDs()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.relay.MultiRevoke(ctx, auth.Principal(ctx), uids, req.Values, req.Total); err != nil {
		h.logFailure(ctx, "batch revoke rejected", err, requestID)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AttestHandler) logFailure(ctx context.Context, msg string, err error, requestID string) {
	if h.logger == nil {
		return
	}
	h.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestID,
		"device", requestcontext.Device(ctx),
	)
}
