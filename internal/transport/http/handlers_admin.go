package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"attestry/internal/capability"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/platform/httputil"
	adminmw "attestry/pkg/platform/middleware/admin"
	"attestry/pkg/requestcontext"
)

// AllowlistAdmin manages per-schema issuer permissions.
type AllowlistAdmin interface {
	Add(ctx context.Context, actor string, schema id.SchemaUID, principal id.Address) error
	Remove(ctx context.Context, actor string, schema id.SchemaUID, principal id.Address) error
}

// SchemaAdmin binds internal keys to ledger schemas.
type SchemaAdmin interface {
	RegisterSchema(ctx context.Context, actor string, key string, schema id.SchemaUID) error
}

// PauseSwitch is one pausable component. Pause and unpause fan out to all
// registered switches so the resolver gate and the relay stop together.
type PauseSwitch interface {
	Pause(ctx context.Context, actor string)
	Unpause(ctx context.Context, actor string)
}

// CapabilityAdmin manages principal capabilities, including holder rotation.
type CapabilityAdmin interface {
	Grant(ctx context.Context, c capability.Capability, principal id.Address) error
	Revoke(ctx context.Context, c capability.Capability, principal id.Address) error
	Rotate(ctx context.Context, c capability.Capability, old, next id.Address) error
}

// AuditReader lists recorded audit events for the operator surface.
type AuditReader interface {
	List(ctx context.Context) ([]audit.Event, error)
}

// AdminHandler exposes the operator surface behind the admin token.
type AdminHandler struct {
	allowlist AllowlistAdmin
	schemas   SchemaAdmin
	caps      CapabilityAdmin
	switches  []PauseSwitch
	auditLog  AuditReader
	publisher Publisher
	logger    *slog.Logger
}

// Publisher emits admin audit events not owned by a domain service.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

type AdminDeps struct {
	Allowlist AllowlistAdmin
	Schemas   SchemaAdmin
	Caps      CapabilityAdmin
	Switches  []PauseSwitch
	AuditLog  AuditReader
	Publisher Publisher
	Logger    *slog.Logger
}

func NewAdminHandler(deps AdminDeps) *AdminHandler {
	return &AdminHandler{
		allowlist: deps.Allowlist,
		schemas:   deps.Schemas,
		caps:      deps.Caps,
		switches:  deps.Switches,
		auditLog:  deps.AuditLog,
		publisher: deps.Publisher,
		logger:    deps.Logger,
	}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Post("/admin/allowlist", h.handleAllowlistAdd)
	r.Delete("/admin/allowlist", h.handleAllowlistRemove)
	r.Post("/admin/schemas", h.handleRegisterSchema)
	r.Post("/admin/pause", h.handlePause)
	r.Post("/admin/unpause", h.handleUnpause)
	r.Post("/admin/capabilities/grant", h.handleCapabilityGrant)
	r.Post("/admin/capabilities/revoke", h.handleCapabilityRevoke)
	r.Put("/admin/indexer", h.handleRotateIndexer)
	r.Get("/admin/audit/recent", h.handleRecentAuditEvents)
}

func actor(ctx context.Context) string {
	if a := adminmw.GetAdminActorID(ctx); a != "" {
		return a
	}
	return "admin"
}

func (h *AdminHandler) handleAllowlistAdd(w http.ResponseWriter, r *http.Request) {
	h.handleAllowlistChange(w, r, h.allowlist.Add)
}

func (h *AdminHandler) handleAllowlistRemove(w http.ResponseWriter, r *http.Request) {
	h.handleAllowlistChange(w, r, h.allowlist.Remove)
}

func (h *AdminHandler) handleAllowlistChange(w http.ResponseWriter, r *http.Request,
	apply func(context.Context, string, id.SchemaUID, id.Address) error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[allowlistRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	schema, err := id.ParseSchemaUID(req.Schema)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	principal, err := id.ParseAddress(req.Principal)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := apply(ctx, actor(ctx), schema, principal); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleRegisterSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[registerSchemaRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	schema, err := id.ParseSchemaUID(req.Schema)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidLedgerClaimType, "schema must be a 32-byte hex value"))
		return
	}

	if err := h.schemas.RegisterSchema(ctx, actor(ctx), req.Key, schema); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handlePause(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	for _, s := range h.switches {
		s.Pause(ctx, actor(ctx))
	}
	if h.logger != nil {
		h.logger.InfoContext(ctx, "issuance paused",
			"actor", actor(ctx),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleUnpause(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	for _, s := range h.switches {
		s.Unpause(ctx, actor(ctx))
	}
	if h.logger != nil {
		h.logger.InfoContext(ctx, "issuance resumed",
			"actor", actor(ctx),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleCapabilityGrant(w http.ResponseWriter, r *http.Request) {
	h.handleCapabilityChange(w, r, audit.ActionCapabilityGranted, h.caps.Grant)
}

func (h *AdminHandler) handleCapabilityRevoke(w http.ResponseWriter, r *http.Request) {
	h.handleCapabilityChange(w, r, audit.ActionCapabilityRevoked, h.caps.Revoke)
}

func (h *AdminHandler) handleCapabilityChange(w http.ResponseWriter, r *http.Request,
	action audit.Action, apply func(context.Context, capability.Capability, id.Address) error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[capabilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c := capability.Capability(req.Capability)
	if !c.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "unknown capability"))
		return
	}
	principal, err := id.ParseAddress(req.Principal)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := apply(ctx, c, principal); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.emit(ctx, action, principal, string(c))
	w.WriteHeader(http.StatusNoContent)
}

// handleRotateIndexer replaces the index-writing principal in one step so
// the old holder loses the capability the moment the new one gains it.
func (h *AdminHandler) handleRotateIndexer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[rotateIndexerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	next, err := id.ParseAddress(req.Next)
	if err != nil || next.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidIndexerAddress, "next indexer address cannot be zero"))
		return
	}
	old, err := id.ParseAddress(req.Old)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidIndexerAddress, "old indexer address is malformed"))
		return
	}

	if err := h.caps.Rotate(ctx, capability.Indexer, old, next); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.emit(ctx, audit.ActionIndexerAddressChanged, next, "")
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleRecentAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.auditLog.List(ctx)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if len(events) > limit {
		events = events[len(events)-limit:]
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

func (h *AdminHandler) emit(ctx context.Context, action audit.Action, principal id.Address, detail string) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.Publish(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Actor:     actor(ctx),
		Principal: principal,
		Detail:    detail,
		RequestID: requestcontext.RequestID(ctx),
		UserAgent: requestcontext.Device(ctx),
	})
	if err != nil && h.logger != nil {
		h.logger.ErrorContext(ctx, "failed to publish admin event",
			"error", err,
			"action", action,
		)
	}
}
