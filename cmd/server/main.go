// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Business logic lives in internal services.
package main

import (
	"context"
	"crypto/sha256"
	"net/http"
	"os"
	"os/signal"
	"time"

	"attestry/internal/allowlist"
	"attestry/internal/capability"
	"attestry/internal/guard"
	"attestry/internal/indexer"
	indexermetrics "attestry/internal/indexer/metrics"
	"attestry/internal/jwttoken"
	"attestry/internal/ledger"
	"attestry/internal/platform/config"
	"attestry/internal/platform/health"
	"attestry/internal/platform/httpserver"
	"attestry/internal/platform/logger"
	"attestry/internal/relay"
	relaymetrics "attestry/internal/relay/metrics"
	"attestry/internal/resolver"
	"attestry/internal/resolver/tracer"
	"attestry/internal/seeder"
	httptransport "attestry/internal/transport/http"
	id "attestry/pkg/domain"
	"attestry/pkg/platform/audit/publisher"
	auditstore "attestry/pkg/platform/audit/store"
	request "attestry/pkg/platform/middleware/request"
)

// Service principals for the demo wiring. In a deployment these come from
// provisioning; the resolver principal must hold the indexer capability and
// the relay principal must be allowlisted for the schemas it issues.
var (
	ledgerAddr   = principal("attestry/ledger")
	resolverAddr = principal("attestry/resolver")
	relayAddr    = principal("attestry/relay")
)

func principal(name string) id.Address {
	sum := sha256.Sum256([]byte(name))
	var addr id.Address
	copy(addr[:], sum[12:])
	return addr
}

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing attestry",
		"addr", cfg.Addr,
		"env", cfg.Environment,
	)

	auditLog := auditstore.NewInMemory()
	events := publisher.New(auditLog,
		publisher.WithAsyncBuffer(cfg.AuditBuffer),
		publisher.WithLogger(log),
	)
	defer events.Close()

	caps := capability.NewStore()
	lgr := ledger.NewInMemory(ledgerAddr)

	allowStore := allowlist.NewInMemory()
	allow := allowlist.NewService(allowStore,
		allowlist.WithPublisher(events),
		allowlist.WithLogger(log),
	)

	index := indexer.NewService(indexer.NewInMemory(), lgr, caps,
		indexer.WithPublisher(events),
		indexer.WithMetrics(indexermetrics.New()),
		indexer.WithLogger(log),
	)

	gate := resolver.NewService(ledgerAddr, resolverAddr, allow, index,
		resolver.WithTracer(tracer.NewOTel()),
		resolver.WithPublisher(events),
		resolver.WithLogger(log),
	)

	schemas := relay.NewInMemorySchemas()
	relaySvc := relay.NewService(relayAddr, lgr, schemas, caps,
		relay.WithPublisher(events),
		relay.WithMetrics(relaymetrics.New()),
		relay.WithLogger(log),
	)

	seed := seeder.New(caps, lgr, allow, schemas, gate, resolverAddr, relayAddr, log)
	if err := seed.SeedAll(context.Background()); err != nil {
		log.Error("failed to seed demo wiring", "error", err)
		os.Exit(1)
	}

	tokens := jwttoken.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	tokens.SetEnv(cfg.Environment)

	claimGuard := guard.New(index, lgr)

	attestHandler := httptransport.NewAttestHandler(relaySvc, log)
	queryHandler := httptransport.NewQueryHandler(index, claimGuard, lgr, log)
	adminHandler := httptransport.NewAdminHandler(httptransport.AdminDeps{
		Allowlist: allow,
		Schemas:   relaySvc,
		Caps:      caps,
		Switches:  []httptransport.PauseSwitch{gate, relaySvc},
		AuditLog:  auditLog,
		Publisher: events,
		Logger:    log,
	})

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("audit", func() error { return nil })

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		AdminToken:     cfg.AdminToken,
		TokenValidator: tokens,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		LatencyMetrics: request.NewMetrics(),
		Health:         healthHandler,

		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
	}, attestHandler, queryHandler, adminHandler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

