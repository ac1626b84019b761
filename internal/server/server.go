package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/economy"
	"github.com/osse101/LootForge_Go/internal/handler"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/lootbox"
	"github.com/osse101/LootForge_Go/internal/market"
	"github.com/osse101/LootForge_Go/internal/metrics"
	"github.com/osse101/LootForge_Go/internal/passive"
	"github.com/osse101/LootForge_Go/internal/player"
)

// Services bundles everything the router dispatches to
type Services struct {
	Catalog *catalog.Catalog
	Lootbox lootbox.Service
	Economy economy.Service
	Market  market.Service
	Player  player.Service
	Passive passive.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, dbPool database.Pool, svc Services) (*Server, error) {
	limiter, err := NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, DefaultRateLimitClients)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	r := NewRouter(cfg, dbPool, svc, limiter)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool: dbPool,
	}, nil
}

// NewRouter builds the chi router with the full middleware stack.
// Middleware executes in the order defined, outermost first.
func NewRouter(cfg *config.Config, dbPool database.Pool, svc Services, limiter *IPRateLimiter) http.Handler {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players", handler.HandleRegisterPlayer(svc.Player))

		r.Route("/player", func(r chi.Router) {
			r.Get("/", handler.HandleGetProfile(svc.Player))
			r.Get("/stats", handler.HandleGetStats(svc.Passive))
			r.Post("/stats/recalculate", handler.HandleRecalculateStats(svc.Passive))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svc.Player))
			r.Post("/{id}/sell", handler.HandleSellItem(svc.Economy))
			r.Post("/{id}/use", handler.HandleUseItem(svc.Economy))
		})

		r.Route("/boxes", func(r chi.Router) {
			r.Get("/", handler.HandleListBoxes(svc.Lootbox))
			r.Get("/{id}/odds", handler.HandleBoxOdds(svc.Lootbox))
			r.Get("/{id}/preview", handler.HandleBoxPreview(svc.Lootbox))
			r.Post("/{id}/open", handler.HandleOpenBox(svc.Lootbox))
		})

		r.Route("/weapons", func(r chi.Router) {
			r.Get("/", handler.HandleListWeapons(svc.Catalog))
			r.Get("/stats", handler.HandleAllWeaponStats(svc.Player))
			r.Get("/{id}", handler.HandleGetWeapon(svc.Catalog))
			r.Get("/{id}/stats", handler.HandleWeaponStats(svc.Player))
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/listings", handler.HandleListListings(svc.Market))
			r.Post("/listings", handler.HandleCreateListing(svc.Market))
			r.Get("/listings/{id}", handler.HandleGetListing(svc.Market))
			r.Post("/listings/{id}/buy", handler.HandleBuyListing(svc.Market))
			r.Post("/listings/{id}/cancel", handler.HandleCancelListing(svc.Market))
			r.Get("/mine", handler.HandleMyListings(svc.Market))
			r.Get("/weapons/{id}/lowest", handler.HandleLowestPrices(svc.Market))
			r.Get("/weapons/{id}/history", handler.HandleMarketHistory(svc.Market))
			r.Get("/weapons/{id}/stats", handler.HandleMarketStats(svc.Market))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the root handler for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
