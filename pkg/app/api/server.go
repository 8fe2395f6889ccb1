// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/attestation"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	authservice "github.com/ShahiTechnovation/X4PN/pkg/auth/service"
	"github.com/ShahiTechnovation/X4PN/pkg/config"
	nodeservice "github.com/ShahiTechnovation/X4PN/pkg/node/service"
	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
	"github.com/ShahiTechnovation/X4PN/pkg/notify"
	"github.com/ShahiTechnovation/X4PN/pkg/pgutil"
	sessionservice "github.com/ShahiTechnovation/X4PN/pkg/session/service"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
	"github.com/ShahiTechnovation/X4PN/pkg/sweeper"
	userservice "github.com/ShahiTechnovation/X4PN/pkg/user/service"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

const readinessTimeout = 2 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// services groups the decorated domain services handed to the router.
type services struct {
	auth     authservice.Service
	ledger   userservice.Service
	nodes    nodeservice.Service
	sessions sessionservice.Service
}

// Run wires stores and services, starts the sweeper and serves until SIGINT or SIGTERM.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting X4PN API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	rdb, err := s.openRedis(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()
	logger.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr))

	initialUsdc, initialX4pn, err := cfg.Ledger.InitialBalances()
	if err != nil {
		return err
	}

	issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}
	challenges := auth.NewRedisChallengeStore(rdb, cfg.Redis.KeyPrefix, cfg.Auth.NonceTTL)
	bus := notify.NewRedisBus(rdb, cfg.Redis.KeyPrefix)

	userStore := userstore.NewStore(db)
	nodeStore := nodestore.NewStore(db)
	sessionStore := sessionstore.NewStore(db)

	sessionSvc := sessionservice.NewLog(
		sessionservice.NewService(sessionStore, userStore, nodeStore, bus, logger, s.sessionOptions(initialUsdc, initialX4pn)...),
		logger,
	)
	svcs := &services{
		auth: authservice.NewLog(
			authservice.NewService(userStore, challenges, issuer, initialUsdc, initialX4pn, logger),
			logger,
		),
		ledger:   userservice.NewLog(userservice.NewService(userStore, initialUsdc, initialX4pn, logger), logger),
		nodes:    nodeservice.NewLog(nodeservice.NewService(nodeStore, sessionSvc, logger), logger),
		sessions: sessionSvc,
	}

	var limiter *apphttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = apphttp.NewRateLimiter(cfg.RateLimit.PerSecond(), cfg.RateLimit.Burst)
	}

	stopSweeper := s.startSweeper(sessionStore, sessionSvc, limiter, logger)
	// stopped explicitly after ServeAndWait; the defer covers early returns
	defer stopSweeper()

	authMiddleware := auth.Middleware(issuer, challenges, logger)
	feed := notify.NewFeed(svcs.nodes, bus, logger)
	router := s.setupRouter(db, rdb, svcs, feed, authMiddleware, limiter, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred DB/redis closes kick in.
	stopSweeper()

	return err
}

func (s *Server) openRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     s.cfg.Redis.Addr,
		Password: s.cfg.Redis.Password,
		DB:       s.cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return rdb, nil
}

func (s *Server) sessionOptions(initialUsdc, initialX4pn decimal.Decimal) []sessionservice.Option {
	cfg := s.cfg
	opts := []sessionservice.Option{
		sessionservice.WithMaxSettleRetries(cfg.Session.MaxSettleRetries),
		sessionservice.WithNotifyTimeout(cfg.Session.NotifyTimeout),
		sessionservice.WithInitialBalances(initialUsdc, initialX4pn),
	}
	if cfg.Attestation.VerifyingContract != "" {
		domain := attestation.Domain{
			VerifyingContract: common.HexToAddress(cfg.Attestation.VerifyingContract),
			ChainID:           big.NewInt(cfg.Attestation.ChainID),
		}
		opts = append(opts, sessionservice.WithAttestation(domain, cfg.Attestation.Required))
	}
	return opts
}

func (s *Server) startSweeper(
	store sessionstore.Store,
	sessions sessionservice.Service,
	limiter *apphttp.RateLimiter,
	logger *zap.Logger,
) func() {
	if !s.cfg.Sweeper.Enabled {
		return func() {}
	}

	var pruner sweeper.Pruner
	if limiter != nil {
		pruner = limiter
	}
	sw := sweeper.New(&s.cfg.Sweeper, store, sessions, pruner, logger)
	sw.Start()

	// Return stopper for deterministic shutdown ordering.
	return sw.Stop
}

func (s *Server) setupRouter(
	db *bun.DB,
	rdb *redis.Client,
	svcs *services,
	feed *notify.Feed,
	authMiddleware func(http.Handler) http.Handler,
	limiter *apphttp.RateLimiter,
	logger *zap.Logger,
) chi.Router {
	cfg := s.cfg
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apphttp.Instrument)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.String("dependency", "postgres"), zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("Readiness check failed", zap.String("dependency", "redis"), zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", cfg.Monitoring.MetricsPath))
	}

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// The feed hijacks the connection, so it stays outside the request timeout.
		notify.RegisterRoutes(r, feed, authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

			authservice.RegisterRoutes(r, svcs.auth, authMiddleware, logger)
			userservice.RegisterRoutes(r, svcs.ledger, authMiddleware, logger)
			nodeservice.RegisterRoutes(r, svcs.nodes, authMiddleware, logger)
			sessionservice.RegisterRoutes(r, svcs.sessions, authMiddleware, logger)
		})
	})

	return r
}
