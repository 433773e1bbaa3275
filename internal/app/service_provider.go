package app

import (
	"context"
	"errors"
	"log/slog"

	sessionAPI "spinwin_backend/internal/api/session"
	wheelAPI "spinwin_backend/internal/api/wheel"
	"spinwin_backend/internal/config"
	"spinwin_backend/internal/config/env"
	"spinwin_backend/internal/middleware"
	"spinwin_backend/internal/repository"
	"spinwin_backend/internal/repository/ledger_repo"
	"spinwin_backend/internal/repository/memory_ledger_repo"
	"spinwin_backend/internal/repository/wheel_stats_repo"
	"spinwin_backend/internal/service"
	"spinwin_backend/internal/service/wheel"
	"spinwin_backend/pkg/logger"
	"spinwin_backend/pkg/txmanager"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	logger *slog.Logger

	//TXManager
	txManager trm.Manager

	// Database, pgConfig == nil - журнал в памяти
	pgConfig    config.PGConfig
	pgResolved  bool
	dbClient    *pgxpool.Pool
	ledgerRepo  repository.LedgerRepository
	sessionCfg  config.SessionTokenConfig
	randomCfg   config.RandomConfig
	wheelSource wheel.Source

	// Wheel bits
	wheelCfg       config.WheelConfig
	wheelStatsRepo repository.WheelStatsRepository
	wheelServ      service.WheelService
	wheelHand      *wheelAPI.Handler
	sessionHand    *sessionAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger = logger.Init(logger.Options{Level: sp.LogCfg().Level()})
	}
	return sp.logger
}

// PgConfig nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgResolved {
		cfg, err := env.NewPGConfig()
		if err != nil && !errors.Is(err, env.ErrPGDSNNotFound) {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
		sp.pgResolved = true
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.PgConfig() == nil {
			sp.txManager = txmanager.NewNop()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if sp.PgConfig() == nil {
			sp.Logger().Warn("PG_DSN is not set, ledger is kept in memory")
			sp.ledgerRepo = memory_ledger_repo.NewLedgerRepository()
			return sp.ledgerRepo
		}
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) SessionTokenCfg() config.SessionTokenConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionTokenConfig()
		if err != nil {
			panic("failed to get session token config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) RandomCfg() config.RandomConfig {
	if sp.randomCfg == nil {
		cfg, err := env.NewRandomConfig()
		if err != nil {
			panic("failed to get random config: " + err.Error())
		}
		sp.randomCfg = cfg
	}
	return sp.randomCfg
}

func (sp *ServiceProvider) WheelSource() wheel.Source {
	if sp.wheelSource == nil {
		if seed, ok := sp.RandomCfg().Seed(); ok {
			sp.Logger().Warn("wheel uses a seeded source, outcomes are reproducible", "seed", seed)
			sp.wheelSource = wheel.NewSeededSource(seed)
		} else {
			sp.wheelSource = wheel.NewCryptoSource()
		}
	}
	return sp.wheelSource
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(env.WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelStatsRepository() repository.WheelStatsRepository {
	if sp.wheelStatsRepo == nil {
		rtp := wheel.TheoreticalRTP(wheel.RulesFromConfig(sp.WheelCfg()))
		sp.wheelStatsRepo = wheel_stats_repo.NewWheelStatsRepository(sp.WheelCfg().StatsWindowSize(), rtp)
	}
	return sp.wheelStatsRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.WheelSource(),
			sp.SessionTokenCfg(),
			sp.LedgerRepository(ctx),
			sp.WheelStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(chimw.RequestID)
		r.Use(middleware.RequestLogger(sp.Logger()))
		r.Use(chimw.Recoverer)

		r.Handle("/metrics", promhttp.Handler())

		wheelHandler := sp.WheelHandler(ctx)
		sessionHandler := sp.SessionHandler(ctx)
		auth := middleware.SessionAuth(sp.SessionTokenCfg().SecretKey())

		r.Get("/stats", wheelHandler.Stats)

		// Session endpoints
		r.Route("/sessions", func(rr chi.Router) {
			rr.Post("/", sessionHandler.Open)
			rr.With(auth).Delete("/", sessionHandler.Close)
		})

		// Wheel endpoints
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/config", wheelHandler.Config)

			rr.Group(func(gr chi.Router) {
				gr.Use(auth)
				gr.Get("/state", wheelHandler.State)
				gr.Get("/ledger", wheelHandler.Ledger)
				gr.Post("/deposit", wheelHandler.Deposit)
				gr.Post("/spin", wheelHandler.Spin)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close закрывает пул, если он был открыт
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
