package wheel

import (
	"sync"
	"time"

	"spinwin_backend/internal/config"
	"spinwin_backend/internal/model"
	"spinwin_backend/internal/repository"
	"spinwin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	rules    Rules
	location *time.Location
	source   Source
	now      func() time.Time

	tokenCfg  config.SessionTokenConfig
	ledger    repository.LedgerRepository
	statsRepo repository.WheelStatsRepository
	txManager trm.Manager

	mtx      sync.RWMutex
	sessions map[string]*session
}

type Option func(*serv)

// WithClock подменяет часы (тесты)
func WithClock(now func() time.Time) Option {
	return func(s *serv) {
		s.now = now
	}
}

// NewWheelService Создать колесо. source оборачивается мьютексом, его можно не синхронизировать
func NewWheelService(
	cfg config.WheelConfig,
	source Source,
	tokenCfg config.SessionTokenConfig,
	ledger repository.LedgerRepository,
	statsRepo repository.WheelStatsRepository,
	txManager trm.Manager,
	opts ...Option,
) service.WheelService {
	s := &serv{
		rules:     RulesFromConfig(cfg),
		location:  cfg.Location(),
		source:    NewLockedSource(source),
		now:       time.Now,
		tokenCfg:  tokenCfg,
		ledger:    ledger,
		statsRepo: statsRepo,
		txManager: txManager,
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func RulesFromConfig(cfg config.WheelConfig) Rules {
	return Rules{
		Segments:            cfg.Segments(),
		MinimumStake:        cfg.MinimumStake(),
		MaxDailyEarnings:    cfg.MaxDailyEarnings(),
		MaxBalance:          cfg.MaxBalance(),
		SuppressedThreshold: cfg.SuppressedThreshold(),
		HistorySize:         cfg.HistorySize(),
	}
}

func (s *serv) Table() model.WheelTable {
	segments := make([]model.Segment, len(s.rules.Segments))
	copy(segments, s.rules.Segments)

	return model.WheelTable{
		Segments:            segments,
		MinimumStake:        s.rules.MinimumStake,
		MaxDailyEarnings:    s.rules.MaxDailyEarnings,
		MaxBalance:          s.rules.MaxBalance,
		SuppressedThreshold: s.rules.SuppressedThreshold,
		HistorySize:         s.rules.HistorySize,
	}
}

func (s *serv) HouseStats() model.HouseStats {
	return s.statsRepo.HouseStats()
}
