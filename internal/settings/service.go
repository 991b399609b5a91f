package settings

import (
	"context"
	"sync"
	"time"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/metrics"
	"github.com/levelupbd/LevelBoost_Go/internal/repository"
)

// Service provides cached access to calculation settings and fee rules.
// Reads never fail: on fetch errors the previous snapshot is retained, and
// with no snapshot at all the documented fallback constants are served.
type Service interface {
	GetSettings(ctx context.Context, forceRefresh bool) domain.CalculationSettings
	GetFeeRules(ctx context.Context, forceRefresh bool) []domain.LevelFeeRule
}

// snapshot is one successful fetch of the settings store.
type snapshot struct {
	settings  domain.CalculationSettings
	feeRules  []domain.LevelFeeRule
	fetchedAt time.Time
}

type service struct {
	repo repository.Settings
	ttl  time.Duration
	now  func() time.Time // injected clock for tests

	mu   sync.Mutex
	snap *snapshot
}

// NewService creates a new settings service with the default TTL.
func NewService(repo repository.Settings) Service {
	return &service{
		repo: repo,
		ttl:  CacheTTL,
		now:  time.Now,
	}
}

// NewServiceWithClock creates a settings service with an injected clock and
// TTL, used by tests to exercise expiry without sleeping.
func NewServiceWithClock(repo repository.Settings, ttl time.Duration, now func() time.Time) Service {
	return &service{
		repo: repo,
		ttl:  ttl,
		now:  now,
	}
}

func (s *service) GetSettings(ctx context.Context, forceRefresh bool) domain.CalculationSettings {
	return s.current(ctx, forceRefresh).settings
}

func (s *service) GetFeeRules(ctx context.Context, forceRefresh bool) []domain.LevelFeeRule {
	return s.current(ctx, forceRefresh).feeRules
}

// current returns a usable snapshot, refreshing when stale or forced.
// The mutex covers the whole check-then-fetch-then-store sequence so
// concurrent callers cannot interleave a stale read with a fresh write.
func (s *service) current(ctx context.Context, forceRefresh bool) snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !forceRefresh && s.snap != nil && s.now().Sub(s.snap.fetchedAt) < s.ttl {
		metrics.SettingsCacheHits.Inc()
		return *s.snap
	}
	metrics.SettingsCacheMisses.Inc()

	fresh, err := s.fetch(ctx)
	if err != nil {
		log := logger.FromContext(ctx)
		if s.snap != nil {
			log.Warn("Settings fetch failed, keeping previous snapshot",
				"error", err,
				"snapshot_age", s.now().Sub(s.snap.fetchedAt))
			return *s.snap
		}
		log.Warn("Settings fetch failed with no snapshot, using fallback constants", "error", err)
		return fallbackSnapshot()
	}

	s.snap = fresh
	return *s.snap
}

func (s *service) fetch(ctx context.Context) (*snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	values, err := s.repo.GetCalculationSettings(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.repo.GetFeeRules(ctx)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		settings:  settingsFromValues(values),
		feeRules:  rules,
		fetchedAt: s.now(),
	}
	return snap, nil
}

// settingsFromValues maps the key/value rows onto the typed settings,
// falling back per-name when a row is missing or non-positive.
func settingsFromValues(values map[string]float64) domain.CalculationSettings {
	cs := domain.CalculationSettings{
		ExpPerHour:         DefaultExpPerHour,
		BaseCostPerHourUSD: DefaultBaseCostPerHourUSD,
	}
	if v, ok := values[domain.SettingExpPerHour]; ok && v > 0 {
		cs.ExpPerHour = v
	}
	if v, ok := values[domain.SettingBaseCostPerHour]; ok && v > 0 {
		cs.BaseCostPerHourUSD = v
	}
	return cs
}

func fallbackSnapshot() snapshot {
	return snapshot{
		settings: domain.CalculationSettings{
			ExpPerHour:         DefaultExpPerHour,
			BaseCostPerHourUSD: DefaultBaseCostPerHourUSD,
		},
	}
}
