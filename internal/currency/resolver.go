package currency

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/metrics"
	"github.com/levelupbd/LevelBoost_Go/internal/repository"
)

// Resolver produces the USD->BDT multiplier for display conversion.
// It never returns an error: every failure path degrades to a usable
// number, tagged with how it was obtained. A pricing page must always
// render a number.
type Resolver interface {
	Resolve(ctx context.Context) domain.ResolvedRate
	// Refresh bypasses the in-process memo and the store freshness window.
	Refresh(ctx context.Context) domain.ResolvedRate
}

type resolver struct {
	repo    repository.Currency
	fetcher RateFetcher
	now     func() time.Time

	// memo is the in-process layer in front of the store, keyed by pair.
	// Entries expire on their own; redundant concurrent fills are fine
	// because every fill writes an equally valid rate.
	memo *expirable.LRU[string, domain.ResolvedRate]
}

// NewResolver creates a new rate resolver.
func NewResolver(repo repository.Currency, fetcher RateFetcher) Resolver {
	return &resolver{
		repo:    repo,
		fetcher: fetcher,
		now:     time.Now,
		memo:    expirable.NewLRU[string, domain.ResolvedRate](8, nil, memoTTL),
	}
}

// NewResolverWithClock creates a resolver with an injected clock for tests.
func NewResolverWithClock(repo repository.Currency, fetcher RateFetcher, now func() time.Time) Resolver {
	return &resolver{
		repo:    repo,
		fetcher: fetcher,
		now:     now,
		memo:    expirable.NewLRU[string, domain.ResolvedRate](8, nil, memoTTL),
	}
}

func pairKey(from, to string) string { return from + "/" + to }

func (r *resolver) Resolve(ctx context.Context) domain.ResolvedRate {
	if cached, ok := r.memo.Get(pairKey(BaseCurrency, TargetCurrency)); ok {
		return cached
	}
	return r.resolve(ctx, false)
}

func (r *resolver) Refresh(ctx context.Context) domain.ResolvedRate {
	r.memo.Remove(pairKey(BaseCurrency, TargetCurrency))
	return r.resolve(ctx, true)
}

// resolve walks the degradation ladder: rate-source setting, store cache,
// live fetch, stale store entry, hard-coded constant.
func (r *resolver) resolve(ctx context.Context, skipFreshCache bool) domain.ResolvedRate {
	log := logger.FromContext(ctx)

	setting := r.loadSetting(ctx)
	if setting.Source == domain.RateSourceCustom && setting.CustomRate > 0 {
		resolved := domain.ResolvedRate{
			Rate:      setting.CustomRate,
			Quality:   domain.RateQualityCustom,
			UpdatedAt: r.now(),
		}
		metrics.RateResolutions.WithLabelValues(string(domain.RateQualityCustom)).Inc()
		r.remember(resolved)
		return resolved
	}

	if !skipFreshCache {
		notBefore := r.now().Add(-storeFreshnessWindow)
		if cached, err := r.repo.GetCachedRate(ctx, BaseCurrency, TargetCurrency, notBefore); err == nil {
			resolved := domain.ResolvedRate{
				Rate:      cached.Rate,
				Quality:   domain.RateQualityCached,
				UpdatedAt: cached.UpdatedAt,
			}
			metrics.RateResolutions.WithLabelValues(string(domain.RateQualityCached)).Inc()
			r.remember(resolved)
			return resolved
		}
	}

	rate, err := r.fetcher.FetchRate(ctx, TargetCurrency)
	if err == nil {
		now := r.now()
		fresh := domain.CachedRate{
			FromCurrency: BaseCurrency,
			ToCurrency:   TargetCurrency,
			Rate:         rate,
			UpdatedAt:    now,
		}
		// Caching is an optimization; a failed upsert must not lose the rate
		if upsertErr := r.repo.UpsertRate(ctx, fresh); upsertErr != nil {
			log.Warn("Failed to persist fetched rate", "error", upsertErr)
		}
		resolved := domain.ResolvedRate{
			Rate:      rate,
			Quality:   domain.RateQualityFresh,
			UpdatedAt: now,
		}
		metrics.RateResolutions.WithLabelValues(string(domain.RateQualityFresh)).Inc()
		r.remember(resolved)
		return resolved
	}
	log.Warn("Rate provider fetch failed, degrading", "error", err)

	// Stale path: any stored rate beats the constant
	if stale, staleErr := r.repo.GetCachedRate(ctx, BaseCurrency, TargetCurrency, time.Time{}); staleErr == nil {
		resolved := domain.ResolvedRate{
			Rate:      stale.Rate,
			Quality:   domain.RateQualityStale,
			UpdatedAt: stale.UpdatedAt,
		}
		metrics.RateResolutions.WithLabelValues(string(domain.RateQualityStale)).Inc()
		log.Warn("Serving stale cached rate",
			"rate", stale.Rate,
			"age", r.now().Sub(stale.UpdatedAt))
		r.remember(resolved)
		return resolved
	}

	metrics.RateResolutions.WithLabelValues(string(domain.RateQualityFallback)).Inc()
	log.Warn("No cached rate available, serving fallback constant", "rate", FallbackRate)
	resolved := domain.ResolvedRate{
		Rate:      FallbackRate,
		Quality:   domain.RateQualityFallback,
		UpdatedAt: r.now(),
	}
	// Deliberately not memoized: the next caller should retry the ladder
	return resolved
}

// loadSetting returns the active rate-source row, synthesizing and
// persisting the default when none is active. This is the only place the
// resolver writes configuration state.
func (r *resolver) loadSetting(ctx context.Context) domain.CurrencyRateSetting {
	log := logger.FromContext(ctx)

	setting, err := r.repo.GetActiveRateSetting(ctx)
	if err == nil {
		return *setting
	}

	log.Warn("No active rate setting, creating default", "error", err)
	created, createErr := r.repo.CreateDefaultRateSetting(ctx)
	if createErr != nil {
		log.Warn("Failed to create default rate setting", "error", createErr)
		return domain.CurrencyRateSetting{
			Source:     domain.RateSourceAPI,
			CustomRate: FallbackRate,
			IsActive:   true,
		}
	}
	return *created
}

func (r *resolver) remember(rate domain.ResolvedRate) {
	r.memo.Add(pairKey(BaseCurrency, TargetCurrency), rate)
}
