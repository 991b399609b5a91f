package pricing

import (
	"context"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/metrics"
	"github.com/levelupbd/LevelBoost_Go/internal/settings"
)

// Service produces quotes from the current settings snapshot. The engine
// itself is pure; this wrapper is what hands it already-resolved settings.
type Service interface {
	Quote(ctx context.Context, currentLevel, desiredLevel int) domain.QuoteResult
	QuoteToMax(ctx context.Context, currentLevel int) domain.QuoteResult
}

type service struct {
	settings settings.Service
}

// NewService creates a new pricing service
func NewService(settingsSvc settings.Service) Service {
	return &service{settings: settingsSvc}
}

func (s *service) Quote(ctx context.Context, currentLevel, desiredLevel int) domain.QuoteResult {
	cfg := s.settings.GetSettings(ctx, false)
	rules := s.settings.GetFeeRules(ctx, false)

	result := ComputeQuote(currentLevel, desiredLevel, cfg, rules)

	metrics.QuotesComputed.WithLabelValues(metrics.QuoteKindRange).Inc()
	logger.FromContext(ctx).Info("Quote computed",
		"current_level", currentLevel,
		"desired_level", desiredLevel,
		"steps", len(result.Steps),
		"total_cost_usd", result.TotalCostUSD)

	return result
}

func (s *service) QuoteToMax(ctx context.Context, currentLevel int) domain.QuoteResult {
	cfg := s.settings.GetSettings(ctx, false)
	rules := s.settings.GetFeeRules(ctx, false)

	result := ComputeTotalToMax(currentLevel, cfg, rules)

	metrics.QuotesComputed.WithLabelValues(metrics.QuoteKindToMax).Inc()
	logger.FromContext(ctx).Info("Quote to max computed",
		"current_level", currentLevel,
		"steps", len(result.Steps),
		"total_cost_usd", result.TotalCostUSD)

	return result
}
