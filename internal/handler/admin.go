package handler

import (
	"net/http"

	"github.com/levelupbd/LevelBoost_Go/internal/currency"
	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/pricing"
	"github.com/levelupbd/LevelBoost_Go/internal/settings"
)

// AdminSettingsRefreshResponse reports the refreshed snapshot summary
type AdminSettingsRefreshResponse struct {
	Message            string  `json:"message"`
	ExpPerHour         float64 `json:"exp_per_hour"`
	BaseCostPerHourUSD float64 `json:"base_cost_per_hour_usd"`
	FeeRuleCount       int     `json:"fee_rule_count"`
	FeeRuleWarning     string  `json:"fee_rule_warning,omitempty"`
}

// HandleAdminRefreshSettings forces a settings refetch, bypassing the TTL
// @Summary Force-refresh calculation settings
// @Description Bypasses the settings cache TTL and reloads from the store
// @Tags admin
// @Produce json
// @Success 200 {object} AdminSettingsRefreshResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/settings/refresh [post]
func HandleAdminRefreshSettings(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cfg := svc.GetSettings(r.Context(), true)
		rules := svc.GetFeeRules(r.Context(), true)

		resp := AdminSettingsRefreshResponse{
			Message:            "settings refreshed",
			ExpPerHour:         cfg.ExpPerHour,
			BaseCostPerHourUSD: cfg.BaseCostPerHourUSD,
			FeeRuleCount:       len(rules),
		}

		// Misconfigured rules still price (first match wins); surface the
		// problem to the operator instead of failing the refresh.
		if err := pricing.ValidateFeeRules(rules); err != nil {
			log.Warn("Fee rule validation failed after refresh", "error", err)
			resp.FeeRuleWarning = err.Error()
		}

		log.Info("Settings force-refreshed",
			"exp_per_hour", cfg.ExpPerHour,
			"fee_rules", len(rules))

		respondJSON(w, http.StatusOK, resp)
	}
}

// AdminRateRefreshResponse reports the freshly resolved rate
type AdminRateRefreshResponse struct {
	Message string              `json:"message"`
	Rate    domain.ResolvedRate `json:"rate"`
}

// HandleAdminRefreshRate forces a rate resolution, bypassing caches
// @Summary Force-refresh the exchange rate
// @Description Bypasses the in-process memo and store freshness window
// @Tags admin
// @Produce json
// @Success 200 {object} AdminRateRefreshResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/rate/refresh [post]
func HandleAdminRefreshRate(resolver currency.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved := resolver.Refresh(r.Context())

		logger.FromContext(r.Context()).Info("Rate force-refreshed",
			"rate", resolved.Rate,
			"quality", resolved.Quality)

		respondJSON(w, http.StatusOK, AdminRateRefreshResponse{
			Message: "rate refreshed",
			Rate:    resolved,
		})
	}
}
