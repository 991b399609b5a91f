package handler

import (
	"net/http"

	"github.com/levelupbd/LevelBoost_Go/internal/currency"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
)

// HandleGetRate returns the currently resolved USD->BDT rate
// @Summary Get the display exchange rate
// @Description Returns the resolved rate with a quality tag describing how it was obtained
// @Tags currency
// @Produce json
// @Success 200 {object} domain.ResolvedRate
// @Router /api/v1/rate [get]
func HandleGetRate(resolver currency.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved := resolver.Resolve(r.Context())

		if resolved.Degraded() {
			logger.FromContext(r.Context()).Warn("Serving degraded rate", "quality", resolved.Quality)
		}

		respondJSON(w, http.StatusOK, resolved)
	}
}
