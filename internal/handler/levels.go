package handler

import (
	"net/http"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/leveltable"
)

// LevelsResponse wraps the level table with its bounds
type LevelsResponse struct {
	MinLevel int                `json:"min_level"`
	MaxLevel int                `json:"max_level"`
	Levels   []domain.LevelStep `json:"levels"`
}

// HandleGetLevels returns the full level table
// @Summary Get the level experience table
// @Description Returns every single-level step with its experience requirement
// @Tags pricing
// @Produce json
// @Success 200 {object} LevelsResponse
// @Router /api/v1/levels [get]
func HandleGetLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, LevelsResponse{
			MinLevel: leveltable.MinLevel,
			MaxLevel: leveltable.MaxLevel,
			Levels:   leveltable.AllRanges(),
		})
	}
}
