package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/levelupbd/LevelBoost_Go/internal/currency"
	"github.com/levelupbd/LevelBoost_Go/internal/domain"
	"github.com/levelupbd/LevelBoost_Go/internal/leveltable"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/pricing"
)

// QuoteDisplay holds pre-formatted strings for direct rendering
type QuoteDisplay struct {
	TotalExperience string `json:"total_experience"`
	TotalTime       string `json:"total_time"`
	TotalCostUSD    string `json:"total_cost_usd"`
}

// QuoteResponse is the full quote payload: raw numbers plus display strings
type QuoteResponse struct {
	CurrentLevel    int                `json:"current_level"`
	DesiredLevel    int                `json:"desired_level"`
	TotalExperience int                `json:"total_experience"`
	TotalTimeHours  float64            `json:"total_time_hours"`
	TotalCostUSD    float64            `json:"total_cost_usd"`
	Display         QuoteDisplay       `json:"display"`
	Steps           []domain.QuoteStep `json:"steps"`
}

// ConvertRequest asks for a USD amount in the display currency
type ConvertRequest struct {
	AmountUSD float64 `json:"amount_usd" validate:"gte=0"`
}

// ConvertResponse carries the converted amount and the rate that produced it
type ConvertResponse struct {
	AmountUSD  float64            `json:"amount_usd"`
	AmountBDT  float64            `json:"amount_bdt"`
	DisplayBDT string             `json:"display_bdt"`
	Rate       float64            `json:"rate"`
	Quality    domain.RateQuality `json:"quality"`
}

func buildQuoteResponse(currentLevel, desiredLevel int, result domain.QuoteResult) QuoteResponse {
	return QuoteResponse{
		CurrentLevel:    currentLevel,
		DesiredLevel:    desiredLevel,
		TotalExperience: result.TotalExperience,
		TotalTimeHours:  result.TotalTimeHours,
		TotalCostUSD:    result.TotalCostUSD,
		Display: QuoteDisplay{
			TotalExperience: formatExperience(result.TotalExperience),
			TotalTime:       formatHours(result.TotalTimeHours),
			TotalCostUSD:    formatMoney(result.TotalCostUSD),
		},
		Steps: result.Steps,
	}
}

func parseLevelParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return level, true
}

// HandleGetQuote prices a level range
// @Summary Get a level-up price quote
// @Description Computes time and cost for levelling from current_level to desired_level
// @Tags pricing
// @Produce json
// @Param current_level query int true "Current level (50-99)"
// @Param desired_level query int true "Desired level (51-100)"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quote [get]
func HandleGetQuote(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		currentLevel, ok := parseLevelParam(r, "current_level")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		desiredLevel, ok := parseLevelParam(r, "desired_level")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := validateLevelRange(currentLevel, desiredLevel); err != nil {
			log.Info("Quote request rejected",
				"current_level", currentLevel,
				"desired_level", desiredLevel,
				"reason", err.Error())
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		result := svc.Quote(r.Context(), currentLevel, desiredLevel)
		respondJSON(w, http.StatusOK, buildQuoteResponse(currentLevel, desiredLevel, result))
	}
}

// HandleGetQuoteToMax prices the full run to the level cap
// @Summary Get a price quote up to the maximum level
// @Description Computes time and cost for levelling from current_level to 100
// @Tags pricing
// @Produce json
// @Param current_level query int true "Current level (50-99)"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quote/max [get]
func HandleGetQuoteToMax(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		currentLevel, ok := parseLevelParam(r, "current_level")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := validateLevelRange(currentLevel, leveltable.MaxLevel); err != nil {
			log.Info("Quote-to-max request rejected",
				"current_level", currentLevel,
				"reason", err.Error())
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		result := svc.QuoteToMax(r.Context(), currentLevel)
		respondJSON(w, http.StatusOK, buildQuoteResponse(currentLevel, leveltable.MaxLevel, result))
	}
}

// HandleConvertQuote converts a USD amount to BDT at the resolved rate
// @Summary Convert a USD amount to BDT
// @Description Multiplies the amount by the currently resolved exchange rate
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Amount to convert"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quote/convert [post]
func HandleConvertQuote(resolver currency.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		resolved := resolver.Resolve(r.Context())
		amountBDT := currency.Convert(req.AmountUSD, resolved.Rate)

		if resolved.Degraded() {
			log.Warn("Conversion used degraded rate", "quality", resolved.Quality)
		}

		respondJSON(w, http.StatusOK, ConvertResponse{
			AmountUSD:  req.AmountUSD,
			AmountBDT:  amountBDT,
			DisplayBDT: formatMoney(amountBDT),
			Rate:       resolved.Rate,
			Quality:    resolved.Quality,
		})
	}
}
