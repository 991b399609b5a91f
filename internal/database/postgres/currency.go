package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/levelupbd/LevelBoost_Go/internal/currency"
	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

const (
	queryGetActiveRateSetting = `
		SELECT id::text, rate_source, custom_rate, is_active
		FROM currency_rate_settings
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT 1`

	queryInsertDefaultRateSetting = `
		INSERT INTO currency_rate_settings (rate_source, custom_rate, is_active)
		VALUES ($1, $2, true)
		RETURNING id::text`

	queryGetLatestRate = `
		SELECT from_currency, to_currency, rate, updated_at
		FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2`

	queryGetRateNotBefore = queryGetLatestRate + ` AND updated_at >= $3`

	queryUpsertRate = `
		INSERT INTO currency_rates (from_currency, to_currency, rate, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at`
)

// CurrencyRepository provides PostgreSQL access to the rate-source
// configuration and the server-side rate cache
type CurrencyRepository struct {
	db *pgxpool.Pool
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// GetActiveRateSetting returns the single active rate-source row
func (r *CurrencyRepository) GetActiveRateSetting(ctx context.Context) (*domain.CurrencyRateSetting, error) {
	var setting domain.CurrencyRateSetting
	var customRate pgtype.Numeric

	err := r.db.QueryRow(ctx, queryGetActiveRateSetting).
		Scan(&setting.ID, &setting.Source, &customRate, &setting.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRateSetting, err)
	}

	rate, err := numericToFloat64(customRate)
	if err != nil {
		return nil, err
	}
	setting.CustomRate = rate

	return &setting, nil
}

// CreateDefaultRateSetting inserts the default API-sourced setting and
// returns it
func (r *CurrencyRepository) CreateDefaultRateSetting(ctx context.Context) (*domain.CurrencyRateSetting, error) {
	setting := domain.CurrencyRateSetting{
		Source:     domain.RateSourceAPI,
		CustomRate: currency.FallbackRate,
		IsActive:   true,
	}

	err := r.db.QueryRow(ctx, queryInsertDefaultRateSetting,
		string(setting.Source), float64ToNumeric(setting.CustomRate)).
		Scan(&setting.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateRateSetting, err)
	}

	return &setting, nil
}

// GetCachedRate returns the stored rate for the pair, restricted to rows
// updated at or after notBefore. A zero notBefore accepts any age.
func (r *CurrencyRepository) GetCachedRate(ctx context.Context, from, to string, notBefore time.Time) (*domain.CachedRate, error) {
	query := queryGetLatestRate
	args := []any{from, to}
	if !notBefore.IsZero() {
		query = queryGetRateNotBefore
		args = append(args, notBefore)
	}

	var cached domain.CachedRate
	var rate pgtype.Numeric

	err := r.db.QueryRow(ctx, query, args...).
		Scan(&cached.FromCurrency, &cached.ToCurrency, &rate, &cached.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRateNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCachedRate, err)
	}

	f, err := numericToFloat64(rate)
	if err != nil {
		return nil, err
	}
	cached.Rate = f

	return &cached, nil
}

// UpsertRate stores a rate keyed by currency pair, last writer wins
func (r *CurrencyRepository) UpsertRate(ctx context.Context, rate domain.CachedRate) error {
	_, err := r.db.Exec(ctx, queryUpsertRate,
		rate.FromCurrency, rate.ToCurrency, float64ToNumeric(rate.Rate), rate.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertRate, err)
	}
	return nil
}
