package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

const (
	queryGetCalculationSettings = `
		SELECT setting_name, setting_value
		FROM calculation_settings`

	queryGetFeeRules = `
		SELECT id::text, from_level, to_level, additional_fee_usd
		FROM level_fee_rules
		ORDER BY from_level, id`
)

// SettingsRepository provides PostgreSQL access to calculation settings
// and level fee rules
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetCalculationSettings returns all named numeric settings keyed by name
func (r *SettingsRepository) GetCalculationSettings(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, queryGetCalculationSettings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySettings, err)
	}
	defer rows.Close()

	settings := make(map[string]float64)
	for rows.Next() {
		var name string
		var value pgtype.Numeric
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSetting, err)
		}

		f, err := numericToFloat64(value)
		if err != nil {
			return nil, err
		}
		settings[name] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySettings, err)
	}

	return settings, nil
}

// GetFeeRules returns all fee rules ordered by from_level then id.
// The order matters: it is the first-match tie-break order downstream.
func (r *SettingsRepository) GetFeeRules(ctx context.Context) ([]domain.LevelFeeRule, error) {
	rows, err := r.db.Query(ctx, queryGetFeeRules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFeeRules, err)
	}
	defer rows.Close()

	rules := make([]domain.LevelFeeRule, 0)
	for rows.Next() {
		var rule domain.LevelFeeRule
		var fee pgtype.Numeric
		if err := rows.Scan(&rule.ID, &rule.FromLevel, &rule.ToLevel, &fee); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanFeeRule, err)
		}

		f, err := numericToFloat64(fee)
		if err != nil {
			return nil, err
		}
		rule.AdditionalFeeUSD = f
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFeeRules, err)
	}

	return rules, nil
}
