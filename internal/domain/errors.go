package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Level validation errors (user-facing, wording kept from the site copy)
	ErrMsgCurrentLevelTooLow  = "Minimum current level is 50"
	ErrMsgDesiredLevelTooHigh = "Maximum level is 100"
	ErrMsgLevelOrder          = "Desired level must be higher than current level"

	// Rate errors
	ErrMsgRateNotFound    = "no cached rate found"
	ErrMsgSettingNotFound = "no active rate setting found"

	// Fee rule errors
	ErrMsgFeeRuleInverted = "fee rule range is inverted"
	ErrMsgFeeRuleOverlap  = "fee rules overlap"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Sentinel errors
var (
	ErrCurrentLevelTooLow  = errors.New(ErrMsgCurrentLevelTooLow)
	ErrDesiredLevelTooHigh = errors.New(ErrMsgDesiredLevelTooHigh)
	ErrLevelOrder          = errors.New(ErrMsgLevelOrder)

	ErrRateNotFound    = errors.New(ErrMsgRateNotFound)
	ErrSettingNotFound = errors.New(ErrMsgSettingNotFound)

	ErrFeeRuleInverted = errors.New(ErrMsgFeeRuleInverted)
	ErrFeeRuleOverlap  = errors.New(ErrMsgFeeRuleOverlap)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
