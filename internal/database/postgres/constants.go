package postgres

// Error Messages - Settings Operations
const (
	ErrMsgFailedToQuerySettings = "failed to query calculation settings"
	ErrMsgFailedToScanSetting   = "failed to scan calculation setting"
)

// Error Messages - Fee Rule Operations
const (
	ErrMsgFailedToQueryFeeRules = "failed to query level fee rules"
	ErrMsgFailedToScanFeeRule   = "failed to scan level fee rule"
)

// Error Messages - Currency Operations
const (
	ErrMsgFailedToGetRateSetting    = "failed to get rate setting"
	ErrMsgFailedToCreateRateSetting = "failed to create default rate setting"
	ErrMsgFailedToGetCachedRate     = "failed to get cached rate"
	ErrMsgFailedToUpsertRate        = "failed to upsert rate"
	ErrMsgFailedToConvertNumeric    = "failed to convert numeric to float64"
)
