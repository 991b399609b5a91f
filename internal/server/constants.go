package server

import "time"

// HTTP Header Names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// HTTP Header Values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request Limits
const (
	// MaxRequestBodyBytes caps request bodies; quote requests are tiny
	MaxRequestBodyBytes = 64 << 10

	// ReadHeaderTimeout protects against slowloris connections
	ReadHeaderTimeout = 5 * time.Second

	// RateLimitWindow and RateLimitMaxRequests bound per-IP request volume
	RateLimitWindow      = 5 * time.Minute
	RateLimitMaxRequests = 1000

	// FailedAuthAlertThreshold is when repeated bad admin keys get logged loudly
	FailedAuthAlertThreshold = 5
)

// Error Messages
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too many requests"
)

// Log Messages
const (
	LogMsgAuthFailed           = "Admin authentication failed"
	SecurityAlertFailedAuth    = "SECURITY ALERT: repeated failed admin auth attempts"
	SecurityAlertHighRate      = "SECURITY ALERT: high request rate from single IP"
	LogMsgServerStarting       = "Server starting"
	LogMsgRequestStarted       = "Request started"
	LogMsgRequestCompleted     = "Request completed"
)
