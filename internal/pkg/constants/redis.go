package constants

import "time"

// Redis key formats
const (
	KeyActiveMerchants = "merchants:active"
	KeyRevokedToken    = "auth:revoked:%s"  // Format: auth:revoked:{token_id}
	KeyRateLimit       = "rate:limit:%s:%s" // Format: rate:limit:{route}:{client}
)

// Cache lifetimes
const (
	MerchantCacheTTL = 10 * time.Minute
)
