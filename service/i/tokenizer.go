package i

import (
	"time"
)

// Tokenizer signs and verifies the share tokens that carry maze recipes.
type Tokenizer interface {
	// Generate creates a signed token with the given claims, valid for expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token's signature, expiry and issuer, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
