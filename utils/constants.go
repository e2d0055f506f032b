package utils

import "fmt"

// Cache key prefixes. Each logical value family gets its own prefix so keys
// can be invalidated per expert without touching unrelated entries.
const (
	RevokedTokenPrefix = "revoked:"
	HorizonCachePrefix = "horizon:"
)

// HorizonCacheKey is the cache key for an expert's precomputed available-date
// set at one session duration. The set differs per duration, so duration is
// part of the key.
func HorizonCacheKey(expertID string, duration int) string {
	return fmt.Sprintf("%s%s:%d", HorizonCachePrefix, expertID, duration)
}
