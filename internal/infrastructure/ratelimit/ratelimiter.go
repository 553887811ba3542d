package ratelimit

// Limit describes how many requests a single client may make per window.
type Limit struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter guards brute-force sensitive routes such as login and
// verification code resends.
type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
}
