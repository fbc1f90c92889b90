package config

import (
    "time"
)

// RateLimitConfig defines settings for the token-bucket rate limiter
// middleware.  The limiter is disabled by default: the login endpoint has
// historically carried no rate limiting, so enabling it is an explicit
// operator decision (RATE_LIMIT_ENABLED=true plus a reachable Redis).
type RateLimitConfig struct {
    Enabled        bool          // master switch for the middleware
    Capacity       int           // maximum tokens in the bucket
    RefillTokens   int           // tokens added per refill interval
    RefillInterval time.Duration // how often tokens are added
    TTL            time.Duration // lifetime of idle bucket state in Redis
    Prefix         string        // key namespace in Redis
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, clamping nonsensical values to safe minimums.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        getenvBool("RATE_LIMIT_ENABLED", false),
        Capacity:       getenvInt("RATE_LIMIT_CAPACITY", 60),
        RefillTokens:   getenvInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: getenvDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
        TTL:            getenvDur("RATE_LIMIT_TTL", 10*time.Minute),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Capacity < 1 {
        cfg.Capacity = 1
    }
    if cfg.RefillTokens < 1 {
        cfg.RefillTokens = 1
    }
    if cfg.RefillInterval <= 0 {
        cfg.RefillInterval = time.Second
    }
    if min := 5 * cfg.RefillInterval; cfg.TTL < min {
        cfg.TTL = min
    }
    return cfg
}

func getenvDur(key string, def time.Duration) time.Duration {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil {
        return d
    }
    return def
}
