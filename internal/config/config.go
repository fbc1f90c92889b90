package config // package config loads application configuration from environment variables

import (
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default that mirrors the
// historical deployment of the system, so the server and the CLI utilities
// run without a .env file.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBPath        string // path to the SQLite database file
    AdminUsername string // username accepted by the trust-all login check
    AdminPassword string // password accepted by the trust-all login check
    AuthMode      string // "trust-all" (default) or "bearer"
    JWTSecret     string // secret used to sign JWTs in bearer mode
    AccessTTLMin  int    // access token time-to-live in minutes (bearer mode)
    TokenBytes    int    // random bytes behind the opaque login token
    EventsEnabled bool   // publish payment events to the message broker
}

// Load reads configuration values from environment variables and returns a
// Config.  The login credential pair lives here rather than in the auth
// handler so deployments can override it without a rebuild.
func Load() Config {
    return Config{
        Env:           getenv("APP_ENV", "dev"),
        Port:          getenv("APP_PORT", "5001"),
        DBPath:        getenv("DB_PATH", "simple_hostel.db"),
        AdminUsername: getenv("ADMIN_USERNAME", "svce"),
        AdminPassword: getenv("ADMIN_PASSWORD", "1234"),
        AuthMode:      getenv("AUTH_MODE", "trust-all"),
        JWTSecret:     getenv("JWT_SECRET", ""),
        AccessTTLMin:  getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
        TokenBytes:    getenvInt("TOKEN_BYTES", 16),
        EventsEnabled: getenvBool("EVENTS_ENABLED", false),
    }
}

// getenv retrieves an environment variable or falls back to the default.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// getenvInt is like getenv but converts the value to an integer.  Invalid
// values silently fall back to the default.
func getenvInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

// getenvBool interprets common truthy/falsy spellings.
func getenvBool(key string, def bool) bool {
    switch os.Getenv(key) {
    case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
        return true
    case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
        return false
    }
    return def
}
