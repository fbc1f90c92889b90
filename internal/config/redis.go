package config

// This file defines a Redis client constructor for the application.  Redis
// backs the optional request rate limiter.  The client parameters are loaded
// from environment variables.  If no address is configured or the connection
// fails during startup, the function returns nil and callers degrade
// gracefully by leaving rate limiting disabled.

import (
    "context"
    "os"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//
//	REDIS_ADDR     – host:port of the Redis server (required to enable Redis)
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// Unlike most configuration in this application there is no default address:
// the rate limiter is an opt-in feature and the server must not try to dial
// a broker that was never provisioned.
func NewRedisClient() *redis.Client {
    addr := os.Getenv("REDIS_ADDR")
    if addr == "" {
        return nil
    }
    dbNum := 0
    if s := os.Getenv("REDIS_DB"); s != "" {
        if n, err := strconv.Atoi(s); err == nil {
            dbNum = n
        }
    }
    client := redis.NewClient(&redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    })
    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
