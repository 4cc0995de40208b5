package db

import "context"

// RedisClient defines the operations the venue cache needs from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radiusKm float64) ([]string, error)
	RemoveLocation(geoKey, memberKey string) error
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
