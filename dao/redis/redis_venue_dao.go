package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/donaldchunggit/WhatStillOpenSydney/db"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// Geo index per category so nearby lookups stay scoped to one pool.
const VENUES_GEO_KEY_FORMAT_V1 = "stillopen_geo_v1:%s"
const VENUES_MEMBER_KEY_FORMAT_V1 = "stillopen_venue_v1:%s"

// RedisVenueDAO handles venue snapshot storage using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue JSON under the geo index of its category.
func (dao *RedisVenueDAO) UpsertVenue(v models.Venue) error {
	ctx := dao.client.GetContext()
	geoKey := fmt.Sprintf(VENUES_GEO_KEY_FORMAT_V1, v.Category)
	memberKey := fmt.Sprintf(VENUES_MEMBER_KEY_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, geoKey, memberKey, v.VenueLat, v.VenueLon, v)
}

// GetNearbyVenues retrieves venues of one category within radiusKm.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon, radiusKm float64, category models.Category) ([]models.Venue, error) {
	geoKey := fmt.Sprintf(VENUES_GEO_KEY_FORMAT_V1, category)
	venuesJSON, err := dao.client.GetLocationsWithinRadius(geoKey, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]models.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the cache.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_MEMBER_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(VENUES_MEMBER_KEY_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteVenue removes a cached venue snapshot and its geo index members.
// The member key is dropped from every category index since the stored JSON
// is already gone by the time a caller knows only the id.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	memberKey := fmt.Sprintf(VENUES_MEMBER_KEY_FORMAT_V1, venueID)
	for _, category := range models.Categories {
		geoKey := fmt.Sprintf(VENUES_GEO_KEY_FORMAT_V1, category)
		if err := dao.client.RemoveLocation(geoKey, memberKey); err != nil {
			return fmt.Errorf("failed to remove venue %s from %s geo index: %w", venueID, category, err)
		}
	}
	if err := dao.client.Del(memberKey); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", memberKey, err)
	}
	return nil
}
