package services

import (
	"context"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/api/places"
	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/hours"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// VenueService serves venue pools from the cache and annotates open state.
type VenueService struct {
	venueDao  *redis.RedisVenueDAO
	placesApi places.PlacesAPI
}

// NewVenueService constructs a new VenueService.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	placesApi places.PlacesAPI) *VenueService {

	return &VenueService{
		venueDao:  venueDao,
		placesApi: placesApi,
	}
}

// GetVenuesNearby returns the cached venue pool for one category around a
// point, with no open-state filtering.
func (vs *VenueService) GetVenuesNearby(lat, lon, radiusKm float64, category models.Category) ([]models.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lon, radiusKm, category)
}

// GetOpenVenuesNearby returns the venues of one category that are open at
// the reference instant, each annotated with its closing instant.
func (vs *VenueService) GetOpenVenuesNearby(lat, lon, radiusKm float64, category models.Category, at time.Time) ([]models.OpenVenue, error) {
	venues, err := vs.venueDao.GetNearbyVenues(lat, lon, radiusKm, category)
	if err != nil {
		return nil, err
	}

	open := make([]models.OpenVenue, 0, len(venues))
	for _, v := range venues {
		closesAt, isOpen := hours.ClosingInstantAt(v.Schedule, at)
		if !isOpen {
			continue
		}
		open = append(open, models.OpenVenue{Venue: v, ClosesAt: closesAt})
	}
	return open, nil
}

// GetVenue fetches a single venue snapshot from the provider.
func (vs *VenueService) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	pv, err := vs.placesApi.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	v := pv.ToVenue()
	return &v, nil
}
