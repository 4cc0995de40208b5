package places

import (
	"context"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// PlacesAPI defines the interface for the venue data provider. The planner
// core never talks to the provider directly; it receives already-fetched
// venue snapshots through this boundary.
type PlacesAPI interface {
	SearchVenues(ctx context.Context, lat, lng, radiusKm float64, category models.Category) (*models.VenueSearchResponse, error)
	GetVenue(ctx context.Context, venueID string) (*models.ProviderVenue, error)
	SetAPIKey(apiKey string)
}
