package places

import (
	"context"
	"fmt"

	"github.com/donaldchunggit/WhatStillOpenSydney/config"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
	"github.com/donaldchunggit/WhatStillOpenSydney/util"
)

// PlacesApiClientMock serves venue search responses from JSON fixtures so
// the server runs without provider credentials.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock.
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// SearchVenues reads the per-category fixture and filters it to the
// requested category.
func (c *PlacesApiClientMock) SearchVenues(ctx context.Context, lat, lng, radiusKm float64, category models.Category) (*models.VenueSearchResponse, error) {
	response, err := util.ReadVenueSearchResponseFromJSON(config.GetResourcePath(config.VENUE_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		return nil, fmt.Errorf("could not read venue search fixture: %w", err)
	}

	filtered := make([]models.ProviderVenue, 0, len(response.Venues))
	for _, pv := range response.Venues {
		if models.Category(pv.VenueType) == category {
			filtered = append(filtered, pv)
		}
	}
	response.Venues = filtered
	response.VenuesN = len(filtered)
	return response, nil
}

// GetVenue looks the venue up inside the same fixture.
func (c *PlacesApiClientMock) GetVenue(ctx context.Context, venueID string) (*models.ProviderVenue, error) {
	response, err := util.ReadVenueSearchResponseFromJSON(config.GetResourcePath(config.VENUE_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		return nil, fmt.Errorf("could not read venue search fixture: %w", err)
	}
	for i := range response.Venues {
		if response.Venues[i].VenueID == venueID {
			return &response.Venues[i], nil
		}
	}
	return nil, fmt.Errorf("venue %s not found in fixture", venueID)
}

// SetAPIKey is a no-op on the mock.
func (c *PlacesApiClientMock) SetAPIKey(apiKey string) {}
