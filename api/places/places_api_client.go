package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/donaldchunggit/WhatStillOpenSydney/api"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// PlacesApiClient talks to the live places API. Every call runs inside a
// circuit breaker; an open circuit fails fast without hitting the upstream.
type PlacesApiClient struct {
	*api.HTTPClient

	apiKey  string
	circuit *gobreaker.CircuitBreaker
}

// NewPlacesApiClient creates a new instance of PlacesApiClient.
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "places",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &PlacesApiClient{
		HTTPClient: httpClient,
		circuit:    cb,
	}
}

// SetAPIKey sets the key sent with every request.
func (c *PlacesApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SearchVenues retrieves venues of one category around a coordinate and
// decodes the response, hours payloads included.
func (c *PlacesApiClient) SearchVenues(ctx context.Context, lat, lng, radiusKm float64, category models.Category) (*models.VenueSearchResponse, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius_km", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	q.Set("category", string(category))

	var response models.VenueSearchResponse
	_, err := c.circuit.Execute(func() (interface{}, error) {
		return nil, c.Request(ctx, "GET", "/venues/search?"+q.Encode(), nil, nil, &response)
	})
	if err != nil {
		return nil, fmt.Errorf("places search failed for %s: %w", category, err)
	}
	return &response, nil
}

// GetVenue retrieves a single venue given its id.
func (c *PlacesApiClient) GetVenue(ctx context.Context, venueID string) (*models.ProviderVenue, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	var response models.ProviderVenue
	_, err := c.circuit.Execute(func() (interface{}, error) {
		return nil, c.Request(ctx, "GET", "/venues/"+venueID+"?"+q.Encode(), nil, nil, &response)
	})
	if err != nil {
		return nil, fmt.Errorf("places venue lookup failed for %s: %w", venueID, err)
	}
	return &response, nil
}
