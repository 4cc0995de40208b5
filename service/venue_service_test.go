package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/db"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// fakePlacesAPI serves canned provider venues keyed by category.
type fakePlacesAPI struct {
	venues map[models.Category][]models.ProviderVenue
	err    error
}

func (f *fakePlacesAPI) SearchVenues(ctx context.Context, lat, lng, radiusKm float64, category models.Category) (*models.VenueSearchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	venues := f.venues[category]
	return &models.VenueSearchResponse{Status: "OK", Venues: venues, VenuesN: len(venues)}, nil
}

func (f *fakePlacesAPI) GetVenue(ctx context.Context, venueID string) (*models.ProviderVenue, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, pool := range f.venues {
		for i := range pool {
			if pool[i].VenueID == venueID {
				return &pool[i], nil
			}
		}
	}
	return nil, fmt.Errorf("venue %s not found", venueID)
}

func (f *fakePlacesAPI) SetAPIKey(apiKey string) {}

// refInstant is Monday 2026-08-24 20:00 local wall-clock.
var refInstant = time.Date(2026, 8, 24, 20, 0, 0, 0, time.UTC)

// mondayVenue builds a venue trading Monday from open to close (minutes).
func mondayVenue(id string, category models.Category, open, close int) models.Venue {
	var s models.WeeklySchedule
	s.Add(models.Monday, models.TradingWindow{Open: open, Close: close})
	return models.Venue{
		VenueID:   id,
		VenueName: "Venue " + id,
		Category:  category,
		Schedule:  &s,
	}
}

func newSeededVenueService(t *testing.T, venues ...models.Venue) *VenueService {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(v))
	}
	return NewVenueService(dao, &fakePlacesAPI{})
}

func TestVenueService_GetOpenVenuesNearby_FiltersAndAnnotates(t *testing.T) {
	vs := newSeededVenueService(t,
		mondayVenue("open-late", models.CategoryBar, 18*60, 2*60),
		mondayVenue("closed-by-now", models.CategoryBar, 9*60, 17*60),
	)

	open, err := vs.GetOpenVenuesNearby(-33.87, 151.21, 3, models.CategoryBar, refInstant)
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, "open-late", open[0].Venue.VenueID)
	// Cross-midnight close lands on Tuesday 02:00.
	assert.Equal(t, time.Date(2026, 8, 25, 2, 0, 0, 0, time.UTC), open[0].ClosesAt)
}

func TestVenueService_GetOpenVenuesNearby_EmptyPool(t *testing.T) {
	vs := newSeededVenueService(t)

	open, err := vs.GetOpenVenuesNearby(-33.87, 151.21, 3, models.CategoryCafe, refInstant)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestVenueService_GetVenue_FromProvider(t *testing.T) {
	api := &fakePlacesAPI{venues: map[models.Category][]models.ProviderVenue{
		models.CategoryRestaurant: {{
			VenueID:   "p-1",
			VenueName: "Chat Thai",
			VenueType: "RESTAURANT",
			Hours: models.RawWeeklyHours{
				"monday": {{Open: "10:00", Close: "22:00"}},
			},
		}},
	}}
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	vs := NewVenueService(dao, api)

	v, err := vs.GetVenue(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Chat Thai", v.VenueName)
	assert.Equal(t, models.CategoryRestaurant, v.Category)
	require.NotNil(t, v.Schedule)
	assert.True(t, v.Schedule.HasData())
}
