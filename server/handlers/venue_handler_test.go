package handlers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/db"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
	"github.com/donaldchunggit/WhatStillOpenSydney/ranking"
	services "github.com/donaldchunggit/WhatStillOpenSydney/service"
)

// mondayVenue builds a venue trading Monday from open to close (minutes).
// 2026-08-24 is a Monday; test requests pin `at` to that evening.
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

func newPlannerService(t *testing.T, venues ...models.Venue) *services.PlannerService {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(v))
	}
	venueService := services.NewVenueService(dao, nil)
	return services.NewPlannerService(venueService, ranking.NewRanker(rand.New(rand.NewSource(1))))
}

func TestVenueHandler_GetOpenVenues(t *testing.T) {
	h := NewVenueHandler(newPlannerService(t,
		mondayVenue("bar-1", models.CategoryBar, 18*60, 2*60),
		mondayVenue("bar-2", models.CategoryBar, 9*60, 17*60),
	))

	req := httptest.NewRequest("GET", "/v1/venues/open?lat=-33.87&lon=151.21&radius=3&category=BAR&at=2026-08-24T20:00", nil)
	rr := httptest.NewRecorder()

	h.GetOpenVenues(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var ranked []services.RankedVenue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, "bar-1", ranked[0].Venue.VenueID)
	assert.False(t, ranked[0].ClosesAt.IsZero())
}

func TestVenueHandler_GetOpenVenues_BadArguments(t *testing.T) {
	h := NewVenueHandler(newPlannerService(t))

	tests := []struct {
		name  string
		query string
	}{
		{"missing lat", "lon=151.21&category=BAR"},
		{"bad lat", "lat=abc&lon=151.21&category=BAR"},
		{"lat out of range", "lat=-95&lon=151.21&category=BAR"},
		{"bad at", "lat=-33.87&lon=151.21&category=BAR&at=tonight"},
		{"unknown category", "lat=-33.87&lon=151.21&category=KARAOKE"},
		{"missing category", "lat=-33.87&lon=151.21"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/venues/open?"+tc.query, nil)
			rr := httptest.NewRecorder()

			h.GetOpenVenues(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestVenueHandler_Ping(t *testing.T) {
	h := NewVenueHandler(newPlannerService(t))

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	h.Ping(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
