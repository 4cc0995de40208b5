package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

func TestPlanHandler_BuildItinerary(t *testing.T) {
	h := NewPlanHandler(newPlannerService(t,
		mondayVenue("rest-1", models.CategoryRestaurant, 18*60, 23*60),
		mondayVenue("act-1", models.CategoryActivity, 10*60, 23*60),
		mondayVenue("bar-1", models.CategoryBar, 18*60, 2*60),
	))

	req := httptest.NewRequest("GET", "/v1/itinerary?lat=-33.87&lon=151.21&radius=3&at=2026-08-24T20:00", nil)
	rr := httptest.NewRecorder()

	h.BuildItinerary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var plan models.Itinerary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, "rest-1", plan.Food.VenueID)
	assert.Equal(t, "act-1", plan.Activity.VenueID)
	assert.Equal(t, "bar-1", plan.Bar.VenueID)
}

func TestPlanHandler_BuildItinerary_EmptyPoolIsUnprocessable(t *testing.T) {
	// No activity venue is open at 20:00, so no 3-part plan exists.
	h := NewPlanHandler(newPlannerService(t,
		mondayVenue("rest-1", models.CategoryRestaurant, 18*60, 23*60),
		mondayVenue("bar-1", models.CategoryBar, 18*60, 2*60),
	))

	req := httptest.NewRequest("GET", "/v1/itinerary?lat=-33.87&lon=151.21&at=2026-08-24T20:00", nil)
	rr := httptest.NewRecorder()

	h.BuildItinerary(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cannot build itinerary")
}

func TestPlanHandler_BuildItinerary_BadInstant(t *testing.T) {
	h := NewPlanHandler(newPlannerService(t))

	req := httptest.NewRequest("GET", "/v1/itinerary?lat=-33.87&lon=151.21&at=late", nil)
	rr := httptest.NewRecorder()

	h.BuildItinerary(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
