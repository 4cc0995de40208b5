package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/donaldchunggit/WhatStillOpenSydney/config"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
	services "github.com/donaldchunggit/WhatStillOpenSydney/service"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	AT_QUERY_ARG       = "at"
	CATEGORY_QUERY_ARG = "category"

	// AT_TIME_LAYOUT is local wall-clock; no timezone conversion happens
	// server-side, the caller owns timezone consistency.
	AT_TIME_LAYOUT = "2006-01-02T15:04"
)

var validate = validator.New()

// venueQuery is the parsed and validated query surface shared by the venue
// and itinerary endpoints.
type venueQuery struct {
	Lat      float64 `validate:"gte=-90,lte=90"`
	Lon      float64 `validate:"gte=-180,lte=180"`
	RadiusKm float64 `validate:"gt=0,lte=50"`
	At       time.Time
}

// VenueHandler serves the open-venues listing.
type VenueHandler struct {
	plannerService *services.PlannerService
}

func NewVenueHandler(plannerService *services.PlannerService) *VenueHandler {
	return &VenueHandler{plannerService: plannerService}
}

// GetOpenVenues handles GET /v1/venues/open. It returns the venues of one
// category open at the reference instant, scored and sorted best first.
func (h *VenueHandler) GetOpenVenues(w http.ResponseWriter, r *http.Request) {
	query, ok := parseVenueQuery(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	category := models.Category(r.URL.Query().Get(CATEGORY_QUERY_ARG))
	if !category.Valid() {
		http.Error(w, "Invalid argument "+CATEGORY_QUERY_ARG, http.StatusBadRequest)
		return
	}

	ranked, err := h.plannerService.RankOpenVenues(query.Lat, query.Lon, query.RadiusKm, category, query.At)
	if err != nil {
		log.Println("Error ranking open venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ranked); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping.
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

// parseVenueQuery binds lat/lon/radius/at from the query string, writing a
// 400 and returning ok=false on the first invalid argument. An unparseable
// `at` fails here, before any scoring runs.
func parseVenueQuery(vals url.Values, w http.ResponseWriter) (venueQuery, bool) {
	var q venueQuery
	var err error

	q.Lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return q, false
	}
	q.Lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return q, false
	}

	q.RadiusKm = config.DEFAULT_SEARCH_RADIUS_KM
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		q.RadiusKm, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return q, false
		}
	}

	q.At = time.Now()
	if atArg := vals.Get(AT_QUERY_ARG); atArg != "" {
		q.At, err = time.ParseInLocation(AT_TIME_LAYOUT, atArg, time.Local)
		if err != nil {
			http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
			return q, false
		}
	}

	if err := validate.Struct(q); err != nil {
		http.Error(w, "Invalid query arguments", http.StatusBadRequest)
		return q, false
	}
	return q, true
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
