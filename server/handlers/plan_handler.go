package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/donaldchunggit/WhatStillOpenSydney/ranking"
	services "github.com/donaldchunggit/WhatStillOpenSydney/service"
)

// PlanHandler serves the three-part itinerary endpoint.
type PlanHandler struct {
	plannerService *services.PlannerService
}

func NewPlanHandler(plannerService *services.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// BuildItinerary handles GET /v1/itinerary. A category with nothing open is
// a user-visible failure, not a retry; no partial plan is ever returned.
func (h *PlanHandler) BuildItinerary(w http.ResponseWriter, r *http.Request) {
	query, ok := parseVenueQuery(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	plan, err := h.plannerService.BuildItinerary(query.Lat, query.Lon, query.RadiusKm, query.At)
	if err != nil {
		if errors.Is(err, ranking.ErrEmptyPool) {
			http.Error(w, "Cannot build itinerary: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Println("Error building itinerary:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		log.Println("Error encoding response:", err)
	}
}
