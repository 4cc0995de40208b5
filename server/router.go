package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// OpenVenuesHandler is the surface the router needs from the venue handler.
type OpenVenuesHandler interface {
	GetOpenVenues(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// ItineraryHandler is the surface the router needs from the plan handler.
type ItineraryHandler interface {
	BuildItinerary(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler OpenVenuesHandler
	planHandler  ItineraryHandler
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler OpenVenuesHandler,
	planHandler ItineraryHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		planHandler:  planHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={float}&lon={float}&radius={km}&at={2006-01-02T15:04}&category={CATEGORY}
	r.router.HandleFunc("/v1/venues/open", r.venueHandler.GetOpenVenues).Methods("GET")

	// expects ?lat={float}&lon={float}&radius={km}&at={2006-01-02T15:04}
	r.router.HandleFunc("/v1/itinerary", r.planHandler.BuildItinerary).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
