package services

import (
	"context"
	"log"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/api/places"
	"github.com/donaldchunggit/WhatStillOpenSydney/config"
	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// Location holds latitude and longitude for refresh jobs.
type Location struct {
	Name string
	Lat  float64
	Lng  float64
}

// defaultLocations is the constant list of coordinates to query.
var defaultLocations = []Location{
	{
		Name: "CBD",
		Lat:  -33.8708,
		Lng:  151.2073,
	},
	{
		Name: "Surry Hills",
		Lat:  -33.8862,
		Lng:  151.2110,
	},
	{
		Name: "Darlinghurst",
		Lat:  -33.8786,
		Lng:  151.2202,
	},
	{
		Name: "Newtown",
		Lat:  -33.8970,
		Lng:  151.1793,
	},
	{
		Name: "Bondi Beach",
		Lat:  -33.8915,
		Lng:  151.2767,
	},
	{
		Name: "Manly",
		Lat:  -33.7969,
		Lng:  151.2855,
	},
	{
		Name: "Parramatta",
		Lat:  -33.8150,
		Lng:  151.0011,
	},
}

// VenuesRefresherService periodically refreshes the venue catalog from the
// places API into the Redis cache.
type VenuesRefresherService struct {
	venueDao  *redis.RedisVenueDAO
	placesAPI places.PlacesAPI
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(
	venueDao *redis.RedisVenueDAO,
	placesAPI places.PlacesAPI,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:  venueDao,
		placesAPI: placesAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vr *VenuesRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
		if err := vr.RefreshVenuesData(); err != nil {
			log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
		} else {
			log.Println("[VenuesRefresherService] RefreshVenuesData completed successfully.")
		}
	}
}

// RefreshVenuesData fetches every category around every configured location,
// dedupes, and upserts the snapshots into the cache.
func (vr *VenuesRefresherService) RefreshVenuesData() error {
	ctx := context.Background()

	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	total := 0

	log.Printf("[VenuesRefresherService] Refreshing %d locations x %d categories",
		len(defaultLocations), len(models.Categories))

	for _, loc := range defaultLocations {
		for _, category := range models.Categories {
			resp, err := vr.placesAPI.SearchVenues(ctx, loc.Lat, loc.Lng, config.DEFAULT_SEARCH_RADIUS_KM, category)
			if err != nil {
				log.Printf("[VenuesRefresherService] Search failed for %s/%s: %v", loc.Name, category, err)
				continue
			}

			for _, pv := range resp.Venues {
				if _, dup := seenIDs[pv.VenueID]; dup {
					continue
				}
				if _, dup := seenNames[pv.VenueName]; dup {
					log.Printf("[VenuesRefresherService] Skipping duplicate venue Name=%q", pv.VenueName)
					continue
				}

				seenIDs[pv.VenueID] = struct{}{}
				seenNames[pv.VenueName] = struct{}{}

				if err := vr.venueDao.UpsertVenue(pv.ToVenue()); err != nil {
					log.Printf("[VenuesRefresherService] Upsert failed for %s: %v", pv.VenueID, err)
					continue
				}
				total++
			}
		}
	}

	log.Printf("[VenuesRefresherService] Upserted %d venues", total)
	return nil
}
