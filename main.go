package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/api/places"
	"github.com/donaldchunggit/WhatStillOpenSydney/config"
	"github.com/donaldchunggit/WhatStillOpenSydney/di"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
	"github.com/donaldchunggit/WhatStillOpenSydney/ranking"
	"github.com/donaldchunggit/WhatStillOpenSydney/util"
)

// Sydney CBD
const lat = -33.8708
const lon = 151.2073

func testMockedPlacesAPIClient(placesApi places.PlacesAPI) {
	log.Println("Running: testMockedPlacesAPIClient")
	response, err := placesApi.SearchVenues(context.Background(), lat, lon, config.DEFAULT_SEARCH_RADIUS_KM, models.CategoryBar)
	if err != nil {
		log.Println("Error while running testMockedPlacesAPIClient: ", err)
		return
	}

	util.PrintVenueSearchResponsePartially(response)
}

func plotFixtureScores(placesApi places.PlacesAPI) {
	response, err := placesApi.SearchVenues(context.Background(), lat, lon, config.DEFAULT_SEARCH_RADIUS_KM, models.CategoryBar)
	if err != nil {
		log.Println("Error fetching fixture venues: ", err)
		return
	}

	venues := make([]models.Venue, 0, len(response.Venues))
	for _, pv := range response.Venues {
		venues = append(venues, pv.ToVenue())
	}

	ranker := ranking.NewRanker(rand.New(rand.NewSource(1)))
	scored := ranker.ScorePool(venues, time.Now())
	util.PlotScoreDistribution(scored, "score_distribution.html")
}

func main() {
	config.LoadEnv()

	container := di.NewContainer(config.Env())

	// testMockedPlacesAPIClient(container.PlacesAPI)
	// plotFixtureScores(container.PlacesAPI)

	log.Println("refreshing venue catalog!")
	if err := container.VenuesRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}

	log.Println("starting periodic refresher job!")
	container.VenuesRefresherService.StartPeriodicJob(config.VENUES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("starting server!")
	container.StillOpenHttpServer.Start()
}
