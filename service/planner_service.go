package services

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
	"github.com/donaldchunggit/WhatStillOpenSydney/ranking"
)

// RankedVenue is an open venue with its score and breakdown, the shape the
// open-venues endpoint returns.
type RankedVenue struct {
	Venue     models.Venue          `json:"venue"`
	ClosesAt  time.Time             `json:"closes_at"`
	Score     float64               `json:"score"`
	Breakdown models.ScoreBreakdown `json:"breakdown"`
}

// PlannerService composes the hours and ranking engines over cached venue
// pools into the two user-facing operations: ranked open venues and a
// three-part itinerary. It is stateless between requests.
type PlannerService struct {
	venueService *VenueService
	ranker       *ranking.Ranker
}

// NewPlannerService constructs a new PlannerService.
func NewPlannerService(venueService *VenueService, ranker *ranking.Ranker) *PlannerService {
	return &PlannerService{
		venueService: venueService,
		ranker:       ranker,
	}
}

// RankOpenVenues returns the open venues of a category around a point,
// scored and sorted best first.
func (ps *PlannerService) RankOpenVenues(lat, lon, radiusKm float64, category models.Category, at time.Time) ([]RankedVenue, error) {
	open, err := ps.venueService.GetOpenVenuesNearby(lat, lon, radiusKm, category, at)
	if err != nil {
		return nil, fmt.Errorf("loading open %s venues: %w", category, err)
	}

	ranked := make([]RankedVenue, 0, len(open))
	for _, ov := range open {
		scored := ps.ranker.ScoreVenue(ov.Venue, at)
		ranked = append(ranked, RankedVenue{
			Venue:     ov.Venue,
			ClosesAt:  ov.ClosesAt,
			Score:     scored.Score,
			Breakdown: scored.Breakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// BuildItinerary fetches the food, activity, and bar pools concurrently,
// filters each to venues open at the instant, and composes the plan. Pools
// may finish in any order; composition starts only after all three joined.
func (ps *PlannerService) BuildItinerary(lat, lon, radiusKm float64, at time.Time) (models.Itinerary, error) {
	slots := []struct {
		name       string
		categories []models.Category
	}{
		{"food", models.FoodCategories},
		{"activity", []models.Category{models.CategoryActivity}},
		{"bar", []models.Category{models.CategoryBar}},
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		pools = make(map[string][]models.Venue, len(slots))
		errs  []error
	)

	for _, slot := range slots {
		slot := slot
		wg.Add(1)
		go func() {
			defer wg.Done()

			var pool []models.Venue
			for _, category := range slot.categories {
				open, err := ps.venueService.GetOpenVenuesNearby(lat, lon, radiusKm, category, at)
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("loading %s pool: %w", slot.name, err))
					mu.Unlock()
					return
				}
				for _, ov := range open {
					pool = append(pool, ov.Venue)
				}
			}

			mu.Lock()
			pools[slot.name] = pool
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(errs) > 0 {
		return models.Itinerary{}, errs[0]
	}

	plan, err := ps.ranker.BuildItinerary(pools["food"], pools["activity"], pools["bar"], at)
	if err != nil {
		return models.Itinerary{}, err
	}

	log.Printf("[PlannerService] Built plan %s: food=%s activity=%s bar=%s",
		plan.PlanID, plan.Food.VenueID, plan.Activity.VenueID, plan.Bar.VenueID)
	return plan, nil
}
