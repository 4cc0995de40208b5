package ranking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// BuildItinerary composes a food, an activity, and a bar pick into one plan.
// All three pools must be non-empty up front: a two-part plan is a failure,
// not a partial success. Duplicate avoidance across slots is best-effort;
// when excluding earlier picks would empty a pool, selection falls back to
// the unfiltered pool rather than failing the plan.
func (r *Ranker) BuildItinerary(foodPool, activityPool, barPool []models.Venue, at time.Time) (models.Itinerary, error) {
	for _, pool := range []struct {
		name   string
		venues []models.Venue
	}{
		{"food", foodPool},
		{"activity", activityPool},
		{"bar", barPool},
	} {
		if len(pool.venues) == 0 {
			return models.Itinerary{}, fmt.Errorf("%s pool: %w", pool.name, ErrEmptyPool)
		}
	}

	food, err := r.SelectFromTopQuartile(foodPool, at)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("selecting food: %w", err)
	}

	taken := map[string]struct{}{food.VenueID: {}}
	activity, err := r.selectExcluding(activityPool, taken, at)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("selecting activity: %w", err)
	}

	taken[activity.VenueID] = struct{}{}
	bar, err := r.selectExcluding(barPool, taken, at)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("selecting bar: %w", err)
	}

	return models.Itinerary{
		PlanID:   uuid.NewString(),
		Food:     food,
		Activity: activity,
		Bar:      bar,
	}, nil
}

// selectExcluding filters out already-taken venue ids before selecting. If
// the filter leaves nothing, the unfiltered pool is used instead and the
// plan may repeat a venue.
func (r *Ranker) selectExcluding(pool []models.Venue, taken map[string]struct{}, at time.Time) (models.Venue, error) {
	filtered := make([]models.Venue, 0, len(pool))
	for _, v := range pool {
		if _, dup := taken[v.VenueID]; dup {
			continue
		}
		filtered = append(filtered, v)
	}
	if len(filtered) == 0 {
		filtered = pool
	}
	return r.SelectFromTopQuartile(filtered, at)
}
