// Package ranking converts open venues into explainable scores and biased
// random picks, and composes three category picks into a duplicate-free
// night plan. The engine is stateless between requests; every pool and
// exclusion set is local to one call.
package ranking

import (
	"errors"
	"math/rand"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/hours"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// ErrEmptyPool is returned when a required category pool has no candidates.
// A pool full of zero scores is fine; an absent pool is not.
var ErrEmptyPool = errors.New("empty candidate pool")

// Weights splits the final score across the three normalized signals.
// The split is a fixed product contract, not tuning knobs: changing it
// changes user-visible rankings.
type Weights struct {
	Open          float64
	Deal          float64
	Actionability float64
}

// DefaultWeights is the 60/25/15 contract split.
var DefaultWeights = Weights{Open: 0.60, Deal: 0.25, Actionability: 0.15}

// DefaultCapMinutes caps the open-time signal at 4 hours: anything closing
// further out than that is "open late enough" and scores 1.0.
const DefaultCapMinutes = 240

// DefaultTopFraction is the slice of the sorted pool eligible for selection.
const DefaultTopFraction = 0.25

// neutralOpenScore is used when a venue carries no schedule data at all:
// unknown hours neither reward nor penalize.
const neutralOpenScore = 0.5

// RandomSource supplies the index pick for biased-random selection. It is an
// interface so tests can seed it; *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Ranker holds the scoring constants and the randomness source. Zero
// configuration hides in free functions; everything is visible here.
type Ranker struct {
	weights     Weights
	capMinutes  int
	topFraction float64
	rng         RandomSource
}

// NewRanker builds a Ranker with the contract constants. A nil rng falls
// back to a time-seeded source.
func NewRanker(rng RandomSource) *Ranker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Ranker{
		weights:     DefaultWeights,
		capMinutes:  DefaultCapMinutes,
		topFraction: DefaultTopFraction,
		rng:         rng,
	}
}

// ScoreVenue computes the final score and its breakdown for a venue at the
// reference instant.
//
// openScore: minutes until close over the cap, clamped to [0,1]. A schedule
// with data that does not contain the instant scores 0; a venue with no
// schedule data at all scores the neutral 0.5.
func (r *Ranker) ScoreVenue(v models.Venue, at time.Time) models.ScoredCandidate {
	openScore := neutralOpenScore
	if v.HasSchedule() {
		openScore = 0
		if mins, open := hours.MinutesUntilClose(v.Schedule, at); open {
			openScore = clamp01(float64(mins) / float64(r.capMinutes))
		}
	}

	dealScore := 0.0
	if v.OnDealPlatform {
		dealScore = 1.0
	}

	actionable := 0.0
	if v.HasWebsite() {
		actionable++
	}
	if v.HasBookingLink() {
		actionable++
	}
	actionabilityScore := clamp01(actionable / 2)

	final := r.weights.Open*openScore +
		r.weights.Deal*dealScore +
		r.weights.Actionability*actionabilityScore

	return models.ScoredCandidate{
		Venue: v,
		Score: final,
		Breakdown: models.ScoreBreakdown{
			OpenScore:          openScore,
			DealScore:          dealScore,
			ActionabilityScore: actionabilityScore,
		},
	}
}

// ScorePool scores every venue in the pool at the instant, preserving the
// input order.
func (r *Ranker) ScorePool(pool []models.Venue, at time.Time) []models.ScoredCandidate {
	scored := make([]models.ScoredCandidate, len(pool))
	for i, v := range pool {
		scored[i] = r.ScoreVenue(v, at)
	}
	return scored
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
