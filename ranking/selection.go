package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// SelectFromTopQuartile scores the pool, sorts it descending, and picks
// uniformly at random from the top ceil(n*fraction) candidates (floor 1).
// The random pick keeps plans varied without dipping into the weak tail.
func (r *Ranker) SelectFromTopQuartile(pool []models.Venue, at time.Time) (models.Venue, error) {
	scored := r.ScorePool(pool, at)
	pick, err := r.pickFromScored(scored)
	if err != nil {
		return models.Venue{}, err
	}
	return pick.Venue, nil
}

// pickFromScored performs the sort-slice-sample step over an already scored
// pool. Ties keep their original pool order (stable sort) so equal-score
// runs are deterministic under a seeded source.
func (r *Ranker) pickFromScored(scored []models.ScoredCandidate) (models.ScoredCandidate, error) {
	if len(scored) == 0 {
		return models.ScoredCandidate{}, ErrEmptyPool
	}

	ranked := make([]models.ScoredCandidate, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	top := int(math.Ceil(float64(len(ranked)) * r.topFraction))
	if top < 1 {
		top = 1
	}

	return ranked[r.rng.Intn(top)], nil
}
