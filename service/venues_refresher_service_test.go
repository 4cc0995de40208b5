package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldchunggit/WhatStillOpenSydney/dao/redis"
	"github.com/donaldchunggit/WhatStillOpenSydney/db"
	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

func TestVenuesRefresherService_RefreshVenuesData(t *testing.T) {
	api := &fakePlacesAPI{venues: map[models.Category][]models.ProviderVenue{
		models.CategoryBar: {
			{VenueID: "bar-1", VenueName: "Opera Bar", VenueType: "BAR"},
			// Same name as above: must be skipped as a duplicate.
			{VenueID: "bar-1-copy", VenueName: "Opera Bar", VenueType: "BAR"},
		},
		models.CategoryRestaurant: {
			{VenueID: "rest-1", VenueName: "Golden Century", VenueType: "RESTAURANT"},
		},
	}}

	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	vr := NewVenuesRefresherService(dao, api)

	require.NoError(t, vr.RefreshVenuesData())

	ids, err := dao.ListAllVenueIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bar-1", "rest-1"}, ids)
}

func TestVenuesRefresherService_SurvivesProviderFailure(t *testing.T) {
	api := &fakePlacesAPI{err: assert.AnError}
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	vr := NewVenuesRefresherService(dao, api)

	// Individual search failures are logged and skipped, never fatal.
	require.NoError(t, vr.RefreshVenuesData())

	ids, err := dao.ListAllVenueIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
