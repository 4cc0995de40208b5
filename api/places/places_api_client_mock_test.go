package places

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

func pointMockAtFixtures(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROJECT_ROOT", root)
}

func TestMockSearchVenuesFiltersByCategory(t *testing.T) {
	pointMockAtFixtures(t)
	mock := NewPlacesApiClientMock()

	resp, err := mock.SearchVenues(context.Background(), -33.87, 151.21, 3, models.CategoryBar)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Venues) == 0 {
		t.Fatal("expected bar venues in fixture")
	}
	if resp.VenuesN != len(resp.Venues) {
		t.Errorf("VenuesN = %d but %d venues returned", resp.VenuesN, len(resp.Venues))
	}
	for _, pv := range resp.Venues {
		if models.Category(pv.VenueType) != models.CategoryBar {
			t.Errorf("venue %s has category %s; want BAR", pv.VenueID, pv.VenueType)
		}
	}
}

func TestMockGetVenue(t *testing.T) {
	pointMockAtFixtures(t)
	mock := NewPlacesApiClientMock()

	pv, err := mock.GetVenue(context.Background(), "syd-bar-002")
	if err != nil {
		t.Fatal(err)
	}
	if pv.VenueName != "Opera Bar" {
		t.Errorf("VenueName = %q; want Opera Bar", pv.VenueName)
	}

	if _, err := mock.GetVenue(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown venue id, got nil")
	}
}
