package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// ReadVenueSearchResponseFromJSON loads a VenueSearchResponse from JSON on disk.
func ReadVenueSearchResponseFromJSON(filePath string) (*models.VenueSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenueSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenuesFromJSON loads a plain venue pool from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]models.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []models.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// PrintVenueSearchResponsePartially prints key fields of a search response.
func PrintVenueSearchResponsePartially(resp *models.VenueSearchResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Venues returned: %d\n", resp.VenuesN)
	if len(resp.Venues) > 0 {
		v := resp.Venues[0]
		fmt.Printf("First venue: %s (%s) at %s\n", v.VenueName, v.VenueType, v.VenueAddress)
	}
}
