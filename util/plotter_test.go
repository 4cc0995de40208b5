package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

func TestPlotScoreDistribution(t *testing.T) {
	candidates := []models.ScoredCandidate{
		{Venue: models.Venue{VenueID: "v1", VenueName: "Opera Bar"}, Score: 0.82},
		{Venue: models.Venue{VenueID: "v2", VenueName: "The Baxter Inn"}, Score: 0.61},
	}

	outputPath := filepath.Join(t.TempDir(), "scores.html")
	PlotScoreDistribution(candidates, outputPath)

	html, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Opera Bar", "The Baxter Inn", "0.82"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}
