package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// PlotScoreDistribution renders a scored candidate pool as a bar chart HTML
// file, useful for auditing how the weighting spreads a pool out.
func PlotScoreDistribution(candidates []models.ScoredCandidate, outputPath string) {
	names := make([]string, 0, len(candidates))
	scores := make([]opts.BarData, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Venue.VenueName)
		scores = append(scores, opts.BarData{Value: c.Score})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Score Distribution",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Candidate scores",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: 0,
			Max: 1,
		}),
	)

	bar.SetXAxis(names).AddSeries("score", scores)

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Score distribution chart generated:", outputPath)
}
