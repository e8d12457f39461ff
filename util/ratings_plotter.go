package util

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"eats-scraper/models"
)

const MAX_PLOTTED_RESTAURANTS = 20

type ratedRestaurant struct {
	Name   string
	Rating float64
}

// PlotRatings generates an HTML bar chart of the top-rated restaurants.
// Entries whose rating does not parse as a number are skipped.
func PlotRatings(results models.ResultSet, filePath string) {
	rated := []ratedRestaurant{}
	for name, records := range results {
		if len(records) == 0 {
			continue
		}
		rating, err := strconv.ParseFloat(records[0].Rating, 64)
		if err != nil {
			continue
		}
		rated = append(rated, ratedRestaurant{Name: name, Rating: rating})
	}

	if len(rated) == 0 {
		log.Println("[Plotter] No numeric ratings to plot, skipping chart")
		return
	}

	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Rating != rated[j].Rating {
			return rated[i].Rating > rated[j].Rating
		}
		return rated[i].Name < rated[j].Name
	})
	if len(rated) > MAX_PLOTTED_RESTAURANTS {
		rated = rated[:MAX_PLOTTED_RESTAURANTS]
	}

	names := make([]string, 0, len(rated))
	values := make([]opts.BarData, 0, len(rated))
	for _, r := range rated {
		names = append(names, r.Name)
		values = append(values, opts.BarData{Value: r.Rating})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Restaurant Ratings",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Top rated restaurants",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 45, Show: opts.Bool(true)},
		}),
	)
	bar.SetXAxis(names)
	bar.AddSeries("Rating", values)

	f, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Printf("Ratings chart generated: %s\n", filePath)
}
