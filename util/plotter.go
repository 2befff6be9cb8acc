package util

import (
	"fmt"
	"io"

	"bucket-list-client/models"
	"bucket-list-client/models/venue"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// VenueMapData is what RenderVenueMap plots. Venues without coordinates are skipped.
type VenueMapData struct {
	UserLocation *models.Coordinates
	Nearby       []venue.Venue
	BucketList   []models.BucketListItem
}

// RenderVenueMap writes an HTML page with the user location, nearby venues and saved venues.
func RenderVenueMap(w io.Writer, data VenueMapData) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Map",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d nearby, %d saved", len(data.Nearby), len(data.BucketList)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	labels := charts.WithLabelOpts(opts.Label{
		Show:      opts.Bool(true),
		Formatter: "{b}",
	})

	if data.UserLocation != nil {
		geo.AddSeries("You", types.ChartScatter, []opts.GeoData{{
			Name:  "you",
			Value: []float64{data.UserLocation.Longitude, data.UserLocation.Latitude},
		}}, labels)
	}

	nearby := make([]opts.GeoData, 0, len(data.Nearby))
	for i := range data.Nearby {
		v := &data.Nearby[i]
		if lat, lng, ok := v.LatLng(); ok {
			nearby = append(nearby, opts.GeoData{Name: v.Name, Value: []float64{lng, lat}})
		}
	}
	geo.AddSeries("Nearby", types.ChartScatter, nearby, labels)

	saved := make([]opts.GeoData, 0, len(data.BucketList))
	for _, it := range data.BucketList {
		if c := it.Venue.Coordinates; c != nil {
			saved = append(saved, opts.GeoData{Name: it.Venue.Name, Value: []float64{c.Longitude, c.Latitude}})
		}
	}
	geo.AddSeries("Bucket list", types.ChartScatter, saved, labels)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("render venue map: %w", err)
	}
	return nil
}
