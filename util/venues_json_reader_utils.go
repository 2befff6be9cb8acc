package util

import (
	"encoding/json"
	"fmt"
	"os"

	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

// ReadJSONFile loads any JSON document from disk into a T.
func ReadJSONFile[T any](filePath string) (*T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T: %w", out, err)
	}
	return &out, nil
}

// ReadVenueFromJSON loads a single canonical Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	return ReadJSONFile[venue.Venue](filePath)
}

// ReadBucketListFromJSON loads a bucket list export (a JSON array of items).
func ReadBucketListFromJSON(filePath string) ([]models.BucketListItem, error) {
	items, err := ReadJSONFile[[]models.BucketListItem](filePath)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// PrintVenuesPartially prints key fields of each venue.
func PrintVenuesPartially(venues []venue.Venue) {
	fmt.Printf("Venues: %d\n", len(venues))
	for i := range venues {
		v := &venues[i]
		cat, _ := v.PrimaryCategory()
		line := fmt.Sprintf("- %s [%s] %s", v.Name, cat.Name, v.Address())
		if v.Distance != nil {
			line += fmt.Sprintf(" (%d m)", *v.Distance)
		}
		if v.Rating != nil {
			line += fmt.Sprintf(" rating %.1f", *v.Rating)
		}
		fmt.Println(line)
	}
}

// PrintBucketListPartially prints key fields of each saved item.
func PrintBucketListPartially(items []models.BucketListItem) {
	fmt.Printf("Bucket list: %d\n", len(items))
	for _, it := range items {
		status := "planned"
		if it.Visited() {
			status = "visited"
		}
		fmt.Printf("- %s (%s) priority=%s tags=%v\n", it.Venue.Name, status, it.Priority, it.Tags)
	}
}
