package models

import (
	"time"

	"bucket-list-client/models/venue"
)

// Priority of a saved venue. The empty value means unset.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is unset or one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// BucketListVenue is the reduced venue snapshot stored with an item.
type BucketListVenue struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Photo       string       `json:"photo,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
}

// IsEmpty reports whether the snapshot still needs a details backfill.
func (v BucketListVenue) IsEmpty() bool {
	return v.Name == "" && v.Address == "" && v.Category == ""
}

// DEFAULT_SNAPSHOT_CATEGORY is used when a venue carries no category.
const DEFAULT_SNAPSHOT_CATEGORY = "Restaurant"

// NewBucketListVenue reduces v to the snapshot saved with an item.
func NewBucketListVenue(v venue.Venue) BucketListVenue {
	snap := BucketListVenue{
		ID:       v.ID,
		Name:     v.Name,
		Category: DEFAULT_SNAPSHOT_CATEGORY,
		Address:  v.Address(),
	}
	if c, ok := v.PrimaryCategory(); ok && c.Name != "" {
		snap.Category = c.Name
	}
	if lat, lng, ok := v.LatLng(); ok {
		snap.Coordinates = &Coordinates{Latitude: lat, Longitude: lng}
	}
	if len(v.Photos) > 0 {
		snap.Photo = v.Photos[0].OriginalURL()
	}
	if v.Rating != nil {
		r := *v.Rating
		snap.Rating = &r
	}
	return snap
}

// BucketListItem is one saved venue. ID equals VenueID.
type BucketListItem struct {
	ID               string          `json:"id"`
	VenueID          string          `json:"venueId"`
	UserID           string          `json:"userId"`
	Venue            BucketListVenue `json:"venue"`
	Notes            string          `json:"notes,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Priority         Priority        `json:"priority,omitempty"`
	AddedAt          int64           `json:"addedAt"` // epoch ms
	PlannedVisitDate *int64          `json:"plannedVisitDate,omitempty"`
	VisitedAt        *int64          `json:"visitedAt,omitempty"`
	Rating           *float64        `json:"rating,omitempty"`
	Review           string          `json:"review,omitempty"`
}

func (i *BucketListItem) Visited() bool {
	return i.VisitedAt != nil
}

// BucketListItemUpdate carries the fields to merge into an item; nil means unchanged.
type BucketListItemUpdate struct {
	Notes            *string   `json:"notes,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Priority         *Priority `json:"priority,omitempty"`
	PlannedVisitDate *int64    `json:"plannedVisitDate,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	Review           *string   `json:"review,omitempty"`
}

// Apply returns a copy of item with the update merged in.
func (u BucketListItemUpdate) Apply(item BucketListItem) BucketListItem {
	if u.Notes != nil {
		item.Notes = *u.Notes
	}
	if u.Tags != nil {
		item.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.Priority != nil {
		item.Priority = *u.Priority
	}
	if u.PlannedVisitDate != nil {
		d := *u.PlannedVisitDate
		item.PlannedVisitDate = &d
	}
	if u.Rating != nil {
		r := *u.Rating
		item.Rating = &r
	}
	if u.Review != nil {
		item.Review = *u.Review
	}
	return item
}

// MarkVisited sets VisitedAt once; rating and review are overwritten only when given.
func (i BucketListItem) MarkVisited(at time.Time, rating *float64, review *string) BucketListItem {
	if i.VisitedAt == nil {
		ms := at.UnixMilli()
		i.VisitedAt = &ms
	}
	if rating != nil {
		r := *rating
		i.Rating = &r
	}
	if review != nil {
		i.Review = *review
	}
	return i
}
