package models

type SortKey string

const (
	SortByDateAdded   SortKey = "dateAdded"
	SortByName        SortKey = "name"
	SortByPriority    SortKey = "priority"
	SortByPlannedDate SortKey = "plannedDate"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// BucketListFilter narrows and orders the bucket list view. Never persisted.
type BucketListFilter struct {
	Tags          []string      `json:"tags,omitempty"`
	Priority      []Priority    `json:"priority,omitempty"`
	Visited       *bool         `json:"visited,omitempty"`
	SearchTerm    string        `json:"searchTerm,omitempty"`
	SortBy        SortKey       `json:"sortBy,omitempty"`
	SortDirection SortDirection `json:"sortDirection,omitempty"`
}

// IsZero reports whether the filter passes every item through unchanged.
func (f BucketListFilter) IsZero() bool {
	return len(f.Tags) == 0 && len(f.Priority) == 0 && f.Visited == nil &&
		f.SearchTerm == "" && f.SortBy == ""
}
