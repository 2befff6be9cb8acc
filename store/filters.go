package store

import (
	"math"
	"slices"
	"sort"
	"strings"

	"bucket-list-client/models"
)

var priorityRank = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

const unsetPriorityRank = 3

// ApplyFilters returns the items passing filter, ordered by its sort key.
// It never mutates items; ties keep their original relative order.
func ApplyFilters(items []models.BucketListItem, filter models.BucketListFilter) []models.BucketListItem {
	if filter.IsZero() {
		return append(make([]models.BucketListItem, 0, len(items)), items...)
	}
	result := make([]models.BucketListItem, 0, len(items))
	term := strings.ToLower(filter.SearchTerm)

	for _, it := range items {
		if len(filter.Tags) > 0 && !overlaps(it.Tags, filter.Tags) {
			continue
		}
		if len(filter.Priority) > 0 && (it.Priority == "" || !slices.Contains(filter.Priority, it.Priority)) {
			continue
		}
		if filter.Visited != nil && *filter.Visited != it.Visited() {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Venue.Name), term) &&
			!strings.Contains(strings.ToLower(it.Notes), term) {
			continue
		}
		result = append(result, it)
	}

	if filter.SortBy == "" {
		return result
	}

	desc := filter.SortDirection == models.SortDesc
	sort.SliceStable(result, func(i, j int) bool {
		c := compareBy(filter.SortBy, result[i], result[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return result
}

func compareBy(key models.SortKey, a, b models.BucketListItem) int {
	switch key {
	case models.SortByDateAdded:
		return cmpInt64(a.AddedAt, b.AddedAt)
	case models.SortByName:
		return strings.Compare(strings.ToLower(a.Venue.Name), strings.ToLower(b.Venue.Name))
	case models.SortByPriority:
		return rank(a.Priority) - rank(b.Priority)
	case models.SortByPlannedDate:
		return cmpInt64(plannedOrMax(a), plannedOrMax(b))
	}
	return 0
}

func rank(p models.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return unsetPriorityRank
}

func plannedOrMax(it models.BucketListItem) int64 {
	if it.PlannedVisitDate == nil {
		return math.MaxInt64
	}
	return *it.PlannedVisitDate
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func overlaps(have, want []string) bool {
	for _, t := range have {
		if slices.Contains(want, t) {
			return true
		}
	}
	return false
}
