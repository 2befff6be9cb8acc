package store

import (
	"testing"

	"bucket-list-client/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func ids(items []models.BucketListItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func item(id, name string, addedAt int64) models.BucketListItem {
	return models.BucketListItem{ID: id, VenueID: id, Venue: models.BucketListVenue{ID: id, Name: name}, AddedAt: addedAt}
}

func TestApplyFilters_SortByDateAddedDesc(t *testing.T) {
	items := []models.BucketListItem{item("A", "Alpha", 3), item("B", "Bravo", 1), item("C", "Charlie", 2)}

	got := ApplyFilters(items, models.BucketListFilter{SortBy: models.SortByDateAdded, SortDirection: models.SortDesc})

	assert.Equal(t, []string{"A", "C", "B"}, ids(got))
	assert.Equal(t, []string{"A", "B", "C"}, ids(items), "input untouched")
}

func TestApplyFilters_TagsAndVisited(t *testing.T) {
	a := item("A", "Alpha", 1)
	a.Tags = []string{"bbq"}
	b := item("B", "Bravo", 2)
	b.Tags = []string{"bbq", "date"}
	b.VisitedAt = ptr(int64(10))
	c := item("C", "Charlie", 3)
	c.Tags = []string{"date"}

	got := ApplyFilters([]models.BucketListItem{a, b, c}, models.BucketListFilter{Tags: []string{"bbq"}, Visited: ptr(false)})

	assert.Equal(t, []string{"A"}, ids(got))
}

func TestApplyFilters_PriorityOrder(t *testing.T) {
	low := item("low", "L", 1)
	low.Priority = models.PriorityLow
	unset := item("unset", "U", 2)
	high := item("high", "H", 3)
	high.Priority = models.PriorityHigh
	medium := item("medium", "M", 4)
	medium.Priority = models.PriorityMedium

	got := ApplyFilters([]models.BucketListItem{low, unset, high, medium}, models.BucketListFilter{SortBy: models.SortByPriority})

	assert.Equal(t, []string{"high", "medium", "low", "unset"}, ids(got))
}

func TestApplyFilters_PriorityMembershipExcludesUnset(t *testing.T) {
	high := item("high", "H", 1)
	high.Priority = models.PriorityHigh
	unset := item("unset", "U", 2)

	got := ApplyFilters([]models.BucketListItem{high, unset}, models.BucketListFilter{Priority: []models.Priority{models.PriorityHigh, models.PriorityLow}})

	assert.Equal(t, []string{"high"}, ids(got))
}

func TestApplyFilters_PlannedDateAbsentSortsLast(t *testing.T) {
	none := item("none", "N", 1)
	late := item("late", "L", 2)
	late.PlannedVisitDate = ptr(int64(200))
	early := item("early", "E", 3)
	early.PlannedVisitDate = ptr(int64(100))

	got := ApplyFilters([]models.BucketListItem{none, late, early}, models.BucketListFilter{SortBy: models.SortByPlannedDate})

	assert.Equal(t, []string{"early", "late", "none"}, ids(got))
}

func TestApplyFilters_SearchTermMatchesNameOrNotes(t *testing.T) {
	a := item("A", "Franklin Barbecue", 1)
	b := item("B", "Uchi", 2)
	b.Notes = "Ask for the BBQ-style hamachi"
	c := item("C", "Veracruz", 3)

	got := ApplyFilters([]models.BucketListItem{a, b, c}, models.BucketListFilter{SearchTerm: "bbq"})
	assert.Equal(t, []string{"B"}, ids(got))

	got = ApplyFilters([]models.BucketListItem{a, b, c}, models.BucketListFilter{SearchTerm: "FRANK"})
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestApplyFilters_StableTies(t *testing.T) {
	items := []models.BucketListItem{item("1", "same", 5), item("2", "Same", 5), item("3", "same", 5)}

	byName := ApplyFilters(items, models.BucketListFilter{SortBy: models.SortByName})
	byDateDesc := ApplyFilters(items, models.BucketListFilter{SortBy: models.SortByDateAdded, SortDirection: models.SortDesc})

	assert.Equal(t, []string{"1", "2", "3"}, ids(byName))
	assert.Equal(t, []string{"1", "2", "3"}, ids(byDateDesc))
}

func TestApplyFilters_Deterministic(t *testing.T) {
	items := []models.BucketListItem{item("b", "Bravo", 2), item("a", "Alpha", 1), item("c", "Charlie", 3)}
	f := models.BucketListFilter{SortBy: models.SortByName}

	assert.Equal(t, ApplyFilters(items, f), ApplyFilters(items, f))
	assert.Equal(t, []string{"a", "b", "c"}, ids(ApplyFilters(items, f)))
}

func TestApplyFilters_EmptyFilterKeepsOrder(t *testing.T) {
	items := []models.BucketListItem{item("b", "B", 2), item("a", "A", 1)}

	got := ApplyFilters(items, models.BucketListFilter{})

	assert.Equal(t, []string{"b", "a"}, ids(got))
	assert.NotNil(t, ApplyFilters(nil, models.BucketListFilter{}))
}

func TestApplyFilters_NameAscAndDateDesc(t *testing.T) {
	items := []models.BucketListItem{item("b", "B", 2), item("a", "A", 1)}

	byName := ApplyFilters(items, models.BucketListFilter{SortBy: models.SortByName, SortDirection: models.SortAsc})
	byDate := ApplyFilters(items, models.BucketListFilter{SortBy: models.SortByDateAdded, SortDirection: models.SortDesc})

	assert.Equal(t, "A", byName[0].Venue.Name)
	assert.Equal(t, "B", byName[1].Venue.Name)
	assert.Equal(t, int64(2), byDate[0].AddedAt)
	assert.Equal(t, int64(1), byDate[1].AddedAt)
}
