package geo

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"bucket-list-client/models"

	"github.com/dhconnelly/rtreego"
)

const (
	tolerance   = 1e-9
	minChildren = 2
	maxChildren = 16
	dimensions  = 2
)

// Entry is an indexed point with the id of the thing located there.
type Entry struct {
	ID       string
	Location models.Coordinates
}

// Match is an Entry together with its distance from the query center.
type Match struct {
	Entry
	DistanceMeters float64
}

type spatialEntry struct {
	Entry
	rect *rtreego.Rect
}

func (se *spatialEntry) Bounds() *rtreego.Rect {
	return se.rect
}

// NearbyIndex is a thread-safe R-Tree over saved venue locations.
type NearbyIndex struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	size int
}

func NewNearbyIndex() *NearbyIndex {
	return &NearbyIndex{tree: rtreego.NewTree(dimensions, minChildren, maxChildren)}
}

// Reset replaces the indexed entries.
func (n *NearbyIndex) Reset(entries []Entry) {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for _, e := range entries {
		p := rtreego.Point{e.Location.Latitude, e.Location.Longitude}
		tree.Insert(&spatialEntry{Entry: e, rect: p.ToRect(tolerance)})
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.tree = tree
	n.size = len(entries)
}

func (n *NearbyIndex) Size() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.size
}

// Within returns the entries at most radiusMeters from center, nearest first.
func (n *NearbyIndex) Within(center models.Coordinates, radiusMeters float64) ([]Match, error) {
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", radiusMeters)
	}

	// Degrees of latitude per meter are constant; longitude degrees widen towards the poles.
	dLat := radiusMeters / earthRadiusMeters * (180 / math.Pi)
	cosLat := math.Cos(degreesToRadians(center.Latitude))
	dLng := 360.0
	if cosLat > 1e-6 {
		dLng = math.Min(dLat/cosLat, 360)
	}

	bounds, err := rtreego.NewRect(
		rtreego.Point{center.Latitude - dLat, center.Longitude - dLng},
		[]float64{2 * dLat, 2 * dLng},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid radius search: %w", err)
	}

	n.mu.RLock()
	results := n.tree.SearchIntersect(bounds)
	n.mu.RUnlock()

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		se, ok := r.(*spatialEntry)
		if !ok {
			continue
		}
		// Filter by actual distance
		if d := Distance(center, se.Location); d <= radiusMeters {
			matches = append(matches, Match{Entry: se.Entry, DistanceMeters: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceMeters != matches[j].DistanceMeters {
			return matches[i].DistanceMeters < matches[j].DistanceMeters
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

// Nearest returns up to k entries closest to center.
func (n *NearbyIndex) Nearest(center models.Coordinates, k int) []Match {
	if k <= 0 {
		return []Match{}
	}
	n.mu.RLock()
	results := n.tree.NearestNeighbors(k, rtreego.Point{center.Latitude, center.Longitude})
	n.mu.RUnlock()

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		if se, ok := r.(*spatialEntry); ok {
			matches = append(matches, Match{Entry: se.Entry, DistanceMeters: Distance(center, se.Location)})
		}
	}
	return matches
}
