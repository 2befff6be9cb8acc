package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bucket-list-client/api/places"
	"bucket-list-client/apperrors"
	"bucket-list-client/dao/redis"
	"bucket-list-client/geo"
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
	"bucket-list-client/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BACKFILL_CONCURRENCY bounds the parallel details requests made while enriching snapshots.
const BACKFILL_CONCURRENCY = 4

// AddInput names the venue to save, either as a full venue or by id.
type AddInput struct {
	Venue   *venue.Venue `json:"venue,omitempty"`
	VenueID string       `json:"venueId,omitempty"`
}

// ID is the item id the input will produce.
func (in AddInput) ID() string {
	if in.Venue != nil {
		return in.Venue.ID
	}
	return in.VenueID
}

// NearbySavedItem is a saved item located near the user.
type NearbySavedItem struct {
	Item           models.BucketListItem `json:"item"`
	DistanceMeters float64               `json:"distanceMeters"`
	Distance       string                `json:"distance"`
	WalkingTime    string                `json:"walkingTime"`
}

type BucketListService struct {
	dao         *redis.RedisBucketListDAO
	placesAPI   places.PlacesAPI
	store       *store.Store
	fallbackUID string
	now         func() time.Time
	logger      *zap.Logger

	// serializes read-modify-write cycles on the stored list
	storageMu sync.Mutex
	index     *geo.NearbyIndex
}

func NewBucketListService(
	dao *redis.RedisBucketListDAO,
	placesAPI places.PlacesAPI,
	st *store.Store,
	fallbackUserID string,
	logger *zap.Logger) *BucketListService {

	return &BucketListService{
		dao:         dao,
		placesAPI:   placesAPI,
		store:       st,
		fallbackUID: fallbackUserID,
		now:         time.Now,
		logger:      logger.Named("BucketListService"),
		index:       geo.NewNearbyIndex(),
	}
}

// userID falls back to the development identity when nobody is signed in.
func (bs *BucketListService) userID() string {
	if id := store.SelectUserID(bs.store.State()); id != "" {
		return id
	}
	bs.logger.Warn("no authenticated user, using fallback id", zap.String("user_id", bs.fallbackUID))
	return bs.fallbackUID
}

func (bs *BucketListService) owner(it models.BucketListItem) string {
	if it.UserID != "" {
		return it.UserID
	}
	return bs.userID()
}

// FetchBucketList loads the stored list and backfills empty venue snapshots.
// A failed backfill keeps the item unenriched.
func (bs *BucketListService) FetchBucketList(ctx context.Context, d Dispatcher) error {
	d.Dispatch(store.FetchBucketListRequest{})
	userID := bs.userID()

	items, err := bs.dao.GetBucketList(ctx, userID)
	if err != nil {
		bs.logger.Error("loading bucket list failed", zap.String("user_id", userID), zap.Error(err))
		d.Dispatch(store.FetchBucketListFailure{Error: apperrors.Message(err)})
		return err
	}

	filled := bs.backfill(ctx, items, func(it models.BucketListItem) bool { return it.Venue.IsEmpty() })
	bs.logger.Info("fetched bucket list", zap.String("user_id", userID), zap.Int("items", len(items)), zap.Int("backfilled", len(filled)))
	d.Dispatch(store.FetchBucketListSuccess{Items: items})

	if len(filled) > 0 {
		// the list itself loaded; a failed write only shows up as a storage failure
		_ = bs.storageFailure(d, bs.persistSnapshots(ctx, userID, filled))
	}
	return nil
}

// persistSnapshots writes backfilled snapshots into the stored list, only for items whose stored
// snapshot is still empty.
func (bs *BucketListService) persistSnapshots(ctx context.Context, userID string, filled map[string]models.BucketListVenue) error {
	return bs.mutate(ctx, userID, func(items []models.BucketListItem) ([]models.BucketListItem, bool) {
		changed := false
		for i := range items {
			if snap, ok := filled[items[i].ID]; ok && items[i].Venue.IsEmpty() {
				items[i].Venue = snap
				changed = true
			}
		}
		return items, changed
	})
}

// backfill replaces the snapshot of every item matching need, in place, and returns the new
// snapshots by item id.
func (bs *BucketListService) backfill(ctx context.Context, items []models.BucketListItem, need func(models.BucketListItem) bool) map[string]models.BucketListVenue {
	var mu sync.Mutex
	filled := make(map[string]models.BucketListVenue)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(BACKFILL_CONCURRENCY)

	for i := range items {
		if !need(items[i]) {
			continue
		}
		g.Go(func() error {
			v, err := fetchVenue(gctx, bs.placesAPI, items[i].VenueID)
			if err != nil {
				bs.logger.Warn("venue details backfill failed", zap.String("venue_id", items[i].VenueID), zap.Error(err))
				return nil
			}
			snap := models.NewBucketListVenue(v)
			mu.Lock()
			items[i].Venue = snap
			filled[items[i].ID] = snap
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return filled
}

// AddToBucketList saves a venue. Adding a venue that is already saved returns the existing item.
func (bs *BucketListService) AddToBucketList(ctx context.Context, d Dispatcher, in AddInput) (models.BucketListItem, error) {
	id := in.ID()
	if id == "" {
		return models.BucketListItem{}, errors.New("venue id is required")
	}
	if existing, ok := store.SelectBucketListItem(bs.store.State(), id); ok {
		bs.logger.Debug("venue already saved", zap.String("venue_id", id))
		return existing, nil
	}

	d.Dispatch(store.BucketListMutationRequest{ID: id})
	userID := bs.userID()
	item := models.BucketListItem{
		ID:       id,
		VenueID:  id,
		UserID:   userID,
		Venue:    bs.snapshot(ctx, in),
		Tags:     []string{},
		Priority: models.PriorityMedium,
		AddedAt:  bs.now().UnixMilli(),
	}

	err := bs.mutate(ctx, userID, func(items []models.BucketListItem) ([]models.BucketListItem, bool) {
		for _, it := range items {
			if it.ID == id {
				// saved earlier but not loaded into memory yet
				item = it
				return items, false
			}
		}
		return append(items, item), true
	})

	d.Dispatch(store.AddBucketListItemSuccess{Item: item})
	bs.logger.Info("added to bucket list", zap.String("venue_id", id), zap.String("user_id", userID))
	return item, bs.storageFailure(d, err)
}

// snapshot prefers the given venue, then a loaded list, then a details request.
// With none of those the snapshot stays empty and is backfilled on the next fetch.
func (bs *BucketListService) snapshot(ctx context.Context, in AddInput) models.BucketListVenue {
	if in.Venue != nil {
		return models.NewBucketListVenue(*in.Venue)
	}
	if v, ok := store.FindVenue(bs.store.State(), in.VenueID); ok {
		return models.NewBucketListVenue(v)
	}
	v, err := fetchVenue(ctx, bs.placesAPI, in.VenueID)
	if err != nil {
		bs.logger.Warn("venue details unavailable, saving empty snapshot", zap.String("venue_id", in.VenueID), zap.Error(err))
		return models.BucketListVenue{ID: in.VenueID}
	}
	return models.NewBucketListVenue(v)
}

// UpdateBucketListItem merges upd into the item. A missing item leaves the state untouched.
func (bs *BucketListService) UpdateBucketListItem(ctx context.Context, d Dispatcher, id string, upd models.BucketListItemUpdate) (models.BucketListItem, error) {
	if upd.Priority != nil && !upd.Priority.Valid() {
		return models.BucketListItem{}, fmt.Errorf("invalid priority %q", *upd.Priority)
	}
	current, ok := store.SelectBucketListItem(bs.store.State(), id)
	if !ok {
		return models.BucketListItem{}, &apperrors.NotFoundError{Resource: "bucket list item", ID: id}
	}

	d.Dispatch(store.BucketListMutationRequest{ID: id})
	updated := upd.Apply(current)
	err := bs.mutate(ctx, bs.owner(updated), replaceItem(updated))

	d.Dispatch(store.UpdateBucketListItemSuccess{Item: updated})
	return updated, bs.storageFailure(d, err)
}

// MarkAsVisited stamps the visit; repeating it keeps the first visit time.
func (bs *BucketListService) MarkAsVisited(ctx context.Context, d Dispatcher, id string, rating *float64, review *string) (models.BucketListItem, error) {
	current, ok := store.SelectBucketListItem(bs.store.State(), id)
	if !ok {
		err := &apperrors.NotFoundError{Resource: "bucket list item", ID: id}
		d.Dispatch(store.BucketListMutationFailure{Error: apperrors.Message(err)})
		return models.BucketListItem{}, err
	}

	d.Dispatch(store.BucketListMutationRequest{ID: id})
	updated := current.MarkVisited(bs.now(), rating, review)
	err := bs.mutate(ctx, bs.owner(updated), replaceItem(updated))

	d.Dispatch(store.UpdateBucketListItemSuccess{Item: updated})
	bs.logger.Info("marked as visited", zap.String("venue_id", id))
	return updated, bs.storageFailure(d, err)
}

// RemoveFromBucketList deletes the item from storage and memory. Removing a missing id is a no-op.
func (bs *BucketListService) RemoveFromBucketList(ctx context.Context, d Dispatcher, id string) error {
	d.Dispatch(store.BucketListMutationRequest{ID: id})
	userID := bs.userID()
	if it, ok := store.SelectBucketListItem(bs.store.State(), id); ok {
		userID = bs.owner(it)
	}

	err := bs.mutate(ctx, userID, func(items []models.BucketListItem) ([]models.BucketListItem, bool) {
		out := make([]models.BucketListItem, 0, len(items))
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return out, len(out) != len(items)
	})

	d.Dispatch(store.RemoveBucketListItemSuccess{ID: id})
	return bs.storageFailure(d, err)
}

// RefreshStoredSnapshots re-fetches the venue snapshot of every item stored for userID.
// Items whose details cannot be fetched keep their snapshot.
func (bs *BucketListService) RefreshStoredSnapshots(ctx context.Context, userID string) (int, error) {
	bs.storageMu.Lock()
	defer bs.storageMu.Unlock()

	items, err := bs.dao.GetBucketList(ctx, userID)
	if err != nil {
		return 0, err
	}
	refreshed := len(bs.backfill(ctx, items, func(models.BucketListItem) bool { return true }))
	if refreshed == 0 {
		return 0, nil
	}
	return refreshed, bs.dao.SaveBucketList(ctx, userID, items)
}

// NearbySaved returns saved items within radiusMeters of the user location, nearest first.
func (bs *BucketListService) NearbySaved(radiusMeters float64) ([]NearbySavedItem, error) {
	st := bs.store.State()
	center, ok := store.SelectUserLocation(st)
	if !ok {
		return nil, &apperrors.LocationError{Reason: apperrors.LocationUnavailable}
	}

	byID := make(map[string]models.BucketListItem, len(st.BucketList.Items))
	entries := make([]geo.Entry, 0, len(st.BucketList.Items))
	for _, it := range st.BucketList.Items {
		if it.Venue.Coordinates == nil {
			continue
		}
		byID[it.ID] = it
		entries = append(entries, geo.Entry{ID: it.ID, Location: *it.Venue.Coordinates})
	}
	bs.index.Reset(entries)

	matches, err := bs.index.Within(center, radiusMeters)
	if err != nil {
		return nil, err
	}
	out := make([]NearbySavedItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, NearbySavedItem{
			Item:           byID[m.ID],
			DistanceMeters: m.DistanceMeters,
			Distance:       geo.FormatDistance(m.DistanceMeters),
			WalkingTime:    geo.WalkingTimeString(center, m.Location),
		})
	}
	return out, nil
}

// mutate applies change to the stored list and writes it back when changed. Nothing is written
// when the stored list cannot be read; an emptied list drops the key.
func (bs *BucketListService) mutate(ctx context.Context, userID string, change func([]models.BucketListItem) ([]models.BucketListItem, bool)) error {
	bs.storageMu.Lock()
	defer bs.storageMu.Unlock()

	items, err := bs.dao.GetBucketList(ctx, userID)
	if err != nil {
		bs.logger.Warn("reading stored bucket list failed, not writing", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	next, changed := change(items)
	if !changed {
		return nil
	}
	if len(next) == 0 {
		return bs.dao.DeleteBucketList(ctx, userID)
	}
	return bs.dao.SaveBucketList(ctx, userID, next)
}

// storageFailure surfaces err as a storage failure after the memory update was dispatched.
func (bs *BucketListService) storageFailure(d Dispatcher, err error) error {
	if err == nil {
		return nil
	}
	bs.logger.Error("persisting bucket list failed", zap.Error(err))
	var se *apperrors.StorageError
	if !errors.As(err, &se) {
		err = &apperrors.StorageError{Op: "set", Err: err}
	}
	d.Dispatch(store.BucketListStorageFailure{Error: apperrors.Message(err)})
	return err
}

func replaceItem(updated models.BucketListItem) func([]models.BucketListItem) ([]models.BucketListItem, bool) {
	return func(items []models.BucketListItem) ([]models.BucketListItem, bool) {
		for i := range items {
			if items[i].ID == updated.ID {
				items[i] = updated
				return items, true
			}
		}
		return append(items, updated), true
	}
}
