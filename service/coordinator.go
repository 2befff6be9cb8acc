package services

import (
	"context"

	"bucket-list-client/models"
	"bucket-list-client/store"
)

// Coordinator turns intents into latest-wins tasks over the services.
// Every method returns immediately; callers Wait on the task when they need the outcome.
type Coordinator struct {
	runner     *TaskRunner
	venues     *VenueService
	location   *LocationService
	bucketList *BucketListService
	auth       *AuthService
}

func NewCoordinator(
	runner *TaskRunner,
	venues *VenueService,
	location *LocationService,
	bucketList *BucketListService,
	auth *AuthService) *Coordinator {

	return &Coordinator{
		runner:     runner,
		venues:     venues,
		location:   location,
		bucketList: bucketList,
		auth:       auth,
	}
}

func (c *Coordinator) FetchNearbyVenues(req VenueRequest) *Task {
	return c.fetchVenues(TASK_NEARBY, store.KindNearby, req)
}

func (c *Coordinator) FetchRecommendedVenues(req VenueRequest) *Task {
	return c.fetchVenues(TASK_RECOMMENDED, store.KindRecommended, req)
}

func (c *Coordinator) SearchVenues(req VenueRequest) *Task {
	return c.fetchVenues(TASK_SEARCH, store.KindSearch, req)
}

func (c *Coordinator) fetchVenues(taskKind string, kind store.VenueKind, req VenueRequest) *Task {
	return c.runner.Run(taskKind, func(ctx context.Context, d Dispatcher) error {
		return c.venues.FetchVenues(ctx, d, kind, req)
	})
}

func (c *Coordinator) SelectVenue(venueID string) *Task {
	return c.runner.Run(TASK_SELECT_VENUE, func(ctx context.Context, d Dispatcher) error {
		return c.venues.SelectVenue(ctx, d, venueID)
	})
}

// GetUserLocation resolves the position and restarts the watch. The task ends after the first fix.
func (c *Coordinator) GetUserLocation() *Task {
	return c.runner.Run(TASK_LOCATION, func(ctx context.Context, d Dispatcher) error {
		_, err := c.location.GetUserLocation(ctx, d)
		return err
	})
}

func (c *Coordinator) FetchBucketList() *Task {
	return c.runner.Run(TASK_FETCH_BUCKET_LIST, func(ctx context.Context, d Dispatcher) error {
		return c.bucketList.FetchBucketList(ctx, d)
	})
}

func (c *Coordinator) AddToBucketList(in AddInput) *Task {
	return c.runner.Run(TASK_BUCKET_LIST_ITEM+in.ID(), func(ctx context.Context, d Dispatcher) error {
		_, err := c.bucketList.AddToBucketList(ctx, d, in)
		return err
	})
}

func (c *Coordinator) UpdateBucketListItem(id string, upd models.BucketListItemUpdate) *Task {
	return c.runner.Run(TASK_BUCKET_LIST_ITEM+id, func(ctx context.Context, d Dispatcher) error {
		_, err := c.bucketList.UpdateBucketListItem(ctx, d, id, upd)
		return err
	})
}

func (c *Coordinator) RemoveFromBucketList(id string) *Task {
	return c.runner.Run(TASK_BUCKET_LIST_ITEM+id, func(ctx context.Context, d Dispatcher) error {
		return c.bucketList.RemoveFromBucketList(ctx, d, id)
	})
}

func (c *Coordinator) MarkAsVisited(id string, rating *float64, review *string) *Task {
	return c.runner.Run(TASK_BUCKET_LIST_ITEM+id, func(ctx context.Context, d Dispatcher) error {
		_, err := c.bucketList.MarkAsVisited(ctx, d, id, rating, review)
		return err
	})
}

func (c *Coordinator) Login(creds models.Credentials) *Task {
	return c.runner.Run(TASK_LOGIN, func(ctx context.Context, d Dispatcher) error {
		_, err := c.auth.Login(ctx, d, creds)
		return err
	})
}

func (c *Coordinator) Logout() *Task {
	return c.runner.Run(TASK_LOGOUT, func(ctx context.Context, d Dispatcher) error {
		return c.auth.Logout(ctx, d)
	})
}

// NearbySaved is a read; it does not run as a task.
func (c *Coordinator) NearbySaved(radiusMeters float64) ([]NearbySavedItem, error) {
	return c.bucketList.NearbySaved(radiusMeters)
}

// Shutdown cancels running tasks and the location watch.
func (c *Coordinator) Shutdown() {
	c.location.StopWatching()
	c.runner.Shutdown()
}
