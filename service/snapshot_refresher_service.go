package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SnapshotRefresherService periodically refreshes the venue snapshots stored with saved items.
type SnapshotRefresherService struct {
	bucketList *BucketListService
	lister     userLister
	onRefresh  func(userID string)
	logger     *zap.Logger
}

type userLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// NewSnapshotRefresherService constructs a new refresher. onRefresh, if set, is called for every
// user whose stored list changed.
func NewSnapshotRefresherService(
	bucketList *BucketListService,
	lister userLister,
	onRefresh func(userID string),
	logger *zap.Logger,
) *SnapshotRefresherService {
	return &SnapshotRefresherService{
		bucketList: bucketList,
		lister:     lister,
		onRefresh:  onRefresh,
		logger:     logger.Named("SnapshotRefresherService"),
	}
}

// StartPeriodicJob launches the background loop at the given interval until ctx is done.
func (sr *SnapshotRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go sr.startPeriodicJob(ctx, interval)
}

func (sr *SnapshotRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sr.logger.Info("stopping periodic snapshot refresher")
			return
		case <-ticker.C:
			sr.logger.Info("running periodic snapshot refresher job")
			if err := sr.RefreshSnapshots(ctx); err != nil {
				sr.logger.Warn("RefreshSnapshots returned error", zap.Error(err))
			}
		}
	}
}

// RefreshSnapshots refreshes every stored list. A failing user is logged and skipped.
func (sr *SnapshotRefresherService) RefreshSnapshots(ctx context.Context) error {
	userIDs, err := sr.lister.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	sr.logger.Info("refreshing stored snapshots", zap.Int("users", len(userIDs)))
	for _, uid := range userIDs {
		n, err := sr.bucketList.RefreshStoredSnapshots(ctx, uid)
		if err != nil {
			sr.logger.Warn("refreshing snapshots failed", zap.String("user_id", uid), zap.Error(err))
			continue
		}
		sr.logger.Info("refreshed snapshots", zap.String("user_id", uid), zap.Int("items", n))
		if n > 0 && sr.onRefresh != nil {
			sr.onRefresh(uid)
		}
	}
	return nil
}
