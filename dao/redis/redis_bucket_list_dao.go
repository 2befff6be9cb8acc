package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bucket-list-client/apperrors"
	"bucket-list-client/db"
	"bucket-list-client/models"

	"go.uber.org/zap"
)

// BUCKET_LIST_KEY_FORMAT is the per-user storage key; the value is a JSON array of items.
const BUCKET_LIST_KEY_FORMAT = "bucketList_%s"

// RedisBucketListDAO persists bucket lists through a RedisClient.
// There is no locking: concurrent writers to the same key resolve last-write-wins.
type RedisBucketListDAO struct {
	client db.RedisClient
	logger *zap.Logger
}

// NewRedisBucketListDAO initializes a RedisBucketListDAO with the Redis client.
func NewRedisBucketListDAO(client db.RedisClient, logger *zap.Logger) *RedisBucketListDAO {
	return &RedisBucketListDAO{client: client, logger: logger.Named("RedisBucketListDAO")}
}

func BucketListKey(userID string) string {
	return fmt.Sprintf(BUCKET_LIST_KEY_FORMAT, userID)
}

// GetBucketList returns the stored items for userID, or an empty list when nothing was saved yet.
func (dao *RedisBucketListDAO) GetBucketList(ctx context.Context, userID string) ([]models.BucketListItem, error) {
	key := BucketListKey(userID)
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return []models.BucketListItem{}, nil
	}
	if err != nil {
		return nil, &apperrors.StorageError{Op: "get", Key: key, Err: err}
	}

	items := []models.BucketListItem{}
	if err := json.Unmarshal([]byte(str), &items); err != nil {
		return nil, &apperrors.StorageError{Op: "decode", Key: key, Err: err}
	}
	return items, nil
}

// SaveBucketList overwrites the stored list for userID.
func (dao *RedisBucketListDAO) SaveBucketList(ctx context.Context, userID string, items []models.BucketListItem) error {
	key := BucketListKey(userID)
	if items == nil {
		items = []models.BucketListItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &apperrors.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := dao.client.Set(ctx, key, string(data)); err != nil {
		return &apperrors.StorageError{Op: "set", Key: key, Err: err}
	}
	dao.logger.Debug("saved bucket list", zap.String("key", key), zap.Int("items", len(items)))
	return nil
}

// DeleteBucketList drops the stored list for userID.
func (dao *RedisBucketListDAO) DeleteBucketList(ctx context.Context, userID string) error {
	key := BucketListKey(userID)
	if err := dao.client.Del(ctx, key); err != nil {
		return &apperrors.StorageError{Op: "del", Key: key, Err: err}
	}
	dao.logger.Info("deleted bucket list", zap.String("key", key))
	return nil
}

// ListUserIDs returns the ids of all users with a stored bucket list.
func (dao *RedisBucketListDAO) ListUserIDs(ctx context.Context) ([]string, error) {
	pattern := BucketListKey("*")
	keys, err := dao.client.Keys(ctx, pattern)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "keys", Key: pattern, Err: err}
	}

	prefix := BucketListKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
