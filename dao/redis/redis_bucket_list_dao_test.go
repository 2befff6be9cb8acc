package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bucket-list-client/apperrors"
	"bucket-list-client/db"
	"bucket-list-client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleItems() []models.BucketListItem {
	return []models.BucketListItem{
		{ID: "v1", VenueID: "v1", UserID: "u1", Venue: models.BucketListVenue{ID: "v1", Name: "Franklin"}, AddedAt: 1, Tags: []string{"bbq"}},
		{ID: "v2", VenueID: "v2", UserID: "u1", Venue: models.BucketListVenue{ID: "v2", Name: "Uchi"}, AddedAt: 2, Priority: models.PriorityHigh},
	}
}

func TestRedisBucketListDAO_SaveBucketList_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisBucketListDAO(mockClient, zap.NewNop())

	// Act
	err := dao.SaveBucketList(context.Background(), "u1", sampleItems())

	// Assert
	require.NoError(t, err)

	// Verify data stored under the per-user key as a JSON array
	storedValue, err := mockClient.Get(context.Background(), "bucketList_u1")
	require.NoError(t, err)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "v1", stored[0]["venueId"])
}

func TestRedisBucketListDAO_RoundTrip(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	ctx := context.Background()
	require.NoError(t, NewRedisBucketListDAO(mockClient, zap.NewNop()).SaveBucketList(ctx, "u1", sampleItems()))

	// a fresh DAO over the same storage sees the same items
	items, err := NewRedisBucketListDAO(mockClient, zap.NewNop()).GetBucketList(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, sampleItems(), items)
}

func TestRedisBucketListDAO_GetBucketList_Missing(t *testing.T) {
	dao := NewRedisBucketListDAO(db.NewMockRedisClient(), zap.NewNop())

	items, err := dao.GetBucketList(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRedisBucketListDAO_CorruptValue(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	require.NoError(t, mockClient.Set(context.Background(), "bucketList_u1", "{nope"))
	dao := NewRedisBucketListDAO(mockClient, zap.NewNop())

	_, err := dao.GetBucketList(context.Background(), "u1")

	var se *apperrors.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "decode", se.Op)
}

func TestRedisBucketListDAO_WriteFailure(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	mockClient.FailWith(errors.New("quota exceeded"), "set")
	dao := NewRedisBucketListDAO(mockClient, zap.NewNop())

	err := dao.SaveBucketList(context.Background(), "u1", sampleItems())

	var se *apperrors.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "set", se.Op)
	assert.Equal(t, "bucketList_u1", se.Key)
}

func TestRedisBucketListDAO_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisBucketListDAO(db.NewMockRedisClient(), zap.NewNop())
	require.NoError(t, dao.SaveBucketList(ctx, "u1", sampleItems()))
	require.NoError(t, dao.SaveBucketList(ctx, "u2", nil))

	ids, err := dao.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, ids)

	require.NoError(t, dao.DeleteBucketList(ctx, "u1"))
	ids, err = dao.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, ids)
}
