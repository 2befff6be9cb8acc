package db_test

import (
	"context"
	"errors"
	"testing"

	"bucket-list-client/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test the Set and Get methods for the RedisClient implementations
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient()},
		// Replace with a real Redis client configuration for integration testing
		// {"GoRedisClient", db.NewGoRedisClient(ctx, realRedisClient, logger)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()

			// Act
			require.NoError(t, test.client.Set(ctx, "test-key", "test-value"))
			retrieved, err := test.client.Get(ctx, "test-key")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "test-value", retrieved)
		})
	}
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient()

	_, err := client.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestRedisClient_DelAndKeys(t *testing.T) {
	ctx := context.Background()
	client := db.NewMockRedisClient()
	require.NoError(t, client.Set(ctx, "bucketList_a", "[]"))
	require.NoError(t, client.Set(ctx, "bucketList_b", "[]"))
	require.NoError(t, client.Set(ctx, "other", "x"))

	keys, err := client.Keys(ctx, "bucketList_*")
	require.NoError(t, err)
	assert.Equal(t, []string{"bucketList_a", "bucketList_b"}, keys)

	require.NoError(t, client.Del(ctx, "bucketList_a"))
	require.NoError(t, client.Del(ctx, "bucketList_a"), "deleting a missing key is fine")
	keys, err = client.Keys(ctx, "bucketList_*")
	require.NoError(t, err)
	assert.Equal(t, []string{"bucketList_b"}, keys)
}

func TestMockRedisClient_FailureInjection(t *testing.T) {
	ctx := context.Background()
	client := db.NewMockRedisClient()
	boom := errors.New("disk full")

	client.FailWith(boom, "set")

	assert.ErrorIs(t, client.Set(ctx, "k", "v"), boom)
	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, db.ErrKeyNotFound, "only set fails")

	client.Recover()
	assert.NoError(t, client.Set(ctx, "k", "v"))
}

// Test Ping for the RedisClient implementations
func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient()

	// Act
	err := client.Ping(context.Background())

	// Assert
	assert.NoError(t, err)
}
