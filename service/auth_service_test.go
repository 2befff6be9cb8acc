package services

import (
	"context"
	"testing"
	"time"

	"bucket-list-client/config"
	"bucket-list-client/models"
	"bucket-list-client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_Login(t *testing.T) {
	st := newTestStore()
	as := NewAuthService(config.MOCK_USER_ID, true, zap.NewNop())
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	as.now = func() time.Time { return now }

	user, err := as.Login(context.Background(), st, models.Credentials{Email: "ana@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "ana", user.Name)
	assert.Equal(t, now.UnixMilli(), user.LastLoginAt)
	auth := st.State().Auth
	assert.True(t, auth.IsAuthenticated)
	assert.Equal(t, "ana@example.com", auth.User.Email)
	assert.False(t, auth.Loading)
}

func TestAuthService_LoginRequiresCredentials(t *testing.T) {
	st := newTestStore()
	as := NewAuthService(config.MOCK_USER_ID, true, zap.NewNop())

	_, err := as.Login(context.Background(), st, models.Credentials{Email: "ana@example.com"})

	assert.Error(t, err)
	assert.Equal(t, "email and password are required", st.State().Auth.Error)

	as.ClearError(st)
	assert.Empty(t, st.State().Auth.Error)
}

func TestAuthService_Logout(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		wantUserID  string
	}{
		{"development keeps the mock user", true, config.MOCK_USER_ID},
		{"production clears the user", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore()
			as := NewAuthService(config.MOCK_USER_ID, tt.development, zap.NewNop())

			require.NoError(t, as.Logout(context.Background(), st))

			assert.Equal(t, tt.wantUserID, store.SelectUserID(st.State()))
			assert.Equal(t, tt.development, st.State().Auth.IsAuthenticated)
		})
	}
}

func TestAuthService_ResetToMockUser(t *testing.T) {
	st := newTestStore()
	as := NewAuthService(config.MOCK_USER_ID, false, zap.NewNop())
	require.NoError(t, as.Logout(context.Background(), st))

	as.ResetToMockUser(st)

	assert.Equal(t, config.MOCK_USER_ID, store.SelectUserID(st.State()))
}

func TestCoordinator_LoginAndLogout(t *testing.T) {
	st := newTestStore()
	runner := NewTaskRunner(st, zap.NewNop())
	coord := NewCoordinator(runner, nil, nil, nil, NewAuthService("u-1", false, zap.NewNop()))
	defer runner.Shutdown()

	require.NoError(t, coord.Login(models.Credentials{Email: "a@b.c", Password: "x"}).Wait())
	assert.Equal(t, "u-1", store.SelectUserID(st.State()))

	require.NoError(t, coord.Logout().Wait())
	assert.False(t, st.State().Auth.IsAuthenticated)
}
