package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"bucket-list-client/models"
	"bucket-list-client/store"

	"go.uber.org/zap"
)

var errCredentialsRequired = errors.New("email and password are required")

// AuthService is the development auth stub: any non-empty credentials sign in as the configured user.
type AuthService struct {
	userID      string
	development bool
	now         func() time.Time
	logger      *zap.Logger
}

func NewAuthService(userID string, development bool, logger *zap.Logger) *AuthService {
	return &AuthService{
		userID:      userID,
		development: development,
		now:         time.Now,
		logger:      logger.Named("AuthService"),
	}
}

func (as *AuthService) Login(ctx context.Context, d Dispatcher, creds models.Credentials) (models.UserProfile, error) {
	d.Dispatch(store.LoginRequest{})
	if creds.Email == "" || creds.Password == "" {
		d.Dispatch(store.LoginFailure{Error: errCredentialsRequired.Error()})
		return models.UserProfile{}, errCredentialsRequired
	}
	if err := ctx.Err(); err != nil {
		d.Dispatch(store.LoginFailure{Error: "Login failed: " + err.Error()})
		return models.UserProfile{}, err
	}

	now := as.now()
	user := models.UserProfile{
		ID:          as.userID,
		Name:        displayName(creds.Email),
		Email:       creds.Email,
		CreatedAt:   now.Add(-30 * 24 * time.Hour).UnixMilli(),
		LastLoginAt: now.UnixMilli(),
	}
	as.logger.Info("signed in", zap.String("user_id", user.ID))
	d.Dispatch(store.LoginSuccess{User: user})
	return user, nil
}

// Logout signs out. In development the mock user stays signed in.
func (as *AuthService) Logout(ctx context.Context, d Dispatcher) error {
	d.Dispatch(store.LogoutRequest{})
	if err := ctx.Err(); err != nil {
		d.Dispatch(store.LogoutFailure{Error: "Logout failed: " + err.Error()})
		return err
	}
	if as.development {
		as.logger.Info("development logout keeps the mock user")
		d.Dispatch(store.LogoutSuccess{KeepUser: store.MockUser(as.userID)})
		return nil
	}
	as.logger.Info("signed out")
	d.Dispatch(store.LogoutSuccess{})
	return nil
}

func (as *AuthService) ResetToMockUser(d Dispatcher) {
	d.Dispatch(store.ResetToMockUser{User: *store.MockUser(as.userID)})
}

func (as *AuthService) ClearError(d Dispatcher) {
	d.Dispatch(store.ClearAuthError{})
}

func displayName(email string) string {
	if name, _, ok := strings.Cut(email, "@"); ok && name != "" {
		return name
	}
	return email
}
