package models

// UserProfile is the identity held by the auth state.
type UserProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	LastLoginAt int64  `json:"lastLoginAt"`
}

// Credentials are accepted by the stubbed login and never checked.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
