package authgate

import "time"

// User é a conta como a API admin devolve.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

type CreateUserInput struct {
	Email        string
	Password     string
	EmailConfirm bool
	Metadata     map[string]any
}

type UpdateUserInput struct {
	Password string
	Metadata map[string]any
}

type createUserRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type updateUserRequest struct {
	Password     string         `json:"password,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type listUsersResponse struct {
	Users []User `json:"users"`
}
