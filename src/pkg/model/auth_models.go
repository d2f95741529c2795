package model

import "time"

// Account is a credential registry entry. The password hash never leaves
// the data layer; AuthUser is the redacted projection handed to callers.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin"`
}

// AuthUser is the password-free projection of an Account carried in the session.
type AuthUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

// AuthState is the single process-wide session record. It is replaced
// wholesale on every login, register, logout and profile update.
type AuthState struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *AuthUser `json:"user"`
	Token           string    `json:"token"`
}

// Result is the outcome of an auth or validation-prone operation.
// Failures are values, not errors; only infrastructure problems surface as errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Username string `validate:"required,min=2,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ProfilePatch lists the account fields a user may change. Nil means unchanged.
type ProfilePatch struct {
	Username *string `validate:"omitempty,min=2,max=32"`
	Email    *string `validate:"omitempty,email"`
}

// Projection returns the password-free view of an account.
func (a *Account) Projection() *AuthUser {
	return &AuthUser{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}
