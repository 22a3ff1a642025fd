package service

import (
	"context"

	"jobfinder/internal/domain/entity"
)

// LoginResponse is the normalized result of the password-login endpoint.
// Account is optional; some backend versions return the token alone.
type LoginResponse struct {
	Token   string
	Account *entity.Account
}

// AuthAPI is the slice of the backend the session core calls.
type AuthAPI interface {
	// LoginWithPassword calls the password-login endpoint. It fails with
	// a domain AuthenticationFailed error when the credentials are
	// rejected or the response carries no token.
	LoginWithPassword(ctx context.Context, email, password string) (*LoginResponse, error)

	// FetchOwnProfile calls the "who am I" endpoint using the currently
	// bound bearer token.
	FetchOwnProfile(ctx context.Context) (*entity.Account, error)
}

// TokenBinder owns the default Authorization header of the shared HTTP
// client. An empty token clears the header. SetBearer never suspends and
// must only be invoked by the session controller.
type TokenBinder interface {
	SetBearer(token string)
}
