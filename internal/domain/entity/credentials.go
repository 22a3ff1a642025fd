package entity

// Credentials is the closed set of login entry shapes accepted by the
// session controller. Each accepted shape is its own type so normalization
// stays enumerable and testable instead of duck-typed field probing.
type Credentials interface {
	credentials()
}

// PasswordCredentials logs in through the password endpoint.
type PasswordCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (PasswordCredentials) credentials() {}

// TokenCredentials carries a pre-obtained bearer token, e.g. handed over by
// a social login exchange or a parent flow. Account is optional and may be
// incomplete.
type TokenCredentials struct {
	Token   string `validate:"required"`
	Account *Account
}

func (TokenCredentials) credentials() {}
