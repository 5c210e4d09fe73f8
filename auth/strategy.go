package auth

import (
	"context"
	"errors"
	"fmt"

	"secretsapp/models"
	"secretsapp/store"
)

// SentinelPassword is stored for accounts provisioned via federated login.
// It is not a valid bcrypt hash, so local verification against such an
// account can never succeed.
const SentinelPassword = "google"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrVerification means the password comparison itself failed, as
	// opposed to the password not matching. Same redirect at the HTTP
	// boundary, logged distinctly.
	ErrVerification = errors.New("password verification failed")
)

// Credentials is what a login attempt presents. Local logins carry email and
// plaintext password; federated logins carry only the asserted email claim.
type Credentials struct {
	Email    string
	Password string
}

// Strategy resolves presented credentials to a canonical user row or a typed
// failure. Exactly two variants exist, selected by route.
type Strategy interface {
	Verify(ctx context.Context, creds Credentials) (*models.User, error)
}

// Local verifies an email and plaintext password against the stored hash.
type Local struct {
	Users *store.UserStore
}

func (l *Local) Verify(ctx context.Context, creds Credentials) (*models.User, error) {
	user, err := l.Users.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}

	ok, err := CheckPassword(creds.Password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Federated trusts the identity provider's assertion transitively: a known
// email authenticates as that account with no password check, and an unknown
// email is provisioned on the spot with the sentinel password.
type Federated struct {
	Users *store.UserStore
}

func (f *Federated) Verify(ctx context.Context, creds Credentials) (*models.User, error) {
	user, err := f.Users.FindByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return f.Users.Create(ctx, creds.Email, SentinelPassword)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
