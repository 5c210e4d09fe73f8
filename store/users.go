package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"secretsapp/models"
)

var (
	// ErrStore covers connection failures and constraint violations.
	ErrStore = errors.New("store failure")
	// ErrDuplicateEmail is the uniqueness-constraint case of ErrStore.
	ErrDuplicateEmail = fmt.Errorf("%w: duplicate email", ErrStore)
	ErrUserNotFound   = errors.New("user not found")
)

// UserStore provides access to the users relation. The connection handle is
// injected, never held as a package global.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail looks up the user with exactly the given email, as stored.
// No case folding or trimming is applied.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("%w: finding user: %v", ErrStore, err)
	}
	return &user, nil
}

// Create inserts a new user row. A concurrent registration losing the race on
// the unique email index surfaces as ErrDuplicateEmail.
func (s *UserStore) Create(ctx context.Context, email, password string) (*models.User, error) {
	user := models.User{Email: email, Password: password}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: creating user: %v", ErrStore, err)
	}
	return &user, nil
}

// UpdateSecret overwrites the secret for the row matching email, replacing
// any prior value entirely. Callers only invoke this for an authenticated,
// persisted user, so an unmatched email is an invariant violation.
func (s *UserStore) UpdateSecret(ctx context.Context, email, secret string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Update("secret", secret)
	if res.Error != nil {
		return fmt.Errorf("%w: updating secret: %v", ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no user row for %s", ErrStore, email)
	}
	return nil
}
