package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"secretsapp/models"
)

func newTestStore(t *testing.T) *UserStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewUserStore(db)
}

func TestCreateAndFindByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.Secret)

	found, err := s.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash", found.Password)
}

func TestFindByEmailMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByEmailIsExactMatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "Alice@Example.com", "hash")
	require.NoError(t, err)

	_, err = s.FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = s.Create(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.ErrorIs(t, err, ErrStore)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSecret(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, s.UpdateSecret(ctx, "alice@example.com", "my secret"))

	found, err := s.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, found.Secret)
	assert.Equal(t, "my secret", *found.Secret)

	// A later submission replaces the value entirely.
	require.NoError(t, s.UpdateSecret(ctx, "alice@example.com", "another"))
	found, err = s.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "another", *found.Secret)
}

func TestUpdateSecretMissingRow(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateSecret(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrStore)
}
