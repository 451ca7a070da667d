package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBootstrapAuthenticates(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))
	require.NoError(t, d.Bootstrap())

	a, err := d.Authenticate(BootstrapID, BootstrapPassword)
	require.NoError(t, err)
	assert.Equal(t, "idriss", a.ID)
	assert.Equal(t, "Admin Principal", a.Name)
	assert.True(t, a.Connected)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))
	require.NoError(t, d.Bootstrap())
	require.NoError(t, d.Bootstrap())
	assert.Equal(t, 1, d.Size())
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))
	require.NoError(t, d.Bootstrap())

	_, err := d.Authenticate(BootstrapID, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Authenticate("nobody", BootstrapPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))

	first, err := d.Register("Alice Martin", "alice@store.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "A0001", first.ID)
	assert.False(t, first.Connected)

	second, err := d.Register("Bob Durand", "bob@store.com", "p4ss")
	require.NoError(t, err)
	assert.Equal(t, "A0002", second.ID)
}

func TestRegisterStoresOnlyAHash(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))

	a, err := d.Register("Alice Martin", "alice@store.com", "s3cret")
	require.NoError(t, err)
	assert.NotContains(t, string(a.PasswordHash), "s3cret")

	got, err := d.Authenticate(a.ID, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))

	for _, tc := range []struct{ name, email, password string }{
		{"", "alice@store.com", "s3cret"},
		{"Alice", "", "s3cret"},
		{"Alice", "alice@store.com", ""},
	} {
		_, err := d.Register(tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}
	assert.Equal(t, 0, d.Size())
}

func TestGet(t *testing.T) {
	d := NewDirectory(zaptest.NewLogger(t))
	require.NoError(t, d.Bootstrap())

	a, err := d.Get(BootstrapID)
	require.NoError(t, err)
	assert.Equal(t, BootstrapID, a.ID)

	_, err = d.Get("A9999")
	assert.ErrorIs(t, err, ErrNotFound)
}
