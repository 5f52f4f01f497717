/*
LICENSE
  Copyright (C) 2025 the GigMail developers.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  It is distributed in the hope that it will be useful,
  but WITHOUT ANY WARRANTY; without even the implied warranty of
  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
  GNU General Public License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStoreRoundTrip tests setting, reading back, overwriting and
// clearing a persisted session.
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Current()
	assert.False(t, ok, "fresh store should have no session")

	err = store.Set("tok-1", "muso@example.com")
	require.NoError(t, err)

	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "muso@example.com", sess.Email)

	// Set overwrites, no merging.
	err = store.Set("tok-2", "")
	require.NoError(t, err)
	sess, ok = store.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-2", sess.Token)
	assert.Empty(t, sess.Email)

	// Clear is idempotent.
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
	_, ok = store.Current()
	assert.False(t, ok)
}

// TestFileStorePersistsAcrossInstances tests that a second store
// opened on the same path sees the persisted session.
func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok", "muso@example.com"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	sess, ok := reopened.Current()
	require.True(t, ok)
	assert.Equal(t, "tok", sess.Token)
}

// TestFileStoreRejectsTamperedFile tests that a modified session file
// fails authentication and is treated as no session.
func TestFileStoreRejectsTamperedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok", "muso@example.com"))

	err = os.WriteFile(path, []byte("not-a-session-record"), 0600)
	require.NoError(t, err)

	_, ok := store.Current()
	assert.False(t, ok, "tampered session file should not decode")
}

// TestTokenSource tests the oauth2.TokenSource view of a store.
func TestTokenSource(t *testing.T) {
	store := NewMemStore()
	src := TokenSource(store)

	_, err := src.Token()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Set("tok", "muso@example.com"))
	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)

	// The source reads the store live, so clearing takes effect.
	require.NoError(t, store.Clear())
	_, err = src.Token()
	assert.ErrorIs(t, err, ErrNoSession)
}

// TestPeekIdentity tests unverified claim extraction from a token.
func TestPeekIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "muso@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	id, err := PeekIdentity(signed)
	require.NoError(t, err)
	assert.Equal(t, "muso@example.com", id.Email)
	assert.True(t, id.Expiry.Equal(exp), "expected expiry %v, got %v", exp, id.Expiry)

	_, err = PeekIdentity("not.a.token")
	assert.Error(t, err)
}
