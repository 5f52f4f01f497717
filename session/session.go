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

// Package session holds the client's proof of authentication: the
// bearer token issued by the backend and the authenticated identity.
// The session and its token are the only durable client-side state.
//
// No validation happens here. A token is considered valid until the
// gateway observes the backend rejecting it, at which point the
// gateway clears the store.
package session

import "errors"

// ErrNoSession is returned by TokenSource when no session is active.
var ErrNoSession = errors.New("no active session")

// Session is the client's proof of authentication.
type Session struct {
	Token string // Opaque bearer credential issued by the backend.
	Email string // Authenticated identity, may be empty.
}

// Store manages the single active session. At most one session is
// active per client instance; Set overwrites any existing session and
// Clear is idempotent.
type Store interface {
	// Set stores a new session, replacing any existing one.
	Set(token, email string) error

	// Clear removes all session data. Clearing an empty store is not
	// an error.
	Clear() error

	// Current returns the active session, and whether one exists.
	Current() (Session, bool)
}

// MemStore is an in-memory Store. It is used by tests and by callers
// that do not want the session to outlive the process.
type MemStore struct {
	sess   Session
	active bool
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Set implements the Set method of the Store interface.
func (s *MemStore) Set(token, email string) error {
	s.sess = Session{Token: token, Email: email}
	s.active = true
	return nil
}

// Clear implements the Clear method of the Store interface.
func (s *MemStore) Clear() error {
	s.sess = Session{}
	s.active = false
	return nil
}

// Current implements the Current method of the Store interface.
func (s *MemStore) Current() (Session, bool) {
	return s.sess, s.active
}
