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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gorilla/securecookie"
)

// Well-known keys under which the session values are stored.
const (
	keyToken = "token"
	keyEmail = "userEmail"
)

// recordName is the name the securecookie codec authenticates the
// encoded record against.
const recordName = "session"

// FileStore is a Store persisted to a single file. The record is
// HMAC-authenticated with a per-install random key held in a sibling
// file, so a session file that has been tampered with fails to decode
// and is treated as no session at all.
type FileStore struct {
	path  string
	codec *securecookie.SecureCookie
}

// NewFileStore returns a FileStore persisting to the given path,
// creating the authentication key on first use. The parent directory
// is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return nil, fmt.Errorf("could not create session directory: %w", err)
	}

	key, err := loadOrCreateKey(path + ".key")
	if err != nil {
		return nil, fmt.Errorf("could not obtain session key: %w", err)
	}

	codec := securecookie.New(key, nil)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &FileStore{path: path, codec: codec}, nil
}

// loadOrCreateKey reads the HMAC key from keyPath, generating and
// persisting a new one if the file does not exist.
func loadOrCreateKey(keyPath string) ([]byte, error) {
	key, err := os.ReadFile(keyPath)
	if err == nil && len(key) > 0 {
		return key, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	key = securecookie.GenerateRandomKey(32)
	if key == nil {
		return nil, errors.New("could not generate random key")
	}
	err = os.WriteFile(keyPath, key, 0600)
	if err != nil {
		return nil, fmt.Errorf("could not write key file: %w", err)
	}
	return key, nil
}

// Set implements the Set method of the Store interface, replacing the
// persisted session record.
func (s *FileStore) Set(token, email string) error {
	record := map[string]string{keyToken: token, keyEmail: email}
	encoded, err := s.codec.Encode(recordName, record)
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}
	err = os.WriteFile(s.path, []byte(encoded), 0600)
	if err != nil {
		return fmt.Errorf("could not write session file: %w", err)
	}
	return nil
}

// Clear implements the Clear method of the Store interface by removing
// the session file. Clearing an already empty store is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove session file: %w", err)
	}
	return nil
}

// Current implements the Current method of the Store interface. A
// missing, unreadable or undecodable session file means no session.
func (s *FileStore) Current() (Session, bool) {
	encoded, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}

	record := map[string]string{}
	err = s.codec.Decode(recordName, string(encoded), &record)
	if err != nil || record[keyToken] == "" {
		return Session{}, false
	}

	return Session{Token: record[keyToken], Email: record[keyEmail]}, true
}
