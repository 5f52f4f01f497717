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

import "golang.org/x/oauth2"

// TokenSource returns an oauth2.TokenSource view of the store. Token
// returns ErrNoSession when no session is active; callers that can
// proceed unauthenticated should treat that error as the absence of
// credentials rather than a failure.
//
// The source reads the store on every call, so a session set or
// cleared after creation is picked up without rebuilding the source.
func TokenSource(s Store) oauth2.TokenSource {
	return &storeTokenSource{store: s}
}

// storeTokenSource implements the oauth2.TokenSource interface backed
// by a session Store.
type storeTokenSource struct {
	store Store
}

// Token returns a bearer token for the active session.
func (t *storeTokenSource) Token() (*oauth2.Token, error) {
	sess, ok := t.store.Current()
	if !ok {
		return nil, ErrNoSession
	}
	return &oauth2.Token{AccessToken: sess.Token, TokenType: "Bearer"}, nil
}
