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
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity holds what the client can read out of its own token for
// display purposes.
type Identity struct {
	Email  string    // The email claim, if present.
	Expiry time.Time // Token expiry, zero when the token carries none.
}

// PeekIdentity extracts display claims from a JWT without verifying
// its signature. The client holds no signing secret; verification is
// the backend's job, and the token remains valid until the backend
// rejects it. The result is advisory only and must not gate anything.
func PeekIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return Identity{}, fmt.Errorf("could not parse token: %w", err)
	}

	var id Identity
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil {
		id.Expiry = exp.Time
	}
	return id, nil
}
