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

package gateway

import (
	"errors"
	"fmt"
)

// Errors classified by the gateway. UI-level callers choose how to
// present these; they never reinterpret the classification.
var (
	// ErrUnauthorized indicates the session is invalid or expired. The
	// session store has already been cleared by the time the caller
	// sees this; the caller's job is to navigate to the login entry
	// point.
	ErrUnauthorized = errors.New("session invalid or expired")

	// ErrUnreachable indicates a transport failure: no response was
	// received at all. Surfaced once with a retry-later message; no
	// automatic retries happen anywhere in the client.
	ErrUnreachable = errors.New("backend unreachable")
)

// RejectedError is a server-side refusal other than an authorization
// failure. Code carries the backend's machine-readable "error" field
// verbatim, for callers that classify specific conditions. Message is
// the human text: the server's message when present, else a generic
// fallback.
type RejectedError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error returns an error string for the rejection.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("request rejected (status %d): %s", e.StatusCode, e.Message)
}
