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

package model

// Venue is a performance venue listed in the backend's directory.
// Venues are read-only from the client's perspective and are fetched
// fresh for each city query, never cached across cities. A venue
// without an email address is not a valid campaign recipient.
type Venue struct {
	ID    string `json:"id"`    // Backend-assigned venue ID.
	Name  string `json:"name"`  // Venue name.
	City  string `json:"city"`  // City the venue is located in.
	Email string `json:"email"` // Booking email address, may be empty.
}
