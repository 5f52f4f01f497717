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

// Package model defines the data types exchanged with the GigMail
// backend: email campaigns, venues and account records. These mirror
// the backend's JSON representations; the backend remains the source
// of truth for all of them except the session, which is client-held.
package model

import "strings"

// Status represents the lifecycle state of a campaign. Status only
// moves forward: Draft, then Running, then Sent or PartiallyFailed.
type Status string

// Campaign lifecycle states, as they appear on the wire.
const (
	StatusDraft           Status = "Draft"
	StatusRunning         Status = "Running"
	StatusSent            Status = "Sent"
	StatusPartiallyFailed Status = "PartiallyFailed"
)

// PaymentStatus represents the payment state of a campaign. The
// backend sends these lowercase.
type PaymentStatus string

// Campaign payment states.
const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// DefaultAmount is the fixed per-campaign price. The backend does not
// compute prices dynamically; every campaign costs the same.
const DefaultAmount = 20

// Campaign is a unit of outbound email work: a named recipient list,
// the email content to send them, and the campaign's lifecycle and
// payment state. Campaigns are created by the client but owned by the
// backend, which assigns the ID.
type Campaign struct {
	ID            string        `json:"id"`            // Backend-assigned campaign ID.
	Name          string        `json:"name"`          // Display name of the campaign.
	City          string        `json:"city,omitempty"` // City the recipients were resolved from, if any.
	Recipients    []string      `json:"recipients"`    // Destination email addresses, in order.
	EmailContent  string        `json:"emailContent"`  // Body of the email to be sent.
	Status        Status        `json:"status"`        // Lifecycle state.
	PaymentStatus PaymentStatus `json:"paymentStatus"` // Payment state, gating execution.
}

// Paid reports whether the campaign's payment gate is satisfied.
func (c *Campaign) Paid() bool {
	return c.PaymentStatus == PaymentPaid
}

// Finished reports whether the campaign has already run. A finished
// campaign may not re-enter the Running state through this client.
func (c *Campaign) Finished() bool {
	return c.Status == StatusSent || c.Status == StatusPartiallyFailed
}

// SplitRecipients splits a comma-separated address list into its
// elements, trimming surrounding whitespace from each. Elements that
// are empty after trimming are kept; whether to reject them is the
// backend's call.
func SplitRecipients(s string) []string {
	parts := strings.Split(s, ",")
	recipients := make([]string, len(parts))
	for i, p := range parts {
		recipients[i] = strings.TrimSpace(p)
	}
	return recipients
}
