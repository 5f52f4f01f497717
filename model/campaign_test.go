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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitRecipients tests splitting and trimming of comma-separated
// recipient lists.
func TestSplitRecipients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{
			in:   "a@x.com, b@x.com ,c@x.com",
			want: []string{"a@x.com", "b@x.com", "c@x.com"},
		},
		{
			in:   "solo@x.com",
			want: []string{"solo@x.com"},
		},
		{
			// Empty elements are trimmed but not dropped.
			in:   "a@x.com,,b@x.com",
			want: []string{"a@x.com", "", "b@x.com"},
		},
		{
			in:   "",
			want: []string{""},
		},
		{
			in:   "\ta@x.com \n, b@x.com",
			want: []string{"a@x.com", "b@x.com"},
		},
	}

	for i, test := range tests {
		got := SplitRecipients(test.in)
		assert.Equal(t, test.want, got, "SplitRecipients#%d", i)
	}
}

// TestCampaignFinished tests the local guard against re-running
// campaigns that have already gone out.
func TestCampaignFinished(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusDraft, false},
		{StatusRunning, false},
		{StatusSent, true},
		{StatusPartiallyFailed, true},
	}

	for _, test := range tests {
		c := Campaign{Status: test.status}
		assert.Equal(t, test.want, c.Finished(), "Finished() for status %s", test.status)
	}
}

func TestCampaignPaid(t *testing.T) {
	c := Campaign{PaymentStatus: PaymentUnpaid}
	assert.False(t, c.Paid())
	c.PaymentStatus = PaymentPaid
	assert.True(t, c.Paid())
}
