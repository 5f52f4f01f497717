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

// Summary holds the numeric dashboard totals reported by the backend.
// Values the backend omits decode as zero.
type Summary struct {
	TotalCampaigns        int     `json:"totalCampaigns"`        // Number of campaigns created.
	TotalEmailsSent       int     `json:"totalEmailsSent"`       // Number of emails sent across all campaigns.
	AverageEngagementRate float64 `json:"averageEngagementRate"` // Average engagement rate, percent.
	TotalNewLeads         int     `json:"totalNewLeads"`         // New leads generated.
}

// Settings is the user's flat preference record.
type Settings struct {
	EmailNotifications bool   `json:"emailNotifications"` // Whether to email the user about campaign activity.
	DarkMode           bool   `json:"darkMode"`           // Display preference.
	Language           string `json:"language"`           // Preferred language code, e.g. "en".
}

// Profile is the user's account profile record.
type Profile struct {
	Username string `json:"username"` // Display name.
	Email    string `json:"email"`    // Account email address.
	Bio      string `json:"bio"`      // Free-form description.
}
