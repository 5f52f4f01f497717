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

// Package venue queries the backend's venue directory and resolves a
// city selection into a concrete recipient list. Venues are read-only
// and fetched fresh per city; nothing is cached across cities.
package venue

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
)

// Resolver resolves location selections against the venue directory.
type Resolver struct {
	gw *gateway.Gateway
}

// NewResolver returns a Resolver that queries through the given
// gateway.
func NewResolver(gw *gateway.Gateway) *Resolver {
	return &Resolver{gw: gw}
}

// Cities returns the distinct cities known to the venue directory. A
// missing list in the response decodes as empty, not as an error.
func (r *Resolver) Cities(ctx context.Context) ([]string, error) {
	var resp struct {
		Cities []string `json:"cities"`
	}
	err := r.gw.Send(ctx, http.MethodGet, "/api/venues/cities", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

// Venues returns the directory's venues for the given city.
func (r *Resolver) Venues(ctx context.Context, city string) ([]model.Venue, error) {
	var resp struct {
		Venues []model.Venue `json:"venues"`
	}
	err := r.gw.Send(ctx, http.MethodGet, "/api/venues/by-city/"+url.PathEscape(city), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Venues, nil
}

// ResolveByCity resolves a city selection into the sequence of venue
// email addresses for that city, in the order the directory returned
// them. Venues without an email are dropped; duplicates are passed
// through as-is, since deduplication is the caller's concern.
//
// An empty city means the selection was cleared: the result is empty
// and no query is made. The resolved list replaces whatever recipients
// the caller had; it is advisory, not additive.
func (r *Resolver) ResolveByCity(ctx context.Context, city string) ([]string, error) {
	if city == "" {
		return nil, nil
	}

	venues, err := r.Venues(ctx, city)
	if err != nil {
		return nil, err
	}

	var emails []string
	for _, v := range venues {
		if v.Email == "" {
			continue
		}
		emails = append(emails, v.Email)
	}
	return emails, nil
}
