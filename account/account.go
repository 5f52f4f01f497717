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

// Package account wraps the backend's simple read/write account
// surfaces: the dashboard summary, the flat settings record and the
// profile. These are plain gateway calls with no decision logic; all
// classification happens in the gateway.
package account

import (
	"context"
	"net/http"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
)

// Client reads and writes account records through the gateway.
type Client struct {
	gw *gateway.Gateway
}

// New returns an account client.
func New(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// Summary returns the dashboard's numeric totals. Values the backend
// omits are zero.
func (c *Client) Summary(ctx context.Context) (model.Summary, error) {
	var s model.Summary
	err := c.gw.Send(ctx, http.MethodGet, "/api/endpoint", nil, &s)
	return s, err
}

// Settings returns the user's preference record.
func (c *Client) Settings(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	err := c.gw.Send(ctx, http.MethodGet, "/api/settings", nil, &s)
	return s, err
}

// SaveSettings replaces the user's preference record.
func (c *Client) SaveSettings(ctx context.Context, s model.Settings) error {
	return c.gw.Send(ctx, http.MethodPut, "/api/settings", s, nil)
}

// Profile returns the user's profile record.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := c.gw.Send(ctx, http.MethodGet, "/api/profile", nil, &p)
	return p, err
}

// SaveProfile replaces the user's profile record.
func (c *Client) SaveProfile(ctx context.Context, p model.Profile) error {
	return c.gw.Send(ctx, http.MethodPut, "/api/profile", p, nil)
}
