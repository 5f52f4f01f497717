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

// Package campaign manages email campaign records and their
// execution: the Registry performs CRUD against the backend and keeps
// an authoritative local cache, and the Launcher enforces the payment
// gate and classifies run outcomes.
package campaign

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
)

// Registry performs CRUD operations over campaign records. The local
// cache is replaced wholesale by every successful List; the Registry
// never predicts post-mutation server state, so every mutation is
// followed by a re-list. Not safe for concurrent use; the client is
// single-threaded per user action.
type Registry struct {
	gw        *gateway.Gateway
	campaigns []model.Campaign
}

// NewRegistry returns a Registry operating through the given gateway.
func NewRegistry(gw *gateway.Gateway) *Registry {
	return &Registry{gw: gw}
}

// List fetches all campaigns and replaces the local cache with the
// result. No incremental diffing happens; the response is the new
// truth. A missing list in the response decodes as empty.
func (r *Registry) List(ctx context.Context) ([]model.Campaign, error) {
	var resp struct {
		Campaigns []model.Campaign `json:"campaigns"`
	}
	err := r.gw.Send(ctx, http.MethodGet, "/api/email-campaigns", nil, &resp)
	if err != nil {
		return nil, err
	}
	r.campaigns = resp.Campaigns
	return resp.Campaigns, nil
}

// Campaigns returns the cached view from the last successful List. The
// result is a copy; the cache itself changes only by re-listing.
func (r *Registry) Campaigns() []model.Campaign {
	if r.campaigns == nil {
		return nil
	}
	out := make([]model.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out
}

// Get returns the cached campaign with the given ID, if present.
func (r *Registry) Get(id string) (model.Campaign, bool) {
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return model.Campaign{}, false
}

// createRequest is the body of the create-campaign call.
type createRequest struct {
	Name         string   `json:"name"`
	City         string   `json:"city,omitempty"`
	EmailContent string   `json:"emailContent"`
	Recipients   []string `json:"recipients"`
}

// Create creates a new campaign and re-lists so the cache reflects the
// backend's view of it. Server-side validation failures (for example a
// missing name) surface as a *gateway.RejectedError with the field
// message passed through.
func (r *Registry) Create(ctx context.Context, name, city, emailContent string, recipients []string) (*model.Campaign, error) {
	req := createRequest{
		Name:         name,
		City:         city,
		EmailContent: emailContent,
		Recipients:   recipients,
	}

	var created model.Campaign
	err := r.gw.Send(ctx, http.MethodPost, "/api/email-campaigns", req, &created)
	if err != nil {
		return nil, err
	}

	_, err = r.List(ctx)
	if err != nil {
		return &created, fmt.Errorf("campaign created but could not refresh list: %w", err)
	}
	return &created, nil
}

// CreateFromString creates a campaign from a comma-separated recipient
// string, trimming each element. Elements left empty by trimming are
// submitted as-is; rejecting them is the backend's call.
func (r *Registry) CreateFromString(ctx context.Context, name, city, emailContent, recipients string) (*model.Campaign, error) {
	return r.Create(ctx, name, city, emailContent, model.SplitRecipients(recipients))
}

// Delete removes the campaign with the given ID server-side, then
// re-lists. There is no optimistic local removal: the cache reflects
// authoritative state only.
func (r *Registry) Delete(ctx context.Context, id string) error {
	err := r.gw.Send(ctx, http.MethodDelete, "/api/email-campaigns/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	_, err = r.List(ctx)
	if err != nil {
		return fmt.Errorf("campaign deleted but could not refresh list: %w", err)
	}
	return nil
}
