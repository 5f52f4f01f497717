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

// Package payment builds the deep link into the external payment flow
// and reconciles a campaign's payment state once the provider reports
// success. Card collection itself is the payment provider's widget and
// is opaque to this client.
package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gigmail/client/campaign"
	"github.com/gigmail/client/gateway"
)

// Redirector handles the hand-off to and back from the payment flow.
type Redirector struct {
	gw       *gateway.Gateway
	registry *campaign.Registry
	payURL   string
}

// NewRedirector returns a Redirector targeting the given payment page
// URL. An empty payURL defaults to the backend host's payment page.
func NewRedirector(gw *gateway.Gateway, registry *campaign.Registry, payURL string) *Redirector {
	if payURL == "" {
		payURL = gw.BaseURL() + "/payment"
	}
	return &Redirector{gw: gw, registry: registry, payURL: payURL}
}

// BuildLink returns the payment flow URL for the given campaign,
// deterministically embedding the campaign ID and amount as query
// parameters.
func (r *Redirector) BuildLink(campaignID string, amount int) string {
	v := url.Values{}
	v.Set("campaignId", campaignID)
	v.Set("amount", strconv.Itoa(amount))
	return r.payURL + "?" + v.Encode()
}

// Confirm notifies the backend that the payment provider reported
// success for the campaign, then re-lists so the campaign's payment
// state reflects the backend's view.
//
// If confirmation fails the payment is not applied: no local state is
// flipped optimistically, and the caller surfaces the error.
func (r *Redirector) Confirm(ctx context.Context, campaignID string) error {
	err := r.gw.Send(ctx, http.MethodPost, "/api/payment/confirm/"+url.PathEscape(campaignID), nil, nil)
	if err != nil {
		return err
	}

	_, err = r.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("payment confirmed but could not refresh list: %w", err)
	}
	return nil
}
