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

package campaign

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2/log"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
)

// Outcome classifies the result of a run attempt. Callers choose
// presentation only (inline message versus navigation); they never
// reinterpret the classification.
type Outcome int

const (
	// OutcomeFailed is a hard failure; the run did not start. The
	// result message carries the server's reason when available.
	OutcomeFailed Outcome = iota

	// OutcomeSuccess means the run started with no per-recipient
	// errors; the campaign is now Sent.
	OutcomeSuccess

	// OutcomePartialSuccess means the run started but some recipients
	// failed; the campaign is now PartiallyFailed. This is a warning,
	// not a hard failure.
	OutcomePartialSuccess

	// OutcomePaymentRequired means the payment gate blocked the run
	// before any server call; the caller must navigate to the payment
	// flow with the result's campaign ID and amount.
	OutcomePaymentRequired

	// OutcomeExternalAuthRequired means the backend's third-party mail
	// permission or session must be re-established; the caller must
	// redirect to the external authorization entry point rather than
	// show an inline error.
	OutcomeExternalAuthRequired
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePartialSuccess:
		return "partial success"
	case OutcomePaymentRequired:
		return "payment required"
	case OutcomeExternalAuthRequired:
		return "external authorization required"
	default:
		return "failed"
	}
}

// Server conditions indicating the backend's own Google mail session
// or permission grant must be re-established. These are matched
// verbatim against the rejection's machine-readable code.
const (
	codeGmailPermissions     = "Gmail permissions required"
	codeGoogleSessionExpired = "Google session expired"
)

// RecipientFailure is a per-recipient delivery failure reported by the
// run endpoint.
type RecipientFailure struct {
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// RunResult is the classified result of a run attempt.
type RunResult struct {
	Outcome    Outcome
	CampaignID string
	Amount     int                // Price to pay; set for OutcomePaymentRequired.
	Message    string             // Human text for failed and external-auth outcomes.
	Failures   []RecipientFailure // Per-recipient failures for OutcomePartialSuccess.
}

// Launcher enforces the payment-gating policy and classifies run-time
// failures. Every campaign costs the same fixed amount; the client
// does not compute prices.
type Launcher struct {
	gw       *gateway.Gateway
	registry *Registry
	amount   int
}

// NewLauncher returns a Launcher that runs campaigns through the given
// gateway and refreshes the given registry after a run starts.
func NewLauncher(gw *gateway.Gateway, registry *Registry) *Launcher {
	return &Launcher{gw: gw, registry: registry, amount: model.DefaultAmount}
}

// Run attempts to execute the campaign.
//
// An unpaid campaign never reaches the server: the result is
// OutcomePaymentRequired carrying the campaign ID and the fixed
// amount. A campaign that already ran is rejected locally for the same
// reason: status only moves forward and may not re-enter Running
// through this client.
//
// For a paid campaign the run endpoint is invoked and the response
// classified per the package taxonomy. On success or partial success
// the campaign's status is advanced and the registry re-listed.
// gateway.ErrUnauthorized and transport failures propagate unchanged
// as errors; everything the server itself decided comes back as a
// RunResult.
func (l *Launcher) Run(ctx context.Context, c *model.Campaign) (RunResult, error) {
	if c.Finished() {
		return RunResult{
			Outcome:    OutcomeFailed,
			CampaignID: c.ID,
			Message:    "campaign has already been sent",
		}, nil
	}

	if !c.Paid() {
		return RunResult{
			Outcome:    OutcomePaymentRequired,
			CampaignID: c.ID,
			Amount:     l.amount,
		}, nil
	}

	var resp struct {
		Errors []RecipientFailure `json:"errors"`
	}
	err := l.gw.Send(ctx, http.MethodPost, "/api/email-campaigns/"+url.PathEscape(c.ID)+"/run", nil, &resp)

	var rej *gateway.RejectedError
	switch {
	case errors.As(err, &rej):
		if rej.Code == codeGmailPermissions || rej.Code == codeGoogleSessionExpired {
			return RunResult{
				Outcome:    OutcomeExternalAuthRequired,
				CampaignID: c.ID,
				Message:    rej.Message,
			}, nil
		}
		return RunResult{
			Outcome:    OutcomeFailed,
			CampaignID: c.ID,
			Message:    rej.Message,
		}, nil

	case err != nil:
		return RunResult{}, err
	}

	result := RunResult{Outcome: OutcomeSuccess, CampaignID: c.ID}
	c.Status = model.StatusSent
	if len(resp.Errors) > 0 {
		result.Outcome = OutcomePartialSuccess
		result.Failures = resp.Errors
		c.Status = model.StatusPartiallyFailed
	}

	// The run mutated server state; re-list so the cache stays
	// authoritative. The run itself already started, so a refresh
	// failure does not change the outcome.
	_, err = l.registry.List(ctx)
	if err != nil {
		log.Warnf("campaign %s ran but list refresh failed: %v", c.ID, err)
	}

	return result, nil
}
