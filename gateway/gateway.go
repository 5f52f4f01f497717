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

// Package gateway is the single choke point through which every call
// to the GigMail backend passes. It attaches the session's bearer
// credential to each outbound request and classifies failure responses
// into the client's error taxonomy.
//
// Authorization enforcement is global and unconditional: any response
// with status 401 or 403 clears the session store and yields
// ErrUnauthorized, no matter which operation triggered the call. A
// background call from an unrelated screen can therefore force a
// logout; that single enforcement point is intentional and must not be
// duplicated per call site.
//
// The gateway performs no retries. Retry policy, if any, belongs to
// the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/oauth2"

	"github.com/gigmail/client/session"
)

// defaultTimeout bounds each request in the absence of a caller
// supplied HTTP client.
const defaultTimeout = 30 * time.Second

// Gateway issues authenticated requests against a single backend base
// URL. Construct with New.
type Gateway struct {
	base   string             // Backend base URL, without trailing slash.
	store  session.Store      // Session store cleared on authorization failure.
	tokens oauth2.TokenSource // Source of the bearer credential.
	client *http.Client       // Underlying HTTP client.
}

// Option is a functional option supplied to New.
type Option func(*Gateway) error

// WithHTTPClient sets the underlying HTTP client, replacing the
// default timeout-bounded one.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) error {
		if c == nil {
			return errors.New("nil http client")
		}
		g.client = c
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) error {
		g.client.Timeout = d
		return nil
	}
}

// New creates a Gateway for the given backend base URL. The session
// store is consulted before every request and cleared whenever the
// backend rejects the credential.
func New(baseURL string, store session.Store, options ...Option) (*Gateway, error) {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return nil, errors.New("missing backend base URL")
	}
	if store == nil {
		return nil, errors.New("missing session store")
	}

	g := &Gateway{
		base:   base,
		store:  store,
		tokens: session.TokenSource(store),
		client: &http.Client{Timeout: defaultTimeout},
	}

	for i, opt := range options {
		err := opt(g)
		if err != nil {
			return nil, fmt.Errorf("could not apply option #%d: %w", i, err)
		}
	}

	return g, nil
}

// BaseURL returns the backend base URL, for callers that need to build
// browser-facing URLs on the same host.
func (g *Gateway) BaseURL() string {
	return g.base
}

// serverError is the backend's error payload. The "error" field is the
// machine-readable condition, "message" the human text.
type serverError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Send issues a request to the backend and decodes a 2xx response body
// into dst when dst is non-nil. A non-nil body is encoded as JSON.
//
// Failures are classified: 401/403 clears the session and returns
// ErrUnauthorized; any other non-2xx returns a *RejectedError carrying
// the server's condition and message; a transport failure returns an
// error matching ErrUnreachable.
func (g *Gateway) Send(ctx context.Context, method, path string, body, dst any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.base+path, rdr)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the bearer credential if a session exists. Some endpoints
	// are public, so the absence of a session is not an error and the
	// request proceeds unauthenticated.
	tok, err := g.tokens.Token()
	if err == nil {
		tok.SetAuthHeader(req)
	} else if !errors.Is(err, session.ErrNoSession) {
		return fmt.Errorf("could not get session token: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		err := g.store.Clear()
		if err != nil {
			log.Warnf("could not clear session after authorization failure: %v", err)
		}
		return ErrUnauthorized

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return rejected(resp.StatusCode, payload)
	}

	// Some mutations acknowledge with an empty body; dst keeps its
	// zero value then.
	if dst == nil || len(payload) == 0 {
		return nil
	}
	err = json.Unmarshal(payload, dst)
	if err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

// rejected builds a *RejectedError from a non-2xx response, passing
// the server's message through verbatim when present.
func rejected(status int, payload []byte) *RejectedError {
	var se serverError
	// A non-JSON error body is fine; the fallback message applies.
	json.Unmarshal(payload, &se)

	msg := se.Message
	if msg == "" {
		msg = se.Error
	}
	if msg == "" {
		msg = "request rejected by server"
	}

	return &RejectedError{StatusCode: status, Code: se.Error, Message: msg}
}
