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

// Package auth drives the backend's authentication flows: password
// login, account registration, and browser-based Google OAuth with a
// loopback callback listener. All flows end the same way, with the
// backend-issued token stored in the session store; validity is only
// ever established later, when the gateway observes a rejection.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/session"
)

// ErrPasswordMismatch is returned by Register when the password and
// its confirmation differ. This is checked locally before submission,
// as the original sign-up form does.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Client performs authentication against the backend.
type Client struct {
	gw    *gateway.Gateway
	store session.Store
}

// New returns an authentication client. Tokens obtained by any flow
// are stored in the given session store.
func New(gw *gateway.Gateway, store session.Store) *Client {
	return &Client{gw: gw, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Login performs password login and stores the issued session. The
// backend serves password login on the same route as its Google OAuth
// entry; the path is historical and preserved verbatim.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := c.gw.Send(ctx, http.MethodPost, "/api/auth/google", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return errors.New("no authentication token in login response")
	}

	identity := resp.Email
	if identity == "" {
		identity = email
	}
	return c.store.Set(resp.Token, identity)
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a new account. A password/confirmation mismatch is
// rejected locally; everything else is the backend's call. Registering
// does not log the user in.
func (c *Client) Register(ctx context.Context, username, email, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return c.gw.Send(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	}, nil)
}

// Logout destroys the session. This is purely local: the token simply
// stops being presented.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// AuthorizeURL returns the external Google authorization entry point.
// It is used both for initial browser login and to re-establish the
// backend's third-party mail permission when a run reports that the
// external session or grant has lapsed.
func (c *Client) AuthorizeURL() string {
	return c.gw.BaseURL() + "/auth/google"
}
