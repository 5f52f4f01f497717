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

package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// callbackPath is the path the backend redirects to after the OAuth
// flow completes, carrying token, email or error query parameters.
const callbackPath = "/auth-callback"

// callbackPage is shown in the user's browser once the redirect has
// been captured.
const callbackPage = `<html><body><p>Login complete. You can close this window and return to the terminal.</p></body></html>`

// callback holds the query parameters delivered to the loopback
// listener.
type callback struct {
	token  string
	email  string
	errMsg string
	state  string
}

// BrowserLogin performs the browser-based OAuth flow: it starts a
// loopback listener, directs the user's browser to the backend's
// Google authorization entry with the loopback callback as the
// redirect target, and waits for the backend to deliver the issued
// token. The open function receives the URL to present to the user,
// typically by launching a browser.
//
// A one-time state value guards the loopback listener against stray
// requests. An error parameter, a state mismatch or a missing token
// fails the login and leaves no session behind.
func (c *Client) BrowserLogin(ctx context.Context, open func(url string) error) error {
	state := uuid.NewString()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("could not start loopback listener: %w", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	defer func() {
		err := app.Shutdown()
		if err != nil {
			log.Warnf("could not shut down loopback listener: %v", err)
		}
	}()

	done := make(chan callback, 1)
	app.Get(callbackPath, func(fc *fiber.Ctx) error {
		cb := callback{
			token:  fc.Query("token"),
			email:  fc.Query("email"),
			errMsg: fc.Query("error"),
			state:  fc.Query("state"),
		}
		select {
		case done <- cb:
		default:
			// A callback already arrived; ignore stragglers.
		}
		fc.Type("html")
		return fc.SendString(callbackPage)
	})

	go func() {
		err := app.Listener(ln)
		if err != nil {
			log.Errorf("loopback listener failed: %v", err)
		}
	}()

	v := url.Values{}
	v.Set("redirect_uri", fmt.Sprintf("http://%s%s", ln.Addr(), callbackPath))
	v.Set("state", state)
	err = open(c.AuthorizeURL() + "?" + v.Encode())
	if err != nil {
		return fmt.Errorf("could not open authorization URL: %w", err)
	}

	select {
	case cb := <-done:
		if cb.errMsg != "" {
			return fmt.Errorf("authentication failed: %s", cb.errMsg)
		}
		if cb.state != state {
			return errors.New("authorization callback state mismatch")
		}
		if cb.token == "" {
			return errors.New("no authentication token received")
		}
		return c.store.Set(cb.token, cb.email)
	case <-ctx.Done():
		return ctx.Err()
	}
}
