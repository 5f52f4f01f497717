/*
DESCRIPTION
  Authentication commands: login, register, logout and whoami.

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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gigmail/client/session"
)

// browserLoginTimeout bounds how long the loopback listener waits for
// the backend to deliver the authorization callback.
const browserLoginTimeout = 3 * time.Minute

func (svc *service) loginCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Account email address.")
	password := fs.String("password", "", "Account password (prompted if omitted).")
	browser := fs.Bool("browser", false, "Sign in with Google in the browser.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if *browser {
		ctx, cancel := context.WithTimeout(ctx, browserLoginTimeout)
		defer cancel()
		err := svc.auth.BrowserLogin(ctx, openBrowser)
		if err != nil {
			return errors.Wrap(err, "browser login failed")
		}
	} else {
		e, err := promptIfEmpty(*email, "Email: ")
		if err != nil {
			return err
		}
		p, err := promptIfEmpty(*password, "Password: ")
		if err != nil {
			return err
		}
		err = svc.auth.Login(ctx, e, p)
		if err != nil {
			return errors.Wrap(err, "login failed")
		}
	}

	sess, _ := svc.store.Current()
	fmt.Println("Signed in as", sess.Email)
	return nil
}

func (svc *service) registerCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "Display name for the new account.")
	email := fs.String("email", "", "Email address for the new account.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	u, err := promptIfEmpty(*username, "Username: ")
	if err != nil {
		return err
	}
	e, err := promptIfEmpty(*email, "Email: ")
	if err != nil {
		return err
	}
	p, err := promptIfEmpty("", "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptIfEmpty("", "Confirm password: ")
	if err != nil {
		return err
	}

	err = svc.auth.Register(ctx, u, e, p, confirm)
	if err != nil {
		return errors.Wrap(err, "registration failed")
	}
	fmt.Println("Account created. Run 'gigmail login' to sign in.")
	return nil
}

func (svc *service) logoutCmd() error {
	err := svc.auth.Logout()
	if err != nil {
		return errors.Wrap(err, "could not clear session")
	}
	fmt.Println("Signed out.")
	return nil
}

func (svc *service) whoamiCmd() error {
	sess, ok := svc.store.Current()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Println("Signed in as", sess.Email)

	// The token is opaque to us; show the expiry if it happens to be
	// a decodable JWT.
	id, err := session.PeekIdentity(sess.Token)
	if err == nil && !id.Expiry.IsZero() {
		fmt.Println("Session expires", id.Expiry.Format(time.RFC1123))
	}
	return nil
}

// promptIfEmpty returns val, or reads a line from stdin after printing
// the given prompt when val is empty.
func promptIfEmpty(val, prompt string) (string, error) {
	if val != "" {
		return val, nil
	}
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "could not read input")
	}
	return strings.TrimSpace(line), nil
}
