/*
DESCRIPTION
  GigMail command line client entry point.

LICENSE
  Copyright (C) 2025 the GigMail developers.

  This file is part of GigMail. GigMail is free software: you can
  redistribute it and/or modify it under the terms of the GNU
  General Public License as published by the Free Software
  Foundation, either version 3 of the License, or (at your option)
  any later version.

  GigMail is distributed in the hope that it will be useful,
  but WITHOUT ANY WARRANTY; without even the implied warranty of
  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
  GNU General Public License for more details.

  You should have received a copy of the GNU General Public License
  along with GigMail in gpl.txt.  If not, see
  <http://www.gnu.org/licenses/>.
*/

// GigMail is a command line client for the GigMail backend. It manages
// outbound email campaigns directed at music venues: resolving venue
// recipients by city, creating and running campaigns behind the
// payment gate, and handling login and payment hand-off.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"

	"github.com/gigmail/client/account"
	"github.com/gigmail/client/auth"
	"github.com/gigmail/client/campaign"
	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/payment"
	"github.com/gigmail/client/session"
	"github.com/gigmail/client/venue"
)

// Project constants.
const (
	progName = "gigmail"
	version  = "v0.1.0"
)

// config holds the client configuration, sourced from the environment
// and overridable by flags.
type config struct {
	APIURL      string `env:"GIGMAIL_API_URL" envDefault:"https://musician-email-backend-08dfa4e34da5.herokuapp.com"`
	PaymentURL  string `env:"GIGMAIL_PAYMENT_URL"`
	SessionFile string `env:"GIGMAIL_SESSION_FILE"`
	Debug       bool   `env:"GIGMAIL_DEBUG"`
}

// service wires the client components behind the CLI commands.
type service struct {
	cfg        config
	store      session.Store
	gw         *gateway.Gateway
	auth       *auth.Client
	registry   *campaign.Registry
	launcher   *campaign.Launcher
	resolver   *venue.Resolver
	redirector *payment.Redirector
	account    *account.Client
}

func main() {
	var cfg config
	err := env.Parse(&cfg)
	if err != nil {
		log.Fatalf("could not parse environment: %v", err)
	}

	flag.StringVar(&cfg.APIURL, "api", cfg.APIURL, "Backend base URL.")
	flag.StringVar(&cfg.SessionFile, "session", cfg.SessionFile, "Path of the session file.")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Run in debug mode.")
	flag.Usage = usage
	flag.Parse()

	if cfg.Debug {
		log.SetLevel(log.LevelDebug)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if args[0] == "version" {
		fmt.Println(progName, version)
		return
	}

	svc, err := newService(cfg)
	if err != nil {
		log.Fatalf("could not set up client: %v", err)
	}

	err = svc.dispatch(context.Background(), args[0], args[1:])
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		// The gateway has already cleared the session.
		fmt.Fprintln(os.Stderr, "Your session has expired. Run 'gigmail login' to sign in again.")
		os.Exit(1)
	case errors.Is(err, gateway.ErrUnreachable):
		fmt.Fprintln(os.Stderr, "The GigMail backend is unreachable. Check your connection and try again.")
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newService builds the component graph: one session store, one
// gateway, and the domain components on top of them.
func newService(cfg config) (*service, error) {
	path := cfg.SessionFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("could not locate user config directory: %w", err)
		}
		path = filepath.Join(dir, progName, "session")
	}

	store, err := session.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("could not open session store: %w", err)
	}

	gw, err := gateway.New(cfg.APIURL, store)
	if err != nil {
		return nil, fmt.Errorf("could not create gateway: %w", err)
	}

	registry := campaign.NewRegistry(gw)
	return &service{
		cfg:        cfg,
		store:      store,
		gw:         gw,
		auth:       auth.New(gw, store),
		registry:   registry,
		launcher:   campaign.NewLauncher(gw, registry),
		resolver:   venue.NewResolver(gw),
		redirector: payment.NewRedirector(gw, registry, cfg.PaymentURL),
		account:    account.New(gw),
	}, nil
}

// dispatch routes a subcommand to its handler.
func (svc *service) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return svc.loginCmd(ctx, args)
	case "register":
		return svc.registerCmd(ctx, args)
	case "logout":
		return svc.logoutCmd()
	case "whoami":
		return svc.whoamiCmd()
	case "campaigns":
		return svc.campaignsCmd(ctx)
	case "create":
		return svc.createCmd(ctx, args)
	case "run":
		return svc.runCmd(ctx, args)
	case "delete":
		return svc.deleteCmd(ctx, args)
	case "pay":
		return svc.payCmd(ctx, args)
	case "confirm":
		return svc.confirmCmd(ctx, args)
	case "cities":
		return svc.citiesCmd(ctx)
	case "venues":
		return svc.venuesCmd(ctx, args)
	case "dashboard":
		return svc.dashboardCmd(ctx)
	case "tasks":
		return svc.tasksCmd(ctx, args)
	case "feedback":
		return svc.feedbackCmd(ctx, args)
	case "settings":
		return svc.settingsCmd(ctx, args)
	case "profile":
		return svc.profileCmd(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command> [command flags]

Commands:
  login      Sign in with email and password, or -browser for Google.
  register   Create a new account.
  logout     Discard the local session.
  whoami     Show the signed-in identity.
  campaigns  List campaigns and known venue cities.
  create     Create a campaign.
  run        Run a campaign (requires payment).
  delete     Delete a campaign.
  pay        Print the payment link for a campaign.
  confirm    Confirm a completed payment.
  cities     List cities with venues.
  venues     List venues in a city.
  dashboard  Show the dashboard summary.
  tasks      List tasks, -add one, or -toggle completion.
  feedback   Send feedback to the developers.
  settings   Show or update settings.
  profile    Show the account profile.
  version    Print the client version.

Flags:
`, progName)
	flag.PrintDefaults()
}

// openBrowser opens the given URL in the user's browser, falling back
// to printing it when no opener is available.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	err := cmd.Start()
	if err != nil {
		fmt.Printf("Open this URL in your browser:\n\n  %s\n\n", url)
	}
	return nil
}
