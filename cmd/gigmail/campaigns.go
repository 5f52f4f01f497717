/*
DESCRIPTION
  Campaign and venue commands: listing, creation, runs, payment
  hand-off and deletion.

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
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gigmail/client/campaign"
	"github.com/gigmail/client/model"
)

// campaignsCmd prints the campaign list alongside the known venue
// cities. The two fetches are independent, so they run concurrently.
func (svc *service) campaignsCmd(ctx context.Context) error {
	var (
		campaigns []model.Campaign
		cities    []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = svc.registry.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cities, err = svc.resolver.Cities(ctx)
		return err
	})
	err := g.Wait()
	if err != nil {
		return err
	}

	if len(campaigns) == 0 {
		fmt.Println("No campaigns yet. Create one with 'gigmail create'.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCITY\tRECIPIENTS\tSTATUS\tPAYMENT")
		for _, c := range campaigns {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", c.ID, c.Name, c.City, len(c.Recipients), c.Status, c.PaymentStatus)
		}
		w.Flush()
	}

	if len(cities) > 0 {
		fmt.Println("\nCities with venues:")
		for _, city := range cities {
			fmt.Println("  " + city)
		}
	}
	return nil
}

func (svc *service) createCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	name := fs.String("name", "", "Campaign name.")
	city := fs.String("city", "", "Target city; resolves venue recipients when -to is not given.")
	content := fs.String("content", "", "Email body to send.")
	to := fs.String("to", "", "Comma-separated recipient addresses.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	var created *model.Campaign
	if *to != "" {
		created, err = svc.registry.CreateFromString(ctx, *name, *city, *content, *to)
	} else {
		recipients, rerr := svc.resolver.ResolveByCity(ctx, *city)
		if rerr != nil {
			return errors.Wrap(rerr, "could not resolve venue recipients")
		}
		created, err = svc.registry.Create(ctx, *name, *city, *content, recipients)
	}
	if err != nil {
		return errors.Wrap(err, "could not create campaign")
	}

	fmt.Printf("Created campaign %s (%s) with %d recipients.\n", created.ID, created.Name, len(created.Recipients))
	return nil
}

func (svc *service) runCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	id := fs.String("id", "", "Campaign ID to run.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing -id")
	}

	_, err = svc.registry.List(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch campaigns")
	}
	c, ok := svc.registry.Get(*id)
	if !ok {
		return fmt.Errorf("no campaign with ID %q", *id)
	}

	result, err := svc.launcher.Run(ctx, &c)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case campaign.OutcomeSuccess:
		fmt.Println("Campaign sent.")

	case campaign.OutcomePartialSuccess:
		fmt.Printf("Campaign sent, but %d recipients failed:\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Printf("  %s: %s\n", f.Recipient, f.Error)
		}

	case campaign.OutcomePaymentRequired:
		fmt.Printf("This campaign is unpaid. Complete payment ($%d) at:\n\n  %s\n\nthen run 'gigmail confirm -id %s'.\n",
			result.Amount, svc.redirector.BuildLink(result.CampaignID, result.Amount), result.CampaignID)

	case campaign.OutcomeExternalAuthRequired:
		fmt.Printf("%s\nRe-authorize Gmail access at:\n\n  %s\n", result.Message, svc.auth.AuthorizeURL())

	default:
		return fmt.Errorf("run failed: %s", result.Message)
	}
	return nil
}

func (svc *service) deleteCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "Campaign ID to delete.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing -id")
	}

	err = svc.registry.Delete(ctx, *id)
	if err != nil {
		return errors.Wrap(err, "could not delete campaign")
	}
	fmt.Println("Campaign deleted.")
	return nil
}

func (svc *service) payCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	id := fs.String("id", "", "Campaign ID to pay for.")
	open := fs.Bool("open", false, "Open the payment page in the browser.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing -id")
	}

	link := svc.redirector.BuildLink(*id, model.DefaultAmount)
	if *open {
		return openBrowser(link)
	}
	fmt.Printf("Complete payment at:\n\n  %s\n\nthen run 'gigmail confirm -id %s'.\n", link, *id)
	return nil
}

func (svc *service) confirmCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("confirm", flag.ContinueOnError)
	id := fs.String("id", "", "Campaign ID whose payment completed.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *id == "" {
		return errors.New("missing -id")
	}

	err = svc.redirector.Confirm(ctx, *id)
	if err != nil {
		return errors.Wrap(err, "could not confirm payment")
	}
	fmt.Printf("Payment confirmed. Run the campaign with 'gigmail run -id %s'.\n", *id)
	return nil
}

func (svc *service) citiesCmd(ctx context.Context) error {
	cities, err := svc.resolver.Cities(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch cities")
	}
	for _, city := range cities {
		fmt.Println(city)
	}
	return nil
}

func (svc *service) venuesCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("venues", flag.ContinueOnError)
	city := fs.String("city", "", "City to list venues for.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *city == "" {
		return errors.New("missing -city")
	}

	venues, err := svc.resolver.Venues(ctx, *city)
	if err != nil {
		return errors.Wrap(err, "could not fetch venues")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL")
	for _, v := range venues {
		fmt.Fprintf(w, "%s\t%s\n", v.Name, v.Email)
	}
	return w.Flush()
}
