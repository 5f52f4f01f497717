/*
DESCRIPTION
  Account commands: dashboard, tasks, feedback, settings and profile.

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
	"strings"

	"github.com/pkg/errors"

	"github.com/gigmail/client/model"
)

func (svc *service) dashboardCmd(ctx context.Context) error {
	s, err := svc.account.Summary(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch dashboard summary")
	}

	fmt.Printf("Campaigns:       %d\n", s.TotalCampaigns)
	fmt.Printf("Emails sent:     %d\n", s.TotalEmailsSent)
	fmt.Printf("Engagement rate: %.1f%%\n", s.AverageEngagementRate)
	fmt.Printf("New leads:       %d\n", s.TotalNewLeads)
	return nil
}

func (svc *service) tasksCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	add := fs.String("add", "", "Add a task with the given title.")
	toggle := fs.String("toggle", "", "Flip the completion state of the task with this ID.")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if *add != "" {
		task, err := svc.account.AddTask(ctx, *add)
		if err != nil {
			return errors.Wrap(err, "could not add task")
		}
		fmt.Printf("Added task %s: %s\n", task.ID, task.Title)
		return nil
	}

	tasks, err := svc.account.Tasks(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch tasks")
	}

	if *toggle != "" {
		for _, task := range tasks {
			if task.ID != *toggle {
				continue
			}
			err := svc.account.SetTaskCompleted(ctx, task.ID, !task.Completed)
			if err != nil {
				return errors.Wrap(err, "could not update task")
			}
			state := "pending"
			if !task.Completed {
				state = "completed"
			}
			fmt.Printf("Task %s marked %s.\n", task.ID, state)
			return nil
		}
		return fmt.Errorf("no task with ID %q", *toggle)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'gigmail tasks -add <title>'.")
		return nil
	}
	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, task.ID, task.Title)
	}
	fmt.Printf("Progress: %d%%\n", model.TaskProgress(tasks))
	return nil
}

func (svc *service) feedbackCmd(ctx context.Context, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return errors.New("usage: gigmail feedback <message>")
	}

	err := svc.account.SendFeedback(ctx, message)
	if err != nil {
		return errors.Wrap(err, "could not submit feedback")
	}
	fmt.Println("Thank you for your feedback!")
	return nil
}

func (svc *service) settingsCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	save := fs.Bool("save", false, "Save the given settings instead of showing them.")
	notify := fs.Bool("notify", false, "Enable email notifications (with -save).")
	dark := fs.Bool("dark", false, "Enable dark mode (with -save).")
	lang := fs.String("lang", "en", "Interface language (with -save).")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if *save {
		s, err := svc.account.Settings(ctx)
		if err != nil {
			return errors.Wrap(err, "could not fetch current settings")
		}
		s.EmailNotifications = *notify
		s.DarkMode = *dark
		s.Language = *lang
		err = svc.account.SaveSettings(ctx, s)
		if err != nil {
			return errors.Wrap(err, "could not save settings")
		}
		fmt.Println("Settings saved.")
		return nil
	}

	s, err := svc.account.Settings(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch settings")
	}
	fmt.Printf("Email notifications: %t\n", s.EmailNotifications)
	fmt.Printf("Dark mode:           %t\n", s.DarkMode)
	fmt.Printf("Language:            %s\n", s.Language)
	return nil
}

func (svc *service) profileCmd(ctx context.Context) error {
	p, err := svc.account.Profile(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch profile")
	}

	fmt.Printf("Username: %s\n", p.Username)
	fmt.Printf("Email:    %s\n", p.Email)
	if p.Bio != "" {
		fmt.Printf("Bio:      %s\n", p.Bio)
	}
	return nil
}
