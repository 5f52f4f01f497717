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

package account

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gigmail/client/model"
)

// ErrEmptyTaskTitle is returned by AddTask when the title is empty
// after trimming. Checked locally; an empty task never reaches the
// server.
var ErrEmptyTaskTitle = errors.New("task title cannot be empty")

// ErrEmptyFeedback is returned by SendFeedback when the message is
// empty after trimming.
var ErrEmptyFeedback = errors.New("feedback cannot be empty")

// Tasks returns the user's task list. A missing list in the response
// decodes as empty.
func (c *Client) Tasks(ctx context.Context) ([]model.Task, error) {
	var resp struct {
		Tasks []model.Task `json:"tasks"`
	}
	err := c.gw.Send(ctx, http.MethodGet, "/api/tasks", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// AddTask creates a task with the given title, trimmed. The created
// task, with its backend-assigned ID, is returned.
func (c *Client) AddTask(ctx context.Context, title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTaskTitle
	}

	req := struct {
		Title string `json:"title"`
	}{Title: title}
	var resp struct {
		Task model.Task `json:"task"`
	}
	err := c.gw.Send(ctx, http.MethodPost, "/api/tasks", req, &resp)
	if err != nil {
		return model.Task{}, err
	}
	return resp.Task, nil
}

// SetTaskCompleted marks the task with the given ID as completed or
// pending.
func (c *Client) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	req := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}
	return c.gw.Send(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req, nil)
}

// SendFeedback submits a free-text feedback message. The backend takes
// feedback on the same route that serves the dashboard summary; the
// path is historical and preserved verbatim.
func (c *Client) SendFeedback(ctx context.Context, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return ErrEmptyFeedback
	}
	req := struct {
		Feedback string `json:"feedback"`
	}{Feedback: feedback}
	return c.gw.Send(ctx, http.MethodPost, "/api/endpoint", req, nil)
}
