package api

import (
	"fmt"
	"net/url"
)

// FetchTasks returns all tasks scheduled into the today view, in server
// order. Handles cursor pagination automatically, fetching all pages.
// Repeated calls return fresh slices even when nothing changed; callers sync
// the result into the view state through the store's content-equality gate.
func (c *Client) FetchTasks() ([]Task, error) {
	allTasks := make([]Task, 0)
	query := url.Values{}

	for {
		var response PaginatedResponse[Task]
		if err := c.GetWithQuery("/v1/tasks", query, &response); err != nil {
			return nil, fmt.Errorf("failed to fetch tasks: %w", err)
		}

		allTasks = append(allTasks, response.Results...)

		if response.NextCursor == nil || *response.NextCursor == "" {
			break
		}
		query.Set("cursor", *response.NextCursor)
	}

	return allTasks, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post("/v1/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to an existing task.
func (c *Client) UpdateTask(id string, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post("/v1/tasks/"+id, req, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return &task, nil
}

// CompleteTask marks a task as done.
func (c *Client) CompleteTask(id string) error {
	if err := c.Post("/v1/tasks/"+id+"/complete", nil, nil); err != nil {
		return fmt.Errorf("failed to complete task %s: %w", id, err)
	}
	return nil
}

// ReopenTask marks a completed task as not done.
func (c *Client) ReopenTask(id string) error {
	if err := c.Post("/v1/tasks/"+id+"/reopen", nil, nil); err != nil {
		return fmt.Errorf("failed to reopen task %s: %w", id, err)
	}
	return nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id string) error {
	if err := c.Delete("/v1/tasks/" + id); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

// ReorderTasks persists a full task ordering. The client-side reorder is
// optimistic; callers decide what to do when persistence fails.
func (c *Client) ReorderTasks(ids []string) error {
	if err := c.Post("/v1/tasks/reorder", ReorderRequest{IDs: ids}, nil); err != nil {
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}
	return nil
}
