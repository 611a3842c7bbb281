package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/St1cky1/taskboard/internal/entity"
)

// TaskAPI - операции сервера, которые нужны кэшу
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]entity.Task, error)
	CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.InsertResult, error)
	UpdateTask(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.UpdateResult, error)
	DeleteTask(ctx context.Context, id string) (*entity.DeleteResult, error)
}

// Client - HTTP-клиент к четырем ручкам /api/tasks
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ TaskAPI = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// без собственного таймаута, отмена только через контекст
		httpClient: &http.Client{},
	}
}

func (c *Client) ListTasks(ctx context.Context) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.InsertResult, error) {
	var result entity.InsertResult
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.UpdateResult, error) {
	var result entity.UpdateResult
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, patch, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (*entity.DeleteResult, error) {
	var result entity.DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Сервер отдает {"error": "..."}, вытаскиваем причину если она есть
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
