package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexanderramin/trainingtask/internal/contract"
	"github.com/alexanderramin/trainingtask/internal/domain"
)

// Client is the task server as seen by the front-end.
type Client interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CreateProject(ctx context.Context, p domain.Project) (domain.Project, error)
	CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)

	// Available checks whether the server answers its health endpoint.
	Available(ctx context.Context) bool
}

// httpClient implements Client over the server's JSON API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for the server at cfg.BaseURL.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var body []contract.Project
	if err := c.call(ctx, http.MethodGet, "/projects", c.limitQuery(), nil, &body); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	projects := make([]domain.Project, 0, len(body))
	for _, p := range body {
		projects = append(projects, p.ToDomain())
	}
	return projects, nil
}

func (c *httpClient) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var body []contract.Employee
	if err := c.call(ctx, http.MethodGet, "/employees", c.limitQuery(), nil, &body); err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	employees := make([]domain.Employee, 0, len(body))
	for _, e := range body {
		employees = append(employees, e.ToDomain())
	}
	return employees, nil
}

func (c *httpClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var body []contract.Task
	if err := c.call(ctx, http.MethodGet, "/tasks", c.limitQuery(), nil, &body); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	tasks := make([]domain.Task, 0, len(body))
	for _, wire := range body {
		t, err := wire.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: task %s: %v", ErrUnexpectedStatus, wire.ID, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (c *httpClient) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var body contract.Task
	if err := c.call(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, &body); err != nil {
		return domain.Task{}, fmt.Errorf("fetching task %s: %w", id, err)
	}
	return decodeTask(body)
}

func (c *httpClient) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	var body contract.Task
	if err := c.call(ctx, http.MethodPost, "/tasks", nil, contract.FromTask(t), &body); err != nil {
		return domain.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return decodeTask(body)
}

func (c *httpClient) UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	var body contract.Task
	path := "/tasks/" + url.PathEscape(t.ID)
	if err := c.call(ctx, http.MethodPut, path, nil, contract.FromTask(t), &body); err != nil {
		return domain.Task{}, fmt.Errorf("updating task %s: %w", t.ID, err)
	}
	return decodeTask(body)
}

func (c *httpClient) DeleteTask(ctx context.Context, id string) error {
	if err := c.call(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

func (c *httpClient) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	var body contract.Project
	if err := c.call(ctx, http.MethodPost, "/projects", nil, contract.FromProject(p), &body); err != nil {
		return domain.Project{}, fmt.Errorf("creating project: %w", err)
	}
	return body.ToDomain(), nil
}

func (c *httpClient) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	var body contract.Employee
	if err := c.call(ctx, http.MethodPost, "/employees", nil, contract.FromEmployee(e), &body); err != nil {
		return domain.Employee{}, fmt.Errorf("creating employee: %w", err)
	}
	return body.ToDomain(), nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *httpClient) limitQuery() url.Values {
	if c.cfg.Limit <= 0 {
		return nil
	}
	return url.Values{"limit": []string{strconv.Itoa(c.cfg.Limit)}}
}

// call performs one logical request, retrying connection failures up to
// MaxRetries times, and reports the outcome to the observer.
func (c *httpClient) call(ctx context.Context, method, path string, query url.Values, in, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var payload []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		payload = data
	}

	var status int
	var lastErr error
	for i := 0; i < 1+c.cfg.MaxRetries; i++ {
		status, lastErr = c.doRequest(ctx, method, path, query, payload, out)
		if lastErr == nil || !isConnectionError(lastErr) || ctx.Err() != nil {
			break
		}
	}

	event := CallEvent{
		Method:     method,
		Path:       path,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    lastErr == nil,
	}

	switch {
	case lastErr == nil:
	case ctx.Err() != nil:
		lastErr = ErrTimeout
	case isConnectionError(lastErr):
		lastErr = fmt.Errorf("%w: %v", ErrServerUnavailable, lastErr)
	}
	if lastErr != nil {
		event.ErrorCode = errorCode(lastErr)
	}
	c.observer.OnCallComplete(event)
	return lastErr
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, query url.Values, payload []byte, out any) (int, error) {
	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, statusError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decoding response: %v", ErrUnexpectedStatus, err)
	}
	return resp.StatusCode, nil
}

func statusError(code int, body []byte) error {
	msg := string(bytes.TrimSpace(body))
	var er contract.ErrorResponse
	if json.Unmarshal(body, &er) == nil && er.Error != "" {
		msg = er.Error
	}
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUnexpectedStatus, code, msg)
	}
}

func decodeTask(body contract.Task) (domain.Task, error) {
	t, err := body.ToDomain()
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", ErrUnexpectedStatus, err)
	}
	return t, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return !urlErr.Timeout()
	}
	return false
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrServerUnavailable):
		return "unavailable"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRejected):
		return "rejected"
	default:
		return "unexpected"
	}
}
