// Package apiclient is a typed HTTP client for the taskhub API, built on
// fiber's client agent.
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"taskhub/models"

	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 5 * time.Second

// APIError is returned for any non-2xx answer.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("taskhub: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusNotFound
}

// Status is the payload of GET /status.
type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Response records a raw exchange, used by the demo walkthrough.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	baseURL string
	timeout time.Duration
}

// New creates a client for the server at baseURL. A zero timeout means
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request and returns the raw answer without interpreting the
// status code. in, when non-nil, is sent as JSON.
func (c *Client) Do(method, path string, in any) (*Response, error) {
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	agent.Timeout(c.timeout)
	if in != nil {
		agent.JSON(in)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, fmt.Errorf("prepare %s %s: %w", method, path, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}

	return &Response{StatusCode: code, Body: body}, nil
}

// call performs the request and decodes a 2xx body into out.
func (c *Client) call(method, path string, in, out any) error {
	resp, err := c.Do(method, path, in)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func userPath(email string) string {
	return "/usuarios/" + url.PathEscape(email)
}

func taskPath(id int) string {
	return "/tarefas/" + strconv.Itoa(id)
}

func (c *Client) CreateUser(user models.User) (models.User, error) {
	var out models.User
	err := c.call(fiber.MethodPost, "/usuarios", user, &out)
	return out, err
}

func (c *Client) ListUsers() ([]models.User, error) {
	var out []models.User
	err := c.call(fiber.MethodGet, "/usuarios", nil, &out)
	return out, err
}

func (c *Client) GetUser(email string) (models.User, error) {
	var out models.User
	err := c.call(fiber.MethodGet, userPath(email), nil, &out)
	return out, err
}

// UpdateUser replaces the user at email; a different user.Email renames it.
func (c *Client) UpdateUser(email string, user models.User) (models.User, error) {
	var out models.User
	err := c.call(fiber.MethodPut, userPath(email), user, &out)
	return out, err
}

func (c *Client) DeleteUser(email string) error {
	return c.call(fiber.MethodDelete, userPath(email), nil, nil)
}

// CreateTask stores task; a zero ID lets the server assign one.
func (c *Client) CreateTask(task models.Task) (models.Task, error) {
	var out models.Task
	err := c.call(fiber.MethodPost, "/tarefas", task, &out)
	return out, err
}

func (c *Client) ListTasks() ([]models.Task, error) {
	var out []models.Task
	err := c.call(fiber.MethodGet, "/tarefas", nil, &out)
	return out, err
}

func (c *Client) GetTask(id int) (models.Task, error) {
	var out models.Task
	err := c.call(fiber.MethodGet, taskPath(id), nil, &out)
	return out, err
}

func (c *Client) UpdateTask(id int, task models.Task) (models.Task, error) {
	var out models.Task
	err := c.call(fiber.MethodPut, taskPath(id), task, &out)
	return out, err
}

func (c *Client) DeleteTask(id int) error {
	return c.call(fiber.MethodDelete, taskPath(id), nil, nil)
}

func (c *Client) Status() (Status, error) {
	var out Status
	err := c.call(fiber.MethodGet, "/status", nil, &out)
	return out, err
}

func (c *Client) Echo(payload map[string]any) (map[string]any, error) {
	var out map[string]any
	err := c.call(fiber.MethodPost, "/echo", payload, &out)
	return out, err
}

// Greet returns the greeting message for name.
func (c *Client) Greet(name string) (string, error) {
	var out struct {
		Message string `json:"mensagem"`
	}
	err := c.call(fiber.MethodGet, "/saudacao/"+url.PathEscape(name), nil, &out)
	return out.Message, err
}

// Reset empties the server's stores. The server must run with admin
// endpoints enabled.
func (c *Client) Reset() error {
	return c.call(fiber.MethodPost, "/admin/reset", nil, nil)
}
