package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// APIError is a non-2xx answer from the resume service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resume api: %d %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// ErrUnavailable is returned without contacting the server while the circuit
// breaker is open.
var ErrUnavailable = errors.New("resume api unavailable")

const breakerThreshold = 5

// Client talks to the /api endpoints of the resume service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "resume-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
		// Rejections such as 400 and 404 mean the server is healthy.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < http.StatusInternalServerError
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		breaker:    breaker,
	}, nil
}

func NewFromConfig(cfg config.Config) (*Client, error) {
	return New(cfg.Client.APIURL, &http.Client{Timeout: cfg.Client.Timeout})
}

func (c *Client) Create(ctx context.Context, candidate resume.Candidate) (*resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodPost, "/resumes", candidate, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) List(ctx context.Context) ([]*resume.Resume, error) {
	out := []*resume.Resume{}
	if err := c.do(ctx, http.MethodGet, "/resumes", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodGet, "/resumes/"+id.String(), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id uuid.UUID, candidate resume.Candidate) (*resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodPut, "/resumes/"+id.String(), candidate, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/resumes/"+id.String(), nil, nil, nil)
}

// Health returns the liveness message of the server.
func (c *Client) Health(ctx context.Context) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, data any, message *string) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.exchange(ctx, method, path, body, data, message)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func (c *Client) exchange(ctx context.Context, method, path string, body, data any, message *string) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	if message != nil {
		*message = env.Message
	}
	return nil
}
