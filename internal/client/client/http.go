package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"github.com/dmitrijs2005/usuarios/internal/common"
	"github.com/dmitrijs2005/usuarios/internal/logging"
)

// maxMessageLen caps how much of a non-JSON error body is surfaced.
const maxMessageLen = 512

// Options configures an HTTPClient. Everything the client needs comes from
// here; there is no package-level state.
type Options struct {
	BaseURL     string
	Headers     http.Header
	Timeout     time.Duration
	InsecureTLS bool

	// IDRefs selects the bare IdDepartamento/IdCargo payload encoding.
	IDRefs bool

	// HTTPClient overrides the underlying client (tests, custom transports).
	// When set, InsecureTLS is ignored.
	HTTPClient *http.Client

	Logger logging.Logger
}

// HTTPClient implements Client over the REST API with JSON bodies.
type HTTPClient struct {
	baseURL string
	headers http.Header
	timeout time.Duration
	idRefs  bool
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
		if opts.InsecureTLS {
			tr := http.DefaultTransport.(*http.Transport).Clone()
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev backends
			hc.Transport = tr
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		headers: opts.Headers.Clone(),
		timeout: opts.Timeout,
		idRefs:  opts.IDRefs,
		http:    hc,
		logger:  logger,
	}, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, "list users", http.MethodGet, common.UsersPath, nil, &users, false); err != nil {
		return nil, err
	}
	return nonNil(users), nil
}

func (c *HTTPClient) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var depts []models.Department
	if err := c.do(ctx, "list departments", http.MethodGet, common.DepartmentsPath, nil, &depts, false); err != nil {
		return nil, err
	}
	return nonNil(depts), nil
}

func (c *HTTPClient) ListPositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if err := c.do(ctx, "list positions", http.MethodGet, common.PositionsPath, nil, &positions, false); err != nil {
		return nil, err
	}
	return nonNil(positions), nil
}

// CreateUser posts payload without an id. Any 2xx is success; the body is
// decoded when it is a user document and ignored otherwise (bare id, true,
// empty), yielding a zero User.
func (c *HTTPClient) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	payload.ID = ""
	payload.IDRefs = c.idRefs

	var raw json.RawMessage
	if err := c.do(ctx, "create user", http.MethodPost, common.UsersPath, payload, &raw, true); err != nil {
		return models.User{}, err
	}
	return c.writtenUser(ctx, "create user", raw), nil
}

// UpdateUser puts payload to /usuarios/{id}; the body id is forced to id.
// The response body is handled as in CreateUser.
func (c *HTTPClient) UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error) {
	payload.ID = id
	payload.IDRefs = c.idRefs

	var raw json.RawMessage
	if err := c.do(ctx, "update user", http.MethodPut, userPath(id), payload, &raw, true); err != nil {
		return models.User{}, err
	}
	return c.writtenUser(ctx, "update user", raw), nil
}

// writtenUser decodes a write response on a best-effort basis.
func (c *HTTPClient) writtenUser(ctx context.Context, op string, raw json.RawMessage) models.User {
	if len(raw) == 0 || raw[0] != '{' {
		return models.User{}
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		c.logger.Debug(ctx, "ignoring undecodable write response", "op", op, "error", err)
		return models.User{}
	}
	return u
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "delete user", http.MethodDelete, userPath(id), nil, nil, true)
}

// Ping succeeds when the server answers at all, whatever the status.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+common.DepartmentsPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Op: "ping", Kind: common.ErrTransport, Err: err}
	}
	resp.Body.Close()
	return nil
}

func userPath(id string) string {
	return common.UsersPath + "/" + url.PathEscape(id)
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, in, out any, write bool) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return &APIError{Op: op, Kind: common.ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.logger.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))
	if err != nil {
		return &APIError{Op: op, Status: resp.StatusCode, Kind: common.ErrTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: errorMessage(data),
			Kind:    classify(resp.StatusCode, write),
		}
	}

	data = bytes.TrimSpace(data)
	if out == nil || len(data) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Op: op, Status: resp.StatusCode, Message: "malformed response body", Kind: common.ErrServer, Err: err}
	}
	return nil
}

// classify maps a non-2xx status onto the error taxonomy. Reads only fail
// as server errors: a list has neither an id to miss nor user input to
// blame. For writes 404 is not-found and other 4xx are validation failures.
func classify(status int, write bool) error {
	switch {
	case status == http.StatusNotFound && write:
		return common.ErrNotFound
	case status >= 500:
		return common.ErrServer
	case status >= 400 && write:
		return common.ErrValidation
	default:
		return common.ErrServer
	}
}

// errorMessage extracts the human readable part of an error body: the
// problem-details title, a "message" field, or the raw text.
func errorMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	var doc struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.Title != "" {
			return doc.Title
		}
		if doc.Message != "" {
			return doc.Message
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}

	if data[0] == '{' || data[0] == '[' {
		return ""
	}
	if len(data) > maxMessageLen {
		data = data[:maxMessageLen]
	}
	return string(data)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
