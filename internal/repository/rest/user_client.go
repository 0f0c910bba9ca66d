package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"user-directory/internal/domain"
	"user-directory/pkg/logger"
	"user-directory/pkg/metrics"
)

// Operation names, used in errors, logs and metric labels
const (
	opListUsers  = "list_users"
	opCreateUser = "create_user"
	opDeleteUser = "delete_user"
)

// maxErrorBody bounds how much of a failed response body is kept for the error.
const maxErrorBody = 4 << 10

// HTTPDoer is the transport capability the directory needs. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: users backend returned status %d", e.Operation, e.StatusCode)
}

// Is makes errors.Is(err, domain.ErrBackendStatus) match any StatusError,
// and domain.ErrNotFound match a 404.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrBackendStatus:
		return true
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

type userDirectory struct {
	client  HTTPDoer
	baseURL string
}

// NewUserDirectory returns a UserDirectory talking to the REST backend at baseURL
// (e.g. http://localhost:3000) through the given transport.
func NewUserDirectory(client HTTPDoer, baseURL string) domain.UserDirectory {
	return &userDirectory{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *userDirectory) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.do(ctx, opListUsers, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	// A "null" body means no users, not a failure
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *userDirectory) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.Persisted() {
		return nil, fmt.Errorf("%s: %w", opCreateUser, domain.ErrAlreadyPersisted)
	}

	var created domain.User
	if err := r.do(ctx, opCreateUser, http.MethodPost, "/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *userDirectory) DeleteUser(ctx context.Context, id int) error {
	return r.do(ctx, opDeleteUser, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil)
}

// do sends one request and decodes a 2xx JSON body into out. With a nil out the body is discarded.
func (r *userDirectory) do(ctx context.Context, op, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		metrics.ObserveBackendCall(op, metrics.OutcomeUnreachable, time.Since(start))
		logger.Log.Warn("Users backend unreachable", "operation", op, "url", req.URL.String(), "error", err)
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.ObserveBackendCall(op, metrics.OutcomeStatus, time.Since(start))
		logger.Log.Warn("Users backend returned error status", "operation", op, "status", resp.StatusCode)
		return &StatusError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.ObserveBackendCall(op, metrics.OutcomeSuccess, time.Since(start))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ObserveBackendCall(op, metrics.OutcomeInvalid, time.Since(start))
		logger.Log.Warn("Users backend returned undecodable body", "operation", op, "error", err)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty response body")
		}
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendResponse, err)
	}

	metrics.ObserveBackendCall(op, metrics.OutcomeSuccess, time.Since(start))
	return nil
}
