package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"user-directory/internal/domain"
	"user-directory/internal/repository/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func newBackend(t *testing.T, handler http.HandlerFunc) (domain.UserDirectory, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewUserDirectory(srv.Client(), srv.URL), srv
}

func TestListUsers(t *testing.T) {
	mockUsers := []domain.User{
		{ID: intPtr(1), Name: "Test User 1", Email: "test1@test.com", Designation: "Developer"},
		{ID: intPtr(2), Name: "Test User 2", Email: "test2@test.com", Designation: "Designer"},
	}

	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(mockUsers)
	})

	users, err := dir.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, mockUsers, users)
}

func TestListUsers_PreservesBackendOrder(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":9,"name":"Zed","email":"z@x.com","designation":"Ops"},{"id":1,"name":"Amy","email":"a@x.com","designation":"Dev"}]`)
	})

	users, err := dir.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Zed", users[0].Name)
	assert.Equal(t, "Amy", users[1].Name)
}

func TestListUsers_NullBodyIsEmpty(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "null")
	})

	users, err := dir.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_NoCaching(t *testing.T) {
	var calls int32
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, "[]")
	})

	for i := 0; i < 3; i++ {
		_, err := dir.ListUsers(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCreateUser(t *testing.T) {
	newUser := domain.NewUser("New User", "new@test.com", "Manager")

	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		// The record is sent without an id field at all
		assert.JSONEq(t, `{"name":"New User","email":"new@test.com","designation":"Manager"}`, string(raw))

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &body))
		body["id"] = 3
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})

	created, err := dir.CreateUser(context.Background(), newUser)
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: intPtr(3), Name: "New User", Email: "new@test.com", Designation: "Manager"}, created)
	assert.True(t, created.Persisted())
}

func TestCreateUser_RejectsPersistedRecord(t *testing.T) {
	var calls int32
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := dir.CreateUser(context.Background(), domain.NewUser("Old", "old@test.com", "Dev").WithID(7))
	assert.ErrorIs(t, err, domain.ErrAlreadyPersisted)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestCreateUser_EmptyBodyIsInvalidResponse(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := dir.CreateUser(context.Background(), domain.NewUser("New User", "new@test.com", "Manager"))
	assert.ErrorIs(t, err, domain.ErrBackendResponse)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"null body", http.StatusOK, "null"},
		{"empty object", http.StatusOK, "{}"},
		{"no content", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/users/1", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			assert.NoError(t, dir.DeleteUser(context.Background(), 1))
		})
	}
}

func TestStatusErrors(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := dir.ListUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendStatus)

	var statusErr *rest.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Body)
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	_, err = dir.CreateUser(context.Background(), domain.NewUser("New User", "new@test.com", "Manager"))
	assert.ErrorIs(t, err, domain.ErrBackendStatus)

	err = dir.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrBackendStatus)
}

func TestNotFoundOnDelete(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := dir.DeleteUser(context.Background(), 99)
	var statusErr *rest.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "delete_user")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrBackendStatus)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	dir := rest.NewUserDirectory(http.DefaultClient, url)
	_, err := dir.ListUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
	assert.False(t, errors.Is(err, domain.ErrBackendStatus))
}

func TestCancelledContext(t *testing.T) {
	dir, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "[]")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dir.ListUsers(ctx)
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var path string
	_, srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, "[]")
	})

	dir := rest.NewUserDirectory(srv.Client(), srv.URL+"/")
	_, err := dir.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/users", path)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestInjectedTransport(t *testing.T) {
	var seen *http.Request
	doer := doerFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[{"id":1,"name":"Test User","email":"test@test.com","designation":"Developer"}]`)),
			Header:     make(http.Header),
		}, nil
	})

	dir := rest.NewUserDirectory(doer, "http://localhost:3000")
	users, err := dir.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "http://localhost:3000/users", seen.URL.String())
	assert.Equal(t, "application/json", seen.Header.Get("Accept"))
}
