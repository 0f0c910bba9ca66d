package usecase

import (
	"context"
	"sync"

	"user-directory/internal/domain"
	"user-directory/pkg/logger"
)

// UserListController holds the users shown by the list view and a loading flag.
// Users are only ever replaced wholesale by a fresh fetch.
//
// Fetches may overlap when the controller is shared between requests. Each fetch
// is stamped with a generation; only the most recently started one may write its
// result, and loading stays set while any fetch is outstanding.
type UserListController struct {
	directory domain.UserDirectory

	mu       sync.RWMutex
	users    []domain.User
	err      error
	gen      uint64
	inflight int
}

func NewUserListController(directory domain.UserDirectory) *UserListController {
	return &UserListController{
		directory: directory,
		users:     []domain.User{},
	}
}

// Init fetches the users once. Loading is cleared on success and on failure;
// a failure keeps the previously fetched users and records the error.
func (c *UserListController) Init(ctx context.Context) error {
	_, err := c.Refresh(ctx)
	return err
}

// Refresh runs one fetch and returns the list state as of its completion.
// A fetch superseded by a newer one is discarded: it writes nothing, and it
// returns the current state with no error.
func (c *UserListController) Refresh(ctx context.Context) (domain.UserListState, error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.inflight++
	c.mu.Unlock()

	// The lock is not held across the request so Loading can be observed meanwhile.
	users, err := c.directory.ListUsers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if gen != c.gen {
		logger.Log.Debug("Discarding superseded users fetch", "generation", gen, "latest", c.gen)
		return c.snapshot(), nil
	}

	if err != nil {
		c.err = err
		logger.Log.Error("Failed to load users", "error", err)
		return c.snapshot(), err
	}
	c.users = users
	c.err = nil
	return c.snapshot(), nil
}

func (c *UserListController) Users() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyUsers(c.users)
}

func (c *UserListController) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inflight > 0
}

// Err is the error of the last applied fetch, nil when it succeeded.
func (c *UserListController) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *UserListController) State() domain.UserListState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// snapshot must be called with mu held.
func (c *UserListController) snapshot() domain.UserListState {
	state := domain.UserListState{
		Users:   copyUsers(c.users),
		Loading: c.inflight > 0,
	}
	if c.err != nil {
		state.Error = c.err.Error()
	}
	return state
}

func copyUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}
