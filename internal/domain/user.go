package domain

import "context"

// User is a directory entry. ID is nil until the backend has persisted the record.
type User struct {
	ID          *int   `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

// NewUser builds a client-side record that has not been persisted yet.
func NewUser(name, email, designation string) User {
	return User{
		Name:        name,
		Email:       email,
		Designation: designation,
	}
}

// Persisted reports whether the backend assigned an id to the record.
func (u User) Persisted() bool {
	return u.ID != nil
}

// WithID returns a copy of u carrying the backend-assigned id.
func (u User) WithID(id int) User {
	u.ID = &id
	return u
}

// UserDirectory is the data-access contract for the users REST backend.
// Every call issues a fresh request; nothing is cached or retried.
type UserDirectory interface {
	// ListUsers returns all users in the order the backend returns them.
	ListUsers(ctx context.Context) ([]User, error)
	// CreateUser sends an unpersisted record and returns the backend-assigned one.
	CreateUser(ctx context.Context, user User) (*User, error)
	// DeleteUser removes the record with the given id.
	DeleteUser(ctx context.Context, id int) error
}

// UserListState is the list view snapshot rendered by the presentation layer.
type UserListState struct {
	Users   []User `json:"users"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}
