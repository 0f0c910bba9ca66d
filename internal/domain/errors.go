package domain

import "errors"

var (
	// ErrBackendUnreachable wraps transport failures talking to the users backend.
	ErrBackendUnreachable = errors.New("users backend unreachable")

	// ErrBackendStatus is matched by errors returned for non-2xx responses.
	ErrBackendStatus = errors.New("users backend returned an error status")

	// ErrBackendResponse wraps response bodies that could not be decoded.
	ErrBackendResponse = errors.New("users backend returned an invalid response")
)

// ErrAlreadyPersisted is returned when a record that already carries an id is sent for creation.
var ErrAlreadyPersisted = errors.New("user already has a backend-assigned id")

// ErrNotFound is matched by backend 404 responses.
var ErrNotFound = errors.New("user not found")
