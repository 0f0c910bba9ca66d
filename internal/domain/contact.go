package domain

import (
	"context"

	"user-directory/pkg/validation"
)

// ContactForm is the value of the contact form.
type ContactForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

// ToUser converts the form value into an unpersisted User.
func (f ContactForm) ToUser() User {
	return NewUser(f.Name, f.Email, f.Designation)
}

// ContactFormState is the form snapshot rendered by the presentation layer.
type ContactFormState struct {
	Title     string                      `json:"title"`
	Fields    map[string]validation.State `json:"fields"`
	Value     ContactForm                 `json:"value"`
	Valid     bool                        `json:"valid"`
	Submitted bool                        `json:"submitted"`
	Messages  []string                    `json:"messages,omitempty"`
}

// ContactSubmission is the outcome of submitting the contact form.
// User is nil when the form was invalid and nothing was sent.
type ContactSubmission struct {
	Form ContactFormState `json:"form"`
	User *User            `json:"user,omitempty"`
}

// ContactUsecase glues the contact form to the user directory
type ContactUsecase interface {
	// NewForm returns the state of a freshly created, empty form
	NewForm() ContactFormState
	// SubmitContact validates the form and creates the user when it is valid
	SubmitContact(ctx context.Context, form ContactForm) (*ContactSubmission, error)
}

// UserListUsecase drives the user list view
type UserListUsecase interface {
	// Load fetches the users and returns the resulting list state
	Load(ctx context.Context) (UserListState, error)
	// DeleteUser removes a user and reloads the list
	DeleteUser(ctx context.Context, id int) (UserListState, error)
}
