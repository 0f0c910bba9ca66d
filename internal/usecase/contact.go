package usecase

import (
	"context"
	"fmt"

	"user-directory/internal/domain"
	"user-directory/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	directory domain.UserDirectory
	validate  *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(directory domain.UserDirectory, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		directory: directory,
		validate:  validate,
	}
}

func (uc *contactUsecase) NewForm() domain.ContactFormState {
	return NewContactFormController(uc.validate).State()
}

// SubmitContact runs the form with the submitted values and creates the user when
// the form is valid. An invalid form is returned as-is and nothing is sent.
func (uc *contactUsecase) SubmitContact(ctx context.Context, form domain.ContactForm) (*domain.ContactSubmission, error) {
	ctrl := NewContactFormController(uc.validate)
	ctrl.Patch(form)
	ctrl.Form().MarkAllAsTouched()
	ctrl.OnSubmit()

	submission := &domain.ContactSubmission{Form: ctrl.State()}
	if !ctrl.Valid() {
		return submission, nil
	}

	created, err := uc.directory.CreateUser(ctx, ctrl.Value().ToUser())
	if err != nil {
		return submission, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Log.Info("User created from contact form", "email", created.Email, "persisted", created.Persisted())
	submission.User = created
	return submission, nil
}

type userListUsecase struct {
	directory domain.UserDirectory
	list      *UserListController
}

// NewUserListUsecase creates the usecase behind the list view
func NewUserListUsecase(directory domain.UserDirectory) domain.UserListUsecase {
	return &userListUsecase{
		directory: directory,
		list:      NewUserListController(directory),
	}
}

func (uc *userListUsecase) Load(ctx context.Context) (domain.UserListState, error) {
	return uc.list.Refresh(ctx)
}

// DeleteUser removes the user, then re-fetches instead of editing the list locally.
func (uc *userListUsecase) DeleteUser(ctx context.Context, id int) (domain.UserListState, error) {
	if err := uc.directory.DeleteUser(ctx, id); err != nil {
		return uc.list.State(), fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	logger.Log.Info("User deleted", "id", id)
	return uc.Load(ctx)
}
