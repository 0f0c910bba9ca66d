package usecase

import (
	"user-directory/internal/domain"
	"user-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactFormTitle is the heading rendered above the contact form.
const ContactFormTitle = "User Contact Form Example"

// Contact form control names and their rules.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldDesignation = "designation"

	nameRules        = "required,min=4"
	emailRules       = "required,email"
	designationRules = "required"
)

// ContactFormController owns the contact form model and its submitted flag.
// It never talks to the user directory itself.
type ContactFormController struct {
	Text string

	validate  *validator.Validate
	form      *validation.Group
	submitted bool
}

func NewContactFormController(validate *validator.Validate) *ContactFormController {
	if validate == nil {
		validate = validator.New()
	}
	c := &ContactFormController{
		Text:     ContactFormTitle,
		validate: validate,
	}
	c.CreateForm()
	return c
}

// CreateForm (re)initializes the three controls, empty, with their validators.
// The submitted flag is not touched.
func (c *ContactFormController) CreateForm() {
	c.form = validation.NewGroup(c.validate,
		validation.Field{Name: FieldName, Rules: nameRules},
		validation.Field{Name: FieldEmail, Rules: emailRules},
		validation.Field{Name: FieldDesignation, Rules: designationRules},
	)
}

// OnSubmit records a submit attempt regardless of validity.
func (c *ContactFormController) OnSubmit() {
	c.submitted = true
}

func (c *ContactFormController) Form() *validation.Group { return c.form }

func (c *ContactFormController) Submitted() bool { return c.submitted }

func (c *ContactFormController) Valid() bool { return c.form.Valid() }

// Patch sets the given form values; empty strings in v are applied too.
func (c *ContactFormController) Patch(v domain.ContactForm) {
	c.form.PatchValue(map[string]string{
		FieldName:        v.Name,
		FieldEmail:       v.Email,
		FieldDesignation: v.Designation,
	})
}

func (c *ContactFormController) Value() domain.ContactForm {
	return domain.ContactForm{
		Name:        c.form.Get(FieldName).Value(),
		Email:       c.form.Get(FieldEmail).Value(),
		Designation: c.form.Get(FieldDesignation).Value(),
	}
}

func (c *ContactFormController) State() domain.ContactFormState {
	return domain.ContactFormState{
		Title:     c.Text,
		Fields:    c.form.States(),
		Value:     c.Value(),
		Valid:     c.form.Valid(),
		Submitted: c.submitted,
		Messages:  c.form.Messages(),
	}
}
