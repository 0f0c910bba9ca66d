package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// State is the snapshot of a single control.
type State struct {
	Value     string  `json:"value"`
	Valid     bool    `json:"valid"`
	Invalid   bool    `json:"invalid"`
	Touched   bool    `json:"touched"`
	Untouched bool    `json:"untouched"`
	Dirty     bool    `json:"dirty"`
	Pristine  bool    `json:"pristine"`
	Pending   bool    `json:"pending"`
	Errors    *Errors `json:"errors"`
}

// Control is one form field: its value, interaction flags and the failures of
// its rules. Validation is recomputed synchronously on every value change.
type Control struct {
	validate *validator.Validate
	rules    string
	initial  string

	value   string
	touched bool
	dirty   bool

	errors   *Errors
	fieldErr validator.FieldError
}

// NewControl creates a pristine, untouched control. Rules use validator tag
// syntax (e.g. "required,min=4"); an empty rule set is always valid.
func NewControl(validate *validator.Validate, initial, rules string) *Control {
	if validate == nil {
		validate = validator.New()
	}
	c := &Control{
		validate: validate,
		rules:    rules,
		initial:  initial,
		value:    initial,
	}
	c.recompute()
	return c
}

func (c *Control) Value() string { return c.value }

// SetValue replaces the value programmatically. Interaction flags are left alone.
func (c *Control) SetValue(value string) {
	c.value = value
	c.recompute()
}

// Input applies a value typed by the user and marks the control dirty.
func (c *Control) Input(value string) {
	c.dirty = true
	c.SetValue(value)
}

// Blur records loss of focus.
func (c *Control) Blur() { c.MarkAsTouched() }

func (c *Control) MarkAsTouched()   { c.touched = true }
func (c *Control) MarkAsUntouched() { c.touched = false }
func (c *Control) MarkAsDirty()     { c.dirty = true }
func (c *Control) MarkAsPristine()  { c.dirty = false }

// Reset restores the initial value and clears interaction flags.
func (c *Control) Reset() {
	c.touched = false
	c.dirty = false
	c.SetValue(c.initial)
}

func (c *Control) Valid() bool     { return c.errors == nil }
func (c *Control) Invalid() bool   { return c.errors != nil }
func (c *Control) Touched() bool   { return c.touched }
func (c *Control) Untouched() bool { return !c.touched }
func (c *Control) Dirty() bool     { return c.dirty }
func (c *Control) Pristine() bool  { return !c.dirty }

// Pending is always false: there are no asynchronous validators.
func (c *Control) Pending() bool { return false }

// Errors returns a copy of the current failures, or nil when the control is valid.
func (c *Control) Errors() *Errors {
	if c.errors == nil {
		return nil
	}
	errs := *c.errors
	if c.errors.MinLength != nil {
		ml := *c.errors.MinLength
		errs.MinLength = &ml
	}
	return &errs
}

// HasError reports whether the named failure is currently present.
func (c *Control) HasError(name string) bool {
	return c.errors.Has(name)
}

// Messages returns user-facing messages for the current failures.
func (c *Control) Messages(label string) []string {
	if c.fieldErr == nil {
		return nil
	}
	return []string{formatSingleError(label, c.fieldErr)}
}

func (c *Control) State() State {
	return State{
		Value:     c.value,
		Valid:     c.Valid(),
		Invalid:   c.Invalid(),
		Touched:   c.Touched(),
		Untouched: c.Untouched(),
		Dirty:     c.Dirty(),
		Pristine:  c.Pristine(),
		Pending:   c.Pending(),
		Errors:    c.Errors(),
	}
}

func (c *Control) recompute() {
	c.errors = nil
	c.fieldErr = nil
	if c.rules == "" {
		return
	}

	err := c.validate.Var(c.value, c.rules)
	if err == nil {
		return
	}

	// Only the first failing tag is reported, e.g. an empty name is "required", not "minlength".
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		c.fieldErr = validationErrs[0]
		c.errors = fromFieldError(validationErrs[0], c.value)
		return
	}
	c.errors = &Errors{Other: map[string]string{"invalid": err.Error()}}
}
