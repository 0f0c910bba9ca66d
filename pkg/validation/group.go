package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Field declares a control of a Group.
type Field struct {
	Name    string
	Initial string
	Rules   string
}

// Group is an ordered set of named controls. The group is valid when every
// control is valid; there are no cross-field rules.
type Group struct {
	names    []string
	controls map[string]*Control
}

func NewGroup(validate *validator.Validate, fields ...Field) *Group {
	if validate == nil {
		validate = validator.New()
	}
	g := &Group{
		names:    make([]string, 0, len(fields)),
		controls: make(map[string]*Control, len(fields)),
	}
	for _, f := range fields {
		if _, exists := g.controls[f.Name]; !exists {
			g.names = append(g.names, f.Name)
		}
		g.controls[f.Name] = NewControl(validate, f.Initial, f.Rules)
	}
	return g
}

// Get returns the named control, or nil when the group has no such control.
func (g *Group) Get(name string) *Control {
	return g.controls[name]
}

// Names returns control names in declaration order.
func (g *Group) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// PatchValue sets the given values; unknown names are ignored.
func (g *Group) PatchValue(values map[string]string) {
	for name, v := range values {
		if c, ok := g.controls[name]; ok {
			c.SetValue(v)
		}
	}
}

// SetValue sets every control. All control names must be present and no others.
func (g *Group) SetValue(values map[string]string) error {
	for name := range values {
		if _, ok := g.controls[name]; !ok {
			return fmt.Errorf("validation: no control named %q", name)
		}
	}
	for _, name := range g.names {
		if _, ok := values[name]; !ok {
			return fmt.Errorf("validation: missing value for control %q", name)
		}
	}
	g.PatchValue(values)
	return nil
}

func (g *Group) Value() map[string]string {
	out := make(map[string]string, len(g.names))
	for _, name := range g.names {
		out[name] = g.controls[name].Value()
	}
	return out
}

func (g *Group) Valid() bool {
	for _, c := range g.controls {
		if c.Invalid() {
			return false
		}
	}
	return true
}

func (g *Group) Invalid() bool { return !g.Valid() }

func (g *Group) Touched() bool {
	for _, c := range g.controls {
		if c.Touched() {
			return true
		}
	}
	return false
}

func (g *Group) Dirty() bool {
	for _, c := range g.controls {
		if c.Dirty() {
			return true
		}
	}
	return false
}

func (g *Group) MarkAllAsTouched() {
	for _, c := range g.controls {
		c.MarkAsTouched()
	}
}

func (g *Group) Reset() {
	for _, c := range g.controls {
		c.Reset()
	}
}

func (g *Group) States() map[string]State {
	out := make(map[string]State, len(g.controls))
	for name, c := range g.controls {
		out[name] = c.State()
	}
	return out
}

// Messages returns messages for invalid controls the user has touched, in
// declaration order. This mirrors when a form shows inline errors.
func (g *Group) Messages() []string {
	var messages []string
	for _, name := range g.names {
		c := g.controls[name]
		if c.Invalid() && c.Touched() {
			messages = append(messages, c.Messages(getFieldLabel(name))...)
		}
	}
	return messages
}
