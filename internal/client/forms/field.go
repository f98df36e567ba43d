// Package forms implements the declarative form engine behind the terminal
// screens: a closed set of field descriptors, pure builders that produce
// them from form state, a reducer that applies input events, and a renderer
// that writes descriptors in order.
package forms

// Kind discriminates the closed set of field variants.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindButton   Kind = "button"
	KindSubmit   Kind = "submit"
)

// Field is the closed union of renderable form controls. Only the variants
// in this package implement it, so dispatch over the set is exhaustive.
type Field interface {
	Kind() Kind
	sealed()
}

// Input carries the attributes shared by every non-button field. The Error
// message is already display-gated by the builder: it is set only when the
// field has been touched and is invalid.
type Input struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	Value       string
	Error       string
	OnChange    func(name, value string)
	OnBlur      func(name string)
}

// TextField is a plain single-line input.
type TextField struct {
	Input
}

func (TextField) Kind() Kind { return KindText }
func (TextField) sealed()    {}

// EmailField is a single-line input holding an email address.
type EmailField struct {
	Input
}

func (EmailField) Kind() Kind { return KindEmail }
func (EmailField) sealed()    {}

// PasswordField is a masked input with a visibility toggle. Visible mirrors
// the form-wide flag: every password field of one form shows the same state.
type PasswordField struct {
	Input
	Visible  bool
	OnToggle func()
}

func (PasswordField) Kind() Kind { return KindPassword }
func (PasswordField) sealed()    {}

// NumberField is a numeric input. Step is the entry granularity hint and is
// only present on this variant.
type NumberField struct {
	Input
	Step string
}

func (NumberField) Kind() Kind { return KindNumber }
func (NumberField) sealed()    {}

// ButtonField is an actionable control. A disabled button suppresses
// interaction; Icon adds a trailing indicator.
type ButtonField struct {
	Submit   bool
	Text     string
	Disabled bool
	Icon     bool
}

func (b ButtonField) Kind() Kind {
	if b.Submit {
		return KindSubmit
	}
	return KindButton
}
func (ButtonField) sealed() {}

// InputOf returns the shared input attributes of f, or ok=false for
// button controls.
func InputOf(f Field) (Input, bool) {
	switch f := f.(type) {
	case TextField:
		return f.Input, true
	case EmailField:
		return f.Input, true
	case PasswordField:
		return f.Input, true
	case NumberField:
		return f.Input, true
	default:
		return Input{}, false
	}
}

// SubmitButton returns the first submit control in fields, if any.
func SubmitButton(fields []Field) (ButtonField, bool) {
	for _, f := range fields {
		if b, ok := f.(ButtonField); ok && b.Submit {
			return b, true
		}
	}
	return ButtonField{}, false
}
