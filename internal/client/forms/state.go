package forms

import (
	"github.com/microbank/securebank/internal/client/validation"
)

// State holds the transient data of one form instance: current values,
// validation results, which fields have been touched, whether a submission
// is in flight, and the form-wide password visibility flag.
type State struct {
	Values          map[string]string
	Errors          map[string]string
	Touched         map[string]bool
	Submitting      bool
	PasswordVisible bool
}

// NewState returns a fresh form state seeded with the given initial values.
func NewState(initial map[string]string) State {
	s := State{
		Values:  make(map[string]string, len(initial)),
		Errors:  make(map[string]string),
		Touched: make(map[string]bool, len(initial)),
	}
	for k, v := range initial {
		s.Values[k] = v
	}
	return s
}

func (s State) clone() State {
	next := State{
		Values:          make(map[string]string, len(s.Values)),
		Errors:          make(map[string]string, len(s.Errors)),
		Touched:         make(map[string]bool, len(s.Touched)),
		Submitting:      s.Submitting,
		PasswordVisible: s.PasswordVisible,
	}
	for k, v := range s.Values {
		next.Values[k] = v
	}
	for k, v := range s.Errors {
		next.Errors[k] = v
	}
	for k, v := range s.Touched {
		next.Touched[k] = v
	}
	return next
}

// Valid reports whether the last validation pass found no errors.
func (s State) Valid() bool {
	return len(s.Errors) == 0
}

// ErrorFor returns the message to display for a field. Untouched fields
// never display errors, even when invalid.
func (s State) ErrorFor(name string) string {
	if s.Touched[name] {
		return s.Errors[name]
	}
	return ""
}

// Event is one form interaction applied through Reduce.
type Event interface {
	isEvent()
}

// ValueChanged updates one field's value and re-runs validation.
type ValueChanged struct {
	Field string
	Value string
}

// Blurred marks a field as touched after it lost focus.
type Blurred struct {
	Field string
}

// PasswordToggled flips password visibility for the whole form.
type PasswordToggled struct{}

// SubmitAttempted marks every field touched, re-validates, and starts a
// submission when the form is valid.
type SubmitAttempted struct{}

// SubmitSucceeded resets the form after a successful submission.
type SubmitSucceeded struct{}

// SubmitFailed ends a submission; a non-empty Field attaches the server's
// message to that field, same as a local validation error.
type SubmitFailed struct {
	Field   string
	Message string
}

func (ValueChanged) isEvent()    {}
func (Blurred) isEvent()         {}
func (PasswordToggled) isEvent() {}
func (SubmitAttempted) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Reduce applies one event to the form state and returns the next state.
// The input state is never mutated. Validation re-runs on every value
// change and on submit attempts.
func Reduce(s State, schema validation.Schema, ev Event) State {
	next := s.clone()

	switch e := ev.(type) {
	case ValueChanged:
		next.Values[e.Field] = e.Value
		next.Errors = schema.Validate(next.Values)

	case Blurred:
		next.Touched[e.Field] = true

	case PasswordToggled:
		next.PasswordVisible = !next.PasswordVisible

	case SubmitAttempted:
		for _, f := range schema.Fields() {
			next.Touched[f] = true
		}
		for f := range next.Values {
			next.Touched[f] = true
		}
		next.Errors = schema.Validate(next.Values)
		next.Submitting = next.Valid()

	case SubmitSucceeded:
		for k := range next.Values {
			next.Values[k] = ""
		}
		next.Errors = make(map[string]string)
		next.Touched = make(map[string]bool)
		next.Submitting = false

	case SubmitFailed:
		next.Submitting = false
		if e.Field != "" {
			next.Errors[e.Field] = e.Message
			next.Touched[e.Field] = true
		}
	}

	return next
}
