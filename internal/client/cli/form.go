package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/microbank/securebank/internal/client/api"
	"github.com/microbank/securebank/internal/client/forms"
	"github.com/microbank/securebank/internal/client/validation"
	"github.com/microbank/securebank/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errCanceled is returned by runForm when the user aborts with /cancel.
var errCanceled = errors.New("form canceled")

// formSpec describes one interactive form: its validation schema, the
// builder producing the field descriptors for the current state, an
// optional gate that can block an otherwise valid submission with an
// advisory message, and the submit callback.
type formSpec struct {
	schema  validation.Schema
	fields  func(args forms.BuilderArgs) []forms.Field
	blocked func(s forms.State) (string, bool)
	submit  func(ctx context.Context, values map[string]string) error
}

// runForm drives one form to completion. Each field is prompted in
// descriptor order; every keystroke-equivalent goes through the reducer via
// the descriptor callbacks, so validation and error display follow the same
// rules as the rendered output. Typing /cancel aborts the form, /toggle
// flips password visibility.
//
// After all fields are filled a submit is attempted. Invalid forms loop
// back to filling (already valid values are kept by pressing Enter). A
// *api.FieldError from the submit callback is attached to its field and
// the form loops; any other submit error is returned to the caller.
func (a *App) runForm(ctx context.Context, spec formSpec) error {
	state := forms.NewState(nil)

	dispatch := func(ev forms.Event) {
		state = forms.Reduce(state, spec.schema, ev)
	}
	build := func() []forms.Field {
		return spec.fields(forms.BuilderArgs{
			State:    state,
			OnChange: func(name, value string) { dispatch(forms.ValueChanged{Field: name, Value: value}) },
			OnBlur:   func(name string) { dispatch(forms.Blurred{Field: name}) },
			OnToggle: func() { dispatch(forms.PasswordToggled{}) },
		})
	}

	for {
		for _, f := range build() {
			if err := a.promptField(f, &state, build); err != nil {
				return err
			}
		}

		dispatch(forms.SubmitAttempted{})
		if err := forms.Render(a.out, build()); err != nil {
			return err
		}

		if !state.Submitting {
			// validation errors are on screen; back to filling
			continue
		}
		if spec.blocked != nil {
			if msg, blocked := spec.blocked(state); blocked {
				fmt.Fprintln(a.out, msg)
				dispatch(forms.SubmitFailed{})
				continue
			}
		}

		err := spec.submit(ctx, state.Values)
		if err == nil {
			dispatch(forms.SubmitSucceeded{})
			return nil
		}

		var fieldErr *api.FieldError
		if errors.As(err, &fieldErr) {
			dispatch(forms.SubmitFailed{Field: fieldErr.Field, Message: fieldErr.Message})
			fmt.Fprintf(a.out, "  ! %s\n", fieldErr.Message)
			continue
		}
		dispatch(forms.SubmitFailed{})
		return err
	}
}

// promptField reads one value for f, dispatching events through the field's
// own callbacks. Pressing Enter keeps an existing value; a value that fails
// validation is re-prompted immediately.
func (a *App) promptField(f forms.Field, state *forms.State, build func() []forms.Field) error {
	in, ok := forms.InputOf(f)
	if !ok {
		return nil
	}

	for {
		if fresh := fieldByName(build(), in.Name); fresh != nil {
			f = fresh
		}

		value, err := a.readValue(f, in)
		if err != nil {
			return err
		}

		switch value {
		case "/cancel":
			return errCanceled
		case "/toggle":
			if pf, isPassword := f.(forms.PasswordField); isPassword {
				pf.OnToggle()
			}
			continue
		}

		if value == "" && state.Values[in.Name] != "" {
			in.OnBlur(in.Name)
			return nil
		}

		in.OnChange(in.Name, value)
		in.OnBlur(in.Name)

		if msg := state.ErrorFor(in.Name); msg != "" {
			fmt.Fprintf(a.out, "  ! %s\n", msg)
			continue
		}
		return nil
	}
}

// readValue reads the raw input for one field. Password fields read without
// echo unless visibility has been toggled on.
func (a *App) readValue(f forms.Field, in forms.Input) (string, error) {
	if pf, isPassword := f.(forms.PasswordField); isPassword && !pf.Visible {
		pw, err := getPassword(in.Label, a.out)
		if err != nil {
			return "", err
		}
		defer shared.WipeByteArray(pw)
		return string(pw), nil
	}
	return getSimpleText(a.reader, in.Label, a.out)
}

func fieldByName(fields []forms.Field, name string) forms.Field {
	for _, f := range fields {
		if in, ok := forms.InputOf(f); ok && in.Name == name {
			return f
		}
	}
	return nil
}
