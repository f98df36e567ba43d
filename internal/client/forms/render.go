package forms

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Render writes every field to w in sequence; descriptor order is the
// form's visual order. Dispatch over the closed variant set is exhaustive.
func Render(w io.Writer, fields []Field) error {
	for _, f := range fields {
		var err error
		switch f := f.(type) {
		case TextField:
			err = renderInput(w, f.Input, f.Value)
		case EmailField:
			err = renderInput(w, f.Input, f.Value)
		case NumberField:
			err = renderInput(w, f.Input, f.Value)
		case PasswordField:
			err = renderPassword(w, f)
		case ButtonField:
			err = renderButton(w, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderInput(w io.Writer, in Input, display string) error {
	if display == "" {
		display = fmt.Sprintf("(%s)", in.Placeholder)
	}
	if _, err := fmt.Fprintf(w, "%s\n> %s\n", in.Label, display); err != nil {
		return err
	}
	if in.Error != "" {
		if _, err := fmt.Fprintf(w, "  ! %s\n", in.Error); err != nil {
			return err
		}
	}
	return nil
}

func renderPassword(w io.Writer, f PasswordField) error {
	display := f.Value
	hint := "[hide]"
	if !f.Visible {
		display = strings.Repeat("•", utf8.RuneCountInString(f.Value))
		hint = "[show]"
	}
	if display == "" {
		display = fmt.Sprintf("(%s)", f.Placeholder)
	}
	if _, err := fmt.Fprintf(w, "%s\n> %s  %s\n", f.Label, display, hint); err != nil {
		return err
	}
	if f.Error != "" {
		if _, err := fmt.Fprintf(w, "  ! %s\n", f.Error); err != nil {
			return err
		}
	}
	return nil
}

func renderButton(w io.Writer, f ButtonField) error {
	label := f.Text
	if f.Icon {
		label += " >"
	}
	suffix := ""
	if f.Disabled {
		suffix = " (disabled)"
	}
	_, err := fmt.Fprintf(w, "[ %s ]%s\n", label, suffix)
	return err
}
