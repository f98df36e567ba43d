package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/microbank/securebank/internal/client/api"
	"github.com/microbank/securebank/internal/client/forms"
	"github.com/microbank/securebank/internal/client/session"
	"github.com/microbank/securebank/internal/client/validation"
)

// Login runs the sign-in form and authenticates the session. Field-level
// rejections from the service re-prompt inside the form; any other failure
// prints the generic sign-in notice.
func (a *App) Login(ctx context.Context) error {
	err := a.runForm(ctx, formSpec{
		schema: validation.Login(),
		fields: forms.Login,
		submit: func(ctx context.Context, values map[string]string) error {
			return a.session.Login(ctx, session.Credentials{
				Email:    values["email"],
				Password: values["password"],
			})
		},
	})
	if err != nil {
		if errors.Is(err, errCanceled) {
			fmt.Fprintln(a.out, "Canceled.")
			return nil
		}
		fmt.Fprintln(a.out, "Login failed. Please check your credentials.")
		return err
	}

	fmt.Fprintln(a.out, "Login successful!")
	if a.isRestricted() {
		a.printRestricted()
	}
	return nil
}

// Register runs the create-account form. A fresh account still needs to
// sign in afterwards; registration does not start a session.
func (a *App) Register(ctx context.Context) error {
	err := a.runForm(ctx, formSpec{
		schema: validation.Registration(),
		fields: forms.Registration,
		submit: func(ctx context.Context, values map[string]string) error {
			return a.api.Register(ctx, api.RegisterRequest{
				Name:            values["name"],
				Email:           values["email"],
				Password:        values["password"],
				ConfirmPassword: values["confirmPassword"],
			})
		},
	})
	if err != nil {
		if errors.Is(err, errCanceled) {
			fmt.Fprintln(a.out, "Canceled.")
			return nil
		}
		fmt.Fprintln(a.out, "Registration failed. Please try again.")
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! You can now log in.")
	return nil
}

// Logout ends the session. Local state is cleared even when the service
// cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	a.showBalance = false
	fmt.Fprintln(a.out, "You have been signed out.")
	return nil
}

func (a *App) printRestricted() {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Account Restricted")
	fmt.Fprintln(a.out, "Your account has been restricted. Please contact support for assistance.")
}
