package forms

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/models"
)

// BuilderArgs is everything a form descriptor builder needs: the current
// form state plus the callbacks its descriptors should carry. Builders are
// pure; they only read the state and wire the callbacks through.
type BuilderArgs struct {
	State    State
	OnChange func(name, value string)
	OnBlur   func(name string)
	OnToggle func()
}

func (a BuilderArgs) input(name, label, placeholder string) Input {
	return Input{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Required:    true,
		Value:       a.State.Values[name],
		Error:       a.State.ErrorFor(name),
		OnChange:    a.OnChange,
		OnBlur:      a.OnBlur,
	}
}

func (a BuilderArgs) password(name, label string) PasswordField {
	return PasswordField{
		Input:    a.input(name, label, "*********"),
		Visible:  a.State.PasswordVisible,
		OnToggle: a.OnToggle,
	}
}

// Login produces the sign-in form: email, password, submit.
func Login(args BuilderArgs) []Field {
	text := "Sign In"
	if args.State.Submitting {
		text = "Signing In..."
	}
	return []Field{
		EmailField{Input: args.input("email", "Email Address", "johndoe@example.com")},
		args.password("password", "Password"),
		ButtonField{
			Submit:   true,
			Text:     text,
			Disabled: args.State.Submitting || !args.State.Valid(),
			Icon:     true,
		},
	}
}

// Registration produces the create-account form: name, email, password,
// confirm password, submit. Both password fields share the form-wide
// visibility flag and toggle.
func Registration(args BuilderArgs) []Field {
	text := "Create Account"
	if args.State.Submitting {
		text = "Creating Account..."
	}
	return []Field{
		TextField{Input: args.input("name", "Full Name", "John Doe")},
		EmailField{Input: args.input("email", "Email Address", "johndoe@example.com")},
		args.password("password", "Password"),
		args.password("confirmPassword", "Confirm Password"),
		ButtonField{
			Submit:   true,
			Text:     text,
			Disabled: args.State.Submitting || !args.State.Valid(),
			Icon:     true,
		},
	}
}

// TransactionArgs extends BuilderArgs with the dashboard context a
// transaction form depends on: which action is active and the current
// balance for the advisory withdrawal limit.
type TransactionArgs struct {
	BuilderArgs
	Action  models.TransactionAction
	Balance decimal.Decimal
}

// Amount returns the entered amount, or zero when it does not parse.
func (a TransactionArgs) Amount() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(a.State.Values["amount"]))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// InsufficientFunds reports whether a withdrawal exceeds the balance. This
// check is advisory only; the banking service remains authoritative.
func (a TransactionArgs) InsufficientFunds() bool {
	return a.Action == models.ActionWithdraw && a.Amount().GreaterThan(a.Balance)
}

// Transaction produces the deposit/withdraw form: amount, description,
// submit. The submit control is disabled while submitting, while the form
// is invalid, and when a withdrawal exceeds the current balance.
func Transaction(args TransactionArgs) []Field {
	text := fmt.Sprintf("%s %s", args.Action.Verb(), models.FormatAmount(args.Amount()))
	if args.State.Submitting {
		text = "Loading"
	}
	return []Field{
		NumberField{Input: args.input("amount", "Amount", "0.00"), Step: "0.01"},
		TextField{Input: args.input("description", "Description", "Transaction Description")},
		ButtonField{
			Submit:   true,
			Text:     text,
			Disabled: args.State.Submitting || !args.State.Valid() || args.InsufficientFunds(),
		},
	}
}
