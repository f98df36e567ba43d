package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/forms"
	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/client/validation"
)

var errNotSignedIn = errors.New("not signed in")

// account resolves the signed-in user's bank account. The balance in the
// returned record is authoritative; it is never computed locally.
func (a *App) account(ctx context.Context) (*models.BankAccount, error) {
	u, err := a.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errNotSignedIn
	}
	return a.api.BankAccount(ctx, u.ID)
}

// Balance shows the account summary. The balance starts hidden and each
// invocation flips visibility, standing in for the eye control.
func (a *App) Balance(ctx context.Context) error {
	acc, err := a.account(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your account.")
		return err
	}

	a.showBalance = !a.showBalance
	display := "••••••"
	hint := "[show]"
	if a.showBalance {
		display = models.FormatAmount(acc.Balance)
		hint = "[hide]"
	}

	fmt.Fprintf(a.out, "Account Number: %s\n", acc.AccountNumber)
	fmt.Fprintf(a.out, "Current Balance: %s  %s\n", display, hint)
	return nil
}

// History prints the transaction list in the order the banking service
// returns it.
func (a *App) History(ctx context.Context) error {
	acc, err := a.account(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your account.")
		return err
	}

	txs, err := a.api.Transactions(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load transactions.")
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions yet")
		return nil
	}

	fmt.Fprintln(a.out, "Recent Transactions")
	for _, t := range txs {
		desc := t.Description
		if desc == "" {
			desc = string(t.TransactionType)
		}
		fmt.Fprintf(a.out, "%s  %-11s %10s  %s\n",
			t.CreatedAt.Format("Jan 02, 2006"), t.TransactionType, t.Signed(), desc)
	}
	return nil
}

func (a *App) Deposit(ctx context.Context) error {
	return a.transact(ctx, models.ActionDeposit)
}

func (a *App) Withdraw(ctx context.Context) error {
	return a.transact(ctx, models.ActionWithdraw)
}

// transact runs the deposit/withdraw form against the current account. The
// insufficient-funds gate is advisory; the banking service has the final
// word on every transaction.
func (a *App) transact(ctx context.Context, action models.TransactionAction) error {
	acc, err := a.account(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your account.")
		return err
	}

	transactionArgs := func(args forms.BuilderArgs) forms.TransactionArgs {
		return forms.TransactionArgs{BuilderArgs: args, Action: action, Balance: acc.Balance}
	}

	err = a.runForm(ctx, formSpec{
		schema: validation.Transaction(),
		fields: func(args forms.BuilderArgs) []forms.Field {
			return forms.Transaction(transactionArgs(args))
		},
		blocked: func(s forms.State) (string, bool) {
			if transactionArgs(forms.BuilderArgs{State: s}).InsufficientFunds() {
				return "Insufficient funds!!!", true
			}
			return "", false
		},
		submit: func(ctx context.Context, values map[string]string) error {
			amount, err := decimal.NewFromString(strings.TrimSpace(values["amount"]))
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			updated, err := a.api.ApplyTransaction(ctx, acc.ID, action, amount, values["description"])
			if err != nil {
				return err
			}
			acc = updated
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, errCanceled) {
			fmt.Fprintln(a.out, "Canceled.")
			return nil
		}
		fmt.Fprintln(a.out, "Transaction failed....")
		return err
	}

	fmt.Fprintln(a.out, "Transaction was successful!!!")
	fmt.Fprintf(a.out, "New Balance: %s\n", models.FormatAmount(acc.Balance))
	return nil
}
