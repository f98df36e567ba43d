// Package models defines the records exchanged with the microbanking API.
// All of them are owned by the remote services; the client only caches and
// displays them, replacing whole records after an API response.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RoleAdmin marks users allowed to manage the client list.
const RoleAdmin = "ADMIN"

// TransactionType classifies a bank transaction as seen in history.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionAction names the two balance-mutating endpoints of the banking
// service. Note the endpoint verb is "withdraw" while the recorded
// transaction type is "withdrawal".
type TransactionAction string

const (
	ActionDeposit  TransactionAction = "deposit"
	ActionWithdraw TransactionAction = "withdraw"
)

// Verb returns the action as shown on the submit control.
func (a TransactionAction) Verb() string {
	if a == ActionWithdraw {
		return "Withdraw"
	}
	return "Deposit"
}

// User is the identity record of an account holder or administrator.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Blacklisted bool      `json:"blacklisted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may use the admin screen.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BankAccount holds the authoritative balance for one user. The balance is
// never computed on this side; it is always taken from the latest response.
type BankAccount struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Transaction is one append-only history entry, displayed in the order the
// banking service returns them.
type Transaction struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Signed returns the amount prefixed with + or - depending on the type.
func (t Transaction) Signed() string {
	if t.TransactionType == TransactionTypeWithdrawal {
		return "-" + FormatAmount(t.Amount)
	}
	return "+" + FormatAmount(t.Amount)
}

// FormatAmount renders a money amount the way the dashboard shows it:
// dollar sign, thousands separators, two decimal places.
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
