package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/client/session"
)

func authedSession() *fakeSession {
	return &fakeSession{
		status: session.StatusAuthenticated,
		user:   &models.User{ID: "u1", Email: "alice@example.org"},
	}
}

func testAccount(balance string) *models.BankAccount {
	return &models.BankAccount{
		ID:            "acc1",
		UserID:        "u1",
		AccountNumber: "ACC-12345678",
		Balance:       decimal.RequireFromString(balance),
	}
}

func TestBalance_HiddenByDefaultThenToggles(t *testing.T) {
	fa := &fakeAPI{account: testAccount("1234.56")}
	a, out := newTestApp(authedSession(), fa)

	if err := a.Balance(context.Background()); err != nil {
		t.Fatalf("Balance err: %v", err)
	}
	first := out.String()
	if !strings.Contains(first, "$1,234.56") {
		t.Fatalf("first call should reveal the balance, got:\n%s", first)
	}
	if !strings.Contains(first, "ACC-12345678") {
		t.Fatalf("missing account number, got:\n%s", first)
	}

	out.Reset()
	if err := a.Balance(context.Background()); err != nil {
		t.Fatalf("Balance err: %v", err)
	}
	second := out.String()
	if !strings.Contains(second, "••••••") {
		t.Fatalf("second call should mask the balance, got:\n%s", second)
	}
	if strings.Contains(second, "$1,234.56") {
		t.Fatalf("masked output must not contain the amount, got:\n%s", second)
	}
}

func TestHistory_Empty(t *testing.T) {
	fa := &fakeAPI{account: testAccount("100")}
	a, out := newTestApp(authedSession(), fa)

	if err := a.History(context.Background()); err != nil {
		t.Fatalf("History err: %v", err)
	}
	if !strings.Contains(out.String(), "No transactions yet") {
		t.Fatalf("missing empty-state, got:\n%s", out.String())
	}
}

func TestHistory_ListsInServerOrder(t *testing.T) {
	when := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fa := &fakeAPI{
		account: testAccount("100"),
		txs: []models.Transaction{
			{ID: "t1", TransactionType: models.TransactionTypeDeposit, Amount: decimal.RequireFromString("250"), Description: "salary", CreatedAt: when},
			{ID: "t2", TransactionType: models.TransactionTypeWithdrawal, Amount: decimal.RequireFromString("40.25"), Description: "groceries", CreatedAt: when},
		},
	}
	a, out := newTestApp(authedSession(), fa)

	if err := a.History(context.Background()); err != nil {
		t.Fatalf("History err: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "+$250.00") {
		t.Fatalf("deposit should be signed positive, got:\n%s", got)
	}
	if !strings.Contains(got, "-$40.25") {
		t.Fatalf("withdrawal should be signed negative, got:\n%s", got)
	}
	if strings.Index(got, "salary") > strings.Index(got, "groceries") {
		t.Fatalf("server order not preserved, got:\n%s", got)
	}
}

func TestDeposit_Success(t *testing.T) {
	fa := &fakeAPI{
		account:     testAccount("100"),
		applyResult: testAccount("200.50"),
	}
	a, out := newTestApp(authedSession(), fa)

	stubInputs(t, "100.50", "paycheck")

	if err := a.Deposit(context.Background()); err != nil {
		t.Fatalf("Deposit err: %v", err)
	}
	if len(fa.applied) != 1 {
		t.Fatalf("want one transaction, got %d", len(fa.applied))
	}
	tx := fa.applied[0]
	if tx.accountID != "acc1" || tx.action != models.ActionDeposit || tx.description != "paycheck" {
		t.Fatalf("transaction mismatch: %+v", tx)
	}
	if !tx.amount.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("amount mismatch: %s", tx.amount)
	}
	got := out.String()
	if !strings.Contains(got, "Transaction was successful!!!") {
		t.Fatalf("missing success notice, got:\n%s", got)
	}
	if !strings.Contains(got, "New Balance: $200.50") {
		t.Fatalf("new balance should come from the response, got:\n%s", got)
	}
}

func TestWithdraw_InsufficientFundsAdvisory(t *testing.T) {
	fa := &fakeAPI{
		account:     testAccount("50"),
		applyResult: testAccount("25"),
	}
	a, out := newTestApp(authedSession(), fa)

	// over the balance first, then keep the description and lower the amount
	stubInputs(t, "100", "rent", "25", "")

	if err := a.Withdraw(context.Background()); err != nil {
		t.Fatalf("Withdraw err: %v", err)
	}
	if !strings.Contains(out.String(), "Insufficient funds!!!") {
		t.Fatalf("missing advisory, got:\n%s", out.String())
	}
	if len(fa.applied) != 1 {
		t.Fatalf("blocked attempt must not reach the API, applied=%d", len(fa.applied))
	}
	if !fa.applied[0].amount.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("amount mismatch: %s", fa.applied[0].amount)
	}
}

func TestWithdraw_ServerRejectionNotice(t *testing.T) {
	fa := &fakeAPI{
		account:   testAccount("500"),
		applyErrs: []error{errors.New("rejected")},
	}
	a, out := newTestApp(authedSession(), fa)

	stubInputs(t, "100", "rent")

	if err := a.Withdraw(context.Background()); err == nil {
		t.Fatalf("want error from rejected withdrawal")
	}
	if !strings.Contains(out.String(), "Transaction failed....") {
		t.Fatalf("missing failure notice, got:\n%s", out.String())
	}
}

func TestTransact_InvalidAmountReprompts(t *testing.T) {
	fa := &fakeAPI{
		account:     testAccount("500"),
		applyResult: testAccount("490"),
	}
	a, out := newTestApp(authedSession(), fa)

	stubInputs(t, "-5", "10", "coffee")

	if err := a.Deposit(context.Background()); err != nil {
		t.Fatalf("Deposit err: %v", err)
	}
	if !strings.Contains(out.String(), "Amount must be positive") {
		t.Fatalf("missing validation message, got:\n%s", out.String())
	}
}

func TestBalance_AccountLoadFailure(t *testing.T) {
	fa := &fakeAPI{accountErr: errors.New("down")}
	a, out := newTestApp(authedSession(), fa)

	if err := a.Balance(context.Background()); err == nil {
		t.Fatalf("want error when account cannot load")
	}
	if !strings.Contains(out.String(), "Could not load your account.") {
		t.Fatalf("missing notice, got:\n%s", out.String())
	}
}
