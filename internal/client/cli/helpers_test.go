package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/api"
	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/client/session"
	"github.com/microbank/securebank/internal/logging"
)

// stubIO replaces the interactive input seams with a queue of canned lines
// and records which seam consumed each one.
type stubIO struct {
	t         *testing.T
	lines     []string
	i         int
	textReads int
	pwReads   int
}

func stubInputs(t *testing.T, lines ...string) *stubIO {
	t.Helper()
	s := &stubIO{t: t, lines: lines}

	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		s.textReads++
		return s.next(), nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		s.pwReads++
		return []byte(s.next()), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return s
}

func (s *stubIO) next() string {
	if s.i >= len(s.lines) {
		s.t.Fatalf("unexpected prompt: all %d canned inputs consumed", len(s.lines))
	}
	line := s.lines[s.i]
	s.i++
	return line
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// fakeSession implements sessionIface.
type fakeSession struct {
	status session.Status
	user   *models.User

	creds     session.Credentials
	loginErrs []error
	fetchErr  error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeSession) Status() session.Status { return f.status }
func (f *fakeSession) User() *models.User     { return f.user }

func (f *fakeSession) Login(_ context.Context, creds session.Credentials) error {
	f.creds = creds
	if len(f.loginErrs) > 0 {
		err := f.loginErrs[0]
		f.loginErrs = f.loginErrs[1:]
		if err != nil {
			return err
		}
	}
	f.status = session.StatusAuthenticated
	return nil
}

func (f *fakeSession) FetchCurrentUser(context.Context) error { return f.fetchErr }

func (f *fakeSession) CurrentUser(context.Context) (*models.User, error) {
	return f.user, f.fetchErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	f.user = nil
	f.status = session.StatusAnonymous
	return f.logoutErr
}

type appliedTx struct {
	accountID   string
	action      models.TransactionAction
	amount      decimal.Decimal
	description string
}

// fakeAPI implements api.Client.
type fakeAPI struct {
	registerReq api.RegisterRequest
	registerErr error

	account    *models.BankAccount
	accountErr error

	txs   []models.Transaction
	txErr error

	applied     []appliedTx
	applyResult *models.BankAccount
	applyErrs   []error

	clients []models.User
	listErr error

	blacklistID  string
	blacklistVal bool
	blacklistErr error
}

func (f *fakeAPI) SetToken(string) {}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) error {
	f.registerReq = req
	return f.registerErr
}

func (f *fakeAPI) Login(context.Context, string, string) (string, error) { return "", nil }
func (f *fakeAPI) CurrentUser(context.Context) (*models.User, error)     { return nil, nil }
func (f *fakeAPI) Logout(context.Context, string) error                  { return nil }

func (f *fakeAPI) ListClients(context.Context) ([]models.User, error) {
	return f.clients, f.listErr
}

func (f *fakeAPI) SetBlacklisted(_ context.Context, clientID string, blacklisted bool) (*models.User, error) {
	f.blacklistID, f.blacklistVal = clientID, blacklisted
	return &models.User{ID: clientID, Blacklisted: blacklisted}, f.blacklistErr
}

func (f *fakeAPI) BankAccount(context.Context, string) (*models.BankAccount, error) {
	return f.account, f.accountErr
}

func (f *fakeAPI) Transactions(context.Context, string) ([]models.Transaction, error) {
	return f.txs, f.txErr
}

func (f *fakeAPI) ApplyTransaction(_ context.Context, accountID string, action models.TransactionAction, amount decimal.Decimal, description string) (*models.BankAccount, error) {
	f.applied = append(f.applied, appliedTx{accountID, action, amount, description})
	if len(f.applyErrs) > 0 {
		err := f.applyErrs[0]
		f.applyErrs = f.applyErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.applyResult, nil
}
