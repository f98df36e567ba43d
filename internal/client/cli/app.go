package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/microbank/securebank/internal/client/api"
	"github.com/microbank/securebank/internal/client/config"
	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/client/session"
	"github.com/microbank/securebank/internal/logging"
)

// sessionIface is the slice of the session manager the CLI depends on.
// The real session.Manager satisfies it; tests provide a stub.
type sessionIface interface {
	Status() session.Status
	User() *models.User
	Login(ctx context.Context, creds session.Credentials) error
	FetchCurrentUser(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type App struct {
	config      *config.Config
	api         api.Client
	session     sessionIface
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	showBalance bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient := api.NewHTTPClient(c.ClientAPIURL, c.BankingAPIURL, c.RequestTimeout, log)

	tokens, err := session.NewFileTokenStore(c.TokenFile)
	if err != nil {
		return nil, err
	}

	sess, err := session.NewManager(apiClient, tokens, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		api:     apiClient,
		session: sess,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores any persisted session and starts the REPL. It blocks until
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SecureBank (type 'help' for commands)")

	if a.session.Status() == session.StatusHydrating {
		if err := a.session.FetchCurrentUser(ctx); err != nil {
			a.log.Warn(ctx, "could not restore session", "error", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

// status renders the prompt suffix: the signed-in email plus any admin or
// restricted marker.
func (a *App) status() string {
	switch a.session.Status() {
	case session.StatusHydrating:
		return "(restoring session)"
	case session.StatusAuthenticated:
		u := a.session.User()
		parts := []string{u.Email}
		if u.IsAdmin() {
			parts = append(parts, "admin")
		}
		if u.Blacklisted {
			parts = append(parts, "restricted")
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))
	default:
		return ""
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Status() != session.StatusAnonymous
}

func (a *App) isAdmin() bool {
	u := a.session.User()
	return u != nil && u.IsAdmin()
}

func (a *App) isRestricted() bool {
	u := a.session.User()
	return u != nil && u.Blacklisted
}
