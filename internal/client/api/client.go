// Package api is the HTTP/JSON client for the two microbanking services:
// the client service (auth, users, admin) and the banking service
// (accounts, transactions).
package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/models"
)

// Client defines the remote API surface used by the terminal client.
//
// Contract:
//   - Register: create a new account; field-level rejections come back as
//     a *FieldError.
//   - Login: authenticate with email/password and return the bearer token;
//     the implementation also starts sending it on subsequent requests.
//   - CurrentUser: fetch the user owning the active token.
//   - Logout: invalidate the session server-side (best effort).
//   - ListClients / SetBlacklisted: admin operations.
//   - BankAccount / Transactions / ApplyTransaction: banking operations.
//
// All methods honor context cancellation and timeouts. Network-level
// failures map to ErrUnavailable, 401/403 to ErrUnauthorized, and
// structured 4xx payloads to *FieldError.
type Client interface {
	SetToken(token string)
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context, userID string) error
	ListClients(ctx context.Context) ([]models.User, error)
	SetBlacklisted(ctx context.Context, clientID string, blacklisted bool) (*models.User, error)
	BankAccount(ctx context.Context, userID string) (*models.BankAccount, error)
	Transactions(ctx context.Context, accountID string) ([]models.Transaction, error)
	ApplyTransaction(ctx context.Context, accountID string, action models.TransactionAction, amount decimal.Decimal, description string) (*models.BankAccount, error)
}

// RegisterRequest is the create-account payload. ConfirmPassword is sent
// along so the service can re-check the match server-side.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
