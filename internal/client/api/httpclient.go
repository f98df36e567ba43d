package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/logging"
)

// HTTPClient implements Client over plain HTTP/JSON. The bearer token is
// set after a successful Login (or via SetToken when rehydrating a stored
// session) and attached to every request.
type HTTPClient struct {
	clientBaseURL  string
	bankingBaseURL string
	http           *http.Client
	log            logging.Logger
	token          string
}

// NewHTTPClient builds a client for the given service base URLs. Trailing
// slashes on the base URLs are ignored.
func NewHTTPClient(clientBaseURL, bankingBaseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		clientBaseURL:  strings.TrimRight(clientBaseURL, "/"),
		bankingBaseURL: strings.TrimRight(bankingBaseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		log:            log,
	}
}

// SetToken replaces the bearer token sent on subsequent requests. An empty
// token clears it.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	UserID string `json:"userId"`
}

type blacklistRequest struct {
	Blacklisted bool `json:"blacklisted"`
}

type transactionRequest struct {
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, c.clientBaseURL+"/auth/register", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	data, err := c.doRaw(ctx, http.MethodPost, c.clientBaseURL+"/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	token := parseToken(data)
	if token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	c.token = token
	return token, nil
}

// parseToken extracts the opaque token from a login response body, which is
// either the raw token or a JSON-encoded string.
func parseToken(data []byte) string {
	body := strings.TrimSpace(string(data))
	if strings.HasPrefix(body, `"`) {
		var s string
		if err := json.Unmarshal([]byte(body), &s); err == nil {
			return s
		}
	}
	return body
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, c.clientBaseURL+"/users/current-user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, c.clientBaseURL+"/auth/logout", logoutRequest{UserID: userID}, nil)
}

func (c *HTTPClient) ListClients(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, c.clientBaseURL+"/users/admin", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) SetBlacklisted(ctx context.Context, clientID string, blacklisted bool) (*models.User, error) {
	var u models.User
	url := fmt.Sprintf("%s/admin/%s", c.clientBaseURL, clientID)
	if err := c.do(ctx, http.MethodPatch, url, blacklistRequest{Blacklisted: blacklisted}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) BankAccount(ctx context.Context, userID string) (*models.BankAccount, error) {
	var acc models.BankAccount
	url := fmt.Sprintf("%s/bank-accounts/%s", c.bankingBaseURL, userID)
	if err := c.do(ctx, http.MethodGet, url, nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) Transactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	url := fmt.Sprintf("%s/bank-transactions/%s/transactions", c.bankingBaseURL, accountID)
	if err := c.do(ctx, http.MethodGet, url, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) ApplyTransaction(ctx context.Context, accountID string, action models.TransactionAction, amount decimal.Decimal, description string) (*models.BankAccount, error) {
	var acc models.BankAccount
	url := fmt.Sprintf("%s/bank-accounts/%s/%s", c.bankingBaseURL, accountID, action)
	req := transactionRequest{Amount: json.Number(amount.String()), Description: description}
	if err := c.do(ctx, http.MethodPatch, url, req, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// do issues one JSON request and decodes a successful response into out
// (skipped when out is nil).
func (c *HTTPClient) do(ctx context.Context, method, url string, body, out any) error {
	data, err := c.doRaw(ctx, method, url, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) doRaw(ctx context.Context, method, url string, body any) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, c.statusError(resp.StatusCode, data)
}

// statusError maps a non-2xx reply to an error. A decodable {field,message}
// payload wins over the generic status mapping so callers can surface the
// message inline on the named form field.
func (c *HTTPClient) statusError(code int, data []byte) error {
	var fe FieldError
	if err := json.Unmarshal(data, &fe); err == nil && fe.Field != "" && fe.Message != "" {
		return &fe
	}
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
