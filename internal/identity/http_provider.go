package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPProvider talks to a Firebase-style identity REST API
// (accounts:signUp / accounts:signInWithPassword).
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider builds a gateway for the identity service at baseURL. A nil
// client gets a default with a request timeout.
func NewHTTPProvider(baseURL, apiKey string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type credentialRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates a provider account for the email/password pair.
func (p *HTTPProvider) SignUp(ctx context.Context, email, password string) (Account, error) {
	return p.call(ctx, "accounts:signUp", email, password)
}

// SignIn verifies the email/password pair against the provider.
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (Account, error) {
	return p.call(ctx, "accounts:signInWithPassword", email, password)
}

func (p *HTTPProvider) call(ctx context.Context, op, email, password string) (Account, error) {
	payload, err := json.Marshal(credentialRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return Account{}, err
	}

	url := fmt.Sprintf("%s/v1/%s?key=%s", p.baseURL, op, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Account{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Account{}, ErrUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return Account{}, ErrUnavailable
		}
		return Account{}, mapProviderError(body.Error.Message)
	}

	var acct accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
		return Account{}, fmt.Errorf("decode provider response: %w", err)
	}
	if acct.LocalID == "" {
		return Account{}, fmt.Errorf("provider returned empty account id")
	}

	return Account{ID: acct.LocalID, Email: acct.Email, DisplayName: acct.DisplayName}, nil
}

// mapProviderError converts provider error codes onto the closed gateway set.
// Codes may carry a suffix (e.g. "WEAK_PASSWORD : ..."), so prefix match.
func mapProviderError(code string) error {
	code = strings.TrimSpace(code)
	switch {
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return ErrEmailExists
	case strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "USER_DISABLED"):
		return ErrInvalidCredentials
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.HasPrefix(code, "INVALID_EMAIL"), strings.HasPrefix(code, "MISSING_EMAIL"):
		return ErrInvalidEmail
	default:
		return ErrUnavailable
	}
}
