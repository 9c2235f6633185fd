package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

var ErrInvalidToken = errors.New("invalid id token")

var ErrTokenExpired = errors.New("id token expired")

// Account is a Firebase user as returned by the accounts:lookup endpoint.
type Account struct {
	UID           string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl"`
	EmailVerified bool   `json:"emailVerified"`
}

type lookupResponse struct {
	Users []Account `json:"users"`
}

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

const maxCacheTTL = 5 * time.Minute

//go:generate mockgen -source=identity_client.go -destination=mocks/mock_identity_client.go

type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Account, error)
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Cache
	now     func() time.Time
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: cache.New(maxCacheTTL, 10*time.Minute),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// VerifyIDToken resolves an ID token to its account. The token signature is
// checked by Firebase; locally we only read the expiry to skip dead tokens
// and to bound how long the account stays cached.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*Account, error) {
	idToken = strings.TrimSpace(idToken)

	if len(idToken) == 0 {
		return nil, ErrInvalidToken
	}

	expiresAt, err := c.tokenExpiry(idToken)

	if err != nil {
		return nil, err
	}

	ttl := expiresAt.Sub(c.now())

	if ttl <= 0 {
		return nil, ErrTokenExpired
	}

	if cached, found := c.cache.Get(idToken); found {
		return cached.(*Account), nil
	}

	account, err := c.lookup(ctx, idToken)

	if err != nil {
		return nil, err
	}

	c.cache.Set(idToken, account, min(ttl, maxCacheTTL))

	return account, nil
}

func (c *Client) tokenExpiry(idToken string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(idToken, &claims)

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	}

	return claims.ExpiresAt.Time, nil
}

func (c *Client) lookup(ctx context.Context, idToken string) (*Account, error) {
	lookupURL, err := url.JoinPath(c.baseURL, "accounts:lookup")

	if err != nil {
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	body, err := json.Marshal(map[string]string{"idToken": idToken})

	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", lookupURL, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	q := req.URL.Query()
	q.Add("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusBadRequest {
		// Identity Toolkit answers 400 INVALID_ID_TOKEN for forged or revoked tokens
		return nil, ErrInvalidToken
	}

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	var lookup lookupResponse
	err = json.Unmarshal(bodyBytes, &lookup)

	if err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	if len(lookup.Users) == 0 || len(lookup.Users[0].UID) == 0 {
		return nil, ErrInvalidToken
	}

	account := lookup.Users[0]

	return &account, nil
}
