package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"stormy/internal/config/configs"
)

const (
	// tokenExpirySkew refreshes a little before the upstream deadline.
	tokenExpirySkew = 30 * time.Second
	// defaultTokenLifetime applies when the token endpoint omits expires_in.
	defaultTokenLifetime = time.Hour
)

// TokenFetcher obtains a fresh access token.
type TokenFetcher func(ctx context.Context) (*oauth2.Token, error)

// TokenCache holds an app access token and its expiry. Refresh happens
// lazily on the first Token call after expiry. Access is serialised, so
// concurrent callers share one refresh.
type TokenCache struct {
	mu     sync.Mutex
	fetch  TokenFetcher
	now    func() time.Time
	token  string
	expiry time.Time
}

// NewTokenCache returns a cache backed by fetch.
func NewTokenCache(fetch TokenFetcher) *TokenCache {
	return &TokenCache{fetch: fetch, now: time.Now}
}

// NewClientCredentialsCache returns a cache that mints tokens with the
// OAuth2 client-credentials grant against cfg.TokenURL.
func NewClientCredentialsCache(cfg configs.Twitch, client *http.Client) *TokenCache {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return NewTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		ctx, cancel := context.WithTimeout(context.WithValue(ctx, oauth2.HTTPClient, client), searchTimeout)
		defer cancel()
		return cc.Token(ctx)
	})
}

// Token returns the cached token, fetching a new one when none is cached or
// the cached one has expired.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.token != "" && now.Before(c.expiry) {
		return c.token, nil
	}
	tok, err := c.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch app token: %w", err)
	}
	if tok == nil || tok.AccessToken == "" {
		return "", errors.New("fetch app token: empty access token")
	}
	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = now.Add(defaultTokenLifetime)
	}
	c.token = tok.AccessToken
	c.expiry = expiry.Add(-tokenExpirySkew)
	return c.token, nil
}

// Invalidate drops the cached token, e.g. after the upstream rejected it.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiry = time.Time{}
}
