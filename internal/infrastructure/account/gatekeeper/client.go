package gatekeeper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/fightpicks/fight-league/internal/domain/user"
	"github.com/fightpicks/fight-league/internal/platform/logging"
	"github.com/fightpicks/fight-league/internal/platform/resilience"
	"github.com/fightpicks/fight-league/internal/usecase"
)

// errTransient marks failures that should trip the circuit breaker.
var errTransient = errors.New("gatekeeper transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CacheMaxSize   int
	Circuit        resilience.CircuitBreakerConfig
}

// Client verifies access tokens against the gatekeeper introspection endpoint.
// Verified principals are cached by token hash so hot tokens skip the network.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
	cache         *principalCache
	revoked       *revocationSet
}

func NewClient(cfg Config, httpClient *http.Client, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 3 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var breaker *resilience.CircuitBreaker
	if cfg.Circuit.Enabled {
		circuit := resilience.NormalizeCircuitBreakerConfig(cfg.Circuit)
		breaker = resilience.NewCircuitBreaker(circuit.FailureThreshold, circuit.OpenTimeout, circuit.HalfOpenMaxReq)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		logger:        logger,
		breaker:       breaker,
		cache:         newPrincipalCache(cfg.CacheTTL, cfg.CacheMaxSize),
		revoked:       newRevocationSet(),
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "token is required")
	}

	key := hashToken(token)
	if c.revoked.Contains(key) {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "token revoked")
	}

	if principal, ok := c.cache.Get(key); ok {
		return principal, nil
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, errors.Wrap(usecase.ErrDependencyUnavailable, "gatekeeper circuit open")
		}
	}

	principal, err := c.introspect(ctx, token)
	if c.breaker != nil {
		if errors.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		if errors.Is(err, errTransient) {
			return user.Principal{}, errors.Mark(
				errors.Wrap(usecase.ErrDependencyUnavailable, err.Error()), errTransient)
		}
		return user.Principal{}, err
	}

	c.cache.Set(key, principal)

	return principal, nil
}

// Revoke drops a token immediately, before its cache entry would expire.
func (c *Client) Revoke(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	key := hashToken(token)
	c.revoked.Add(key)
	c.cache.Delete(key)
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "request gatekeeper introspection"), errTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "introspection denied")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "read introspect response"), errTransient)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "gatekeeper introspection non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, errors.Mark(
			errors.Newf("gatekeeper introspection failed with status %d", resp.StatusCode), errTransient)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, errors.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "inactive token")
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, errors.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
