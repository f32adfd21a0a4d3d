// Package sleeper is the HTTP client for the Sleeper-style roster feed:
// an account lookup plus the full NFL player dump the merge pipeline
// flattens into a table.
package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
)

const defaultBaseURL = "https://api.sleeper.app/v1"

// ErrUpstream marks a non-success response from the feed. The pipeline
// treats it as fatal for the run; there is no retry and no stale fallback.
var ErrUpstream = crerr.New("roster feed request failed")

// User is the account record behind the configured username.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchUser resolves the configured username to its account record.
func (c *Client) FetchUser(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, fmt.Errorf("sleeper: username is required")
	}

	var user User
	if err := c.doJSON(ctx, "/user/"+url.PathEscape(username), &user); err != nil {
		return User{}, fmt.Errorf("fetch user %s: %w", username, err)
	}
	return user, nil
}

// FetchPlayers pulls the full player dump: one free-form attribute map per
// opaque player id.
func (c *Client) FetchPlayers(ctx context.Context) (map[string]map[string]any, error) {
	var players map[string]map[string]any
	if err := c.doJSON(ctx, "/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}
	return players, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Wrapf(ErrUpstream, "send request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return crerr.Wrapf(ErrUpstream, "read response body: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "roster feed request failed", "url", fullURL, "status", resp.StatusCode)
		return crerr.Wrapf(ErrUpstream, "provider status=%d", resp.StatusCode)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}
