package mysportsfeeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/providers"
)

// Config controls how the MySportsFeeds client reaches the upstream API.
type Config struct {
	BaseURL    string
	Credential string
	League     string
	Season     string
	HTTPClient *http.Client
}

// Client fetches play-by-play and boxscore feeds for a single game per call.
type Client struct {
	baseURL    string
	authHeader string
	league     string
	season     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a MySportsFeeds client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		league:     orDefault(cfg.League, defaultLeague),
		season:     orDefault(cfg.Season, defaultSeason),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
	if cfg.Credential != "" {
		c.authHeader = BasicAuthHeader(cfg.Credential)
	}
	return c
}

// FetchPlayByPlay retrieves playbyplay.json, optionally filtered by play type and period.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error) {
	var payload domain.PlayByPlay
	params := url.Values{}
	if query.Type != domain.PlayTypeAny {
		params.Set("playtype", string(query.Type))
	}
	if query.Period > 0 {
		params.Set("period", strconv.Itoa(query.Period))
	}
	if err := c.get(ctx, gameID, resourcePlayByPlay, params, &payload); err != nil {
		return domain.PlayByPlay{}, err
	}
	return payload, nil
}

// FetchBoxscore retrieves boxscore.json.
func (c *Client) FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error) {
	var payload domain.Boxscore
	if err := c.get(ctx, gameID, resourceBoxscore, nil, &payload); err != nil {
		return domain.Boxscore{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, gameID domain.GameID, res resource, params url.Values, dest any) error {
	req, err := c.buildRequest(ctx, gameID, res, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: get %s: %w", ProviderName, res, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "mysportsfeeds rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", ProviderName, res, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, gameID domain.GameID, res resource, params url.Values) (*http.Request, error) {
	if err := gameID.Validate(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/games/%s/%s.json",
		c.baseURL, c.league, c.season, url.PathEscape(gameID.String()), res)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", ProviderName, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}
	return req, nil
}
