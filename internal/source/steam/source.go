package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"friend_tracker/internal/domain"
)

const (
	SourceID   = "steam"
	SourceName = "Steam Web API"

	friendListPath      = "/ISteamUser/GetFriendList/v0001/"
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v0002/"

	maxBatchSize = 100
)

// Config holds Steam source configuration.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	BatchSize         int
	RequestsPerSecond float64
	Burst             int
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
}

// Source implements service.Source for the Steam Web API.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	batchSize      int
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Steam source.
func New(cfg Config, logger *slog.Logger) *Source {
	batch := cfg.BatchSize
	if batch <= 0 || batch > maxBatchSize {
		batch = maxBatchSize
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		batchSize:      batch,
		limiter:        rate.NewLimiter(limit, burst),
		maxAttempts:    attempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// ListFriends returns the friend list of accountID in the order the API
// reports it.
func (s *Source) ListFriends(ctx context.Context, accountID int64) ([]domain.FriendRecord, error) {
	params := url.Values{}
	params.Set("steamid", strconv.FormatInt(accountID, 10))
	params.Set("relationship", "friend")

	var resp FriendListResponse
	if err := s.get(ctx, friendListPath, params, &resp); err != nil {
		return nil, err
	}

	friends := make([]domain.FriendRecord, 0, len(resp.FriendsList.Friends))
	for _, f := range resp.FriendsList.Friends {
		id, err := parseSteamID(f.SteamID)
		if err != nil {
			return nil, err
		}
		friends = append(friends, domain.FriendRecord{
			AccountID:   id,
			FriendSince: time.Unix(f.FriendSince, 0).UTC(),
		})
	}

	s.logger.Debug("fetched friend list", "account_id", accountID, "friends", len(friends))

	return friends, nil
}

// GetProfileDetails fetches profile details for ids in batches. Accounts the
// API does not return are absent from the result.
func (s *Source) GetProfileDetails(ctx context.Context, ids []int64) (map[int64]domain.ProfileDetails, error) {
	result := make(map[int64]domain.ProfileDetails, len(ids))

	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))

		batch := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			batch = append(batch, strconv.FormatInt(id, 10))
		}

		params := url.Values{}
		params.Set("steamids", strings.Join(batch, ","))

		var resp PlayerSummariesResponse
		if err := s.get(ctx, playerSummariesPath, params, &resp); err != nil {
			return nil, fmt.Errorf("batch at offset %d: %w", start, err)
		}

		for _, p := range resp.Response.Players {
			id, err := parseSteamID(p.SteamID)
			if err != nil {
				return nil, err
			}
			result[id] = domain.ProfileDetails{
				AccountID:   id,
				DisplayName: p.PersonaName,
				ProfileURL:  p.ProfileURL,
			}
		}

		s.logger.Debug("fetched player summaries",
			"offset", start,
			"requested", end-start,
			"returned", len(resp.Response.Players),
		)
	}

	return result, nil
}

func (s *Source) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", s.apiKey)
	target := s.baseURL + path + "?" + params.Encode()

	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, target, out)
		if err == nil {
			return nil
		}

		var se *StatusError
		if errors.As(err, &se) && !se.Retryable() {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, target string, out any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "FriendTracker/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", redactKey(err, s.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("unexpected status: %d (check the api key and profile visibility)", e.StatusCode)
	case http.StatusTooManyRequests:
		return "unexpected status: 429 (rate limited)"
	}
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// Retryable reports whether repeating the request may succeed.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func parseSteamID(raw string) (int64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse steam id %q: %w", raw, err)
	}
	if id > 1<<63-1 {
		return 0, fmt.Errorf("steam id %q out of range", raw)
	}
	return int64(id), nil
}

// url.Error embeds the full request URL, which carries the key.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return &url.Error{
			Op:  ue.Op,
			URL: strings.ReplaceAll(ue.URL, url.QueryEscape(key), "REDACTED"),
			Err: ue.Err,
		}
	}
	return err
}
