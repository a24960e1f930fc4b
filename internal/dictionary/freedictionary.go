package dictionary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// FreeDictionaryConfig tunes the Free Dictionary API client.
type FreeDictionaryConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int           // Extra attempts after the first on network errors and 5xx
	RetryDelay time.Duration // Base delay, doubled per attempt
	RateLimit  time.Duration // Minimum gap between requests
}

func DefaultFreeDictionaryConfig() FreeDictionaryConfig {
	return FreeDictionaryConfig{
		BaseURL:    DefaultBaseURL,
		Timeout:    10 * time.Second,
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
		RateLimit:  500 * time.Millisecond,
	}
}

// FreeDictionaryClient implements Client using the Free Dictionary API.
// API docs: https://dictionaryapi.dev/
type FreeDictionaryClient struct {
	http        *resty.Client
	cfg         FreeDictionaryConfig
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		select {
		case <-time.After(r.interval - since):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.lastCall = time.Now()
	return nil
}

// NewFreeDictionaryClient creates a new Free Dictionary API client.
func NewFreeDictionaryClient(cfg FreeDictionaryConfig) *FreeDictionaryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "DailyVocabularyBot/1.0")

	return &FreeDictionaryClient{
		http:        client,
		cfg:         cfg,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}
}

func (c *FreeDictionaryClient) Name() string {
	return "freedictionary"
}

// Lookup fetches word definitions from the Free Dictionary API.
// Network failures and 5xx responses are retried with exponential backoff;
// a 404 fails immediately with ErrWordNotFound.
func (c *FreeDictionaryClient) Lookup(ctx context.Context, word string) (*LookupResult, error) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}

	var (
		apiResponse []freeDictionaryResponse
		permanent   error
	)
	err := retry.Do(
		func() error {
			entries, err := c.fetch(ctx, word)
			if err != nil {
				if !isRetryable(err) {
					permanent = err
					return retry.Unrecoverable(err)
				}
				return err
			}
			apiResponse = entries
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.cfg.MaxRetries+1)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if permanent != nil {
		return nil, permanent
	}
	if err != nil {
		return nil, err
	}

	if len(apiResponse) == 0 {
		return nil, fmt.Errorf("empty response for word %s: %w", word, ErrNoDefinitions)
	}

	result := c.convertToLookupResult(word, apiResponse[0])
	if len(result.Definitions) == 0 {
		return nil, fmt.Errorf("%s: %w", word, ErrNoDefinitions)
	}
	return result, nil
}

// Ping checks that the API answers a lookup for a well-known word.
func (c *FreeDictionaryClient) Ping(ctx context.Context) error {
	if _, err := c.fetch(ctx, "test"); err != nil {
		return fmt.Errorf("dictionary API unreachable: %w", err)
	}
	return nil
}

var errMalformed = errors.New("malformed response")

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d, body: %s", e.code, e.body)
}

func (c *FreeDictionaryClient) fetch(ctx context.Context, word string) ([]freeDictionaryResponse, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&[]freeDictionaryResponse{}).
		ForceContentType("application/json").
		Get("/" + url.PathEscape(word))
	if err != nil {
		// resty reports a body it could not unmarshal together with the 2xx response
		if res != nil && res.IsSuccess() {
			return nil, fmt.Errorf("decode response for %s: %w: %v", word, errMalformed, err)
		}
		return nil, fmt.Errorf("fetch definition: %w", err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", word, ErrWordNotFound)
	case res.StatusCode() != http.StatusOK:
		return nil, &statusError{code: res.StatusCode(), body: truncate(string(res.Body()), 200)}
	}
	entries, ok := res.Result().(*[]freeDictionaryResponse)
	if !ok || entries == nil {
		return nil, nil
	}
	return *entries, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrWordNotFound) || errors.Is(err, errMalformed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (c *FreeDictionaryClient) convertToLookupResult(word string, resp freeDictionaryResponse) *LookupResult {
	result := &LookupResult{
		Word: word,
	}

	for _, meaning := range resp.Meanings {
		for _, def := range meaning.Definitions {
			if strings.TrimSpace(def.Definition) == "" {
				continue
			}
			result.Definitions = append(result.Definitions, Definition{
				PartOfSpeech: meaning.PartOfSpeech,
				Definition:   strings.TrimSpace(def.Definition),
				Example:      def.Example,
			})
		}
	}

	return result
}

// Free Dictionary API response types

type freeDictionaryResponse struct {
	Word     string            `json:"word"`
	Meanings []freeDictMeaning `json:"meanings"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
