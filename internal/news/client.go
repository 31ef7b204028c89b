package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ytget/headlines/internal/model"
)

// Endpoint defaults
const (
	DefaultBaseURL   = "https://newsapi.org"
	TopHeadlinesPath = "/v2/top-headlines"
	DefaultCountry   = "us"
	DefaultPageSize  = 20
	DefaultTimeout   = 30 * time.Second
	UserAgent        = "headlines/1.0 (+https://github.com/ytget/headlines)"
	apiKeyHeader     = "X-Api-Key"
	statusOK         = "ok"
	maxErrorBodySize = 4 << 10
)

// ErrEmptyAPIKey is returned when no key was supplied
var ErrEmptyAPIKey = errors.New("api key is empty")

// APIError is a non-ok answer from the news API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news api error %d: %s", e.StatusCode, e.Message)
}

// QuerySource supplies request parameters that may change between fetches
type QuerySource interface {
	GetCountry() string
	GetPageSize() int
}

// Client fetches headlines from newsapi.org
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	pageSize   int
	source     QuerySource
	logger     *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the request timeout on the client's HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			// Copy so a shared client such as http.DefaultClient is left alone
			hc := *c.httpClient
			hc.Timeout = timeout
			c.httpClient = &hc
		}
	}
}

// WithCountry sets the headline country code
func WithCountry(country string) Option {
	return func(c *Client) {
		if country != "" {
			c.country = country
		}
	}
}

// WithPageSize sets how many headlines are requested
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithQuerySource reads country and page size from src on every request,
// overriding WithCountry and WithPageSize
func WithQuerySource(src QuerySource) Option {
	return func(c *Client) {
		c.source = src
	}
}

// WithLogger sets the logger used for swallowed errors
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client with the supplied options
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		country:    DefaultCountry,
		pageSize:   DefaultPageSize,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the current headlines, or an empty slice on any failure.
// Bad keys and network errors look the same to the caller.
func (c *Client) Fetch(ctx context.Context, apiKey string) []model.Article {
	articles, err := c.TopHeadlines(ctx, apiKey)
	if err != nil {
		c.logger.Debug("fetch headlines failed", "error", err)
		return []model.Article{}
	}
	return articles
}

type topHeadlinesResponse struct {
	Status   string        `json:"status"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Articles []wireArticle `json:"articles"`
}

type wireArticle struct {
	Source struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
}

// TopHeadlines performs one request and maps the response into articles
func (c *Client) TopHeadlines(ctx context.Context, apiKey string) ([]model.Article, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	var payload topHeadlinesResponse
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
		}
		return nil, apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.Status != statusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Message}
	}

	articles := make([]model.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		articles = append(articles, toArticle(item))
	}
	return articles, nil
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u = u.JoinPath(TopHeadlinesPath)

	country, pageSize := c.country, c.pageSize
	if c.source != nil {
		if v := c.source.GetCountry(); v != "" {
			country = v
		}
		if v := c.source.GetPageSize(); v > 0 {
			pageSize = v
		}
	}

	q := u.Query()
	q.Set("country", country)
	q.Set("pageSize", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func toArticle(item wireArticle) model.Article {
	description := ""
	if item.Description != nil {
		description = PlainText(*item.Description)
	}
	return model.NewArticle(unescapeText(item.Title), description, item.URL)
}
