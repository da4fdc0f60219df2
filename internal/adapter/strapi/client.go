// Package strapi reads article collections from a Strapi CMS over its REST API.
package strapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"techstudio/internal/domain/model"
	"techstudio/internal/domain/ports"
)

const (
	articlesPath    = "/api/articles"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 1024
)

var (
	// ErrUnexpectedStatus matches any *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDecode wraps failures to parse the response envelope.
	ErrDecode = errors.New("decode response")
)

// StatusError reports a non-2xx response from the CMS.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Is reports ErrUnexpectedStatus as a match.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Client implements ports.ArticleSource against a Strapi base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
	requestID  func() string
}

var _ ports.ArticleSource = (*Client)(nil)

// NewClient builds a Client. A zero timeout leaves the transport default in place.
func NewClient(baseURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		requestID:  uuid.NewString,
	}
}

// ListArticles performs GET {baseURL}/api/articles with the encoded query and
// returns the normalized records in the order the CMS sent them.
func (c *Client) ListArticles(ctx context.Context, query ports.ArticleQuery) (*model.ArticlePage, error) {
	endpoint := c.baseURL + articlesPath + "?" + EncodeQuery(query)
	requestID := c.requestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Debug(ctx, "strapi response",
			"request_id", requestID,
			"url", endpoint,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	page := &model.ArticlePage{
		Articles: make([]model.Article, 0, len(payload.Data)),
	}
	for i, raw := range payload.Data {
		var item record
		if err := json.Unmarshal(raw, &item); err != nil {
			if c.logger != nil {
				c.logger.Warn(ctx, "skipping undecodable article record",
					"request_id", requestID,
					"index", i,
					"error", err,
				)
			}
			continue
		}
		page.Articles = append(page.Articles, item.normalize())
	}
	if payload.Meta != nil && payload.Meta.Pagination != nil {
		pagination := *payload.Meta.Pagination
		page.Pagination = &pagination
	}

	return page, nil
}
