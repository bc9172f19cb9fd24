package govdata

import (
	"context"
	"encoding/json"
	"fmt"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tenement_hub/internal/domain"
)

const dateLayout = "2006-01-02"

// Config holds government data source configuration.
type Config struct {
	Jurisdiction   domain.Jurisdiction
	Name           string
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source implements service.Source for one jurisdiction's tenement register.
type Source struct {
	httpClient     *http.Client
	jurisdiction   domain.Jurisdiction
	name           string
	baseURL        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new government data source.
func New(cfg Config, logger *slog.Logger) *Source {
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("%s tenement register", cfg.Jurisdiction)
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		jurisdiction:   cfg.Jurisdiction,
		name:           name,
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", strings.ToLower(string(cfg.Jurisdiction))),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return "govdata-" + strings.ToLower(string(s.jurisdiction))
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return s.name
}

func (s *Source) Jurisdiction() domain.Jurisdiction {
	return s.jurisdiction
}

// FetchTenements walks the register page by page, up to maxPages.
func (s *Source) FetchTenements(ctx context.Context, maxPages int) ([]domain.Tenement, error) {
	var allContent []Content

	for page := 0; page < maxPages; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return s.transform(allContent), fmt.Errorf("fetch page %d: %w", page, err)
		}

		allContent = append(allContent, resp.Content...)

		s.logger.Debug("fetched page",
			"page", page,
			"tenements", len(resp.Content),
			"total", len(allContent),
		)

		if page >= resp.PageInfo.NumPages-1 {
			break
		}
	}

	return s.transform(allContent), nil
}

// StatusError is returned for a non-200 response from the register.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// retryable reports whether another attempt could succeed. Client errors
// other than rate limiting will not change on retry.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError || se.Code == http.StatusTooManyRequests
	}
	return true
}

// pageURL adds paging parameters to the base URL, keeping any query it
// already carries (registers often take an API key there).
func (s *Source) pageURL(page int) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("pageSize", strconv.Itoa(s.pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *Source) fetchPage(ctx context.Context, page int) (*APIResponse, error) {
	pageURL, err := s.pageURL(page)
	if err != nil {
		return nil, err
	}

	var resp *APIResponse
	attempt := 1
	for ; ; attempt++ {
		resp, err = s.doRequest(ctx, pageURL)
		if err == nil {
			return resp, nil
		}
		if attempt == s.maxAttempts || !retryable(err) {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"page", page,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", attempt, err)
}

func (s *Source) doRequest(ctx context.Context, pageURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TenementHub/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
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

func (s *Source) transform(contents []Content) []domain.Tenement {
	tenements := make([]domain.Tenement, 0, len(contents))

	for _, c := range contents {
		lastModified, err := time.Parse(time.RFC3339, c.LastModified)
		if err != nil {
			s.logger.Warn("failed to parse last modified",
				"external_id", c.ID,
				"last_modified", c.LastModified,
			)
			continue
		}

		// Registers that omit the field serve only their own jurisdiction.
		j := s.jurisdiction
		if c.Jurisdiction != "" {
			j = domain.Jurisdiction(strings.ToUpper(c.Jurisdiction))
		}

		tenement := domain.Tenement{
			Jurisdiction: j,
			ExternalID:   strings.TrimSpace(c.ID),
			Type:         c.Type,
			Status:       c.Status,
			AreaHectares: c.AreaHectares,
			GrantedAt:    s.parseDate(c.ID, c.GrantDate),
			ExpiresAt:    s.parseDate(c.ID, c.ExpiryDate),
			LastModified: lastModified,
		}

		for _, h := range c.Holders {
			tenement.Holders = append(tenement.Holders, domain.Holder{
				ID:   h.ID,
				Name: h.Name,
			})
		}

		tenements = append(tenements, tenement)
	}

	return tenements
}

func (s *Source) parseDate(externalID string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		s.logger.Warn("failed to parse date",
			"external_id", externalID,
			"date", *value,
		)
		return nil
	}
	return &t
}
