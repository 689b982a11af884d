// Package randomuser fetches batches of generated user records from the
// randomuser.me API (or any server speaking the same JSON shape).
package randomuser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dalemusser/userdirectory/internal/domain/models"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultURL     = "https://randomuser.me/api"
	DefaultResults = 100
)

var (
	// ErrStatus is returned when the API answers with a non-2xx status.
	ErrStatus = errors.New("randomuser: unexpected status")
	// ErrMalformed is returned when the body has no results array or reports an error.
	ErrMalformed = errors.New("randomuser: malformed response")
)

// Config describes where and how much to fetch.
type Config struct {
	URL     string
	Results int
	Timeout time.Duration
}

// Info is the metadata block the API sends alongside results.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

type response struct {
	Results []models.User `json:"results"`
	Info    Info          `json:"info"`
	Error   string        `json:"error"`
}

// Client performs the single batch request a view needs. It does not retry.
type Client struct {
	http    *resty.Client
	url     string
	results int
}

// New builds a Client. Zero values in cfg fall back to the public API and
// a batch of DefaultResults.
func New(cfg Config) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	results := cfg.Results
	if results <= 0 {
		results = DefaultResults
	}

	hc := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		hc.SetTimeout(cfg.Timeout)
	}

	return &Client{http: hc, url: url, results: results}
}

// URL returns the endpoint the client requests.
func (c *Client) URL() string { return c.url }

// BatchSize returns the number of records requested per fetch.
func (c *Client) BatchSize() int { return c.results }

// FetchUsers performs one GET for a batch of users.
func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	var payload response

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("results", strconv.Itoa(c.results)).
		ForceContentType("application/json").
		SetResult(&payload).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch users from %s: %w", c.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s from %s", ErrStatus, resp.Status(), c.url)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, payload.Error)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformed)
	}

	return payload.Results, nil
}
