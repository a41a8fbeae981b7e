// Package airtable implement recordstore.Store over the Airtable REST API
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"jobboard-backend/internal/recordstore"
)

// DefaultURL is the public Airtable API endpoint
const DefaultURL = "https://api.airtable.com/v0"

const pageSize = 100

// Client talk to one Airtable base
type Client struct {
	baseURL    string
	baseID     string
	httpClient *http.Client
}

// NewClient creates client for baseID authenticated with a personal access token.
// Empty apiURL fallback to DefaultURL.
func NewClient(apiURL, baseID, token string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultURL
	}
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    apiURL,
		baseID:     baseID,
		httpClient: httpClient,
	}
}

type listResponse struct {
	Records []recordstore.Record `json:"records"`
	Offset  string               `json:"offset"`
}

type apiError struct {
	Error json.RawMessage `json:"error"`
}

type writeRequest struct {
	Fields   recordstore.Fields `json:"fields"`
	Typecast bool               `json:"typecast,omitempty"`
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(table))
}

func (c *Client) recordURL(table, id string) string {
	return c.tableURL(table) + "/" + url.PathEscape(id)
}

// Select implements recordstore.Store, following offset pagination until exhausted or MaxRecords is reached
func (c *Client) Select(ctx context.Context, table string, q recordstore.Query) ([]recordstore.Record, error) {
	params := url.Values{}
	if formula := Formula(q.Filter); formula != "" {
		params.Set("filterByFormula", formula)
	}
	for i, s := range q.Sort {
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		params.Set(fmt.Sprintf("sort[%d][direction]", i), dir)
	}
	if q.MaxRecords > 0 {
		params.Set("maxRecords", strconv.Itoa(q.MaxRecords))
	}
	params.Set("pageSize", strconv.Itoa(pageSize))

	records := []recordstore.Record{}
	for {
		var page listResponse
		if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+params.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("select %s: %w", table, err)
		}
		records = append(records, page.Records...)
		if page.Offset == "" || (q.MaxRecords > 0 && len(records) >= q.MaxRecords) {
			break
		}
		params.Set("offset", page.Offset)
	}
	if q.MaxRecords > 0 && len(records) > q.MaxRecords {
		records = records[:q.MaxRecords]
	}
	return records, nil
}

// Find implements recordstore.Store
func (c *Client) Find(ctx context.Context, table string, id string) (recordstore.Record, error) {
	var rec recordstore.Record
	if err := c.do(ctx, http.MethodGet, c.recordURL(table, id), nil, &rec); err != nil {
		return recordstore.Record{}, fmt.Errorf("find %s/%s: %w", table, id, err)
	}
	return rec, nil
}

// Create implements recordstore.Store
func (c *Client) Create(ctx context.Context, table string, fields recordstore.Fields) (recordstore.Record, error) {
	var rec recordstore.Record
	body := writeRequest{Fields: fields, Typecast: true}
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &rec); err != nil {
		return recordstore.Record{}, fmt.Errorf("create %s: %w", table, err)
	}
	return rec, nil
}

// Update implements recordstore.Store with PATCH semantics
func (c *Client) Update(ctx context.Context, table string, id string, fields recordstore.Fields) (recordstore.Record, error) {
	var rec recordstore.Record
	body := writeRequest{Fields: fields, Typecast: true}
	if err := c.do(ctx, http.MethodPatch, c.recordURL(table, id), body, &rec); err != nil {
		return recordstore.Record{}, fmt.Errorf("update %s/%s: %w", table, id, err)
	}
	return rec, nil
}

// Destroy implements recordstore.Store
func (c *Client) Destroy(ctx context.Context, table string, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.recordURL(table, id), nil, nil); err != nil {
		return fmt.Errorf("destroy %s/%s: %w", table, id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s", recordstore.ErrUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func statusError(code int, body []byte) error {
	msg := string(body)
	var e apiError
	if json.Unmarshal(body, &e) == nil && len(e.Error) > 0 {
		msg = string(e.Error)
	}

	var sentinel error
	switch {
	case code == http.StatusNotFound:
		sentinel = recordstore.ErrNotFound
	case code == http.StatusUnprocessableEntity || code == http.StatusBadRequest:
		sentinel = recordstore.ErrInvalidRequest
	case code == http.StatusTooManyRequests || code >= 500:
		sentinel = recordstore.ErrUnavailable
	default:
		sentinel = errors.New("unexpected response")
	}
	return fmt.Errorf("%w (status %d): %s", sentinel, code, msg)
}
