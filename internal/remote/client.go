package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"alwanstore/internal/metrics"
)

// Client is the single configured handle to the hosted backend: REST table
// access under /rest/v1, auth under /auth/v1 and object storage under
// /storage/v1. Constructed once in main and passed to every service.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client

	mu     sync.RWMutex
	bearer string // session access token; anon key when logged out
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		bearer:  apiKey,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBearer swaps the Authorization token after login; ClearBearer reverts
// to the anon key after logout.
func (c *Client) SetBearer(token string) {
	c.mu.Lock()
	c.bearer = token
	c.mu.Unlock()
}

func (c *Client) ClearBearer() {
	c.SetBearer(c.apiKey)
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// Query accumulates PostgREST-style filters for a table request.
type Query struct{ v url.Values }

func NewQuery() *Query { return &Query{v: url.Values{}} }

func (q *Query) Eq(col, val string) *Query {
	q.v.Set(col, "eq."+val)
	return q
}

func (q *Query) Order(col, dir string) *Query {
	q.v.Set("order", col+"."+dir)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.v.Set("limit", strconv.Itoa(n))
	return q
}

func (q *Query) encode() string {
	if q == nil {
		return "select=*"
	}
	q.v.Set("select", "*")
	return q.v.Encode()
}

func (q *Query) filters() string {
	if q == nil {
		return ""
	}
	return q.v.Encode()
}

// Select fetches rows from table into dest (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q *Query, dest any) error {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.encode())
	return c.do(ctx, table, "select", http.MethodGet, u, nil, nil, dest)
}

// Insert posts body (a row or slice of rows) and decodes the returned
// representation into dest when dest is non-nil.
func (c *Client) Insert(ctx context.Context, table string, body, dest any) error {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	hdr := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, table, "insert", http.MethodPost, u, hdr, body, dest)
}

// Update patches rows matching q and decodes the returned representation.
func (c *Client) Update(ctx context.Context, table string, q *Query, body, dest any) error {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.filters())
	hdr := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, table, "update", http.MethodPatch, u, hdr, body, dest)
}

// Delete removes rows matching q.
func (c *Client) Delete(ctx context.Context, table string, q *Query) error {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.filters())
	return c.do(ctx, table, "delete", http.MethodDelete, u, nil, nil, nil)
}

// RPC invokes a server-side function under /rest/v1/rpc.
func (c *Client) RPC(ctx context.Context, fn string, args, dest any) error {
	u := fmt.Sprintf("%s/rest/v1/rpc/%s", c.baseURL, fn)
	if args == nil {
		args = map[string]any{}
	}
	return c.do(ctx, "rpc."+fn, "rpc", http.MethodPost, u, nil, args, dest)
}

func (c *Client) do(ctx context.Context, table, op, method, rawURL string, hdr map[string]string, body, dest any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.RemoteRequests.WithLabelValues(table, op, "network_error").Inc()
		return fmt.Errorf("remote %s %s: %w", op, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		metrics.RemoteRequests.WithLabelValues(table, op, "error").Inc()
		return decodeError(resp)
	}
	metrics.RemoteRequests.WithLabelValues(table, op, "ok").Inc()

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func decodeError(resp *http.Response) error {
	re := &Error{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, re); err != nil || re.Message == "" {
		re.Message = string(bytes.TrimSpace(raw))
		if re.Message == "" {
			re.Message = http.StatusText(resp.StatusCode)
		}
	}
	return re
}
