package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client is a process-lifetime handle to the hosted database and object
// storage service. It is immutable after construction and safe for
// concurrent use; pass it explicitly to whatever needs it.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// Filters maps a column name to the value it must equal.
type Filters map[string]string

// NewClient builds a client for the service at baseURL authenticated by
// apiKey.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
		log:     log,
	}
}

// Select reads rows from table, restricted to columns and the given
// equality filters, and decodes the JSON row array into dest.
func (c *Client) Select(ctx context.Context, table, columns string, filters Filters, dest any) error {
	q := url.Values{}
	q.Set("select", columns)
	for col, val := range filters {
		q.Set(col, "eq."+val)
	}
	body, err := c.do(ctx, http.MethodGet, "/rest/v1/"+table+"?"+q.Encode(), nil, "")
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// Insert writes row into table and decodes the returned representation of
// the inserted rows into dest. dest may be nil when the echo is not needed.
func (c *Client) Insert(ctx context.Context, table string, row any, dest any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encoding %s row: %w", table, err)
	}
	body, err := c.do(ctx, http.MethodPost, "/rest/v1/"+table, payload, "application/json")
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

// Delete removes the rows of table matching the equality filters.
func (c *Client) Delete(ctx context.Context, table string, filters Filters) error {
	q := url.Values{}
	for col, val := range filters {
		q.Set(col, "eq."+val)
	}
	_, err := c.do(ctx, http.MethodDelete, "/rest/v1/"+table+"?"+q.Encode(), nil, "")
	return err
}

// Upload stores data under key in the given storage bucket.
func (c *Client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	path := "/storage/v1/object/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
	_, err := c.do(ctx, http.MethodPost, path, data, contentType)
	return err
}

// PublicURL returns the public download URL for an object. It does not
// check that the object exists.
func (c *Client) PublicURL(bucket, key string) string {
	return c.baseURL + "/storage/v1/object/public/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method == http.MethodPost && strings.HasPrefix(path, "/rest/v1/") {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := parseAPIError(resp.StatusCode, raw)
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).
			Str("code", apiErr.Code).Msg(apiErr.Message)
		return nil, apiErr
	}
	return raw, nil
}
