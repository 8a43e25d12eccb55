package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// EnsureBucket creates a public storage bucket if it does not exist yet.
// An "already exists" conflict is not an error.
func (c *Client) EnsureBucket(ctx context.Context, name string) error {
	u := fmt.Sprintf("%s/storage/v1/bucket", c.baseURL)
	body, _ := json.Marshal(map[string]any{"id": name, "name": name, "public": true})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		err := decodeError(resp)
		var re *Error
		// Some backend versions answer 400 with a duplicate message
		// instead of 409.
		if errors.As(err, &re) && strings.Contains(strings.ToLower(re.Message), "already exists") {
			return nil
		}
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// UploadObject streams an object into a bucket and returns its public URL.
func (c *Client) UploadObject(ctx context.Context, bucket, path, contentType string, r io.Reader) (string, error) {
	u := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", decodeError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return c.PublicURL(bucket, path), nil
}

// PublicURL renders the public access URL of an object in a public bucket.
func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}
