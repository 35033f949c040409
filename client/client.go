// Package client is the thin HTTP wrapper every admin screen goes through:
// method, path and an optional body in, a parsed response envelope out.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sonikrishna9/Tenda-admin/draft"
)

// EnvBaseURL names the environment variable carrying the API base URL.
const EnvBaseURL = "TENDA_API_URL"

const defaultBaseURL = "http://localhost:8080/"

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL. An empty base falls back to the
// TENDA_API_URL environment variable, then to localhost.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Minute},
	}
}

// Response is the canonical backend envelope. Older deployments misspelled
// the success flag as "sucess"; both keys are accepted.
type Response struct {
	Success bool
	Message string
	Body    json.RawMessage
}

// Decode unmarshals the full response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Do issues one request. A nil body sends nothing, a *draft.Submission is
// encoded as multipart (the transport sets the boundary), anything else is
// JSON. Non-2xx statuses are returned as errors with the backend's message.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *draft.Submission:
		var buf bytes.Buffer
		ct, err := b.Encode(&buf)
		if err != nil {
			return nil, fmt.Errorf("encode submission: %w", err)
		}
		reader = &buf
		contentType = ct
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimPrefix(path, "/"), reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	var env struct {
		Success bool   `json:"success"`
		Sucess  bool   `json:"sucess"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	// Non-JSON bodies simply leave the envelope zeroed.
	_ = json.Unmarshal(data, &env)

	r := &Response{
		Success: env.Success || env.Sucess,
		Message: env.Message,
		Body:    data,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return r, fmt.Errorf("%s %s: %s", method, path, msg)
	}
	return r, nil
}
