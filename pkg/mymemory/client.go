// Package mymemory is a client for the MyMemory translation API
// (https://mymemory.translated.net).
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIURL = "https://api.mymemory.translated.net"

// Client is the MyMemory translation API client.
type Client struct {
	apiURL     string
	email      string // identifying address; raises the free daily quota
	httpClient *http.Client
}

// NewClient creates a new MyMemory client. The email is optional and is sent
// as the "de" quota parameter when set.
func NewClient(email string) *Client {
	return &Client{
		apiURL:     defaultAPIURL,
		email:      email,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Translate translates text between the given ISO-639-1 language codes.
func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|%s", from, to))
	if c.email != "" {
		params.Set("de", c.email)
	}

	reqURL := fmt.Sprintf("%s/get?%s", c.apiURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call mymemory API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("mymemory API error %d: %s", resp.StatusCode, string(raw))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode mymemory response: %w", err)
	}

	if result.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("mymemory returned empty translation for %q", text)
	}
	return result.ResponseData.TranslatedText, nil
}
