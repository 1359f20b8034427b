// Package whoint is a read-only client for the public WHO website: disease
// fact-sheet pages, the disease-name slug table, and the outbreak news feed.
package whoint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://www.who.int"
	defaultSlugsURL = "https://raw.githubusercontent.com/INFINITE347/General_Health_stats/main/slugs.json"

	// outbreakPath queries the 10 most recent outbreak news items,
	// newest first, with just the fields the bot renders.
	outbreakPath = "/api/emergencies/diseaseoutbreaknews" +
		"?sf_provider=dynamicProvider372&sf_culture=en" +
		"&$orderby=PublicationDateAndTime%20desc" +
		"&$expand=EmergencyEvent" +
		"&$select=Title,TitleSuffix,OverrideTitle,UseOverrideTitle,regionscountries," +
		"ItemDefaultUrl,FormattedDate,PublicationDateAndTime" +
		"&%24format=json&%24top=10&%24count=true"

	// maxOutbreakLines is how many feed entries make it into a reply.
	maxOutbreakLines = 5
)

// Client fetches data from the WHO website. All calls are best-effort with a
// fixed short timeout; callers degrade to fallback text on any error.
type Client struct {
	baseURL    string
	slugsURL   string
	httpClient *http.Client
}

// NewClient creates a new WHO website client.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		slugsURL:   defaultSlugsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the WHO site URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetSlugsURL overrides the slug table URL for testing purposes.
func (c *Client) SetSlugsURL(url string) {
	c.slugsURL = url
}

// Slugs fetches the disease-name → URL-fragment table. The table is owned
// externally and fetched fresh on every call.
func (c *Client) Slugs(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.slugsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slug table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slug table fetch returned %d", resp.StatusCode)
	}

	var slugs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&slugs); err != nil {
		return nil, fmt.Errorf("failed to decode slug table: %w", err)
	}
	return slugs, nil
}

// ResolveSlug maps a free-text disease name to its fact-sheet slug.
// Returns the empty string without error when the disease is unknown.
func (c *Client) ResolveSlug(ctx context.Context, disease string) (string, error) {
	slugs, err := c.Slugs(ctx)
	if err != nil {
		return "", err
	}
	return slugs[strings.ToLower(strings.TrimSpace(disease))], nil
}

// FactSheetURL returns the fact-sheet page URL for a resolved slug.
func (c *Client) FactSheetURL(slug string) string {
	return fmt.Sprintf("%s/news-room/fact-sheets/detail/%s", c.baseURL, slug)
}

// FetchSection downloads a fact-sheet page and extracts the named section.
// Returns ErrSectionNotFound when the page has no usable content for it.
func (c *Client) FetchSection(ctx context.Context, url string, section Section, subject string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch fact sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fact sheet fetch returned %d", resp.StatusCode)
	}

	return ExtractSection(resp.Body, section, subject)
}

// OutbreakNews returns up to five decorated lines for the most recent
// disease outbreak news entries.
func (c *Client) OutbreakNews(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+outbreakPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbreak feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("outbreak feed error %d: %s", resp.StatusCode, string(raw))
	}

	var feed outbreakFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode outbreak feed: %w", err)
	}

	var lines []string
	for _, item := range feed.Value {
		if len(lines) == maxOutbreakLines {
			break
		}
		title := item.OverrideTitle
		if title == "" {
			title = item.Title
		}
		date := item.FormattedDate
		if date == "" {
			date = "Unknown date"
		}
		lines = append(lines, fmt.Sprintf("🦠 %s (%s)", title, date))
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("outbreak feed returned no entries")
	}
	return lines, nil
}
