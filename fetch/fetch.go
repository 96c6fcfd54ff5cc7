// Package fetch retrieves competitor pricing pages over HTTP.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Storage sites routinely serve bot-blocking pages to non-browser
// agents, so requests identify as a desktop Chrome.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultTimeout bounds the single fetch attempt made per competitor
// per run.
const DefaultTimeout = 30 * time.Second

// Page is the result of one successful fetch. Body is the raw markup
// decoded as UTF-8 with invalid sequences replaced; an empty body is a
// valid result, distinct from a fetch failure. Title is a best-effort
// extraction of the document title, used only for progress lines.
type Page struct {
	URL   string
	Body  string
	Title string
}

// Client fetches pages with a browser user-agent and a fixed timeout.
type Client struct {
	rest *resty.Client
}

// NewClient creates a fetch client. A non-positive timeout falls back
// to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rest := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", browserUserAgent).
		SetRetryCount(0)
	return &Client{rest: rest}
}

// Page fetches the given URL and returns its decoded markup. Network
// errors, timeouts, and non-2xx statuses are all returned as errors;
// callers treat every failure the same way, by keeping prior data.
func (c *Client) Page(ctx context.Context, url string) (*Page, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode())
	}

	// Tolerate invalid byte sequences rather than failing the fetch.
	body := strings.ToValidUTF8(string(resp.Body()), "�")

	return &Page{
		URL:   url,
		Body:  body,
		Title: documentTitle(body),
	}, nil
}

// documentTitle pulls the <title> text out of the markup for progress
// lines. Extraction itself never depends on the DOM, so a page goquery
// cannot parse still scans fine; the title is simply empty.
func documentTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}
