package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
)

const (
	webFetchMaxBody  = 10 * 1024 * 1024 // 10MB body cap
	webFetchMaxChars = 50000
)

// WebFetchTool fetches a URL and extracts readable content, letting the
// agent pull reference data that lives outside the databases.
type WebFetchTool struct {
	BaseTool
	client *http.Client
}

func NewWebFetchTool() *WebFetchTool {
	return &WebFetchTool{
		BaseTool: NewBaseTool(
			"web_fetch",
			"Fetch a URL and extract readable text content.",
			[]Parameter{
				{Name: "url", Type: TypeString, Description: "URL to fetch (http/https only)", Required: true},
				{Name: "max_chars", Type: TypeNumber, Description: "Maximum characters to return (default 50000)", Required: false},
			},
		),
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

func (t *WebFetchTool) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
	defer Recovered(&res)

	rawURL, err := StringArg(args, "url")
	if err != nil {
		return Errf("%v", err)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Errf("invalid URL: %v", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return Errf("only http/https URLs are supported")
	}
	if isPrivateHost(parsedURL.Hostname()) {
		return Errf("private/localhost URLs are blocked")
	}

	maxChars := webFetchMaxChars
	if mc, ok := args["max_chars"].(float64); ok && mc > 0 {
		maxChars = int(mc)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return Errf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "zen-bridge/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := t.client.Do(req)
	if err != nil {
		return Errf("fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Errf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, webFetchMaxBody))
	if err != nil {
		return Errf("failed to read response: %v", err)
	}

	contentType := resp.Header.Get("Content-Type")
	var title, content string
	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "application/xhtml") {
		title, content = extractReadable(string(body), parsedURL)
	} else {
		content = string(body)
	}

	truncated := false
	if len(content) > maxChars {
		content = content[:maxChars]
		truncated = true
	}

	return OK(map[string]interface{}{
		"url":       rawURL,
		"title":     title,
		"content":   content,
		"truncated": truncated,
	})
}

// extractReadable pulls the main article content, falling back to a bare
// goquery text extraction when readability cannot parse the page.
func extractReadable(html string, pageURL *url.URL) (title, content string) {
	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err == nil && article.Node != nil {
		var buf strings.Builder
		article.RenderText(&buf)
		return article.Title(), buf.String()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", html
	}
	doc.Find("script, style, noscript").Remove()
	title = strings.TrimSpace(doc.Find("title").First().Text())
	content = strings.TrimSpace(doc.Find("body").Text())
	return title, content
}

func isPrivateHost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" || host == "127.0.0.1" || host == "::1" ||
		strings.HasPrefix(host, "192.168.") || strings.HasPrefix(host, "10.") ||
		strings.HasPrefix(host, "172.")
}
