// Package attachment downloads user-supplied attachment URLs and extracts
// their text. PDF documents are extracted page by page; anything else is
// treated as plain text and returned verbatim.
package attachment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

type Fetcher interface {
	Fetch(ctx context.Context, attachmentURL string) (string, error)
}

type httpFetcher struct {
	client *http.Client
}

func NewFetcher() Fetcher {
	return &httpFetcher{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, attachmentURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", attachmentURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch attachment: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read attachment body: %w", err)
	}

	if isPdfURL(attachmentURL) {
		return extractPdfText(body)
	}

	return string(body), nil
}

// isPdfURL checks the URL path suffix, not the query string, so signed URLs
// like ".../doc.pdf?sig=..." are still recognized.
func isPdfURL(attachmentURL string) bool {
	parsed, err := url.Parse(attachmentURL)
	if err != nil {
		return strings.HasSuffix(strings.ToLower(attachmentURL), ".pdf")
	}
	return strings.HasSuffix(strings.ToLower(parsed.Path), ".pdf")
}

func extractPdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
