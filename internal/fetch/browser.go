// Package fetch - browser.go provides headless browser rendering for
// JavaScript-heavy careers pages.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to consider a
// plain HTTP fetch successful. Anything shorter suggests a
// JavaScript-rendered page and warrants browser rendering.
const MinContentLength = 500

// ShouldUseBrowser reports whether the extracted text is too short to be a
// real careers page.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate listings.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// CareerPage fetches a careers page, falling back to browser rendering
// when the plain HTTP response carries too little text and useBrowser is
// enabled. The returned Result always has Text populated.
func CareerPage(ctx context.Context, urlStr string, opts *Options, useBrowser, verbose bool) (*Result, error) {
	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, CareerPageSelectors())
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	result.Text = text

	if useBrowser && ShouldUseBrowser(text) {
		timeout := DefaultTimeout
		if opts != nil && opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		html, berr := WithBrowser(ctx, urlStr, timeout, verbose)
		if berr != nil {
			// Keep the HTTP result; the page may still be usable.
			return result, nil
		}
		result.HTML = html
		if text, err := ExtractMainText(html, CareerPageSelectors()); err == nil {
			result.Text = text
		}
	}

	return result, nil
}
