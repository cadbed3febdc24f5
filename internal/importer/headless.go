package importer

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchMetadataHeadless renders the page in headless Chrome and reads
// the title and meta description from the live DOM. Used when the
// plain fetch returns nothing, which usually means a JS-rendered page.
func fetchMetadataHeadless(ctx context.Context, pageURL string) (PageMetadata, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var title, description string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`document.title || ''`, &title),
		chromedp.EvaluateAsDevTools(`(document.querySelector('meta[name="description"]') || document.querySelector('meta[property="og:description"]') || {content: ''}).content || ''`, &description),
	)
	if err != nil {
		return PageMetadata{}, err
	}

	return PageMetadata{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}, nil
}
