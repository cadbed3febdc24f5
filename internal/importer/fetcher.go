package importer

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// PageMetadata is what the importer extracts from a resource page.
type PageMetadata struct {
	Title       string
	Description string
}

func (m PageMetadata) empty() bool {
	return strings.TrimSpace(m.Title) == "" && strings.TrimSpace(m.Description) == ""
}

// fetchMetadata grabs the title and description of a page with a
// plain HTTP fetch. Pages that render through JavaScript come back
// empty here and go through the headless fallback instead.
func fetchMetadata(ctx context.Context, pageURL string) (PageMetadata, error) {
	host := hostFromURL(pageURL)
	if host == "" {
		return PageMetadata{}, fmt.Errorf("invalid resource url %q", pageURL)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(host),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 250 * time.Millisecond})

	var meta PageMetadata
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if meta.Title == "" {
			meta.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML(`meta[property="og:title"]`, func(e *colly.HTMLElement) {
		meta.Title = pickNonEmpty(meta.Title, e.Attr("content"))
	})

	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		if meta.Description == "" {
			meta.Description = strings.TrimSpace(e.Attr("content"))
		}
	})

	c.OnHTML(`meta[property="og:description"]`, func(e *colly.HTMLElement) {
		meta.Description = pickNonEmpty(meta.Description, e.Attr("content"))
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return PageMetadata{}, ctx.Err()
	}

	if err := c.Visit(pageURL); err != nil {
		return PageMetadata{}, err
	}
	c.Wait()

	if reqErr != nil {
		return PageMetadata{}, reqErr
	}
	return meta, nil
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "MentorMatchImporter/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}
