/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/bridgescore/bridge"
	"github.com/mikeb26/bridgescore/internal"
)

// maxFileSize bounds a fetched score file; a real one is a few hundred bytes
const maxFileSize = 1 << 20

// Loader retrieves the raw contents of one saved tournament
type Loader func(ctx context.Context, src string) ([]byte, error)

// Loaded pairs a source with the session decoded from it
type Loaded struct {
	Source  string
	Session *bridge.Session
}

// Fetch retrieves the body at rawURL using client
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (new): %w", rawURL, err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (do): %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", rawURL,
			resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("unable to read %v: %w", rawURL, err)
	}

	return data, nil
}

// HTTPLoader returns a Loader that fetches sources as URLs with client
func HTTPLoader(client *http.Client) Loader {
	return func(ctx context.Context, src string) ([]byte, error) {
		return Fetch(ctx, client, src)
	}
}

// ListScoreFiles scrapes the page at indexURL for links to saved score
// files (*.txt) and returns them as absolute URLs in page order.
func ListScoreFiles(ctx context.Context, client *http.Client,
	indexURL string) ([]string, error) {

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %v: %w", indexURL, err)
	}
	page, err := Fetch(ctx, client, indexURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("unable to parse %v: %w", indexURL, err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if !strings.HasSuffix(strings.ToLower(abs.Path), ".txt") {
			return
		}
		link := abs.String()
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}

// LoadAll loads and decodes every source concurrently, at most limit at a
// time. Results are returned in the order of srcs. The first failure
// cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, srcs []string, load Loader,
	limit int) ([]Loaded, error) {

	results := make([]Loaded, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for idx, src := range srcs {
		g.Go(func() error {
			data, err := load(ctx, src)
			if err != nil {
				return err
			}
			s, err := bridge.Deserialize(string(data))
			if err != nil {
				return fmt.Errorf("unable to open %v: %w", src, err)
			}
			results[idx] = Loaded{Source: src, Session: s}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
