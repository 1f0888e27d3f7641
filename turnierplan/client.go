/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package turnierplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/turnierplan-signage/internal"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentFetches = 4

// ClientOptions holds the adapter settings needed to talk to a turnierplan.NET
// instance.
type ClientOptions struct {
	InstanceURL  string
	APIKey       string
	APIKeySecret string

	// CacheBucket names an S3 bucket for the response cache; empty keeps
	// the cache in memory. CacheMaxAge <= 0 disables caching entirely.
	CacheBucket string
	CacheMaxAge time.Duration

	MaxConcurrentFetches int
}

type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	maxConcurrent int
}

// NewClient validates opts and returns a Client whose requests carry the API
// key headers.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(opts.InstanceURL) == "" {
		return nil, errors.New("turnierplan: instance url is not specified")
	}
	if strings.TrimSpace(opts.APIKey) == "" ||
		strings.TrimSpace(opts.APIKeySecret) == "" {
		return nil, errors.New("turnierplan: api key and api key secret are required")
	}
	base, err := url.Parse(opts.InstanceURL)
	if err != nil {
		return nil, fmt.Errorf("turnierplan: invalid instance url %q: %w",
			opts.InstanceURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("turnierplan: instance url %q must be absolute",
			opts.InstanceURL)
	}

	var inner http.RoundTripper = http.DefaultTransport
	if opts.CacheMaxAge > 0 {
		inner = internal.NewCachedHttpClient(ctx, opts.CacheBucket,
			opts.CacheMaxAge).Transport
	}
	apiKey, apiKeySecret := opts.APIKey, opts.APIKeySecret
	hc := &http.Client{
		Transport: internal.NewHeaderOverrideTransport(inner,
			func(req *http.Request) {
				req.Header.Set("X-Api-Key", apiKey)
				req.Header.Set("X-Api-Key-Secret", apiKeySecret)
			}, nil),
		Timeout: 30 * time.Second,
	}

	maxConcurrent := opts.MaxConcurrentFetches
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentFetches
	}

	return &Client{
		baseURL:       base,
		httpClient:    hc,
		maxConcurrent: maxConcurrent,
	}, nil
}

// InstanceURL returns the instance base url without a trailing slash.
func (client *Client) InstanceURL() string {
	return strings.TrimRight(client.baseURL.String(), "/")
}

// GetTournaments lists the tournaments contained in the given folder.
func (client *Client) GetTournaments(ctx context.Context,
	folderID string) ([]TournamentHeader, error) {

	q := url.Values{}
	q.Set("folderId", folderID)

	var headers []TournamentHeader
	if err := client.getJSON(ctx, q, &headers, "api", "tournaments"); err != nil {
		return nil, fmt.Errorf("unable to list tournaments in folder %v: %w",
			folderID, err)
	}

	return headers, nil
}

// GetTournament fetches a single tournament including teams and matches.
func (client *Client) GetTournament(ctx context.Context,
	tournamentID string) (*Tournament, error) {

	var tourney Tournament
	err := client.getJSON(ctx, nil, &tourney, "api", "tournaments",
		tournamentID)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch tournament %v: %w",
			tournamentID, err)
	}

	return &tourney, nil
}

// GetAllTournamentsWithDetails fetches every tournament in folderID except
// those listed in skipIDs, and returns them sorted by name.
func (client *Client) GetAllTournamentsWithDetails(ctx context.Context,
	folderID string, skipIDs []string) ([]Tournament, error) {

	headers, err := client.GetTournaments(ctx, folderID)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(skipIDs))
	for _, id := range skipIDs {
		skip[id] = struct{}{}
	}
	var wanted []TournamentHeader
	for _, h := range headers {
		if _, ok := skip[h.ID]; ok {
			continue
		}
		wanted = append(wanted, h)
	}

	tournaments := make([]Tournament, len(wanted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(client.maxConcurrent)
	for i, h := range wanted {
		g.Go(func() error {
			t, err := client.GetTournament(gctx, h.ID)
			if err != nil {
				return err
			}
			tournaments[i] = *t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortByName(tournaments)

	return tournaments, nil
}

// SortByName orders tournaments by name in German collation order, then by
// id so that equal names still have a fixed order.
func SortByName(tournaments []Tournament) {
	compare := internal.NewNameComparer()
	sort.SliceStable(tournaments, func(i, j int) bool {
		if c := compare(tournaments[i].Name, tournaments[j].Name); c != 0 {
			return c < 0
		}
		return tournaments[i].ID < tournaments[j].ID
	})
}

func (client *Client) getJSON(ctx context.Context, query url.Values,
	out any, pathElems ...string) error {

	reqURL := client.baseURL.JoinPath(pathElems...)
	if query != nil {
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("new: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			URL:        reqURL.String(),
			StatusCode: resp.StatusCode,
			Detail:     describeErrorBody(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	return nil
}

// StatusError is returned for any non-200 response from the instance.
type StatusError struct {
	URL        string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d fetching %s: %s", e.StatusCode, e.URL, e.Detail)
}

// describeErrorBody reduces an error body to one line. Reverse proxies in
// front of an instance tend to answer with HTML pages, for which only the
// title is kept.
func describeErrorBody(resp *http.Response) string {
	const maxDetail = 200

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(body) == 0 {
		return ""
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
		if err == nil {
			if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
				return title
			}
			body = []byte(doc.Text())
		}
	}

	detail := strings.Join(strings.Fields(string(body)), " ")
	if len(detail) > maxDetail {
		cut := maxDetail
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut] + "..."
	}

	return detail
}
