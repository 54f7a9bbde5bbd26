/*
Package bse fetches corporate announcements from the BSE India API.

The API refuses requests without the session cookies handed out by the public
announcements page, so every run warms up against that page first and paces
its queries to stay under the rate limiter.
*/
package bse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/phuslu/log"

	"github.com/shanehull/bsetracker/internal/types"
)

const (
	announcementsAPIURL  = "https://api.bseindia.com/BseIndiaAPI/api/AnnGetData/w"
	announcementsPageURL = "https://www.bseindia.com/corporates/ann.html"

	warmupDelay  = 500 * time.Millisecond
	perDateDelay = 1 * time.Second
)

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://www.bseindia.com/",
	"Origin":          "https://www.bseindia.com",
}

// announcementsResponse is the API payload envelope.
type announcementsResponse struct {
	Table []types.RawAnnouncement `json:"Table"`
}

// Client queries the announcements API with one cookie-holding HTTP session.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	pageURL      string
	warmupPause  time.Duration
	perDatePause time.Duration
	warmedUp     bool
}

// NewClient creates a Client with a cookie jar and the fixed request timeout.
func NewClient() *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create cookie jar, continuing without session cookies")
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		apiURL:       announcementsAPIURL,
		pageURL:      announcementsPageURL,
		warmupPause:  warmupDelay,
		perDatePause: perDateDelay,
	}
}

// FetchMultiDay fetches announcements for the trailing daysBack days,
// one date per query, pausing between queries. Per-date failures are logged
// and contribute an empty batch; they never abort the run.
func (c *Client) FetchMultiDay(daysBack int, categoryFilter string) []types.RawAnnouncement {
	var all []types.RawAnnouncement

	for i := 0; i < daysBack; i++ {
		targetDate := time.Now().AddDate(0, 0, -i)

		batch, err := c.FetchByDate(targetDate, categoryFilter)
		if err != nil {
			log.Warn().Err(err).Str("date", targetDate.Format("02-Jan-2006")).Msg("fetch failed for date")
		} else {
			log.Info().Str("date", targetDate.Format("02-Jan-2006")).Int("count", len(batch)).Msg("fetched announcements")
			all = append(all, batch...)
		}

		if i < daysBack-1 {
			time.Sleep(c.perDatePause)
		}
	}

	return all
}

// FetchByDate fetches all announcements for one date. Empty categoryFilter
// means all categories ("-1" upstream).
func (c *Client) FetchByDate(targetDate time.Time, categoryFilter string) ([]types.RawAnnouncement, error) {
	if err := c.warmup(); err != nil {
		return nil, err
	}

	if categoryFilter == "" {
		categoryFilter = "-1"
	}
	dateStr := targetDate.Format("20060102")

	params := url.Values{
		"strCat":      {categoryFilter},
		"strPrevDate": {dateStr},
		"strScrip":    {""},
		"strSearch":   {"P"},
		"strToDate":   {dateStr},
		"strType":     {"C"},
	}

	req, err := http.NewRequest(http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build API request: %w", err)
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements for %s: %w", dateStr, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code %d for %s", resp.StatusCode, dateStr)
	}

	var payload announcementsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode announcements JSON for %s: %w", dateStr, err)
	}

	return payload.Table, nil
}

// warmup performs the unauthenticated GET against the public announcements
// page to acquire session cookies, once per Client, then pauses briefly.
func (c *Client) warmup() error {
	if c.warmedUp {
		return nil
	}

	req, err := http.NewRequest(http.MethodGet, c.pageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build warmup request: %w", err)
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("session warmup failed: %w", err)
	}
	if err := resp.Body.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close warmup response body")
	}

	c.warmedUp = true
	time.Sleep(c.warmupPause)
	return nil
}

func setHeaders(req *http.Request) {
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
}
