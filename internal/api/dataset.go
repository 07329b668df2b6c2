package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"ufc-elo/internal/config"
	"ufc-elo/internal/constants"
)

var ErrNoDatasetURL = errors.New("DATASET_BASE_URL is not configured")

// DatasetClient downloads the fight and fighter CSV files from a static feed.
type DatasetClient struct {
	baseURL   string
	client    *fasthttp.Client
	fetchesMu sync.RWMutex
	fetches   map[string]FetchInfo
}

type FetchInfo struct {
	Path         string
	Bytes        int
	LastModified string
	FetchedAt    time.Time
}

func NewDatasetClient(cfg *config.Config) *DatasetClient {
	return &DatasetClient{
		baseURL: strings.TrimRight(cfg.DatasetBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     4,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: 256 << 20,
		},
		fetches: make(map[string]FetchInfo),
	}
}

func (c *DatasetClient) Configured() bool {
	return c.baseURL != ""
}

// LastFetch reports what the most recent successful download of path returned.
func (c *DatasetClient) LastFetch(path string) (FetchInfo, bool) {
	c.fetchesMu.RLock()
	defer c.fetchesMu.RUnlock()
	info, ok := c.fetches[path]
	return info, ok
}

func (c *DatasetClient) recordFetch(path string, resp *fasthttp.Response) {
	c.fetchesMu.Lock()
	defer c.fetchesMu.Unlock()

	c.fetches[path] = FetchInfo{
		Path:         path,
		Bytes:        len(resp.Body()),
		LastModified: string(resp.Header.Peek("Last-Modified")),
		FetchedAt:    time.Now(),
	}
}

func (c *DatasetClient) FetchFights(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, constants.FightsDatasetPath)
}

func (c *DatasetClient) FetchFighters(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, constants.FightersDatasetPath)
}

// Fetch GETs baseURL+path and returns a copy of the body.
func (c *DatasetClient) Fetch(ctx context.Context, path string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNoDatasetURL
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "text/csv")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("dataset error: %s returned %d", path, resp.StatusCode())
	}

	c.recordFetch(path, resp)

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
