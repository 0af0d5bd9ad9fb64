// Package supabaseclient wraps the hosted database's PostgREST facade: direct
// resource reads, named stored-procedure invocations, and a raw CSV variant
// for byte-exact passthrough downloads.
package supabaseclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/azwatch/campfin-backend/internal/errs"
)

const serviceName = "facade"

type Adapter struct {
	restBase string
	apiKey   string
	client   *http.Client

	// Read-through cache for JSON responses. CSV passthrough is never cached;
	// those bodies are unbounded.
	responseCache *cache.Cache
	cacheTTL      time.Duration
}

// NewAdapter builds a facade client rooted at supabaseURL's /rest/v1 prefix.
// responseCache may be nil to disable caching.
func NewAdapter(supabaseURL, apiKey string, responseCache *cache.Cache, cacheTTL time.Duration) *Adapter {
	return &Adapter{
		restBase:      supabaseURL + "/rest/v1",
		apiKey:        apiKey,
		client:        &http.Client{Timeout: 30 * time.Second},
		responseCache: responseCache,
		cacheTTL:      cacheTTL,
	}
}

// QueryOptions shape a resource read. Filters are equality-only; PostgREST's
// richer operators are not needed by any route.
type QueryOptions struct {
	Select  string
	Filters map[string]string
	Order   string
	Limit   int
	Offset  int
}

func (o QueryOptions) encode() string {
	params := url.Values{}
	if o.Select != "" {
		params.Set("select", o.Select)
	}
	// Sorted for a stable cache key.
	keys := make([]string, 0, len(o.Filters))
	for k := range o.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		params.Set(k, "eq."+o.Filters[k])
	}
	if o.Order != "" {
		params.Set("order", o.Order)
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	return params.Encode()
}

// Query issues an authenticated read against a resource or view and decodes
// the JSON result into out. out may be nil to discard the body.
func (a *Adapter) Query(ctx context.Context, resource string, opts QueryOptions, out any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", a.restBase, resource, opts.encode())

	body, err := a.cached(ctx, reqURL, func() ([]byte, error) {
		return a.do(ctx, http.MethodGet, reqURL, nil, "application/json")
	})
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Invoke calls a named stored procedure with a JSON parameter object and
// decodes the result into out.
func (a *Adapter) Invoke(ctx context.Context, procedure string, params any, out any) error {
	reqURL := fmt.Sprintf("%s/rpc/%s", a.restBase, procedure)

	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal rpc params for %s: %w", procedure, err)
	}

	cacheKey := reqURL + "|" + string(payload)
	body, err := a.cached(ctx, cacheKey, func() ([]byte, error) {
		return a.do(ctx, http.MethodPost, reqURL, payload, "application/json")
	})
	if err != nil {
		return err
	}
	return decode(body, out)
}

// QueryCSV is Query with CSV content negotiation; the body is returned raw for
// streaming to the browser.
func (a *Adapter) QueryCSV(ctx context.Context, resource string, opts QueryOptions) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", a.restBase, resource, opts.encode())
	return a.do(ctx, http.MethodGet, reqURL, nil, "text/csv")
}

// ---- Helpers ----

func (a *Adapter) cached(ctx context.Context, key string, fetch func() ([]byte, error)) ([]byte, error) {
	if a.responseCache == nil {
		return fetch()
	}
	if hit, ok := a.responseCache.Get(key); ok {
		return hit.([]byte), nil
	}
	body, err := fetch()
	if err != nil {
		return nil, err
	}
	a.responseCache.Set(key, body, a.cacheTTL)
	return body, nil
}

func (a *Adapter) do(ctx context.Context, method, reqURL string, payload []byte, accept string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build facade request: %w", err)
	}
	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Accept", accept)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.NewUnreachableError(serviceName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUnreachableError(serviceName, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewUpstreamError(serviceName, resp.StatusCode, string(body))
	}
	return body, nil
}

// decode uses UseNumber so rows decoded into map form keep the exact numeric
// text the facade rendered; struct targets are unaffected.
func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(out)
}
