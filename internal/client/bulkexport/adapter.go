// Package bulkexportclient talks to the asynchronous export worker (an edge
// function). The worker owns CSV materialization, caching, and file storage;
// this adapter only forwards a validated request and hands back whatever
// status and body the worker produced.
package bulkexportclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/azwatch/campfin-backend/internal/errs"
)

const serviceName = "export service"

type Adapter struct {
	functionURL string
	anonKey     string
	client      *http.Client
}

// NewAdapter points at supabaseURL's bulk_export edge function. The relay runs
// with the read-only anon credential, never the service role key.
func NewAdapter(supabaseURL, anonKey string) *Adapter {
	return &Adapter{
		functionURL: supabaseURL + "/functions/v1/bulk_export",
		anonKey:     anonKey,
		client:      &http.Client{Timeout: 120 * time.Second},
	}
}

// Relay is the export service's answer, passed through unmodified.
type Relay struct {
	Status int
	Body   []byte
}

// Export forwards the already-validated request body. A transport failure is
// an error; any HTTP response, success or not, is a Relay for the caller to
// surface.
func (a *Adapter) Export(ctx context.Context, body []byte) (*Relay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.functionURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+a.anonKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.NewUnreachableError(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUnreachableError(serviceName, err)
	}

	return &Relay{Status: resp.StatusCode, Body: respBody}, nil
}
