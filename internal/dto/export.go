package dto

import "encoding/json"

// ExportKind tags which dataset a CSV-shaped fetch or bulk export covers.
// One parameterized path per kind instead of duplicated handler pairs.
type ExportKind string

const (
	ExportKindReports      ExportKind = "reports"
	ExportKindTransactions ExportKind = "transactions"
	ExportKindDonations    ExportKind = "donations"
)

// ExportFilters narrows a bulk export. Forwarded opaquely; the export worker
// interprets them.
type ExportFilters struct {
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
	Type     *string `json:"type,omitempty"`
}

// EntityID defers numeric parsing to validation time, so a body like
// {"entity_ids":[101502,"abc",3.5]} still decodes and the bad values can be
// rejected by name instead of failing the whole request with a decode error.
type EntityID struct {
	raw json.RawMessage
}

func (id *EntityID) UnmarshalJSON(b []byte) error {
	id.raw = append(id.raw[:0], b...)
	return nil
}

func (id EntityID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// Int64 parses the id as an integer. Strings, fractions and anything else
// non-integral return an error.
func (id EntityID) Int64() (int64, error) {
	var n json.Number
	if err := json.Unmarshal(id.raw, &n); err != nil {
		return 0, err
	}
	return n.Int64()
}

// String renders the value the way the caller wrote it, minus JSON quoting.
func (id EntityID) String() string {
	var s string
	if err := json.Unmarshal(id.raw, &s); err == nil {
		return s
	}
	return string(id.raw)
}

// BulkExportRequest is the inbound bulk export body.
type BulkExportRequest struct {
	Kind      ExportKind     `json:"kind"`
	EntityIDs []EntityID     `json:"entity_ids"`
	Filters   *ExportFilters `json:"filters,omitempty"`
	Zip       bool           `json:"zip,omitempty"`
}

// ExportResult is the canonical success descriptor produced by the export
// worker. The relay itself is shape-agnostic; this type documents the contract
// for consumers.
type ExportResult struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	RecordCount int64  `json:"record_count"`
	EntityCount int    `json:"entity_count"`
	URL         string `json:"url"`
	Cached      bool   `json:"cached,omitempty"`
}

// ExportRelay carries the export worker's verbatim answer back through the
// service layer.
type ExportRelay struct {
	Status int
	Body   json.RawMessage
}
