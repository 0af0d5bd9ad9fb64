// Package csvenc renders row maps as CSV with a fixed, ordered column set.
//
// Two rules keep the output byte-compatible with the files users already have
// from the previous exporter: a value is wrapped in quotes (with embedded
// quotes doubled) only when it contains a comma or a quote, and falsy values
// (nil, numeric zero, false) render as empty fields.
package csvenc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Column maps a row key to its CSV header label.
type Column struct {
	Key   string
	Label string
}

// Encode renders rows under the given columns. Missing or nil values render as
// empty fields. Row order and column order are preserved.
func Encode(rows []map[string]any, columns []Column) []byte {
	var b strings.Builder

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = escape(col.Label)
	}
	b.WriteString(strings.Join(labels, ","))

	fields := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			fields[i] = escape(format(row[col.Key]))
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(fields, ","))
	}

	return []byte(b.String())
}

func escape(value string) string {
	if strings.ContainsAny(value, `,"`) {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
