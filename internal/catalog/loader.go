package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// The reference datasets are comma-delimited text with a header row. Columns
// are addressed by fixed position; anything beyond the row's range reads as
// absent and defaults to empty/zero.
const delimiter = ","

// RowParser maps one delimited data row (header excluded) into a record.
// The row index is zero-based and feeds the synthetic identity. Returning
// ok=false drops the row without failing the load.
type RowParser[T any] func(index int, cols []string) (item T, ok bool)

// Load fetches a delimited text resource and maps every data row through
// parse. A transport-level failure fails the whole load; a malformed row never
// does, it is either defaulted or dropped by the parser.
func Load[T any](ctx context.Context, client *http.Client, url string, parse RowParser[T]) ([]T, error) {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) <= 1 {
		return []T{}, nil
	}

	items := make([]T, 0, len(lines)-1)
	for i, line := range lines[1:] { // skip header
		cols := strings.Split(line, delimiter)
		if item, ok := parse(i, cols); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// col returns the column at index i, or "" when the row is too short.
func col(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

// numCol parses the column at index i as a float, falling back to 0 on any
// parse failure so one bad cell never aborts the load.
func numCol(cols []string, i int) float64 {
	v, err := strconv.ParseFloat(col(cols, i), 64)
	if err != nil {
		return 0
	}
	return v
}
