// Package paging implements the offset-based "load more" protocol used by the
// paginated endpoints: every row of a page carries a denormalized total_count
// column, and a consumer knows it has everything once its cumulative fetched
// count reaches that total.
package paging

// HasMore reports whether another page exists after `fetched` rows have been
// retrieved out of `total`.
func HasMore(fetched, total int) bool {
	return fetched < total
}
