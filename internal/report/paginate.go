package report

// Pagination is a stateless display concern layered on top of the engine's
// output: slicing a computed list never interacts with aggregation.

// Paginate returns the 1-indexed page of the given size: items
// [(page-1)*size, min(page*size, len)). Out-of-range pages yield an empty
// slice; a non-positive size falls back to the whole list as one page.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * size
	if lo >= len(items) {
		return nil
	}
	hi := lo + size
	if hi > len(items) {
		hi = len(items)
	}
	return items[lo:hi]
}

// PageCount returns ceil(total/size).
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
