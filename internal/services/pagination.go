package services

// PageInfo describes one page of a sliced sequence.
type PageInfo[T any] struct {
	CurrentItems []T
	TotalPages   int
}

// Paginate slices items into fixed-size pages. Page numbering starts at 1; a
// page beyond the end yields an empty slice rather than an error, callers reset
// to page 1 when the underlying set shrinks.
func Paginate[T any](items []T, pageSize, currentPage int) PageInfo[T] {
	if pageSize <= 0 || currentPage < 1 {
		return PageInfo[T]{CurrentItems: []T{}}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	first := (currentPage - 1) * pageSize
	if first >= len(items) {
		return PageInfo[T]{CurrentItems: []T{}, TotalPages: totalPages}
	}
	last := min(first+pageSize, len(items))

	return PageInfo[T]{CurrentItems: items[first:last], TotalPages: totalPages}
}
