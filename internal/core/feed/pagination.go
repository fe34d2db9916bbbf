package feed

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultPageSize posts per page on every feed
const DefaultPageSize = 10

// Window the part of an ordered result set one page covers
type Window struct {
	Number      int
	TotalPages  int
	Offset      int
	Limit       int
	HasNext     bool
	HasPrevious bool
}

// Resolve computes the window for page raw of a result set with total items.
// Out of range pages are clamped: missing, non-numeric or < 1 gives the first
// page, anything past the end gives the last one. An empty set still has one page.
func Resolve(total int64, size int, raw string) Window {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}
	number := PageNumber(raw, totalPages)

	return Window{
		Number:      number,
		TotalPages:  totalPages,
		Offset:      (number - 1) * size,
		Limit:       size,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// PageNumber parses a 1-based page number and clamps it into [1, totalPages]
func PageNumber(raw string, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	raw = strings.TrimSpace(raw)

	n, err := strconv.Atoi(raw)
	switch {
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(raw, "-") {
			return 1
		}
		return totalPages
	case err != nil, n < 1:
		return 1
	case n > totalPages:
		return totalPages
	}
	return n
}

// Page a slice of a feed plus navigation metadata
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPage wraps already-sliced items with the metadata of w
func NewPage[T any](items []T, w Window) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      w.Number,
		TotalPages:  w.TotalPages,
		HasNext:     w.HasNext,
		HasPrevious: w.HasPrevious,
	}
}

// Paginate slices an in-memory ordered sequence
func Paginate[T any](items []T, size int, raw string) Page[T] {
	w := Resolve(int64(len(items)), size, raw)

	start := min(w.Offset, len(items))
	end := min(start+w.Limit, len(items))
	return NewPage(items[start:end], w)
}
