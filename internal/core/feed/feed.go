package feed

import "strconv"

// Page یک برش محدود از یک دنباله مرتب به همراه اطلاعات صفحه‌بندی
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"page_number"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Window is the slice of a sequence a page covers.
type Window struct {
	Number     int
	TotalPages int
	Offset     int
	Limit      int
}

// Locate clamps number into [1, totalPages] for a sequence of total items.
// An empty sequence still has one (empty) page. Anything out of range,
// including numbers below 1, lands on the last page.
func Locate(total, pageSize, number int) Window {
	if pageSize <= 0 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	if number < 1 || number > pages {
		number = pages
	}
	return Window{
		Number:     number,
		TotalPages: pages,
		Offset:     (number - 1) * pageSize,
		Limit:      pageSize,
	}
}

// NewPage wraps items already cut to w.
func NewPage[T any](items []T, w Window, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      w.Number,
		TotalPages:  w.TotalPages,
		TotalItems:  total,
		HasNext:     w.Number < w.TotalPages,
		HasPrevious: w.Number > 1,
	}
}

// Paginate cuts page number out of an in-memory sequence.
func Paginate[T any](seq []T, pageSize, number int) Page[T] {
	w := Locate(len(seq), pageSize, number)
	end := w.Offset + w.Limit
	if end > len(seq) {
		end = len(seq)
	}
	return NewPage(seq[w.Offset:end], w, len(seq))
}

// ParseNumber reads a page query value; anything that is not an integer is page 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
