package query

// Pagination limits for faceted search.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a normalized 1-based page window.
type Page struct {
	number int
	size   int
}

// NewPage normalizes page parameters with the default limits.
func NewPage(number, size int) Page {
	return ClampPage(number, size, DefaultPageSize, MaxPageSize)
}

// ClampPage normalizes page parameters: number < 1 becomes 1, size <= 0 becomes
// defaultSize, size above maxSize is clamped to maxSize.
func ClampPage(number, size, defaultSize, maxSize int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return Page{number: number, size: size}
}

// Number returns the 1-based page number.
func (p Page) Number() int { return p.number }

// Size returns the effective page size.
func (p Page) Size() int { return p.size }

// From returns the starting offset.
func (p Page) From() int { return (p.number - 1) * p.size }

// TotalPages returns ceil(total/size).
func (p Page) TotalPages(total int64) int64 {
	if p.size <= 0 || total <= 0 {
		return 0
	}
	return (total + int64(p.size) - 1) / int64(p.size)
}
