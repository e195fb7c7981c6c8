package suggest

// DefaultPageSize is how many matches a page shows
const DefaultPageSize = 10

// Pager slices a result set into fixed-size pages
type Pager struct {
	size int
}

// NewPager returns a pager; non-positive sizes fall back to DefaultPageSize
func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

// Size returns the page size
func (p Pager) Size() int {
	return p.size
}

// Pages returns how many pages n items need
func (p Pager) Pages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + p.size - 1) / p.size
}

// Clamp keeps page inside [0, Pages(n)-1]. Empty sets clamp to 0.
func (p Pager) Clamp(page, n int) int {
	last := p.Pages(n) - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Page returns the items on page (0-based) after clamping
func (p Pager) Page(items []string, page int) []string {
	page = p.Clamp(page, len(items))
	start := page * p.size
	if start >= len(items) {
		return []string{}
	}
	end := min(start+p.size, len(items))
	return items[start:end]
}
