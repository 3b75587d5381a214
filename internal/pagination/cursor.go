package pagination

// cursor is the Paginator's private bookkeeping for one FetchAll call.
type cursor struct {
	offset   int
	pageSize int
	total    int
	requests int
	seen     bool // a page has reported a total
}

func newCursor(pageSize int) *cursor {
	return &cursor{pageSize: pageSize}
}

// record stores the total reported by the latest page and returns the previous one.
func (c *cursor) record(total int) (previous int, changed bool) {
	previous, changed = c.total, c.seen && c.total != total
	c.total = total
	c.seen = true
	c.requests++
	return previous, changed
}

func (c *cursor) advance() {
	c.offset += c.pageSize
}

func (c *cursor) done() bool {
	return c.offset >= c.total
}
