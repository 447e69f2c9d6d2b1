package views

// Paginator tracks a cursor over a list shown one page at a time
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator. Non-positive sizes default to 10.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes the page size, keeping the cursor visible
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the number of items and clamps the cursor
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.cursor = max(0, min(p.cursor, total-1))
	p.follow()
}

func (p *Paginator) Cursor() int {
	return p.cursor
}

func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// NextPage jumps to the first item of the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.total {
		return false
	}
	p.pageOffset += p.pageSize
	p.cursor = p.pageOffset
	return true
}

// PrevPage jumps to the first item of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.pageOffset = max(0, p.pageOffset-p.pageSize)
	p.cursor = p.pageOffset
	return true
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Reset moves back to the first item
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

func (p *Paginator) follow() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
