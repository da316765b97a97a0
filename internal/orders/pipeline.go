package orders

import "strings"

// DefaultPageSize matches the storefront's orders table.
const DefaultPageSize = 5

// Filter keeps records whose name contains text, ignoring case. Source order
// is preserved and an empty query returns every record.
func Filter(records []Record, text string) []Record {
	needle := strings.ToLower(text)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// PageCount is ceil(n/size), never less than one.
func PageCount(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PageSlice returns the 1-based page of records, clipped to what exists.
func PageSlice(records []Record, page, size int) []Record {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(records) {
		return []Record{}
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// Pipeline derives the visible orders page from a fetched record set, the
// search text and the page position. It also tracks the order under
// inspection. Selection does not affect filtering or paging.
type Pipeline struct {
	records  []Record
	search   string
	page     int
	pageSize int
	selected *Record
	loading  bool
	err      error
}

// NewPipeline returns an empty pipeline awaiting its first fetch.
func NewPipeline(pageSize int) Pipeline {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pipeline{page: 1, pageSize: pageSize, loading: true}
}

// BeginLoad marks a fetch as in flight.
func (p *Pipeline) BeginLoad() {
	p.loading = true
	p.err = nil
}

// Load installs a fetch result. A failed fetch leaves an empty set and keeps
// the error for display.
func (p *Pipeline) Load(records []Record, err error) {
	p.loading = false
	p.err = err
	if err != nil {
		records = nil
	}
	p.records = records
	p.clampPage()
}

func (p Pipeline) Loading() bool { return p.loading }
func (p Pipeline) Err() error    { return p.err }
func (p Pipeline) Records() []Record {
	return p.records
}

// SetSearchText replaces the query and returns to the first page.
func (p *Pipeline) SetSearchText(text string) {
	p.search = text
	p.page = 1
}

func (p Pipeline) SearchText() string { return p.search }

// SetPageSize changes the page size, keeping the page index in range.
func (p *Pipeline) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	p.pageSize = size
	p.clampPage()
}

func (p Pipeline) PageSize() int { return p.pageSize }
func (p Pipeline) Page() int     { return p.page }

// Filtered returns the records matching the search text.
func (p Pipeline) Filtered() []Record {
	return Filter(p.records, p.search)
}

// PageCount returns the number of pages for the current filter.
func (p Pipeline) PageCount() int {
	return PageCount(len(p.Filtered()), p.pageSize)
}

// CurrentPage returns the visible records.
func (p Pipeline) CurrentPage() []Record {
	return PageSlice(p.Filtered(), p.page, p.pageSize)
}

// NextPage advances unless already on the last page.
func (p *Pipeline) NextPage() {
	if p.page < p.PageCount() {
		p.page++
	}
}

// PrevPage steps back unless already on the first page.
func (p *Pipeline) PrevPage() {
	if p.page > 1 {
		p.page--
	}
}

// Window reports the 1-based range of visible records and the filtered
// total, for "Showing first-last of total". All zero when nothing matches.
func (p Pipeline) Window() (first, last, total int) {
	total = len(p.Filtered())
	if total == 0 {
		return 0, 0, 0
	}
	first = (p.page-1)*p.pageSize + 1
	last = min(p.page*p.pageSize, total)
	return first, last, total
}

// Select opens the detail view for r.
func (p *Pipeline) Select(r Record) {
	p.selected = &r
}

// ClearSelection dismisses the detail view.
func (p *Pipeline) ClearSelection() {
	p.selected = nil
}

// Selected returns the inspected record, if any.
func (p Pipeline) Selected() (Record, bool) {
	if p.selected == nil {
		return Record{}, false
	}
	return *p.selected, true
}

func (p *Pipeline) clampPage() {
	if p.page < 1 {
		p.page = 1
	}
	if pages := p.PageCount(); p.page > pages {
		p.page = pages
	}
}
