package httpx

import (
	"net/http"
	"net/url"
	"strconv"
)

// Pager computes SQL windows and view metadata for one-indexed page numbers.
type Pager struct {
	Page     int
	PageSize int
}

// NewPager builds a Pager, coercing out-of-range inputs. Pages below 1
// (including unparseable ones, which arrive as 0) become page 1.
func NewPager(page, pageSize int) Pager {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return Pager{Page: page, PageSize: pageSize}
}

// PagerFromRequest reads the "page" query parameter and builds a Pager.
func PagerFromRequest(r *http.Request, pageSize int) Pager {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	return NewPager(page, pageSize)
}

// Offset returns the SQL offset for the current page.
func (p Pager) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns the page count for total rows, rounding up.
// Zero rows still produce one (empty) page.
func (p Pager) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

// Paginate builds the view metadata for the current page. base is the list
// path and query the current filter parameters; the page parameter is
// rewritten per link so filters survive navigation.
func (p Pager) Paginate(total int, base string, query url.Values) Pagination {
	totalPages := p.TotalPages(total)
	pg := Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < totalPages,
	}
	if pg.HasPrev {
		pg.PrevURL = pageURL(base, query, p.Page-1)
	}
	if pg.HasNext {
		pg.NextURL = pageURL(base, query, p.Page+1)
	}
	return pg
}

func pageURL(base string, query url.Values, page int) string {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	return base + "?" + q.Encode()
}
