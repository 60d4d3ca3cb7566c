package ports

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSortField = "created_at"
	SortAsc          = "asc"
	SortDesc         = "desc"
)

// PageInfo is the pagination block of list responses.
type PageInfo struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPageInfo computes the page count for a total row count and page size.
// Pages is ceil(total/limit); 0 rows yield 0 pages.
func NewPageInfo(total int64, page, limit int) PageInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{Page: page, Pages: pages}
}

// NormalizePage clamps page/limit to their defaults and the limit cap.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// NormalizeSort applies the default sort field and direction.
func NormalizeSort(field, order string) (string, string) {
	if field == "" {
		field = DefaultSortField
	}
	if order != SortAsc {
		order = SortDesc
	}
	return field, order
}
