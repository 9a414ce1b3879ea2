package repositories

// DefaultPageSize matches the default used by every list endpoint.
const DefaultPageSize = 5

// PageRequest carries 1-based page number, page size and a sort column.
// Sort must already be validated against the entity's column whitelist.
type PageRequest struct {
	Page int
	Size int
	Sort string
	Desc bool
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

func (p PageRequest) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit()
}

// Order returns the ORDER BY expression, falling back to the entity default.
func (p PageRequest) Order(defaultSort string) string {
	sort := p.Sort
	if sort == "" {
		sort = defaultSort
	}
	if p.Desc {
		return sort + " DESC"
	}
	return sort
}
