package models

// Pagination describes one page of an ordered list. Pages are 1-indexed;
// HasNext tells the client whether requesting the next page is worthwhile.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPagination computes page metadata for a total record count.
func NewPagination(page, limit, total int) Pagination {
	offset := (page - 1) * limit
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		HasNext:     offset+limit < total,
		HasPrevious: page > 1,
	}
}
