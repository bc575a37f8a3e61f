package models

// Pagination is the listing envelope every collection endpoint returns.
// Previous/Next are null at the edges rather than clamped.
type Pagination struct {
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalData   int  `json:"total_data"`
	TotalPage   int  `json:"total_page"`
	Previous    *int `json:"previous"`
	Next        *int `json:"next"`
}

// NewPagination computes the page window for a listing: total_page is
// ceil(total/limit), previous is page-1 when there is one, next is page+1
// while it stays within total_page.
func NewPagination(page, limit, total int) Pagination {
	totalPage := 0
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}

	p := Pagination{
		PerPage:     limit,
		CurrentPage: page,
		TotalData:   total,
		TotalPage:   totalPage,
	}
	if page-1 > 0 {
		prev := page - 1
		p.Previous = &prev
	}
	if page+1 <= totalPage {
		next := page + 1
		p.Next = &next
	}
	return p
}
