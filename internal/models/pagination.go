package models

// Pagination captures common list query parameters.
type Pagination struct {
	Page    int `form:"page"`
	PerPage int `form:"perPage"`
}

// Normalize clamps page and perPage to sane bounds.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the SQL offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
