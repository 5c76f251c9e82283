package request

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage()
}

func (p PaginatedRequest) PerPage() int {
	if p.Limit < 1 {
		return 12
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}
