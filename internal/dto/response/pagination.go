package response

import "hostel-booking/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta mirrors the dashboard contract: current page, page count,
// total record count.
type PaginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	if page < 1 {
		page = 1
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Current: page,
			Pages:   utils.CalculateTotalPages(total, limit),
			Total:   total,
		},
	}
}
