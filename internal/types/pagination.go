package types

// QueryFilter holds the common list parameters shared by all list endpoints
type QueryFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

const (
	DefaultQueryLimit = 50
	MaxQueryLimit     = 1000
)

// GetLimit returns the effective limit clamped to [1, MaxQueryLimit]
func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit <= 0 {
		return DefaultQueryLimit
	}
	if f.Limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return f.Limit
}

// GetOffset returns the effective offset
func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset < 0 {
		return 0
	}
	return f.Offset
}

// PaginationResponse represents standardized pagination metadata
type PaginationResponse struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListResponse represents a paginated response with items
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewListResponse creates a new list response with pagination
func NewListResponse[T any](items []T, total, limit, offset int) ListResponse[T] {
	return ListResponse[T]{
		Items: items,
		Pagination: PaginationResponse{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}
}
