package dto

import "sales/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Code       int                 `json:"code"`
	Detail     string              `json:"detail"`
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// ListResponse là envelope cho các response trả về danh sách không phân trang
type ListResponse[T any] struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
	Data   []T    `json:"data"`
}
