// Package models 는 base 서비스 계층에서 공용으로 쓰는 타입(페이지네이션, 카운트 결과)을 담는다.
package models

// PaginateResult 페이지네이션 결과
type PaginateResult[T any] struct {
	// 현재 페이지
	Page int64 `json:"page" bson:"page"`
	// 페이지당 항목 수
	Limit int64 `json:"limit" bson:"limit"`
	// 현재 페이지의 항목 수
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// 항목 목록
	Items []T `json:"items" bson:"items"`
	// 전체 항목 수
	Total int64 `json:"total" bson:"total"`
	// 전체 페이지 수
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult 카운트 결과
type CountResult struct {
	// 전체 항목 수
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// 페이지당 항목 수
	Limit int64 `json:"limit" bson:"limit"`
	// 전체 페이지 수
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
