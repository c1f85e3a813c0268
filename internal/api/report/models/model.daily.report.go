// Package models - DailyReport는 report 도메인의 일일출역 문서이다 (cw_daily_reports).
// 출역 기록은 append 위주의 근로시간 원본 데이터이며, 수정은 보고서 단위
// 필드 갱신 또는 노무자별 entry 갱신으로만 이루어진다.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportEntry 일일출역의 노무자별 기록.
// workerName/unitPrice/payModel/teamName은 기록 시점의 snapshot이다 (이력 보존).
type ReportEntry struct {
	WorkerID   primitive.ObjectID `json:"workerId" bson:"workerId"`
	WorkerName string             `json:"workerName" bson:"workerName"`

	ManDay    float64 `json:"manDay" bson:"manDay"`       // 공수 (소수 허용, 0 이상)
	UnitPrice int64   `json:"unitPrice" bson:"unitPrice"` // 단가 snapshot (원)
	PayModel  string  `json:"payModel,omitempty" bson:"payModel,omitempty"`

	// entry 단위 팀 snapshot (보고서의 팀과 다를 수 있다)
	TeamID   primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	TeamName string             `json:"teamName,omitempty" bson:"teamName,omitempty"`

	WorkContent string `json:"workContent,omitempty" bson:"workContent,omitempty"` // 작업 내용
}

// DailyReport 일일출역 (cw_daily_reports)
type DailyReport struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Date string `json:"date" bson:"date"` // YYYY-MM-DD

	// 현장 (snapshot)
	SiteID   primitive.ObjectID `json:"siteId" bson:"siteId"`
	SiteName string             `json:"siteName" bson:"siteName"`

	// 팀 (snapshot)
	TeamID   primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	TeamName string             `json:"teamName,omitempty" bson:"teamName,omitempty"`

	Entries []ReportEntry `json:"entries" bson:"entries"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
