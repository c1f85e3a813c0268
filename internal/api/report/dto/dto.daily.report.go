// Package dto - report 도메인의 입력 DTO.
package dto

import (
	"construct_works/internal/api/report/models"
	"construct_works/internal/utility"
)

// ReportEntryInput 일일출역 entry 입력
type ReportEntryInput struct {
	WorkerId    string  `json:"workerId" validate:"required"`
	WorkerName  string  `json:"workerName,omitempty"`
	ManDay      float64 `json:"manDay" validate:"gte=0"`
	UnitPrice   int64   `json:"unitPrice,omitempty" validate:"gte=0"`
	PayModel    string  `json:"payModel,omitempty" validate:"omitempty,oneof=monthly daily support-team contract-team"`
	TeamId      string  `json:"teamId,omitempty"`
	TeamName    string  `json:"teamName,omitempty"`
	WorkContent string  `json:"workContent,omitempty"`
}

// DailyReportCreateInput 일일출역 생성 입력
type DailyReportCreateInput struct {
	Date     string             `json:"date" validate:"required,len=10"` // YYYY-MM-DD
	SiteId   string             `json:"siteId" validate:"required"`
	SiteName string             `json:"siteName,omitempty"`
	TeamId   string             `json:"teamId,omitempty"`
	TeamName string             `json:"teamName,omitempty"`
	Entries  []ReportEntryInput `json:"entries,omitempty" validate:"dive"`
}

// DailyReportUpdateInput 일일출역 보고서 단위 수정 입력
type DailyReportUpdateInput struct {
	Date     string `json:"date,omitempty" validate:"omitempty,len=10"`
	SiteId   string `json:"siteId,omitempty"`
	SiteName string `json:"siteName,omitempty"`
	TeamId   string `json:"teamId,omitempty"`
	TeamName string `json:"teamName,omitempty"`
}

// ReportEntryUpdateInput 노무자별 entry 수정 입력 (PUT /daily-reports/:id/entries/:workerId)
type ReportEntryUpdateInput struct {
	ManDay      *float64 `json:"manDay,omitempty" validate:"omitempty,gte=0"`
	UnitPrice   *int64   `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	PayModel    string   `json:"payModel,omitempty" validate:"omitempty,oneof=monthly daily support-team contract-team"`
	WorkContent *string  `json:"workContent,omitempty"`
}

// ImportRowsInput 일괄 업로드 JSON 입력 (multipart 대신 row 배열을 직접 보낼 때)
type ImportRowsInput struct {
	Rows []map[string]string `json:"rows" validate:"required,min=1"`
}

// ToEntry ReportEntryInput을 ReportEntry 모델로 변환한다
func (in *ReportEntryInput) ToEntry() models.ReportEntry {
	return models.ReportEntry{
		WorkerID:    utility.String2ObjectID(in.WorkerId),
		WorkerName:  in.WorkerName,
		ManDay:      in.ManDay,
		UnitPrice:   in.UnitPrice,
		PayModel:    in.PayModel,
		TeamID:      utility.String2ObjectID(in.TeamId),
		TeamName:    in.TeamName,
		WorkContent: in.WorkContent,
	}
}

// ToModel DailyReportCreateInput을 DailyReport 모델로 변환한다
func (in *DailyReportCreateInput) ToModel() (*models.DailyReport, error) {
	entries := make([]models.ReportEntry, 0, len(in.Entries))
	for i := range in.Entries {
		entries = append(entries, in.Entries[i].ToEntry())
	}
	return &models.DailyReport{
		Date:     in.Date,
		SiteID:   utility.String2ObjectID(in.SiteId),
		SiteName: in.SiteName,
		TeamID:   utility.String2ObjectID(in.TeamId),
		TeamName: in.TeamName,
		Entries:  entries,
	}, nil
}

// ToModel DailyReportUpdateInput을 DailyReport 모델로 변환한다
func (in *DailyReportUpdateInput) ToModel() (*models.DailyReport, error) {
	return &models.DailyReport{
		Date:     in.Date,
		SiteID:   utility.String2ObjectID(in.SiteId),
		SiteName: in.SiteName,
		TeamID:   utility.String2ObjectID(in.TeamId),
		TeamName: in.TeamName,
	}, nil
}
