// Package reportsvc - report 도메인 서비스 (일일출역).
package reportsvc

import (
	"context"
	"fmt"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/report/dto"
	"construct_works/internal/api/report/models"
	"construct_works/internal/common"
	"construct_works/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyReportService 일일출역 CRUD + 조회 서비스
type DailyReportService struct {
	*basesvc.BaseServiceMongoImpl[models.DailyReport]
}

// NewDailyReportService 새 DailyReportService를 생성한다
func NewDailyReportService() (*DailyReportService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DailyReports)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.DailyReports, common.ErrNotFound)
	}
	return &DailyReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DailyReport](coll),
	}, nil
}

// FindByDateRange 날짜 범위(포함)로 출역 보고서를 조회한다.
// date는 YYYY-MM-DD 문자열이라 사전순 비교가 날짜순 비교와 같다.
func (s *DailyReportService) FindByDateRange(ctx context.Context, startDate, endDate string, teamID primitive.ObjectID) ([]models.DailyReport, error) {
	filter := bson.M{
		"date": bson.M{"$gte": startDate, "$lte": endDate},
	}
	if !teamID.IsZero() {
		filter["teamId"] = teamID
	}
	return s.Find(ctx, filter, nil)
}

// FindByDateSiteTeam (date, siteId, teamId)로 보고서 하나를 조회한다 (import 병합용)
func (s *DailyReportService) FindByDateSiteTeam(ctx context.Context, date string, siteID, teamID primitive.ObjectID) (models.DailyReport, error) {
	filter := bson.M{
		"date":   date,
		"siteId": siteID,
	}
	if teamID.IsZero() {
		filter["teamId"] = bson.M{"$exists": false}
	} else {
		filter["teamId"] = teamID
	}
	return s.FindOne(ctx, filter, nil)
}

// UpdateEntry 보고서 안의 노무자별 entry를 갱신한다.
// positional operator($)로 해당 entry 필드만 수정한다.
func (s *DailyReportService) UpdateEntry(ctx context.Context, reportID primitive.ObjectID, workerID primitive.ObjectID, input *dto.ReportEntryUpdateInput) (models.DailyReport, error) {
	var zero models.DailyReport

	set := map[string]interface{}{}
	if input.ManDay != nil {
		set["entries.$.manDay"] = *input.ManDay
	}
	if input.UnitPrice != nil {
		set["entries.$.unitPrice"] = *input.UnitPrice
	}
	if input.PayModel != "" {
		set["entries.$.payModel"] = input.PayModel
	}
	if input.WorkContent != nil {
		set["entries.$.workContent"] = *input.WorkContent
	}
	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"수정할 필드가 없습니다",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{
		"_id":              reportID,
		"entries.workerId": workerID,
	}
	return s.UpdateOne(ctx, filter, basesvc.UpdateData{Set: set}, nil)
}

// AppendOrReplaceEntry 보고서에 entry를 추가하거나, 같은 노무자의 entry가 있으면 교체한다
func (s *DailyReportService) AppendOrReplaceEntry(ctx context.Context, report models.DailyReport, entry models.ReportEntry) (models.DailyReport, error) {
	replaced := false
	for i := range report.Entries {
		if report.Entries[i].WorkerID == entry.WorkerID {
			report.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		report.Entries = append(report.Entries, entry)
	}

	return s.UpdateById(ctx, report.ID, basesvc.UpdateData{
		Set: map[string]interface{}{"entries": report.Entries},
	})
}
