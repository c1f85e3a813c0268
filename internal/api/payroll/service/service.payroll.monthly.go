package paysvc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/payroll/dto"
	"construct_works/internal/api/payroll/models"
	reportsvc "construct_works/internal/api/report/service"
	wfsvc "construct_works/internal/api/workforce/service"
	"construct_works/internal/common"
	"construct_works/internal/global"
	"construct_works/internal/logger"
	"construct_works/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// AdvancePaymentService 월별 공제 CRUD 서비스
type AdvancePaymentService struct {
	*basesvc.BaseServiceMongoImpl[models.AdvancePayment]
}

// NewAdvancePaymentService 새 AdvancePaymentService를 생성한다
func NewAdvancePaymentService() (*AdvancePaymentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdvancePayments)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.AdvancePayments, common.ErrNotFound)
	}
	return &AdvancePaymentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AdvancePayment](coll),
	}, nil
}

// FindByMonth 해당 월의 공제 레코드 전부
func (s *AdvancePaymentService) FindByMonth(ctx context.Context, yearMonth string) ([]models.AdvancePayment, error) {
	return s.Find(ctx, bson.M{"yearMonth": yearMonth}, nil)
}

// PayrollService 월별 정산 파이프라인: 출역 집계 → 공제 해소 → 정산 행 조립
type PayrollService struct {
	workerService  *wfsvc.WorkerService
	teamService    *wfsvc.TeamService
	companyService *wfsvc.CompanyService
	reportService  *reportsvc.DailyReportService
	advanceService *AdvancePaymentService
}

// NewPayrollService 새 PayrollService를 생성한다
func NewPayrollService() (*PayrollService, error) {
	workerService, err := wfsvc.NewWorkerService()
	if err != nil {
		return nil, err
	}
	teamService, err := wfsvc.NewTeamService()
	if err != nil {
		return nil, err
	}
	companyService, err := wfsvc.NewCompanyService()
	if err != nil {
		return nil, err
	}
	reportService, err := reportsvc.NewDailyReportService()
	if err != nil {
		return nil, err
	}
	advanceService, err := NewAdvancePaymentService()
	if err != nil {
		return nil, err
	}
	return &PayrollService{
		workerService:  workerService,
		teamService:    teamService,
		companyService: companyService,
		reportService:  reportService,
		advanceService: advanceService,
	}, nil
}

// monthDateRange yearMonth의 [첫날, 마지막날] (YYYY-MM-DD, 포함 범위)
func monthDateRange(yearMonth string) (string, string, error) {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return "", "", common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("yearMonth는 YYYY-MM 형식이어야 합니다: %q", yearMonth),
			common.StatusBadRequest,
			nil,
		)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}

// MonthlyPayroll 한 달치 정산 행을 만든다.
// teamID가 zero가 아니면 해당 팀의 행만, payModel이 비어 있지 않으면 해당 지급 방식만.
func (s *PayrollService) MonthlyPayroll(ctx context.Context, yearMonth string, teamID primitive.ObjectID, payModel string) (*AssembleResult, error) {
	if !yearMonthPattern.MatchString(yearMonth) {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("yearMonth는 YYYY-MM 형식이어야 합니다: %q", yearMonth),
			common.StatusBadRequest,
			nil,
		)
	}
	startDate, endDate, err := monthDateRange(yearMonth)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("노무자 조회 실패: %w", err)
	}
	teams, err := s.teamService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("팀 조회 실패: %w", err)
	}
	companies, err := s.companyService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("업체 조회 실패: %w", err)
	}
	// 팀 필터는 집계 후에 적용한다. 보고서 teamId가 stale해도
	// 노무자 현재 팀으로 해소된 entry를 놓치지 않기 위해서다.
	reports, err := s.reportService.FindByDateRange(ctx, startDate, endDate, primitive.NilObjectID)
	if err != nil {
		return nil, fmt.Errorf("출역 보고서 조회 실패: %w", err)
	}
	advances, err := s.advanceService.FindByMonth(ctx, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("공제 레코드 조회 실패: %w", err)
	}

	ref := BuildReferenceData(workers, teams, companies)
	aggregates := AggregateDailyReports(reports, payModel, ref)
	result := AssemblePayments(aggregates, advances, yearMonth, payModel)

	if !teamID.IsZero() {
		filtered := &AssembleResult{Records: []PaymentRecord{}}
		teamHex := teamID.Hex()
		for _, record := range result.Records {
			if record.TeamID != teamHex {
				continue
			}
			filtered.Records = append(filtered.Records, record)
			if !record.IsValid {
				filtered.InvalidCount++
			}
		}
		result = filtered
	}

	logger.GetAppLogger().Infof("월 정산 조립: %s, 행 %d건, 계좌 오류 %d건",
		yearMonth, len(result.Records), result.InvalidCount)
	return result, nil
}

// SetDisplayContent 정산 행의 표시용 작업 내용을 공제 레코드에 저장한다.
// 해당 (노무자, 팀, 월) 레코드가 없으면 새로 만든다 (upsert).
func (s *PayrollService) SetDisplayContent(ctx context.Context, input *dto.DisplayContentInput) (models.AdvancePayment, error) {
	var zero models.AdvancePayment

	workerID := utility.String2ObjectID(input.WorkerId)
	if workerID.IsZero() {
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("노무자 ID가 ObjectID 형식이 아닙니다: %s", input.WorkerId),
			common.StatusBadRequest,
			nil,
		)
	}
	if !yearMonthPattern.MatchString(input.YearMonth) {
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("yearMonth는 YYYY-MM 형식이어야 합니다: %q", input.YearMonth),
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{
		"workerId":  workerID,
		"yearMonth": input.YearMonth,
	}
	teamID := utility.String2ObjectID(input.TeamId)
	if !teamID.IsZero() {
		filter["teamId"] = teamID
	} else {
		filter["teamId"] = bson.M{"$exists": false}
	}

	set := map[string]interface{}{
		"workerId":       workerID,
		"yearMonth":      input.YearMonth,
		"displayContent": input.DisplayContent,
	}
	if !teamID.IsZero() {
		set["teamId"] = teamID
	}

	return s.advanceService.Upsert(ctx, filter, basesvc.UpdateData{Set: set})
}
