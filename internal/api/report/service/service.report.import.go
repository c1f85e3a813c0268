package reportsvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"construct_works/internal/api/report/models"
	wfmodels "construct_works/internal/api/workforce/models"
	wfsvc "construct_works/internal/api/workforce/service"
	"construct_works/internal/common"
	"construct_works/internal/global"
	"construct_works/internal/logger"
)

// importRow 업로드 row 한 건을 파싱한 결과
type importRow struct {
	Date        string // YYYY-MM-DD 로 정규화
	SiteName    string
	TeamName    string
	WorkerName  string
	ManDay      float64
	UnitPrice   int64 // 0이면 노무자 기본 단가 사용
	WorkContent string
}

// ImportResult 일괄 업로드 결과 집계
type ImportResult struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportService 출역부 일괄 업로드 서비스.
// row를 chunk 단위로 순차 처리하며 chunk 사이에 대기 시간을 둔다 (DB 부하 완충).
type ImportService struct {
	reportService *DailyReportService
	workerService *wfsvc.WorkerService
	teamService   *wfsvc.TeamService
	siteService   *wfsvc.SiteService

	chunkSize int
	chunkWait time.Duration
}

// NewImportService 새 ImportService를 생성한다 (chunk 설정은 서버 설정에서 읽는다)
func NewImportService() (*ImportService, error) {
	reportService, err := NewDailyReportService()
	if err != nil {
		return nil, err
	}
	workerService, err := wfsvc.NewWorkerService()
	if err != nil {
		return nil, err
	}
	teamService, err := wfsvc.NewTeamService()
	if err != nil {
		return nil, err
	}
	siteService, err := wfsvc.NewSiteService()
	if err != nil {
		return nil, err
	}

	chunkSize := 20
	chunkWait := 100
	if global.ServerConfig != nil {
		chunkSize = global.ServerConfig.Import_ChunkSize
		chunkWait = global.ServerConfig.Import_ChunkWait
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	return &ImportService{
		reportService: reportService,
		workerService: workerService,
		teamService:   teamService,
		siteService:   siteService,
		chunkSize:     chunkSize,
		chunkWait:     time.Duration(chunkWait) * time.Millisecond,
	}, nil
}

// 컬럼 키 후보. 엑셀 헤더 표기가 일정하지 않아 동의어를 함께 받는다.
var (
	colDate    = []string{"날짜", "일자", "date"}
	colSite    = []string{"현장", "현장명", "site"}
	colTeam    = []string{"팀", "팀명", "team"}
	colWorker  = []string{"성명", "이름", "노무자", "name"}
	colManDay  = []string{"공수", "manDay"}
	colPrice   = []string{"단가", "unitPrice"}
	colContent = []string{"작업내용", "내용", "workContent"}
)

func pickColumn(row map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// normalizeDate 날짜 표기를 YYYY-MM-DD로 통일한다.
// "2025.1.3", "2025/01/03", "2025-01-03" 모두 허용.
func normalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(".", "-", "/", "-").Replace(s)
	s = strings.TrimSuffix(s, "-")

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("날짜 형식이 올바르지 않습니다: %q", raw)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 2000 || year > 2100 {
		return "", fmt.Errorf("날짜 형식이 올바르지 않습니다: %q", raw)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("날짜 형식이 올바르지 않습니다: %q", raw)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("날짜 형식이 올바르지 않습니다: %q", raw)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// parseAmount "150,000" 같은 콤마 표기를 허용하는 금액 파싱
func parseAmount(raw string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, nil
	}
	// 엑셀에서 "150000.0" 으로 넘어오는 경우가 있다
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("금액 형식이 올바르지 않습니다: %q", raw)
	}
	return int64(f), nil
}

// parseImportRow 업로드 row 한 건을 검증/정규화한다
func parseImportRow(row map[string]string) (*importRow, error) {
	date, err := normalizeDate(pickColumn(row, colDate))
	if err != nil {
		return nil, err
	}

	siteName := pickColumn(row, colSite)
	if siteName == "" {
		return nil, errors.New("현장명이 비어 있습니다")
	}

	workerName := pickColumn(row, colWorker)
	if workerName == "" {
		return nil, errors.New("노무자 이름이 비어 있습니다")
	}

	manDayRaw := pickColumn(row, colManDay)
	if manDayRaw == "" {
		return nil, errors.New("공수가 비어 있습니다")
	}
	manDay, err := strconv.ParseFloat(strings.ReplaceAll(manDayRaw, ",", ""), 64)
	if err != nil || manDay < 0 {
		return nil, fmt.Errorf("공수 형식이 올바르지 않습니다: %q", manDayRaw)
	}

	unitPrice, err := parseAmount(pickColumn(row, colPrice))
	if err != nil {
		return nil, err
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("단가는 음수일 수 없습니다: %d", unitPrice)
	}

	return &importRow{
		Date:        date,
		SiteName:    siteName,
		TeamName:    pickColumn(row, colTeam),
		WorkerName:  workerName,
		ManDay:      manDay,
		UnitPrice:   unitPrice,
		WorkContent: pickColumn(row, colContent),
	}, nil
}

// importCache 한 번의 업로드 동안 이름 조회 결과를 재사용한다
type importCache struct {
	sites   map[string]*wfmodels.Site
	teams   map[string]*wfmodels.Team
	workers map[string]*wfmodels.Worker
}

func newImportCache() *importCache {
	return &importCache{
		sites:   map[string]*wfmodels.Site{},
		teams:   map[string]*wfmodels.Team{},
		workers: map[string]*wfmodels.Worker{},
	}
}

// resolveSite 현장명으로 현장을 찾고, 없으면 새로 만든다.
// 같은 이름의 현장이 동시에 만들어질 수 있으나 업로드 특성상 허용한다.
func (s *ImportService) resolveSite(ctx context.Context, cache *importCache, name string) (*wfmodels.Site, error) {
	if site, ok := cache.sites[name]; ok {
		return site, nil
	}

	site, err := s.siteService.FindOne(ctx, map[string]interface{}{"name": name}, nil)
	if err == nil {
		cache.sites[name] = &site
		return &site, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.siteService.InsertOne(ctx, wfmodels.Site{
		Name:   name,
		Status: wfmodels.SiteStatusActive,
	})
	if err != nil {
		return nil, err
	}
	logger.GetAppLogger().Infof("출역부 업로드: 현장 '%s' 자동 생성", name)
	cache.sites[name] = &created
	return &created, nil
}

// resolveTeam 팀명으로 팀을 찾고, 없으면 새로 만든다
func (s *ImportService) resolveTeam(ctx context.Context, cache *importCache, name string) (*wfmodels.Team, error) {
	if team, ok := cache.teams[name]; ok {
		return team, nil
	}

	team, err := s.teamService.FindOne(ctx, map[string]interface{}{"name": name}, nil)
	if err == nil {
		cache.teams[name] = &team
		return &team, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.teamService.InsertOne(ctx, wfmodels.Team{Name: name})
	if err != nil {
		return nil, err
	}
	logger.GetAppLogger().Infof("출역부 업로드: 팀 '%s' 자동 생성", name)
	cache.teams[name] = &created
	return &created, nil
}

// resolveWorker 이름으로 노무자를 찾는다. 노무자는 자동 생성하지 않는다
// (단가/지급 방식 없는 노무자 레코드가 정산을 오염시키므로 row 오류로 처리).
func (s *ImportService) resolveWorker(ctx context.Context, cache *importCache, name string) (*wfmodels.Worker, error) {
	if worker, ok := cache.workers[name]; ok {
		return worker, nil
	}

	worker, err := s.workerService.FindOne(ctx, map[string]interface{}{"name": name}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("노무자 '%s' 을(를) 찾을 수 없습니다", name)
		}
		return nil, err
	}
	cache.workers[name] = &worker
	return &worker, nil
}

// importOneRow row 하나를 출역 보고서에 반영한다
func (s *ImportService) importOneRow(ctx context.Context, cache *importCache, row *importRow) error {
	site, err := s.resolveSite(ctx, cache, row.SiteName)
	if err != nil {
		return err
	}

	var team *wfmodels.Team
	if row.TeamName != "" {
		team, err = s.resolveTeam(ctx, cache, row.TeamName)
		if err != nil {
			return err
		}
	}

	worker, err := s.resolveWorker(ctx, cache, row.WorkerName)
	if err != nil {
		return err
	}

	unitPrice := row.UnitPrice
	if unitPrice == 0 {
		unitPrice = worker.UnitPrice
	}

	entry := models.ReportEntry{
		WorkerID:    worker.ID,
		WorkerName:  worker.Name,
		ManDay:      row.ManDay,
		UnitPrice:   unitPrice,
		PayModel:    worker.PayModel,
		WorkContent: row.WorkContent,
	}
	if team != nil {
		entry.TeamID = team.ID
		entry.TeamName = team.Name
	} else if !worker.TeamID.IsZero() {
		entry.TeamID = worker.TeamID
		entry.TeamName = worker.TeamName
	}

	report := models.DailyReport{
		Date:     row.Date,
		SiteID:   site.ID,
		SiteName: site.Name,
	}
	if team != nil {
		report.TeamID = team.ID
		report.TeamName = team.Name
	}

	existing, err := s.reportService.FindByDateSiteTeam(ctx, report.Date, report.SiteID, report.TeamID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		report.Entries = []models.ReportEntry{entry}
		_, err = s.reportService.InsertOne(ctx, report)
		return err
	}

	_, err = s.reportService.AppendOrReplaceEntry(ctx, existing, entry)
	return err
}

// ImportDailyReports 업로드 row 전체를 순차 처리한다.
// row 단위 실패는 집계만 하고 배치를 중단하지 않는다.
func (s *ImportService) ImportDailyReports(ctx context.Context, rows []map[string]string) (*ImportResult, error) {
	result := &ImportResult{Total: len(rows)}
	cache := newImportCache()

	for start := 0; start < len(rows); start += s.chunkSize {
		if start > 0 && s.chunkWait > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.chunkWait):
			}
		}

		end := start + s.chunkSize
		if end > len(rows) {
			end = len(rows)
		}

		for i := start; i < end; i++ {
			parsed, err := parseImportRow(rows[i])
			if err == nil {
				err = s.importOneRow(ctx, cache, parsed)
			}
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%d행: %v", i+1, err))
				continue
			}
			result.Success++
		}
	}

	logger.GetAppLogger().Infof("출역부 업로드 완료: 전체 %d건, 성공 %d건, 실패 %d건",
		result.Total, result.Success, result.Failed)
	return result, nil
}
