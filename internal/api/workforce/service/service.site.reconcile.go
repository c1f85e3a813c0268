// Package wfsvc - 팀/업체 연결 reconcile (smart match).
// 현장의 담당팀이 바뀔 때 팀의 companyId를 검증하고, id가 없거나 stale이면
// 업체명으로 단계적 매칭을 시도한 뒤 팀 문서에 복구 내용을 write-back한다.
package wfsvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/workforce/models"
	"construct_works/internal/logger"
	"construct_works/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// 매칭 방법
const (
	MatchMethodDirect     = "direct"     // companyId가 실존 업체로 해소됨
	MatchMethodExact      = "exact"      // 업체명 완전 일치
	MatchMethodNormalized = "normalized" // 정규화 후 일치
	MatchMethodContains   = "contains"   // 부분 문자열 포함 (양방향)
	MatchMethodNone       = "none"       // 매칭 실패
)

// CompanyMatch 팀→업체 매칭 결과
type CompanyMatch struct {
	Company *models.Company // 매칭된 업체 (none이면 nil)
	Method  string          // 매칭 방법
	Drift   bool            // id는 해소됐지만 업체명 snapshot이 다른 경우
	Reason  string          // 사용자에게 보여줄 진단 메시지
}

// AssignTeamResult 담당팀 배정 결과
type AssignTeamResult struct {
	Site        models.Site `json:"site"`        // 갱신된 현장
	Matched     bool        `json:"matched"`     // 업체 매칭 여부
	Method      string      `json:"method"`      // 매칭 방법
	AutoHealed  bool        `json:"autoHealed"`  // 팀 문서에 write-back 했는지
	Message     string      `json:"message"`     // 상태 메시지
	CompanyName string      `json:"companyName"` // 매칭된 업체명
}

// MatchTeamCompany 팀의 소속 업체를 찾는다. 순수 함수이며 DB에 접근하지 않는다.
//
// companyId가 실존 업체로 해소되고 업체명 snapshot도 일치하면 직접 매칭으로 끝낸다.
// snapshot이 다르면(drift) 업체명 기준 단계적 매칭을 다시 돌려, 이름으로 찾은
// 업체가 이긴다 (stale id보다 이름 snapshot이 신뢰할 수 있는 과거 데이터가 많다).
// 이름으로도 못 찾을 때만 id 매칭을 유지한다.
//
// 이름 매칭 우선순위: 완전 일치 → 정규화 일치 → 부분 포함.
// 부분 포함은 정규화한 업체명이 2자를 넘을 때만 시도한다 (짧은 이름 오탐 방지).
func MatchTeamCompany(team *models.Team, companies []models.Company) CompanyMatch {
	// 1. id 직접 매칭 + drift 검사
	var direct *CompanyMatch
	if !team.CompanyID.IsZero() {
		for i := range companies {
			if companies[i].ID == team.CompanyID {
				drift := team.CompanyName != "" &&
					utility.NormalizeName(companies[i].Name) != utility.NormalizeName(team.CompanyName)
				if !drift {
					return CompanyMatch{
						Company: &companies[i],
						Method:  MatchMethodDirect,
						Reason:  fmt.Sprintf("업체 '%s' 에 id로 연결되어 있습니다", companies[i].Name),
					}
				}
				direct = &CompanyMatch{
					Company: &companies[i],
					Method:  MatchMethodDirect,
					Drift:   true,
					Reason: fmt.Sprintf("업체 '%s' 에 id로 연결되어 있으나 팀에 저장된 업체명 '%s' 과(와) 다릅니다",
						companies[i].Name, team.CompanyName),
				}
				break
			}
		}
	}

	// 2. 이름 기반 매칭 (id 미해소 또는 drift)
	if team.CompanyName == "" {
		return CompanyMatch{
			Method: MatchMethodNone,
			Reason: "팀에 업체명이 등록되어 있지 않습니다",
		}
	}

	if named := matchCompanyByName(team.CompanyName, companies); named.Company != nil {
		if direct != nil {
			// drift: 이름으로 찾은 업체가 stale id를 이긴다. write-back 대상.
			named.Drift = true
			named.Reason = fmt.Sprintf("팀에 저장된 업체명 '%s' 이(가) id로 연결된 업체와 달라 업체명 기준으로 '%s' 에 매칭했습니다",
				team.CompanyName, named.Company.Name)
		}
		return named
	}

	// 이름으로 못 찾았으면 drift라도 id 매칭을 유지한다
	if direct != nil {
		return *direct
	}

	return CompanyMatch{
		Method: MatchMethodNone,
		Reason: fmt.Sprintf("업체명 '%s' 을(를) 업체 목록에서 찾을 수 없습니다", team.CompanyName),
	}
}

// matchCompanyByName 업체명으로 단계적 매칭을 시도한다.
func matchCompanyByName(companyName string, companies []models.Company) CompanyMatch {
	// 완전 일치
	for i := range companies {
		if companies[i].Name == companyName {
			return CompanyMatch{
				Company: &companies[i],
				Method:  MatchMethodExact,
				Reason:  fmt.Sprintf("업체명 '%s' 이(가) 완전 일치했습니다", companies[i].Name),
			}
		}
	}

	// 정규화 일치
	normTeamCompany := utility.NormalizeName(companyName)
	for i := range companies {
		if utility.NormalizeName(companies[i].Name) == normTeamCompany {
			return CompanyMatch{
				Company: &companies[i],
				Method:  MatchMethodNormalized,
				Reason:  fmt.Sprintf("업체명 '%s' 이(가) 정규화 후 '%s' 과(와) 일치했습니다", companyName, companies[i].Name),
			}
		}
	}

	// 부분 포함 (2자 초과일 때만)
	if len([]rune(normTeamCompany)) > 2 {
		for i := range companies {
			normCompany := utility.NormalizeName(companies[i].Name)
			if normCompany == "" {
				continue
			}
			if containsEither(normTeamCompany, normCompany) {
				return CompanyMatch{
					Company: &companies[i],
					Method:  MatchMethodContains,
					Reason:  fmt.Sprintf("업체명 '%s' 이(가) '%s' 에 부분 일치했습니다", companyName, companies[i].Name),
				}
			}
		}
	}

	return CompanyMatch{Method: MatchMethodNone}
}

// containsEither a⊂b 또는 b⊂a
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// SiteReconcileService 담당팀 배정 + reconcile 서비스
type SiteReconcileService struct {
	siteService    *SiteService
	teamService    *TeamService
	companyService *CompanyService
}

// NewSiteReconcileService 새 SiteReconcileService를 생성한다
func NewSiteReconcileService() (*SiteReconcileService, error) {
	siteService, err := NewSiteService()
	if err != nil {
		return nil, err
	}
	teamService, err := NewTeamService()
	if err != nil {
		return nil, err
	}
	companyService, err := NewCompanyService()
	if err != nil {
		return nil, err
	}
	return &SiteReconcileService{
		siteService:    siteService,
		teamService:    teamService,
		companyService: companyService,
	}, nil
}

// AssignResponsibleTeam 현장의 담당팀을 배정하고 팀/업체 연결을 reconcile한다.
//
// 단계별로 실패를 개별 처리한다: 팀 재조회 실패는 cached 인자로 진행,
// write-back 실패는 로그만 남기고 현장 갱신은 계속한다.
func (s *SiteReconcileService) AssignResponsibleTeam(ctx context.Context, site models.Site, team models.Team) (*AssignTeamResult, error) {
	log := logger.GetAppLogger()

	// 1. 팀 최신본 재조회 (실패 시 cached 인자 사용)
	freshTeam, err := s.teamService.FindOneById(ctx, team.ID)
	if err != nil {
		log.WithFields(map[string]interface{}{
			"teamId": team.ID.Hex(),
			"error":  err.Error(),
		}).Warn("팀 재조회 실패, 전달받은 팀 데이터로 진행합니다")
		freshTeam = team
	}

	// 2. 업체 목록 조회 후 매칭
	companies, err := s.companyService.Find(ctx, bson.M{}, nil)
	if err != nil {
		log.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("업체 목록 조회 실패")
		companies = []models.Company{}
	}

	match := MatchTeamCompany(&freshTeam, companies)

	result := &AssignTeamResult{
		Matched: match.Company != nil,
		Method:  match.Method,
		Message: match.Reason,
	}

	// 3. fuzzy 계열 매칭이면 팀 문서에 self-heal write-back
	if match.Company != nil &&
		(match.Method == MatchMethodExact || match.Method == MatchMethodNormalized || match.Method == MatchMethodContains) {
		_, err := s.teamService.UpdateById(ctx, freshTeam.ID, map[string]interface{}{
			"companyId":   match.Company.ID,
			"companyName": match.Company.Name,
		})
		if err != nil {
			// write-back 실패는 현장 갱신을 막지 않는다
			log.WithFields(map[string]interface{}{
				"teamId":    freshTeam.ID.Hex(),
				"companyId": match.Company.ID.Hex(),
				"error":     err.Error(),
			}).Warn("팀 업체 연결 write-back 실패")
		} else {
			result.AutoHealed = true
		}
	}

	// 4. 업체 구분에 따라 현장 역할 필드 라우팅
	update := map[string]interface{}{
		"responsibleTeamId":   freshTeam.ID,
		"responsibleTeamName": freshTeam.Name,
	}

	if match.Company != nil {
		result.CompanyName = match.Company.Name
		ref := models.CompanyRef{ID: match.Company.ID, Name: match.Company.Name}
		if match.Company.Type == models.CompanyTypePartner {
			// 협력사는 partner 역할로, 시공사/발주처 역할은 비운다
			update["partner"] = ref
			update["constructor"] = models.CompanyRef{}
			update["client"] = models.CompanyRef{}
		} else {
			update["constructor"] = ref
		}
	} else {
		// 매칭 실패: 세 역할 모두 비운다
		update["partner"] = models.CompanyRef{}
		update["constructor"] = models.CompanyRef{}
		update["client"] = models.CompanyRef{}
	}

	// 5. 현장 갱신
	updatedSite, err := s.siteService.UpdateById(ctx, site.ID, basesvc.UpdateData{Set: update})
	if err != nil {
		log.WithFields(map[string]interface{}{
			"siteId": site.ID.Hex(),
			"error":  err.Error(),
		}).Error("현장 담당팀 갱신 실패")
		return nil, err
	}
	result.Site = updatedSite

	if result.AutoHealed {
		result.Message = match.Reason + " (팀의 업체 연결을 자동 복구했습니다)"
	}

	log.WithFields(map[string]interface{}{
		"siteId": site.ID.Hex(),
		"teamId": freshTeam.ID.Hex(),
		"method": match.Method,
		"healed": result.AutoHealed,
	}).Info("현장 담당팀 배정 완료")

	return result, nil
}
