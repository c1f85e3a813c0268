package paysvc

import (
	"math"
	"strings"

	reportmodels "construct_works/internal/api/report/models"
	wfmodels "construct_works/internal/api/workforce/models"
	"construct_works/internal/utility"
)

// 팀을 끝내 못 찾은 entry의 집계 버킷
const (
	TeamNone             = "no-team"
	TeamUnresolvedPrefix = "unresolved:"
)

// AggregateKey 집계 키: 노무자 + 정산 기준 팀.
// TeamID는 ObjectID hex 또는 sentinel(no-team, unresolved:<팀명>)이다.
type AggregateKey struct {
	WorkerID string
	TeamID   string
}

// WorkEntry 정산 명세에 실리는 출역 한 건
type WorkEntry struct {
	Date      string  `json:"date"`
	SiteName  string  `json:"siteName"`
	ManDay    float64 `json:"manDay"`
	UnitPrice int64   `json:"unitPrice"`
	Content   string  `json:"content,omitempty"`
}

// WorkerAggregate 한 집계 키의 월간 합산 결과
type WorkerAggregate struct {
	Worker   *wfmodels.Worker
	TeamID   string
	TeamName string

	TotalManDay float64
	GrossAmount int64
	UnitPrice   int64 // 단가 collapse 결과
	Entries     []WorkEntry

	unitPriceSet map[int64]struct{}
}

// ReferenceData 집계에 필요한 사전 로드 데이터
type ReferenceData struct {
	WorkersByID     map[string]*wfmodels.Worker
	TeamsByID       map[string]*wfmodels.Team
	TeamsByNormName map[string]*wfmodels.Team
	CompaniesByID   map[string]*wfmodels.Company
}

// BuildReferenceData 조회 결과를 집계용 lookup으로 변환한다.
// 정규화 팀명이 겹치면 먼저 온 팀이 이긴다.
func BuildReferenceData(workers []wfmodels.Worker, teams []wfmodels.Team, companies []wfmodels.Company) *ReferenceData {
	ref := &ReferenceData{
		WorkersByID:     make(map[string]*wfmodels.Worker, len(workers)),
		TeamsByID:       make(map[string]*wfmodels.Team, len(teams)),
		TeamsByNormName: make(map[string]*wfmodels.Team, len(teams)),
		CompaniesByID:   make(map[string]*wfmodels.Company, len(companies)),
	}
	for i := range workers {
		ref.WorkersByID[workers[i].ID.Hex()] = &workers[i]
	}
	for i := range teams {
		ref.TeamsByID[teams[i].ID.Hex()] = &teams[i]
		norm := utility.NormalizeName(teams[i].Name)
		if norm != "" {
			if _, exists := ref.TeamsByNormName[norm]; !exists {
				ref.TeamsByNormName[norm] = &teams[i]
			}
		}
	}
	for i := range companies {
		ref.CompaniesByID[companies[i].ID.Hex()] = &companies[i]
	}
	return ref
}

// teamResolution 팀 결정 결과
type teamResolution struct {
	TeamID   string
	TeamName string
}

// resolveEntryTeam entry의 정산 기준 팀을 순서대로 결정한다.
// 과거 데이터에 팀 id가 비거나 stale한 경우가 있어 팀명 문자열까지 동원한다.
// 순서: 노무자 현재 팀 → 보고서 팀 → 정규화 팀명 lookup → entry 팀 id → sentinel.
func resolveEntryTeam(
	worker *wfmodels.Worker,
	report *reportmodels.DailyReport,
	entry *reportmodels.ReportEntry,
	ref *ReferenceData,
) teamResolution {
	entryTeamName := entry.TeamName
	if entryTeamName == "" {
		entryTeamName = report.TeamName
	}

	resolvers := []func() (teamResolution, bool){
		// 1. 노무자에 등록된 현재 팀
		func() (teamResolution, bool) {
			if worker != nil && !worker.TeamID.IsZero() {
				name := worker.TeamName
				if team, ok := ref.TeamsByID[worker.TeamID.Hex()]; ok {
					name = team.Name
				}
				return teamResolution{TeamID: worker.TeamID.Hex(), TeamName: name}, true
			}
			return teamResolution{}, false
		},
		// 2. 보고서의 팀
		func() (teamResolution, bool) {
			if !report.TeamID.IsZero() {
				name := report.TeamName
				if team, ok := ref.TeamsByID[report.TeamID.Hex()]; ok {
					name = team.Name
				}
				return teamResolution{TeamID: report.TeamID.Hex(), TeamName: name}, true
			}
			return teamResolution{}, false
		},
		// 3. 팀명 정규화 lookup (id는 없지만 팀명이 살아 있는 과거 데이터)
		func() (teamResolution, bool) {
			norm := utility.NormalizeName(entryTeamName)
			if norm == "" {
				return teamResolution{}, false
			}
			if team, ok := ref.TeamsByNormName[norm]; ok {
				return teamResolution{TeamID: team.ID.Hex(), TeamName: team.Name}, true
			}
			return teamResolution{}, false
		},
		// 4. entry에 남은 팀 id
		func() (teamResolution, bool) {
			if !entry.TeamID.IsZero() {
				return teamResolution{TeamID: entry.TeamID.Hex(), TeamName: entry.TeamName}, true
			}
			return teamResolution{}, false
		},
	}

	for _, resolve := range resolvers {
		if res, ok := resolve(); ok {
			return res
		}
	}

	if strings.TrimSpace(entryTeamName) != "" {
		return teamResolution{TeamID: TeamUnresolvedPrefix + entryTeamName, TeamName: entryTeamName}
	}
	return teamResolution{TeamID: TeamNone}
}

// entryPayModel entry의 지급 방식 (snapshot이 없으면 노무자 현재 값)
func entryPayModel(entry *reportmodels.ReportEntry, worker *wfmodels.Worker) string {
	if entry.PayModel != "" {
		return entry.PayModel
	}
	if worker != nil {
		return worker.PayModel
	}
	return ""
}

// AggregateDailyReports 출역 보고서를 (노무자, 팀) 키로 합산한다.
// payModel이 비어 있지 않으면 해당 지급 방식의 entry만 집계한다.
// 입력 순서와 무관하게 같은 결과를 낸다.
func AggregateDailyReports(
	reports []reportmodels.DailyReport,
	payModel string,
	ref *ReferenceData,
) map[AggregateKey]*WorkerAggregate {
	aggregates := map[AggregateKey]*WorkerAggregate{}

	for r := range reports {
		report := &reports[r]
		for e := range report.Entries {
			entry := &report.Entries[e]
			if entry.WorkerID.IsZero() {
				continue
			}

			worker := ref.WorkersByID[entry.WorkerID.Hex()]

			if payModel != "" && entryPayModel(entry, worker) != payModel {
				continue
			}

			team := resolveEntryTeam(worker, report, entry, ref)
			key := AggregateKey{WorkerID: entry.WorkerID.Hex(), TeamID: team.TeamID}

			agg, ok := aggregates[key]
			if !ok {
				agg = &WorkerAggregate{
					Worker:       worker,
					TeamID:       team.TeamID,
					TeamName:     team.TeamName,
					unitPriceSet: map[int64]struct{}{},
				}
				aggregates[key] = agg
			}

			agg.TotalManDay += entry.ManDay
			agg.GrossAmount += int64(math.Round(entry.ManDay * float64(entry.UnitPrice)))
			agg.unitPriceSet[entry.UnitPrice] = struct{}{}
			agg.Entries = append(agg.Entries, WorkEntry{
				Date:      report.Date,
				SiteName:  report.SiteName,
				ManDay:    entry.ManDay,
				UnitPrice: entry.UnitPrice,
				Content:   entry.WorkContent,
			})
		}
	}

	for _, agg := range aggregates {
		agg.UnitPrice = collapseUnitPrice(agg)
	}
	return aggregates
}

// collapseUnitPrice 집계 키의 대표 단가를 정한다.
// 단가가 하나면 그 값, 여럿이면 가중 평균(round), 공수가 0이면 노무자 등록 단가.
func collapseUnitPrice(agg *WorkerAggregate) int64 {
	if len(agg.unitPriceSet) == 1 {
		for price := range agg.unitPriceSet {
			return price
		}
	}
	if agg.TotalManDay > 0 {
		return int64(math.Round(float64(agg.GrossAmount) / agg.TotalManDay))
	}
	if agg.Worker != nil {
		return agg.Worker.UnitPrice
	}
	return 0
}
