package paysvc

import (
	"sort"

	"construct_works/internal/api/payroll/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 표준 공제 항목 라벨 (명세서 고정 표기)
const (
	LabelCarryover     = "전월이월"
	LabelAccommodation = "숙소비"
	LabelPrivateRoom   = "독방비"
	LabelGloves        = "장갑비"
	LabelDeposit       = "보증금"
	LabelPenalty       = "범칙금"
	LabelElectricity   = "전기세"
	LabelWater         = "수도세"
	LabelGas           = "가스비"
	LabelMaintenance   = "관리비"
)

// customItemLabels 비정형 항목 코드 → 표시 라벨. 없는 코드는 원본 키를 그대로 쓴다.
var customItemLabels = map[string]string{
	"meal":      "식대",
	"transport": "교통비",
	"tools":     "공구비",
	"safety":    "안전용품비",
	"advance":   "가불금",
	"insurance": "보험료",
	"uniform":   "작업복비",
}

// DeductionLine 공제 명세 한 줄
type DeductionLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// DeductionBreakdown 한 (노무자, 팀, 월)의 공제 명세
type DeductionBreakdown struct {
	StandardLines   []DeductionLine `json:"standardLines"`
	AdditionalLines []DeductionLine `json:"additionalLines"`
	TotalStandard   int64           `json:"totalStandard"`
	TotalAdditional int64           `json:"totalAdditional"`
	Total           int64           `json:"total"`
	HasData         bool            `json:"hasData"`
}

// ResolveDeductions 정산 대상 공제 레코드를 고른다.
//
// 조회 순서: (a) workerId + canonicalTeamId가 모두 일치하는 레코드가 있으면 그것만,
// (b) 없으면 해당 노무자의 그 달 레코드 전부 (팀 id drift 대비 fallback).
//
// 중복 제거: teamId별로 묶어(빈 teamId는 sentinel 버킷) totalDeduction이
// 가장 큰 레코드만 남긴다. 같은 달 중복 문서는 쓰기 경로의 알려진 문제라
// "금액을 잃지 않는" 쪽으로 보수적으로 고른다. 근본 해결은 쓰기 쪽 중복 방지다.
func ResolveDeductions(
	advances []models.AdvancePayment,
	workerID primitive.ObjectID,
	canonicalTeamID string,
	yearMonth string,
) []models.AdvancePayment {
	var workerAll []models.AdvancePayment
	var teamMatched []models.AdvancePayment

	for i := range advances {
		a := &advances[i]
		if a.WorkerID != workerID || a.YearMonth != yearMonth {
			continue
		}
		workerAll = append(workerAll, *a)
		if canonicalTeamID != "" && !a.TeamID.IsZero() && a.TeamID.Hex() == canonicalTeamID {
			teamMatched = append(teamMatched, *a)
		}
	}

	matched := workerAll
	if len(teamMatched) > 0 {
		matched = teamMatched
	}

	// teamId 버킷별 max(totalDeduction)
	best := map[string]models.AdvancePayment{}
	var order []string
	for _, a := range matched {
		bucket := TeamNone
		if !a.TeamID.IsZero() {
			bucket = a.TeamID.Hex()
		}
		current, exists := best[bucket]
		if !exists {
			best[bucket] = a
			order = append(order, bucket)
			continue
		}
		if a.TotalDeduction > current.TotalDeduction {
			best[bucket] = a
		}
	}

	result := make([]models.AdvancePayment, 0, len(order))
	for _, bucket := range order {
		result = append(result, best[bucket])
	}
	return result
}

// standardField 표준 항목 합산용 접근자
type standardField struct {
	label string
	get   func(*models.AdvancePayment) int64
}

var standardFields = []standardField{
	{LabelCarryover, func(a *models.AdvancePayment) int64 { return a.Carryover }},
	{LabelAccommodation, func(a *models.AdvancePayment) int64 { return a.Accommodation }},
	{LabelPrivateRoom, func(a *models.AdvancePayment) int64 { return a.PrivateRoom }},
	{LabelGloves, func(a *models.AdvancePayment) int64 { return a.Gloves }},
	{LabelDeposit, func(a *models.AdvancePayment) int64 { return a.Deposit }},
	{LabelPenalty, func(a *models.AdvancePayment) int64 { return a.Penalty }},
	{LabelElectricity, func(a *models.AdvancePayment) int64 { return a.Electricity }},
	{LabelWater, func(a *models.AdvancePayment) int64 { return a.Water }},
	{LabelGas, func(a *models.AdvancePayment) int64 { return a.Gas }},
	{LabelMaintenance, func(a *models.AdvancePayment) int64 { return a.Maintenance }},
}

// BuildDeductionBreakdown 중복 제거된 공제 레코드들로 명세를 만든다.
// 표준 항목은 고정 순서, 비정형 항목은 금액 내림차순이다.
func BuildDeductionBreakdown(deduped []models.AdvancePayment) *DeductionBreakdown {
	breakdown := &DeductionBreakdown{
		StandardLines:   []DeductionLine{},
		AdditionalLines: []DeductionLine{},
	}

	for _, field := range standardFields {
		var sum int64
		for i := range deduped {
			sum += field.get(&deduped[i])
		}
		if sum > 0 {
			breakdown.StandardLines = append(breakdown.StandardLines, DeductionLine{Label: field.label, Amount: sum})
			breakdown.TotalStandard += sum
		}
	}

	customSums := map[string]int64{}
	for i := range deduped {
		for key, amount := range deduped[i].CustomItems {
			if amount <= 0 {
				continue
			}
			customSums[key] += amount
		}
	}
	for key, sum := range customSums {
		label, ok := customItemLabels[key]
		if !ok {
			label = key
		}
		breakdown.AdditionalLines = append(breakdown.AdditionalLines, DeductionLine{Label: label, Amount: sum})
		breakdown.TotalAdditional += sum
	}
	sort.Slice(breakdown.AdditionalLines, func(i, j int) bool {
		if breakdown.AdditionalLines[i].Amount != breakdown.AdditionalLines[j].Amount {
			return breakdown.AdditionalLines[i].Amount > breakdown.AdditionalLines[j].Amount
		}
		return breakdown.AdditionalLines[i].Label < breakdown.AdditionalLines[j].Label
	})

	breakdown.Total = breakdown.TotalStandard + breakdown.TotalAdditional
	breakdown.HasData = breakdown.Total > 0
	return breakdown
}
