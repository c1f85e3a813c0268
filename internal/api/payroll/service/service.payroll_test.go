package paysvc

import (
	"testing"

	"construct_works/internal/api/payroll/models"
	reportmodels "construct_works/internal/api/report/models"
	wfmodels "construct_works/internal/api/workforce/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newWorker(name, payModel string, teamID primitive.ObjectID, unitPrice int64) wfmodels.Worker {
	return wfmodels.Worker{
		ID:        primitive.NewObjectID(),
		Name:      name,
		PayModel:  payModel,
		TeamID:    teamID,
		UnitPrice: unitPrice,
	}
}

func reportWith(date string, siteName string, entries ...reportmodels.ReportEntry) reportmodels.DailyReport {
	return reportmodels.DailyReport{
		ID:       primitive.NewObjectID(),
		Date:     date,
		SiteID:   primitive.NewObjectID(),
		SiteName: siteName,
		Entries:  entries,
	}
}

func TestAggregateTotalsOrderIndependent(t *testing.T) {
	team := wfmodels.Team{ID: primitive.NewObjectID(), Name: "형틀팀"}
	worker := newWorker("김철수", wfmodels.PayModelMonthly, team.ID, 150000)

	entry1 := reportmodels.ReportEntry{WorkerID: worker.ID, WorkerName: worker.Name, ManDay: 1.0, UnitPrice: 150000}
	entry2 := reportmodels.ReportEntry{WorkerID: worker.ID, WorkerName: worker.Name, ManDay: 0.5, UnitPrice: 150000}
	entry3 := reportmodels.ReportEntry{WorkerID: worker.ID, WorkerName: worker.Name, ManDay: 1.0, UnitPrice: 180000}

	forward := []reportmodels.DailyReport{
		reportWith("2024-03-05", "A현장", entry1),
		reportWith("2024-03-10", "A현장", entry2),
		reportWith("2024-03-20", "A현장", entry3),
	}
	backward := []reportmodels.DailyReport{forward[2], forward[1], forward[0]}

	ref := BuildReferenceData([]wfmodels.Worker{worker}, []wfmodels.Team{team}, nil)

	for _, reports := range [][]reportmodels.DailyReport{forward, backward} {
		aggregates := AggregateDailyReports(reports, wfmodels.PayModelMonthly, ref)
		require.Len(t, aggregates, 1)

		key := AggregateKey{WorkerID: worker.ID.Hex(), TeamID: team.ID.Hex()}
		agg := aggregates[key]
		require.NotNil(t, agg)
		assert.InDelta(t, 2.5, agg.TotalManDay, 1e-9)
		assert.Equal(t, int64(1.0*150000+0.5*150000+1.0*180000), agg.GrossAmount)
		assert.Len(t, agg.Entries, 3)
	}
}

func TestAggregatePayModelGate(t *testing.T) {
	monthly := newWorker("김철수", wfmodels.PayModelMonthly, primitive.NilObjectID, 150000)
	daily := newWorker("박영희", wfmodels.PayModelDaily, primitive.NilObjectID, 130000)

	// snapshot이 있으면 snapshot, 없으면 노무자 현재 값으로 gate
	report := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: monthly.ID, ManDay: 1.0, UnitPrice: 150000},
		reportmodels.ReportEntry{WorkerID: daily.ID, ManDay: 1.0, UnitPrice: 130000},
		reportmodels.ReportEntry{WorkerID: daily.ID, ManDay: 0.5, UnitPrice: 130000, PayModel: wfmodels.PayModelMonthly},
	)

	ref := BuildReferenceData([]wfmodels.Worker{monthly, daily}, nil, nil)
	aggregates := AggregateDailyReports([]reportmodels.DailyReport{report}, wfmodels.PayModelMonthly, ref)

	require.Len(t, aggregates, 2)
	assert.InDelta(t, 1.0, aggregates[AggregateKey{WorkerID: monthly.ID.Hex(), TeamID: TeamNone}].TotalManDay, 1e-9)
	assert.InDelta(t, 0.5, aggregates[AggregateKey{WorkerID: daily.ID.Hex(), TeamID: TeamNone}].TotalManDay, 1e-9)
}

func TestAggregateTeamResolutionChain(t *testing.T) {
	team := wfmodels.Team{ID: primitive.NewObjectID(), Name: "대한건설(주) 형틀팀"}
	ref := BuildReferenceData(nil, []wfmodels.Team{team}, nil)

	workerID := primitive.NewObjectID()

	// 팀 id는 전부 비었지만 팀명 문자열이 살아 있는 과거 데이터
	report := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: workerID, ManDay: 1.0, UnitPrice: 100000, TeamName: "대한건설 (주) 형틀팀"},
	)

	aggregates := AggregateDailyReports([]reportmodels.DailyReport{report}, "", ref)
	require.Len(t, aggregates, 1)

	agg, ok := aggregates[AggregateKey{WorkerID: workerID.Hex(), TeamID: team.ID.Hex()}]
	require.True(t, ok, "정규화 팀명 lookup으로 해소되어야 한다")
	assert.Equal(t, team.Name, agg.TeamName)
}

func TestAggregateUnresolvedTeamBuckets(t *testing.T) {
	ref := BuildReferenceData(nil, nil, nil)
	workerID := primitive.NewObjectID()

	named := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: workerID, ManDay: 1.0, UnitPrice: 100000, TeamName: "유령팀"},
	)
	nameless := reportWith("2024-03-06", "A현장",
		reportmodels.ReportEntry{WorkerID: workerID, ManDay: 1.0, UnitPrice: 100000},
	)

	aggregates := AggregateDailyReports([]reportmodels.DailyReport{named, nameless}, "", ref)
	require.Len(t, aggregates, 2)
	assert.Contains(t, aggregates, AggregateKey{WorkerID: workerID.Hex(), TeamID: TeamUnresolvedPrefix + "유령팀"})
	assert.Contains(t, aggregates, AggregateKey{WorkerID: workerID.Hex(), TeamID: TeamNone})
}

func TestUnitPriceCollapse(t *testing.T) {
	worker := newWorker("김철수", wfmodels.PayModelDaily, primitive.NilObjectID, 140000)
	ref := BuildReferenceData([]wfmodels.Worker{worker}, nil, nil)

	// 단가가 하나면 그 값
	single := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 150000},
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 0.5, UnitPrice: 150000},
	)
	aggregates := AggregateDailyReports([]reportmodels.DailyReport{single}, "", ref)
	agg := aggregates[AggregateKey{WorkerID: worker.ID.Hex(), TeamID: TeamNone}]
	require.NotNil(t, agg)
	assert.Equal(t, int64(150000), agg.UnitPrice)

	// 단가가 둘이면 round(gross/manDay)
	mixed := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 150000},
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 180000},
	)
	aggregates = AggregateDailyReports([]reportmodels.DailyReport{mixed}, "", ref)
	agg = aggregates[AggregateKey{WorkerID: worker.ID.Hex(), TeamID: TeamNone}]
	require.NotNil(t, agg)
	assert.Equal(t, int64(165000), agg.UnitPrice)

	// 공수 0이면 노무자 등록 단가
	zeroDay := reportWith("2024-03-05", "A현장",
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 0, UnitPrice: 150000},
		reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 0, UnitPrice: 180000},
	)
	aggregates = AggregateDailyReports([]reportmodels.DailyReport{zeroDay}, "", ref)
	agg = aggregates[AggregateKey{WorkerID: worker.ID.Hex(), TeamID: TeamNone}]
	require.NotNil(t, agg)
	assert.Equal(t, int64(140000), agg.UnitPrice)
}

func TestResolveDeductionsTeamMatchWins(t *testing.T) {
	workerID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	otherTeamID := primitive.NewObjectID()

	advances := []models.AdvancePayment{
		{WorkerID: workerID, TeamID: teamID, YearMonth: "2024-03", Accommodation: 50000, TotalDeduction: 50000},
		{WorkerID: workerID, TeamID: otherTeamID, YearMonth: "2024-03", Gloves: 10000, TotalDeduction: 10000},
	}

	// canonical 팀과 일치하는 레코드가 있으면 그것만
	resolved := ResolveDeductions(advances, workerID, teamID.Hex(), "2024-03")
	require.Len(t, resolved, 1)
	assert.Equal(t, int64(50000), resolved[0].TotalDeduction)

	// 일치하는 팀이 없으면 그 달 노무자 레코드 전부
	resolved = ResolveDeductions(advances, workerID, primitive.NewObjectID().Hex(), "2024-03")
	assert.Len(t, resolved, 2)
}

func TestResolveDeductionsDedupKeepsMax(t *testing.T) {
	workerID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	advances := []models.AdvancePayment{
		{WorkerID: workerID, TeamID: teamID, YearMonth: "2024-03", TotalDeduction: 30000},
		{WorkerID: workerID, TeamID: teamID, YearMonth: "2024-03", TotalDeduction: 70000},
		{WorkerID: workerID, TeamID: teamID, YearMonth: "2024-03", TotalDeduction: 50000},
	}

	first := ResolveDeductions(advances, workerID, teamID.Hex(), "2024-03")
	require.Len(t, first, 1)
	assert.Equal(t, int64(70000), first[0].TotalDeduction)

	// 같은 입력에 다시 돌려도 같은 결과 (멱등)
	second := ResolveDeductions(advances, workerID, teamID.Hex(), "2024-03")
	assert.Equal(t, first, second)
}

func TestResolveDeductionsSentinelBucket(t *testing.T) {
	workerID := primitive.NewObjectID()

	// 팀 없는 중복 레코드도 sentinel 버킷으로 묶어 max만 남긴다
	advances := []models.AdvancePayment{
		{WorkerID: workerID, YearMonth: "2024-03", TotalDeduction: 20000},
		{WorkerID: workerID, YearMonth: "2024-03", TotalDeduction: 40000},
	}

	resolved := ResolveDeductions(advances, workerID, "", "2024-03")
	require.Len(t, resolved, 1)
	assert.Equal(t, int64(40000), resolved[0].TotalDeduction)
}

func TestBuildDeductionBreakdown(t *testing.T) {
	advances := []models.AdvancePayment{
		{
			Accommodation: 50000,
			Gloves:        5000,
			CustomItems:   map[string]int64{"meal": 30000, "특별공제": 12000, "negative": -500},
		},
	}

	breakdown := BuildDeductionBreakdown(advances)

	require.Len(t, breakdown.StandardLines, 2)
	assert.Equal(t, DeductionLine{Label: LabelAccommodation, Amount: 50000}, breakdown.StandardLines[0])
	assert.Equal(t, DeductionLine{Label: LabelGloves, Amount: 5000}, breakdown.StandardLines[1])

	// 비정형 항목: 금액 내림차순, 사전 매핑 실패 시 원본 키
	require.Len(t, breakdown.AdditionalLines, 2)
	assert.Equal(t, DeductionLine{Label: "식대", Amount: 30000}, breakdown.AdditionalLines[0])
	assert.Equal(t, DeductionLine{Label: "특별공제", Amount: 12000}, breakdown.AdditionalLines[1])

	assert.Equal(t, int64(55000), breakdown.TotalStandard)
	assert.Equal(t, int64(42000), breakdown.TotalAdditional)
	assert.Equal(t, breakdown.TotalStandard+breakdown.TotalAdditional, breakdown.Total)
	assert.True(t, breakdown.HasData)
}

func TestBuildDeductionBreakdownEmpty(t *testing.T) {
	breakdown := BuildDeductionBreakdown(nil)
	assert.Empty(t, breakdown.StandardLines)
	assert.Empty(t, breakdown.AdditionalLines)
	assert.Equal(t, int64(0), breakdown.Total)
	assert.False(t, breakdown.HasData)
}

func TestAssembleNetPayInvariant(t *testing.T) {
	team := wfmodels.Team{ID: primitive.NewObjectID(), Name: "형틀팀"}
	worker := newWorker("김철수", wfmodels.PayModelMonthly, team.ID, 150000)
	worker.Bank = wfmodels.BankInfo{Name: "국민은행", AccountNumber: "123-456", AccountHolder: "김철수"}

	reports := []reportmodels.DailyReport{
		reportWith("2024-03-05", "A현장",
			reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 2.0, UnitPrice: 150000}),
	}
	advances := []models.AdvancePayment{
		{WorkerID: worker.ID, TeamID: team.ID, YearMonth: "2024-03", Deposit: 100000, TotalDeduction: 100000},
	}

	ref := BuildReferenceData([]wfmodels.Worker{worker}, []wfmodels.Team{team}, nil)
	aggregates := AggregateDailyReports(reports, wfmodels.PayModelMonthly, ref)
	result := AssemblePayments(aggregates, advances, "2024-03", wfmodels.PayModelMonthly)

	require.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.Equal(t, record.GrossAmount-record.TotalDeduction, record.TotalAmount)
	assert.True(t, record.IsValid)
	assert.Equal(t, "004", record.BankCode)
	assert.Equal(t, 0, result.InvalidCount)
}

func TestAssembleValidationFlags(t *testing.T) {
	worker := newWorker("김철수", wfmodels.PayModelDaily, primitive.NilObjectID, 150000)
	worker.Bank = wfmodels.BankInfo{Name: "국민은행", AccountHolder: "김철수"} // 계좌번호 누락

	reports := []reportmodels.DailyReport{
		reportWith("2024-03-05", "A현장",
			reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 150000}),
	}

	ref := BuildReferenceData([]wfmodels.Worker{worker}, nil, nil)
	aggregates := AggregateDailyReports(reports, "", ref)
	result := AssemblePayments(aggregates, nil, "2024-03", "")

	require.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.False(t, record.IsValid)
	assert.True(t, record.Errors.AccountNumber)
	assert.False(t, record.Errors.BankName)
	assert.False(t, record.Errors.BankCode)
	assert.False(t, record.Errors.AccountHolder)
	assert.Equal(t, 1, result.InvalidCount)
}

func TestAssembleUnknownBankFlagsCode(t *testing.T) {
	worker := newWorker("김철수", wfmodels.PayModelDaily, primitive.NilObjectID, 150000)
	worker.Bank = wfmodels.BankInfo{Name: "없는은행", AccountNumber: "123", AccountHolder: "김철수"}

	reports := []reportmodels.DailyReport{
		reportWith("2024-03-05", "A현장",
			reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 150000}),
	}

	ref := BuildReferenceData([]wfmodels.Worker{worker}, nil, nil)
	result := AssemblePayments(AggregateDailyReports(reports, "", ref), nil, "2024-03", "")

	require.Len(t, result.Records, 1)
	assert.False(t, result.Records[0].IsValid)
	assert.True(t, result.Records[0].Errors.BankCode)
	assert.Empty(t, result.Records[0].BankCode)
}

// 월급제 노무자의 3월 정산 전체 흐름
func TestAssembleMonthlyEndToEnd(t *testing.T) {
	team := wfmodels.Team{ID: primitive.NewObjectID(), Name: "형틀팀"}
	worker := newWorker("김철수", wfmodels.PayModelMonthly, team.ID, 999999)
	worker.Bank = wfmodels.BankInfo{Name: "신한은행", AccountNumber: "110-123-456789", AccountHolder: "김철수"}

	reports := []reportmodels.DailyReport{
		reportWith("2024-03-05", "A현장",
			reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 1.0, UnitPrice: 150000}),
		reportWith("2024-03-20", "A현장",
			reportmodels.ReportEntry{WorkerID: worker.ID, ManDay: 0.5, UnitPrice: 150000}),
	}
	advances := []models.AdvancePayment{
		{WorkerID: worker.ID, TeamID: team.ID, YearMonth: "2024-03", Accommodation: 50000, TotalDeduction: 50000},
	}

	ref := BuildReferenceData([]wfmodels.Worker{worker}, []wfmodels.Team{team}, nil)
	aggregates := AggregateDailyReports(reports, wfmodels.PayModelMonthly, ref)
	result := AssemblePayments(aggregates, advances, "2024-03", wfmodels.PayModelMonthly)

	require.Len(t, result.Records, 1)
	record := result.Records[0]

	assert.InDelta(t, 1.5, record.TotalManDay, 1e-9)
	assert.Equal(t, int64(225000), record.GrossAmount)
	assert.Equal(t, int64(50000), record.TotalDeduction)
	assert.Equal(t, int64(175000), record.TotalAmount)
	assert.Equal(t, int64(150000), record.UnitPrice)
	require.NotNil(t, record.DeductionBreakdown)
	assert.Equal(t,
		[]DeductionLine{{Label: LabelAccommodation, Amount: 50000}},
		record.DeductionBreakdown.StandardLines)
	assert.True(t, record.IsValid)
	assert.Equal(t, "088", record.BankCode)
}

func TestLookupBankCode(t *testing.T) {
	code, ok := LookupBankCode("국민은행")
	assert.True(t, ok)
	assert.Equal(t, "004", code)

	code, ok = LookupBankCode("KB국민은행")
	assert.True(t, ok)
	assert.Equal(t, "004", code)

	_, ok = LookupBankCode("")
	assert.False(t, ok)

	_, ok = LookupBankCode("듣도보도못한은행")
	assert.False(t, ok)
}

func TestMonthDateRange(t *testing.T) {
	start, end, err := monthDateRange("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-31", end)

	start, end, err = monthDateRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)

	_, _, err = monthDateRange("2024-3")
	assert.Error(t, err)
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0", formatWon(0))
	assert.Equal(t, "1,500", formatWon(1500))
	assert.Equal(t, "225,000", formatWon(225000))
	assert.Equal(t, "-50,000", formatWon(-50000))
}
