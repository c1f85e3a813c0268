package wfsvc

import (
	"testing"

	"construct_works/internal/api/workforce/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMatchTeamCompany_DirectIDMatch(t *testing.T) {
	companyID := primitive.NewObjectID()
	companies := []models.Company{
		{ID: companyID, Name: "대한건설", Type: models.CompanyTypeConstructor},
		{ID: primitive.NewObjectID(), Name: "한빛전기", Type: models.CompanyTypePartner},
	}
	team := &models.Team{
		ID:          primitive.NewObjectID(),
		Name:        "철근팀",
		CompanyID:   companyID,
		CompanyName: "대한건설",
	}

	match := MatchTeamCompany(team, companies)

	require.NotNil(t, match.Company)
	assert.Equal(t, MatchMethodDirect, match.Method)
	assert.Equal(t, companyID, match.Company.ID)
	assert.False(t, match.Drift)
}

func TestMatchTeamCompany_DriftExactNameWins(t *testing.T) {
	staleID := primitive.NewObjectID()
	currentID := primitive.NewObjectID()
	companies := []models.Company{
		{ID: staleID, Name: "옛날건설", Type: models.CompanyTypeConstructor},
		{ID: currentID, Name: "새한건설", Type: models.CompanyTypeConstructor},
	}
	// id는 옛 업체로 해소되지만 snapshot 업체명은 다른 업체와 완전 일치한다.
	// 이름으로 찾은 업체가 stale id를 이겨야 한다.
	team := &models.Team{
		ID:          primitive.NewObjectID(),
		CompanyID:   staleID,
		CompanyName: "새한건설",
	}

	match := MatchTeamCompany(team, companies)

	require.NotNil(t, match.Company)
	assert.Equal(t, MatchMethodExact, match.Method)
	assert.Equal(t, currentID, match.Company.ID)
	assert.True(t, match.Drift)
}

func TestMatchTeamCompany_DriftNameSearchRepairsSnapshot(t *testing.T) {
	companyID := primitive.NewObjectID()
	companies := []models.Company{
		{ID: companyID, Name: "대한건설", Type: models.CompanyTypeConstructor},
	}
	// snapshot이 옛 표기("구대한건설")라 drift지만, 부분 포함으로 같은 업체에
	// 다시 매칭된다. fuzzy 계열이라 write-back이 snapshot을 현재 표기로 고친다.
	team := &models.Team{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		CompanyName: "구대한건설",
	}

	match := MatchTeamCompany(team, companies)

	require.NotNil(t, match.Company)
	assert.Equal(t, MatchMethodContains, match.Method)
	assert.Equal(t, companyID, match.Company.ID)
	assert.True(t, match.Drift)
}

func TestMatchTeamCompany_DriftKeepsDirectWhenNameUnmatched(t *testing.T) {
	companyID := primitive.NewObjectID()
	companies := []models.Company{
		{ID: companyID, Name: "대한건설", Type: models.CompanyTypeConstructor},
	}
	// snapshot 업체명이 어떤 업체와도 매칭되지 않으면 id 매칭을 유지한다
	team := &models.Team{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		CompanyName: "써니산업",
	}

	match := MatchTeamCompany(team, companies)

	require.NotNil(t, match.Company)
	assert.Equal(t, MatchMethodDirect, match.Method)
	assert.Equal(t, companyID, match.Company.ID)
	assert.True(t, match.Drift)
}

func TestMatchTeamCompany_FallbackChain(t *testing.T) {
	companies := []models.Company{
		{ID: primitive.NewObjectID(), Name: "대한건설(주)", Type: models.CompanyTypeConstructor},
		{ID: primitive.NewObjectID(), Name: "한빛전기", Type: models.CompanyTypePartner},
	}

	tests := []struct {
		name       string
		team       models.Team
		wantMethod string
		wantName   string
	}{
		{
			name: "완전 일치",
			team: models.Team{
				CompanyID:   primitive.NewObjectID(), // 실존하지 않는 id
				CompanyName: "한빛전기",
			},
			wantMethod: MatchMethodExact,
			wantName:   "한빛전기",
		},
		{
			name: "정규화 일치 (괄호, 공백 제거)",
			team: models.Team{
				CompanyName: "대한건설 (주)",
			},
			wantMethod: MatchMethodNormalized,
			wantName:   "대한건설(주)",
		},
		{
			name: "부분 포함",
			team: models.Team{
				CompanyName: "한빛전기공사",
			},
			wantMethod: MatchMethodContains,
			wantName:   "한빛전기",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := MatchTeamCompany(&tt.team, companies)
			require.NotNil(t, match.Company, "매칭 결과가 없습니다: %s", match.Reason)
			assert.Equal(t, tt.wantMethod, match.Method)
			assert.Equal(t, tt.wantName, match.Company.Name)
		})
	}
}

func TestMatchTeamCompany_StaleIDFallsBackToExactName(t *testing.T) {
	// companyId가 실존 업체로 해소되지 않지만 업체명은 정확히 일치하는 경우
	existing := models.Company{ID: primitive.NewObjectID(), Name: "대한건설", Type: models.CompanyTypeConstructor}
	team := &models.Team{
		CompanyID:   primitive.NewObjectID(),
		CompanyName: "대한건설",
	}

	match := MatchTeamCompany(team, []models.Company{existing})

	require.NotNil(t, match.Company)
	assert.Equal(t, MatchMethodExact, match.Method)
	assert.Equal(t, existing.ID, match.Company.ID)
}

func TestMatchTeamCompany_ContainsRequiresLongName(t *testing.T) {
	companies := []models.Company{
		{ID: primitive.NewObjectID(), Name: "한빛전기종합공사", Type: models.CompanyTypePartner},
	}
	// 정규화 후 2자 이하이면 부분 포함 매칭을 시도하지 않는다
	team := &models.Team{CompanyName: "한빛"}

	match := MatchTeamCompany(team, companies)

	assert.Nil(t, match.Company)
	assert.Equal(t, MatchMethodNone, match.Method)
}

func TestMatchTeamCompany_NoneDiagnostics(t *testing.T) {
	companies := []models.Company{
		{ID: primitive.NewObjectID(), Name: "대한건설", Type: models.CompanyTypeConstructor},
	}

	// 업체명 미등록과 업체명 미발견은 다른 진단 메시지를 낸다
	noName := MatchTeamCompany(&models.Team{Name: "형틀팀"}, companies)
	assert.Equal(t, MatchMethodNone, noName.Method)
	assert.Contains(t, noName.Reason, "등록되어 있지 않습니다")

	notFound := MatchTeamCompany(&models.Team{Name: "형틀팀", CompanyName: "없는업체이름"}, companies)
	assert.Equal(t, MatchMethodNone, notFound.Method)
	assert.Contains(t, notFound.Reason, "찾을 수 없습니다")
}
