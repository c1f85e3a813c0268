// Package dto - workforce 도메인의 입력 DTO (team).
package dto

import (
	"construct_works/internal/api/workforce/models"
	"construct_works/internal/utility"
)

// TeamCreateInput 팀 생성 입력
type TeamCreateInput struct {
	Name           string `json:"name" validate:"required"`
	ParentTeamId   string `json:"parentTeamId,omitempty"`
	CompanyId      string `json:"companyId,omitempty"`
	CompanyName    string `json:"companyName,omitempty"`
	LeaderWorkerId string `json:"leaderWorkerId,omitempty"`
	LeaderName     string `json:"leaderName,omitempty"`
}

// TeamUpdateInput 팀 수정 입력
type TeamUpdateInput struct {
	Name           string `json:"name,omitempty"`
	ParentTeamId   string `json:"parentTeamId,omitempty"`
	CompanyId      string `json:"companyId,omitempty"`
	CompanyName    string `json:"companyName,omitempty"`
	LeaderWorkerId string `json:"leaderWorkerId,omitempty"`
	LeaderName     string `json:"leaderName,omitempty"`
}

// ToModel TeamCreateInput을 Team 모델로 변환한다
func (in *TeamCreateInput) ToModel() (*models.Team, error) {
	return &models.Team{
		Name:           in.Name,
		ParentTeamID:   utility.String2ObjectID(in.ParentTeamId),
		CompanyID:      utility.String2ObjectID(in.CompanyId),
		CompanyName:    in.CompanyName,
		LeaderWorkerID: utility.String2ObjectID(in.LeaderWorkerId),
		LeaderName:     in.LeaderName,
	}, nil
}

// ToModel TeamUpdateInput을 Team 모델로 변환한다
func (in *TeamUpdateInput) ToModel() (*models.Team, error) {
	return &models.Team{
		Name:           in.Name,
		ParentTeamID:   utility.String2ObjectID(in.ParentTeamId),
		CompanyID:      utility.String2ObjectID(in.CompanyId),
		CompanyName:    in.CompanyName,
		LeaderWorkerID: utility.String2ObjectID(in.LeaderWorkerId),
		LeaderName:     in.LeaderName,
	}, nil
}
