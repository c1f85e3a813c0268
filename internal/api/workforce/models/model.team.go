// Package models - Team은 workforce 도메인의 팀 문서이다 (cw_teams).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team 팀 (cw_teams).
// companyId는 존재하는 업체를 가리켜야 하지만 과거 데이터에는 누락/stale이 있어
// 현장 담당팀 배정 시 reconcile 과정이 이를 복구한다.
type Team struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name string `json:"name" bson:"name"` // 팀명

	// 상위 팀 (하위 팀 구성용, 선택)
	ParentTeamID primitive.ObjectID `json:"parentTeamId,omitempty" bson:"parentTeamId,omitempty"`

	// 소속 업체 (snapshot: companyName은 cw_companies의 캐시 사본)
	CompanyID   primitive.ObjectID `json:"companyId,omitempty" bson:"companyId,omitempty"`
	CompanyName string             `json:"companyName,omitempty" bson:"companyName,omitempty"`

	// 팀장 (snapshot)
	LeaderWorkerID primitive.ObjectID `json:"leaderWorkerId,omitempty" bson:"leaderWorkerId,omitempty"`
	LeaderName     string             `json:"leaderName,omitempty" bson:"leaderName,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
