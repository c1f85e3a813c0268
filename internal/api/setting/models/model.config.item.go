// Package models - ConfigItem은 setting 도메인의 설정 항목 문서이다 (cw_config_items).
// key는 unique index로 보장된다.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfigItem 설정 항목 (cw_config_items)
type ConfigItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Key         string `json:"key" bson:"key"`
	Value       string `json:"value" bson:"value"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
