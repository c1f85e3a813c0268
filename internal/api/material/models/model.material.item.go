// Package models - MaterialItem은 material 도메인의 자재 문서이다 (cw_material_items).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialItem 자재 (cw_material_items)
type MaterialItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name string `json:"name" bson:"name"`
	Spec string `json:"spec,omitempty" bson:"spec,omitempty"` // 규격
	Unit string `json:"unit,omitempty" bson:"unit,omitempty"` // 단위 (EA, BOX, ...)

	Quantity float64 `json:"quantity" bson:"quantity"`

	// 현장 (snapshot)
	SiteID   primitive.ObjectID `json:"siteId,omitempty" bson:"siteId,omitempty"`
	SiteName string             `json:"siteName,omitempty" bson:"siteName,omitempty"`

	Note string `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
