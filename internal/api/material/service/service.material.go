// Package matsvc - material 도메인 서비스 (자재).
package matsvc

import (
	"fmt"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/material/models"
	"construct_works/internal/common"
	"construct_works/internal/global"
)

// MaterialItemService 자재 CRUD 서비스
type MaterialItemService struct {
	*basesvc.BaseServiceMongoImpl[models.MaterialItem]
}

// NewMaterialItemService 새 MaterialItemService를 생성한다
func NewMaterialItemService() (*MaterialItemService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MaterialItems)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.MaterialItems, common.ErrNotFound)
	}
	return &MaterialItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MaterialItem](coll),
	}, nil
}
