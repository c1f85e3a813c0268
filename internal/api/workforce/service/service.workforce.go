// Package wfsvc - workforce 도메인 서비스 (노무자/팀/업체/현장).
package wfsvc

import (
	"fmt"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/workforce/models"
	"construct_works/internal/common"
	"construct_works/internal/global"
)

// WorkerService 노무자 CRUD 서비스
type WorkerService struct {
	*basesvc.BaseServiceMongoImpl[models.Worker]
}

// NewWorkerService 새 WorkerService를 생성한다
func NewWorkerService() (*WorkerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Workers)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.Workers, common.ErrNotFound)
	}
	return &WorkerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Worker](coll),
	}, nil
}

// TeamService 팀 CRUD 서비스
type TeamService struct {
	*basesvc.BaseServiceMongoImpl[models.Team]
}

// NewTeamService 새 TeamService를 생성한다
func NewTeamService() (*TeamService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Teams)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.Teams, common.ErrNotFound)
	}
	return &TeamService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Team](coll),
	}, nil
}

// CompanyService 업체 CRUD 서비스
type CompanyService struct {
	*basesvc.BaseServiceMongoImpl[models.Company]
}

// NewCompanyService 새 CompanyService를 생성한다
func NewCompanyService() (*CompanyService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.Companies, common.ErrNotFound)
	}
	return &CompanyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Company](coll),
	}, nil
}

// SiteService 현장 CRUD 서비스
type SiteService struct {
	*basesvc.BaseServiceMongoImpl[models.Site]
}

// NewSiteService 새 SiteService를 생성한다
func NewSiteService() (*SiteService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sites)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.Sites, common.ErrNotFound)
	}
	return &SiteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Site](coll),
	}, nil
}
