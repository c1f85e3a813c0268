package global

import (
	"construct_works/config"
	"construct_works/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName MongoDB 컬렉션 이름 모음
type CollectionName struct {
	Workers         string // 노무자
	Teams           string // 팀
	Companies       string // 업체
	Sites           string // 현장
	DailyReports    string // 일일출역
	AdvancePayments string // 가불/공제
	MaterialItems   string // 자재
	ConfigItems     string // 설정 항목
}

// 전역 변수
var Validate *validator.Validate                 // DTO 검증기
var MongoDB_Session *mongo.Client                // MongoDB 연결 세션
var ServerConfig *config.Configuration           // 서버 설정
var MongoDB_ColNames CollectionName              // 컬렉션 이름

// Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // 컬렉션 registry
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // 데이터베이스 registry

// InitColNames 컬렉션 이름을 초기화한다
func InitColNames() {
	MongoDB_ColNames = CollectionName{
		Workers:         "cw_workers",
		Teams:           "cw_teams",
		Companies:       "cw_companies",
		Sites:           "cw_sites",
		DailyReports:    "cw_daily_reports",
		AdvancePayments: "cw_advance_payments",
		MaterialItems:   "cw_material_items",
		ConfigItems:     "cw_config_items",
	}
}

// InitValidator DTO 검증기를 초기화한다
func InitValidator() {
	Validate = validator.New()
}

// GetCollection 이름으로 등록된 컬렉션을 가져온다
func GetCollection(name string) (*mongo.Collection, bool) {
	return RegistryCollections.Get(name)
}
