// Package database - 컬렉션별 인덱스 생성.
package database

import (
	"context"
	"strings"

	"construct_works/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 운영 쿼리에 필요한 인덱스를 생성한다.
// 서버 시작 시 한 번 호출한다. 이미 있는 인덱스는 건너뛴다.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// cw_workers: 팀별 노무자 조회
	workers := db.Collection(global.MongoDB_ColNames.Workers)
	if _, err := workers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "teamId", Value: 1}},
		Options: options.Index().SetName("worker_team").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_workers: 이름 조회 (출역부 매칭)
	if _, err := workers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("worker_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_teams: 이름 조회 (정규화 매칭은 메모리에서, 일치 조회는 인덱스로)
	teams := db.Collection(global.MongoDB_ColNames.Teams)
	if _, err := teams.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("team_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_companies: 이름 조회
	companies := db.Collection(global.MongoDB_ColNames.Companies)
	if _, err := companies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("company_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_sites: (name, code)
	sites := db.Collection(global.MongoDB_ColNames.Sites)
	if _, err := sites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("site_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_daily_reports: (date, siteId) — 월별 집계의 기본 범위 조회
	dailyReports := db.Collection(global.MongoDB_ColNames.DailyReports)
	if _, err := dailyReports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "siteId", Value: 1},
		},
		Options: options.Index().SetName("daily_report_date_site"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_daily_reports: entries.workerId multikey — 노무자별 출역 추적
	if _, err := dailyReports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "entries.workerId", Value: 1}},
		Options: options.Index().SetName("daily_report_entry_worker").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_advance_payments: (workerId, yearMonth) — 공제 해석의 기본 조회
	advances := db.Collection(global.MongoDB_ColNames.AdvancePayments)
	if _, err := advances.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "workerId", Value: 1},
			{Key: "yearMonth", Value: 1},
		},
		Options: options.Index().SetName("advance_worker_month"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cw_config_items: key unique
	configItems := db.Collection(global.MongoDB_ColNames.ConfigItems)
	if _, err := configItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("config_item_key").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
