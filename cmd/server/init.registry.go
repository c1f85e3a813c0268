package main

import (
	"construct_works/config"
	"construct_works/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry registry를 초기화하고 컬렉션 핸들을 등록한다
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("컬렉션 registry 초기화 실패: %v", err)
	}
	logrus.Info("컬렉션 registry 초기화 완료")
}

// InitCollections MongoDB 컬렉션 핸들을 registry에 등록한다
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("데이터베이스 %s 등록 실패: %v", cfg.MongoDB_DBName, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Workers,
		global.MongoDB_ColNames.Teams,
		global.MongoDB_ColNames.Companies,
		global.MongoDB_ColNames.Sites,
		global.MongoDB_ColNames.DailyReports,
		global.MongoDB_ColNames.AdvancePayments,
		global.MongoDB_ColNames.MaterialItems,
		global.MongoDB_ColNames.ConfigItems,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("컬렉션 %s 등록 실패: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("컬렉션 %s 등록 완료", name)
		} else {
			logrus.Warnf("컬렉션 %s 은(는) 이미 등록되어 있습니다", name)
		}
	}

	return nil
}
