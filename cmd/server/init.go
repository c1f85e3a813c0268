package main

import (
	"context"

	"construct_works/config"
	"construct_works/internal/database"
	"construct_works/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal 전역 변수를 초기화한다
func InitGlobal() {
	initColNames()         // 컬렉션 이름
	initValidator()        // DTO 검증기
	initConfig()           // 서버 설정
	initDatabase_MongoDB() // MongoDB 연결 + 인덱스
}

// initColNames 컬렉션 이름을 초기화한다
func initColNames() {
	global.InitColNames()
	logrus.Info("컬렉션 이름 초기화 완료")
}

// initValidator DTO 검증기를 초기화한다
func initValidator() {
	global.InitValidator()
	logrus.Info("validator 초기화 완료")
}

// initConfig 서버 설정을 초기화한다
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("설정 초기화 실패: config가 nil입니다")
	}
	logrus.Info("서버 설정 초기화 완료")
}

// initDatabase_MongoDB MongoDB에 연결하고 인덱스를 생성한다
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("MongoDB 연결 실패: %v", err)
	}
	logrus.Info("MongoDB 연결 완료")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("인덱스 생성 실패: %v", err)
	}
	logrus.Info("인덱스 생성 완료")
}
