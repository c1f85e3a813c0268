package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"construct_works/internal/global"
	"construct_works/internal/logger"
)

// initLogger 애플리케이션 전체 logger를 초기화한다
func initLogger() {
	// 환경변수 기반 기본 설정으로 초기화
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("logger 초기화 실패: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("logger 초기화 완료")
}

// main_thread Fiber 서버를 초기화하고 실행한다
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Fiber 서버 시작 중...")

	// 상대 경로를 config/env 기준으로 resolve
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate 파일이 없습니다: %s (원본: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key 파일이 없습니다: %s (원본: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("TLS certificate 로드 오류: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("listener 생성 오류: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("HTTPS/TLS 서버 시작")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Fiber Listener(TLS) 오류: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("HTTP 서버 시작")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Fiber Listen 오류: %v", err)
		}
	}
}

func main() {
	// logger
	initLogger()

	// 전역 변수 (설정, DB 연결, 인덱스)
	InitGlobal()

	// registry (컬렉션 핸들 등록)
	InitRegistry()

	// Fiber 서버 (main thread)
	main_thread()
}
