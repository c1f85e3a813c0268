package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration 애플리케이션 실행에 필요한 정적 설정.
// 환경변수(.env)에서 읽어온다.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // 초기화 모드
	Address               string `env:"ADDRESS" envDefault:":8080"`                // 서버 주소
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // MongoDB 연결 URI
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // 데이터베이스 이름
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // 허용 origin (쉼표 구분, * = 전체)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // credentials 허용 여부

	// 일일출역 일괄 업로드 페이싱 (DB 부하 완화)
	Import_ChunkSize int `env:"IMPORT_CHUNK_SIZE" envDefault:"20"` // 청크당 행 수
	Import_ChunkWait int `env:"IMPORT_CHUNK_WAIT" envDefault:"100"` // 청크 간 대기 (ms)

	// TLS/HTTPS 설정
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // HTTPS 사용
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // certificate 파일 경로 (.crt, .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // private key 파일 경로 (.key)
}

// getEnvPath 환경에 해당하는 env 파일 경로를 찾는다
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// logger가 아직 초기화 전일 수 있어 fmt 사용
		fmt.Printf("현재 디렉토리를 확인할 수 없습니다: %v\n", err)
		return ""
	}

	// 상위로 올라가며 config/env 디렉토리를 찾는다
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig env 파일을 읽어 설정을 생성한다
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("config/env 디렉토리를 찾을 수 없습니다\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("env 파일을 읽을 수 없습니다 (%s): %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("설정 파싱 오류: %+v\n", err)
		return nil
	}

	return &cfg
}
