package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP 상태 코드 상수
const (
	// 성공 (2xx)
	StatusOK        = 200 // 성공
	StatusCreated   = 201 // 생성 성공
	StatusNoContent = 204 // 성공, 반환 내용 없음

	// 클라이언트 오류 (4xx)
	StatusBadRequest      = 400 // 잘못된 요청
	StatusNotFound        = 404 // 리소스 없음
	StatusConflict        = 409 // 데이터 충돌
	StatusTooManyRequests = 429 // 요청 과다

	// 서버 오류 (5xx)
	StatusInternalServerError = 500 // 서버 내부 오류
	StatusServiceUnavailable  = 503 // 서비스 불가
)

// 응답 메시지
const (
	MsgSuccess = "처리되었습니다"
	MsgCreated = "등록되었습니다"

	MsgBadRequest      = "잘못된 요청입니다"
	MsgNotFound        = "데이터를 찾을 수 없습니다"
	MsgConflict        = "이미 존재하는 데이터입니다"
	MsgValidationError = "입력값이 올바르지 않습니다"
	MsgDatabaseError   = "데이터베이스 처리 중 오류가 발생했습니다"
	MsgInternalError   = "시스템 오류가 발생했습니다"
)

// ErrorCode 상세 오류 코드 정의
type ErrorCode struct {
	Code        string // 오류 코드 (예: VAL_001)
	Category    string // 분류 (예: Validation)
	SubCategory string // 하위 분류 (예: Input)
	Description string // 상세 설명
}

// 오류 코드 체계
var (
	// 시스템 오류 (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "시스템 내부 오류",
	}

	// 검증 오류 (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "데이터 검증 오류",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "입력 데이터 오류",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "데이터 형식 오류",
	}

	// 데이터베이스 오류 (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "데이터베이스 오류",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "데이터베이스 연결 오류",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "데이터 조회 오류",
	}

	// 업무 로직 오류 (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "업무 로직 오류",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "업무 상태 오류",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "업무 처리 오류",
	}
)

// Error 상세 오류 구조체
type Error struct {
	Code       ErrorCode // 상세 오류 코드
	Message    string    // 오류 메시지
	StatusCode int       // HTTP 상태 코드
	Details    any       // 부가 정보
}

// Error 오류 메시지를 반환한다
func (e *Error) Error() string {
	return e.Message
}

// Is errors.Is 지원 (코드와 메시지 기준 비교)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError 오류 정보를 담은 error를 생성한다
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// 공통 오류
var (
	// 검증 오류
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "입력값이 올바르지 않습니다", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "데이터 형식이 올바르지 않습니다", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "필수 항목이 누락되었습니다", StatusBadRequest, nil)

	// 데이터베이스 오류
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "데이터를 찾을 수 없습니다", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "이미 존재하는 데이터입니다", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "데이터베이스 연결에 실패했습니다", StatusServiceUnavailable, nil)

	// 업무 로직 오류
	ErrInvalidState     = NewError(ErrCodeBusinessState, "처리할 수 없는 상태입니다", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "허용되지 않는 작업입니다", StatusBadRequest, nil)
)

// MongoDB 관련 오류
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "MongoDB 연결 오류", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "MongoDB 네트워크 오류", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "MongoDB 연결 시간 초과", StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "MongoDB 조회 오류", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "MongoDB 쓰기 오류", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "MongoDB 중복 데이터", StatusConflict, nil)
)

// ConvertMongoError MongoDB 드라이버 오류를 시스템 오류 체계로 변환한다
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// 이미 변환된 ErrNotFound는 그대로 전달
	if errors.Is(err, ErrNotFound) {
		return err
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
