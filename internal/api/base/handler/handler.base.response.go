package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"construct_works/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse Content-Type: application/json; charset=utf-8 로 JSON을 응답한다.
// 한글 데이터가 깨지지 않도록 모든 JSON 응답이 이 helper를 거친다.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler handler를 recover로 감싸 panic이 나도 응답을 보장한다
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("예기치 않은 시스템 오류: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// SafeHandlerWrapper BaseHandler를 embed하지 않는 도메인 handler용 wrapper
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("예기치 않은 시스템 오류: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleError 오류를 공통 envelope로 응답한다.
// common.Error면 코드/메시지/상태 코드를 그대로 쓰고, 아니면 500으로 응답한다.
func HandleError(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		_ = JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}

	_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}

// HandleSuccess 성공 응답을 공통 envelope로 보낸다
func HandleSuccess(c fiber.Ctx, data interface{}) {
	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleResponse 데이터와 오류를 받아 일관된 형식으로 응답한다
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
