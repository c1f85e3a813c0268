// Package middleware - 전역 HTTP 미들웨어.
package middleware

import (
	"time"

	"construct_works/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// RequestLogger 요청/응답을 audit logger에 기록한다.
// health check는 제외한다 (주기 호출로 로그가 범람하므로).
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		fields := map[string]interface{}{
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"latencyMs": time.Since(start).Milliseconds(),
			"requestId": c.Get("X-Request-ID"),
			"ip":        c.IP(),
		}
		if err != nil {
			fields["error"] = err.Error()
		}

		entry := logger.GetAuditLogger().WithFields(fields)
		if err != nil || c.Response().StatusCode() >= 500 {
			entry.Error("요청 처리")
		} else {
			entry.Info("요청 처리")
		}
		return err
	}
}
