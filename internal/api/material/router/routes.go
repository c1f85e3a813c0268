// Package router 는 material 도메인 route를 등록한다: material-items.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mathdl "construct_works/internal/api/material/handler"
	apirouter "construct_works/internal/api/router"
)

// Register material 도메인의 모든 route를 v1에 등록한다
func Register(v1 fiber.Router, r *apirouter.Router) error {
	materialHandler, err := mathdl.NewMaterialItemHandler()
	if err != nil {
		return fmt.Errorf("MaterialItemHandler 생성: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/material-items", materialHandler, apirouter.ReadWriteConfig)
	return nil
}
