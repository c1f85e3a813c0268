// Package reporthdl - report 도메인 HTTP handler (일일출역 + 출역부 업로드).
package reporthdl

import (
	"fmt"
	"strings"

	basehdl "construct_works/internal/api/base/handler"
	"construct_works/internal/api/report/dto"
	"construct_works/internal/api/report/models"
	reportsvc "construct_works/internal/api/report/service"
	"construct_works/internal/common"
	"construct_works/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"
)

// DailyReportHandler 일일출역 CRUD + 업로드 handler
type DailyReportHandler struct {
	*basehdl.BaseHandler[models.DailyReport, dto.DailyReportCreateInput, dto.DailyReportUpdateInput]
	reportService *reportsvc.DailyReportService
	importService *reportsvc.ImportService
}

// NewDailyReportHandler 새 DailyReportHandler를 생성한다
func NewDailyReportHandler() (*DailyReportHandler, error) {
	reportService, err := reportsvc.NewDailyReportService()
	if err != nil {
		return nil, fmt.Errorf("DailyReportService 생성 실패: %w", err)
	}
	importService, err := reportsvc.NewImportService()
	if err != nil {
		return nil, fmt.Errorf("ImportService 생성 실패: %w", err)
	}
	return &DailyReportHandler{
		BaseHandler: basehdl.NewBaseHandler[models.DailyReport, dto.DailyReportCreateInput, dto.DailyReportUpdateInput](
			reportService.BaseServiceMongoImpl,
			(*dto.DailyReportCreateInput).ToModel,
			(*dto.DailyReportUpdateInput).ToModel,
		),
		reportService: reportService,
		importService: importService,
	}, nil
}

// readRowsFromXlsx 업로드된 xlsx의 첫 시트를 header 기반 row map으로 변환한다
func readRowsFromXlsx(c fiber.Ctx) ([]map[string]string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"업로드 파일(file)이 없습니다",
			common.StatusBadRequest,
			nil,
		)
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("xlsx 파일만 업로드할 수 있습니다: %s", fileHeader.Filename),
			common.StatusBadRequest,
			nil,
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"업로드 파일을 열 수 없습니다",
			common.StatusBadRequest,
			map[string]interface{}{"error": err.Error()},
		)
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"xlsx 파일을 읽을 수 없습니다",
			common.StatusBadRequest,
			map[string]interface{}{"error": err.Error()},
		)
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"xlsx에 시트가 없습니다",
			common.StatusBadRequest,
			nil,
		)
	}

	rawRows, err := xl.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"시트를 읽을 수 없습니다",
			common.StatusBadRequest,
			map[string]interface{}{"error": err.Error()},
		)
	}
	if len(rawRows) < 2 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"업로드할 데이터 행이 없습니다 (header 제외 1행 이상 필요)",
			common.StatusBadRequest,
			nil,
		)
	}

	headers := rawRows[0]
	rows := make([]map[string]string, 0, len(rawRows)-1)
	for _, raw := range rawRows[1:] {
		row := map[string]string{}
		empty := true
		for i, h := range headers {
			key := strings.TrimSpace(h)
			if key == "" || i >= len(raw) {
				continue
			}
			value := strings.TrimSpace(raw[i])
			if value != "" {
				empty = false
			}
			row[key] = value
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// HandleImport POST /daily-reports/import
// multipart xlsx 또는 JSON rows 배열을 받아 출역부를 일괄 반영한다.
func (h *DailyReportHandler) HandleImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var rows []map[string]string

		contentType := string(c.Request().Header.ContentType())
		if strings.HasPrefix(contentType, "multipart/form-data") {
			parsed, err := readRowsFromXlsx(c)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			rows = parsed
		} else {
			var input dto.ImportRowsInput
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if err := h.ValidateInput(&input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			rows = input.Rows
		}

		result, err := h.importService.ImportDailyReports(c.Context(), rows)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateEntry PUT /daily-reports/:id/entries/:workerId
// 보고서 안의 특정 노무자 entry만 수정한다.
func (h *DailyReportHandler) HandleUpdateEntry(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reportID := utility.String2ObjectID(c.Params("id"))
		if reportID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("보고서 ID가 ObjectID 형식이 아닙니다: %s", c.Params("id")),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		workerID := utility.String2ObjectID(c.Params("workerId"))
		if workerID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("노무자 ID가 ObjectID 형식이 아닙니다: %s", c.Params("workerId")),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input dto.ReportEntryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.reportService.UpdateEntry(c.Context(), reportID, workerID, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
