package handler

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService *service.ReportService
	excelService  *service.ExcelService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		excelService:  service.NewExcelService(),
	}
}

func (h *ReportHandler) GetBudgetRealization(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tahun", err)
	}

	rows, err := h.reportService.BudgetRealization(year)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build budget realization report", err)
	}

	return utils.SuccessResponse(c, "Budget realization report built successfully", fiber.Map{
		"tahun": year,
		"rows":  rows,
	})
}

func (h *ReportHandler) ExportBudgetRealization(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tahun", err)
	}

	rows, err := h.reportService.BudgetRealization(year)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build budget realization report", err)
	}

	exportFileName := fmt.Sprintf("lra_%d_%s.xlsx", year, time.Now().Format("20060102_150405"))
	exportPath := filepath.Join("./storage/exports", exportFileName)

	if err := h.excelService.ExportBudgetRealization(rows, year, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report", err)
	}

	return c.Download(exportPath, exportFileName)
}
