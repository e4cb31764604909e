package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountRepo  *repository.AccountRepository
	excelService *service.ExcelService
}

func NewAccountHandler(accountRepo *repository.AccountRepository) *AccountHandler {
	return &AccountHandler{
		accountRepo:  accountRepo,
		excelService: service.NewExcelService(),
	}
}

func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	accounts, total, err := h.accountRepo.FindAll(params.Limit, offset, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve accounts", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"accounts":   accounts,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Accounts retrieved successfully", responseData, pagination)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	code := c.Params("kode")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Account code is required", nil)
	}

	account, err := h.accountRepo.FindByCode(code)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	return utils.SuccessResponse(c, "Account retrieved successfully", account)
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req models.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	// Validation
	if req.KodeRek == "" || req.NamaRekening == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode rekening and nama rekening are required", nil)
	}

	// A parent reference must point at an existing Induk account
	if req.KodeInduk != "" {
		parent, err := h.accountRepo.FindByCode(req.KodeInduk)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode induk does not reference an existing account", err)
		}
		if parent.JenisLevel != models.LevelKindParent {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode induk must reference an Induk account", nil)
		}
	}

	account := &models.Account{
		KodeRek:      req.KodeRek,
		NamaRekening: req.NamaRekening,
		SaldoAwal:    req.SaldoAwal,
		LevelRek:     req.LevelRek,
		JenisLevel:   req.JenisLevel,
		JenisLaporan: req.JenisLaporan,
	}
	if req.KodeInduk != "" {
		account.KodeInduk = &req.KodeInduk
	}

	if err := h.accountRepo.Create(account); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	return utils.SuccessResponse(c, "Account created successfully", account)
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	code := c.Params("kode")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Account code is required", nil)
	}

	var req models.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.NamaRekening == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nama rekening is required", nil)
	}

	account, err := h.accountRepo.FindByCode(code)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	if req.KodeInduk != "" {
		parent, err := h.accountRepo.FindByCode(req.KodeInduk)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode induk does not reference an existing account", err)
		}
		if parent.JenisLevel != models.LevelKindParent {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode induk must reference an Induk account", nil)
		}
	}

	account.NamaRekening = req.NamaRekening
	account.SaldoAwal = req.SaldoAwal
	account.LevelRek = req.LevelRek
	account.JenisLevel = req.JenisLevel
	account.JenisLaporan = req.JenisLaporan
	account.KodeInduk = nil
	if req.KodeInduk != "" {
		account.KodeInduk = &req.KodeInduk
	}

	if err := h.accountRepo.Update(account); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update account", err)
	}

	return utils.SuccessResponse(c, "Account updated successfully", account)
}

func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	code := c.Params("kode")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Account code is required", nil)
	}

	if err := h.accountRepo.Delete(code); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete account", err)
	}

	return utils.SuccessResponse(c, "Account deleted successfully", nil)
}

func (h *AccountHandler) ExportAccounts(c *fiber.Ctx) error {
	accounts, err := h.accountRepo.GetAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve accounts", err)
	}

	exportFileName := fmt.Sprintf("rekening_export_%s.xlsx", time.Now().Format("20060102_150405"))
	exportPath := filepath.Join("./storage/exports", exportFileName)

	if err := h.excelService.ExportAccounts(accounts, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export accounts", err)
	}

	return c.Download(exportPath, exportFileName)
}

func (h *AccountHandler) DownloadTemplate(c *fiber.Ctx) error {
	templateFileName := "rekening_import_template.xlsx"
	templatePath := filepath.Join("./storage/exports", templateFileName)

	induk := "1.1"
	sampleAccounts := []models.Account{
		{
			KodeRek:      "1.1",
			NamaRekening: "Kas dan Bank",
			LevelRek:     2,
			JenisLevel:   models.LevelKindParent,
			JenisLaporan: models.ReportKindBalanceSheet,
		},
		{
			KodeRek:      "1.1.1.01",
			NamaRekening: "Kas Besar",
			LevelRek:     4,
			JenisLevel:   models.LevelKindDetailCash,
			KodeInduk:    &induk,
			JenisLaporan: models.ReportKindBalanceSheet,
		},
	}

	if err := h.excelService.ExportAccounts(sampleAccounts, templatePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate template", err)
	}

	return c.Download(templatePath, templateFileName)
}

func (h *AccountHandler) ImportAccounts(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}

	// Validate file type
	ext := filepath.Ext(file.Filename)
	if ext != ".xlsx" && ext != ".xls" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only Excel files (.xlsx, .xls) are allowed", nil)
	}

	// Save file temporarily
	tempPath := filepath.Join("./storage/temp", fmt.Sprintf("import_%d%s", time.Now().Unix(), ext))
	if err := c.SaveFile(file, tempPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
	}
	defer os.Remove(tempPath)

	result, err := h.excelService.ParseAccountsWithValidation(tempPath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse Excel file: "+err.Error(), err)
	}

	if result.ValidCount == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"message":     "No valid accounts found in the file",
			"total_rows":  result.TotalRows,
			"valid_count": result.ValidCount,
			"error_count": result.ErrorCount,
			"errors":      result.ValidationErrors,
		})
	}

	if err := h.accountRepo.BulkInsert(result.ValidAccounts); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to import accounts: "+err.Error(), err)
	}

	if result.ErrorCount > 0 {
		return c.Status(fiber.StatusPartialContent).JSON(fiber.Map{
			"success":        true,
			"message":        fmt.Sprintf("Import completed with %d errors. %d accounts imported successfully.", result.ErrorCount, result.ValidCount),
			"total_rows":     result.TotalRows,
			"valid_count":    result.ValidCount,
			"error_count":    result.ErrorCount,
			"errors":         getFirstNErrors(result.ValidationErrors, 10),
			"total_imported": result.ValidCount,
		})
	}

	return utils.SuccessResponse(c, "All accounts imported successfully", fiber.Map{
		"total_rows":     result.TotalRows,
		"valid_count":    result.ValidCount,
		"error_count":    result.ErrorCount,
		"total_imported": result.ValidCount,
	})
}

// getFirstNErrors returns the first n errors from a slice
func getFirstNErrors(errors []models.AccountValidationError, n int) []models.AccountValidationError {
	if len(errors) <= n {
		return errors
	}
	return errors[:n]
}
