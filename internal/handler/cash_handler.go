package handler

import (
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CashHandler struct {
	cashRepo    *repository.CashRepository
	cashService *service.CashService
}

func NewCashHandler(cashRepo *repository.CashRepository, cashService *service.CashService) *CashHandler {
	return &CashHandler{
		cashRepo:    cashRepo,
		cashService: cashService,
	}
}

// cashFilterFromQuery reads kode_rek / start_date / end_date query params.
// Unparseable dates are ignored rather than rejected.
func cashFilterFromQuery(c *fiber.Ctx) repository.CashFilter {
	filter := repository.CashFilter{
		KodeRek: c.Query("kode_rek", ""),
	}

	if raw := c.Query("start_date", ""); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.StartDate = &t
		}
	}
	if raw := c.Query("end_date", ""); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.EndDate = &t
		}
	}

	return filter
}

// Receipts

func (h *CashHandler) GetReceipts(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)
	filter := cashFilterFromQuery(c)

	receipts, total, err := h.cashRepo.FindReceipts(params.Limit, offset, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve cash receipts", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"receipts":   receipts,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Cash receipts retrieved successfully", responseData, pagination)
}

func (h *CashHandler) GetReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	receipt, err := h.cashRepo.FindReceiptByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cash receipt not found", err)
	}

	return utils.SuccessResponse(c, "Cash receipt retrieved successfully", receipt)
}

func (h *CashHandler) CreateReceipt(c *fiber.Ctx) error {
	var req models.CashEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Tanggal == "" || req.KodeRek == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tanggal and kode_rek are required", nil)
	}

	receipt, err := h.cashService.CreateReceipt(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create cash receipt", err)
	}

	return utils.SuccessResponse(c, "Cash receipt created successfully", receipt)
}

func (h *CashHandler) UpdateReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.CashEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	receipt, err := h.cashService.UpdateReceipt(id, req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update cash receipt", err)
	}

	return utils.SuccessResponse(c, "Cash receipt updated successfully", receipt)
}

func (h *CashHandler) DeleteReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := h.cashRepo.FindReceiptByID(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cash receipt not found", err)
	}

	if err := h.cashRepo.DeleteReceipt(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete cash receipt", err)
	}

	return utils.SuccessResponse(c, "Cash receipt deleted successfully", nil)
}

// Disbursements

func (h *CashHandler) GetDisbursements(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)
	filter := cashFilterFromQuery(c)

	disbursements, total, err := h.cashRepo.FindDisbursements(params.Limit, offset, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve cash disbursements", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"disbursements": disbursements,
		"pagination":    pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Cash disbursements retrieved successfully", responseData, pagination)
}

func (h *CashHandler) GetDisbursement(c *fiber.Ctx) error {
	id := c.Params("id")

	disbursement, err := h.cashRepo.FindDisbursementByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cash disbursement not found", err)
	}

	return utils.SuccessResponse(c, "Cash disbursement retrieved successfully", disbursement)
}

func (h *CashHandler) CreateDisbursement(c *fiber.Ctx) error {
	var req models.CashEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Tanggal == "" || req.KodeRek == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tanggal and kode_rek are required", nil)
	}

	disbursement, err := h.cashService.CreateDisbursement(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create cash disbursement", err)
	}

	return utils.SuccessResponse(c, "Cash disbursement created successfully", disbursement)
}

func (h *CashHandler) UpdateDisbursement(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.CashEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	disbursement, err := h.cashService.UpdateDisbursement(id, req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update cash disbursement", err)
	}

	return utils.SuccessResponse(c, "Cash disbursement updated successfully", disbursement)
}

func (h *CashHandler) DeleteDisbursement(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := h.cashRepo.FindDisbursementByID(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cash disbursement not found", err)
	}

	if err := h.cashRepo.DeleteDisbursement(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete cash disbursement", err)
	}

	return utils.SuccessResponse(c, "Cash disbursement deleted successfully", nil)
}
