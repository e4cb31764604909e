package handler

import (
	"errors"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type JournalHandler struct {
	journalRepo    *repository.JournalRepository
	journalService *service.JournalService
}

func NewJournalHandler(journalRepo *repository.JournalRepository, journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalRepo:    journalRepo,
		journalService: journalService,
	}
}

func (h *JournalHandler) GetJournals(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	filter := repository.JournalFilter{}
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

	journals, total, err := h.journalRepo.FindAll(params.Limit, offset, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve journals", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"journals":   journals,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Journals retrieved successfully", responseData, pagination)
}

func (h *JournalHandler) GetJournal(c *fiber.Ctx) error {
	id := c.Params("id")

	journal, err := h.journalRepo.FindByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Journal not found", err)
	}

	return utils.SuccessResponse(c, "Journal retrieved successfully", journal)
}

func (h *JournalHandler) CreateJournal(c *fiber.Ctx) error {
	var req models.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Tanggal == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tanggal is required", nil)
	}

	journal, err := h.journalService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrUnbalancedJournal) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Total debet must equal total kredit", err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create journal", err)
	}

	return utils.SuccessResponse(c, "Journal created successfully", journal)
}

func (h *JournalHandler) UpdateJournal(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	journal, err := h.journalService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrUnbalancedJournal) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Total debet must equal total kredit", err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update journal", err)
	}

	return utils.SuccessResponse(c, "Journal updated successfully", journal)
}

func (h *JournalHandler) DeleteJournal(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.journalService.Delete(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete journal", err)
	}

	return utils.SuccessResponse(c, "Journal deleted successfully", nil)
}
