package handler

import (
	"strconv"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type BudgetHandler struct {
	budgetRepo  *repository.BudgetRepository
	accountRepo *repository.AccountRepository
}

func NewBudgetHandler(budgetRepo *repository.BudgetRepository, accountRepo *repository.AccountRepository) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
	}
}

func (h *BudgetHandler) GetBudgets(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tahun", err)
	}

	budgets, err := h.budgetRepo.FindByYear(year)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve budgets", err)
	}

	return utils.SuccessResponse(c, "Budgets retrieved successfully", fiber.Map{
		"tahun":   year,
		"budgets": budgets,
	})
}

func (h *BudgetHandler) GetBudget(c *fiber.Ctx) error {
	kodeRek := c.Params("kode")
	year, err := strconv.Atoi(c.Params("tahun"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tahun", err)
	}

	budget, err := h.budgetRepo.Find(kodeRek, year)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Budget not found", err)
	}

	return utils.SuccessResponse(c, "Budget retrieved successfully", budget)
}

func (h *BudgetHandler) UpsertBudget(c *fiber.Ctx) error {
	var req models.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.KodeRek == "" || req.Tahun == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode rekening and tahun are required", nil)
	}

	// Budgets hang off existing accounts only
	if _, err := h.accountRepo.FindByCode(req.KodeRek); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kode rekening does not reference an existing account", err)
	}

	if req.Aktif == "" {
		req.Aktif = "Y"
	}
	if req.ValidasiRealisasi == "" {
		req.ValidasiRealisasi = "N"
	}

	budget := &models.Budget{
		KodeRek:           req.KodeRek,
		Tahun:             req.Tahun,
		Jumlah:            req.Jumlah,
		Aktif:             req.Aktif,
		ValidasiRealisasi: req.ValidasiRealisasi,
		Author:            req.Author,
	}

	if err := h.budgetRepo.Upsert(budget); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save budget", err)
	}

	return utils.SuccessResponse(c, "Budget saved successfully", budget)
}

func (h *BudgetHandler) DeleteBudget(c *fiber.Ctx) error {
	kodeRek := c.Params("kode")
	year, err := strconv.Atoi(c.Params("tahun"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tahun", err)
	}

	if err := h.budgetRepo.Delete(kodeRek, year); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete budget", err)
	}

	return utils.SuccessResponse(c, "Budget deleted successfully", nil)
}
