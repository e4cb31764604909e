package handler

import (
	"time"

	"sikeu-web/internal/repository"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	accountRepo *repository.AccountRepository
	cashRepo    *repository.CashRepository
	journalRepo *repository.JournalRepository
}

func NewDashboardHandler(
	accountRepo *repository.AccountRepository,
	cashRepo *repository.CashRepository,
	journalRepo *repository.JournalRepository,
) *DashboardHandler {
	return &DashboardHandler{
		accountRepo: accountRepo,
		cashRepo:    cashRepo,
		journalRepo: journalRepo,
	}
}

// GetStats returns totals for the current month plus overall counts.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	filter := repository.CashFilter{StartDate: &monthStart, EndDate: &now}

	totalIn, err := h.cashRepo.SumReceipts(filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats", err)
	}

	totalOut, err := h.cashRepo.SumDisbursements(filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats", err)
	}

	accountCount, err := h.accountRepo.Count()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats", err)
	}

	journalCount, err := h.journalRepo.Count()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats", err)
	}

	return utils.SuccessResponse(c, "Dashboard stats retrieved successfully", fiber.Map{
		"bulan":            monthStart.Format("2006-01"),
		"kas_masuk_bulan":  totalIn,
		"kas_keluar_bulan": totalOut,
		"jumlah_rekening":  accountCount,
		"jumlah_jurnal":    journalCount,
	})
}
