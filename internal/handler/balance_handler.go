package handler

import (
	"encoding/json"
	"errors"

	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"
	"sikeu-web/internal/worker"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type BalanceHandler struct {
	balanceService *service.BalanceService
	asynqClient    *asynq.Client
}

func NewBalanceHandler(balanceService *service.BalanceService, asynqClient *asynq.Client) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		asynqClient:    asynqClient,
	}
}

// GetBalances returns the reconciliation for every account. A fresh cache
// snapshot is served when available; otherwise the engine recomputes.
func (h *BalanceHandler) GetBalances(c *fiber.Ctx) error {
	if c.Query("cached", "true") == "true" {
		if balances, ok := h.balanceService.GetCachedBalances(c.Context()); ok {
			return utils.SuccessResponse(c, "Balances retrieved from cache", balances)
		}
	}

	balances, err := h.balanceService.ComputeAllBalances(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute balances", err)
	}

	return utils.SuccessResponse(c, "Balances computed successfully", balances)
}

func (h *BalanceHandler) GetBalance(c *fiber.Ctx) error {
	kodeRek := c.Params("kode")

	balance, err := h.balanceService.ComputeBalance(kodeRek)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute balance", err)
	}

	return utils.SuccessResponse(c, "Balance computed successfully", balance)
}

// Recalculate enqueues a full recalculation in the background and returns
// the job id. Requires the worker and Redis to be running.
func (h *BalanceHandler) Recalculate(c *fiber.Ctx) error {
	if h.asynqClient == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Background jobs are not available", nil)
	}

	jobID := uuid.NewString()
	payload, err := json.Marshal(worker.RecalculatePayload{JobID: jobID})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build task payload", err)
	}

	task := asynq.NewTask(worker.TaskBalanceRecalculate, payload)
	if _, err := h.asynqClient.Enqueue(task, asynq.Queue("default")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enqueue recalculation", err)
	}

	return utils.SuccessResponse(c, "Balance recalculation queued", fiber.Map{
		"job_id": jobID,
	})
}
