package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sikeu-web/internal/config"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// RecalculatePayload identifies one queued recalculation run.
type RecalculatePayload struct {
	JobID string `json:"job_id"`
}

// RecalculateHandler recomputes every account balance and stores the
// snapshot in Redis: once under the shared cache key read by the API, once
// under a job-scoped key so the submitter can fetch exactly its run.
type RecalculateHandler struct {
	redis          *redis.Client
	cfg            *config.Config
	balanceService *service.BalanceService
}

func NewRecalculateHandler(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) *RecalculateHandler {
	accountRepo := repository.NewAccountRepository(db)
	cashRepo := repository.NewCashRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	balanceService := service.NewBalanceService(
		accountRepo, cashRepo, journalRepo,
		redisClient, cfg.BalanceCacheTTL, utils.GetLogger(),
	)

	return &RecalculateHandler{
		redis:          redisClient,
		cfg:            cfg,
		balanceService: balanceService,
	}
}

func (h *RecalculateHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload RecalculatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	logger := utils.GetLogger().WithField("job_id", payload.JobID)
	logger.Info("Starting balance recalculation")

	started := time.Now()
	balances, err := h.balanceService.ComputeAllBalances(ctx)
	if err != nil {
		logger.WithError(err).Error("Balance recalculation failed")
		return fmt.Errorf("balance recalculation failed: %w", err)
	}

	if h.redis != nil && payload.JobID != "" {
		snapshot, err := json.Marshal(balances)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		key := fmt.Sprintf("balances:snapshot:%s", payload.JobID)
		if err := h.redis.Set(ctx, key, snapshot, 24*time.Hour).Err(); err != nil {
			logger.WithError(err).Warn("Failed to store job snapshot")
		}
	}

	logger.WithField("accounts", len(balances)).
		WithField("duration", time.Since(started).String()).
		Info("Balance recalculation completed")

	return nil
}
