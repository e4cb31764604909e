package worker

import (
	"sikeu-web/internal/config"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Task type names shared between the web process (enqueue) and the worker.
const TaskBalanceRecalculate = "balance:recalculate"

func RegisterHandlers(mux *asynq.ServeMux, db *sqlx.DB, redis *redis.Client, cfg *config.Config) {
	recalculator := NewRecalculateHandler(db, redis, cfg)
	mux.HandleFunc(TaskBalanceRecalculate, recalculator.Handle)
}
