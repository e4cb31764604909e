package router

import (
	"sikeu-web/internal/config"
	"sikeu-web/internal/handler"
	"sikeu-web/internal/middleware"
	"sikeu-web/internal/repository"
	"sikeu-web/internal/service"
	"sikeu-web/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redis *redis.Client,
	cfg *config.Config,
) {
	logger := utils.GetLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	cashRepo := repository.NewCashRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg)
	documentService := service.NewDocumentNumberService(sequenceRepo)
	cashService := service.NewCashService(cashRepo, documentService, logger)
	journalService := service.NewJournalService(journalRepo, documentService, logger)
	balanceService := service.NewBalanceService(accountRepo, cashRepo, journalRepo, redis, cfg.BalanceCacheTTL, logger)
	reportService := service.NewReportService(budgetRepo, cashRepo, journalRepo, logger)

	// Initialize Asynq client (optional - only if Redis is available)
	var asynqClient *asynq.Client
	if redis != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		})
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountRepo)
	cashHandler := handler.NewCashHandler(cashRepo, cashService)
	journalHandler := handler.NewJournalHandler(journalRepo, journalService)
	budgetHandler := handler.NewBudgetHandler(budgetRepo, accountRepo)
	balanceHandler := handler.NewBalanceHandler(balanceService, asynqClient)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(accountRepo, cashRepo, journalRepo)

	// Public routes
	auth := router.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("", middleware.AuthMiddleware(cfg))

	// Auth routes
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard routes
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.Get("/", accountHandler.GetAccounts)
	accounts.Get("/export", accountHandler.ExportAccounts)
	accounts.Get("/template", accountHandler.DownloadTemplate)
	accounts.Post("/import", accountHandler.ImportAccounts)
	accounts.Get("/:kode", accountHandler.GetAccount)
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Put("/:kode", accountHandler.UpdateAccount)
	accounts.Delete("/:kode", middleware.AdminOnly(), accountHandler.DeleteAccount)

	// Cash receipt routes
	receipts := protected.Group("/cash-receipts")
	receipts.Get("/", cashHandler.GetReceipts)
	receipts.Get("/:id", cashHandler.GetReceipt)
	receipts.Post("/", cashHandler.CreateReceipt)
	receipts.Put("/:id", cashHandler.UpdateReceipt)
	receipts.Delete("/:id", cashHandler.DeleteReceipt)

	// Cash disbursement routes
	disbursements := protected.Group("/cash-disbursements")
	disbursements.Get("/", cashHandler.GetDisbursements)
	disbursements.Get("/:id", cashHandler.GetDisbursement)
	disbursements.Post("/", cashHandler.CreateDisbursement)
	disbursements.Put("/:id", cashHandler.UpdateDisbursement)
	disbursements.Delete("/:id", cashHandler.DeleteDisbursement)

	// Journal routes
	journals := protected.Group("/journals")
	journals.Get("/", journalHandler.GetJournals)
	journals.Get("/:id", journalHandler.GetJournal)
	journals.Post("/", journalHandler.CreateJournal)
	journals.Put("/:id", journalHandler.UpdateJournal)
	journals.Delete("/:id", journalHandler.DeleteJournal)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.Get("/", budgetHandler.GetBudgets)
	budgets.Get("/:kode/:tahun", budgetHandler.GetBudget)
	budgets.Post("/", budgetHandler.UpsertBudget)
	budgets.Delete("/:kode/:tahun", budgetHandler.DeleteBudget)

	// Balance routes
	balances := protected.Group("/balances")
	balances.Get("/", balanceHandler.GetBalances)
	balances.Post("/recalculate", balanceHandler.Recalculate)
	balances.Get("/:kode", balanceHandler.GetBalance)

	// Report routes
	reports := protected.Group("/reports")
	reports.Get("/budget-realization", reportHandler.GetBudgetRealization)
	reports.Get("/budget-realization/export", reportHandler.ExportBudgetRealization)
}
