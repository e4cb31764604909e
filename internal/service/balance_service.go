package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrAccountNotFound distinguishes "no such account" from a genuine zero
// balance. The engine never fabricates a zeroed result for unknown codes or
// store failures.
var ErrAccountNotFound = errors.New("account not found")

// BalanceCacheKey holds the latest full reconciliation snapshot in Redis.
const BalanceCacheKey = "balances:all"

// BalanceService reconciles account balances from the stored opening balance
// plus the cash ledgers and journal lines booked against each account.
type BalanceService struct {
	accountRepo *repository.AccountRepository
	cashRepo    *repository.CashRepository
	journalRepo *repository.JournalRepository
	redis       *redis.Client
	cacheTTL    time.Duration
	logger      *logrus.Logger
}

func NewBalanceService(
	accountRepo *repository.AccountRepository,
	cashRepo *repository.CashRepository,
	journalRepo *repository.JournalRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger *logrus.Logger,
) *BalanceService {
	return &BalanceService{
		accountRepo: accountRepo,
		cashRepo:    cashRepo,
		journalRepo: journalRepo,
		redis:       redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// ComputeBalance reconciles a single account. Unknown codes return
// ErrAccountNotFound; store failures propagate wrapped.
func (s *BalanceService) ComputeBalance(kodeRek string) (*models.BalanceCalculation, error) {
	account, err := s.accountRepo.FindByCode(kodeRek)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, kodeRek)
		}
		return nil, fmt.Errorf("failed to load account %s: %w", kodeRek, err)
	}

	filter := repository.CashFilter{KodeRek: kodeRek}

	cashIn, err := s.cashRepo.SumReceipts(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum kas masuk for %s: %w", kodeRek, err)
	}

	cashOut, err := s.cashRepo.SumDisbursements(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum kas keluar for %s: %w", kodeRek, err)
	}

	journal, err := s.journalRepo.SumsForAccount(kodeRek)
	if err != nil {
		return nil, fmt.Errorf("failed to sum journal lines for %s: %w", kodeRek, err)
	}

	calc := newCalculation(*account, cashIn, cashOut, journal)
	return &calc, nil
}

// ComputeAllBalances reconciles every account. Each transaction collection is
// fetched exactly once and partitioned by account code in a single pass, then
// reduced per account.
func (s *BalanceService) ComputeAllBalances(ctx context.Context) ([]models.BalanceCalculation, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	receipts, err := s.cashRepo.GetAllReceipts(repository.CashFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load kas masuk: %w", err)
	}

	disbursements, err := s.cashRepo.GetAllDisbursements(repository.CashFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load kas keluar: %w", err)
	}

	lines, err := s.journalRepo.GetAllLines(repository.JournalFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load journal lines: %w", err)
	}

	calculations := buildCalculations(accounts, receipts, disbursements, lines)

	s.cacheBalances(ctx, calculations)

	return calculations, nil
}

// GetCachedBalances returns the last cached snapshot, if Redis is configured
// and holds one. The second return value reports a cache hit.
func (s *BalanceService) GetCachedBalances(ctx context.Context) ([]models.BalanceCalculation, bool) {
	if s.redis == nil {
		return nil, false
	}

	payload, err := s.redis.Get(ctx, BalanceCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var calculations []models.BalanceCalculation
	if err := json.Unmarshal(payload, &calculations); err != nil {
		s.logger.WithError(err).Warn("Discarding unreadable balance cache entry")
		return nil, false
	}

	return calculations, true
}

// cacheBalances is best effort: a cache failure is logged, never surfaced as
// a balance error.
func (s *BalanceService) cacheBalances(ctx context.Context, calculations []models.BalanceCalculation) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(calculations)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal balance snapshot for cache")
		return
	}

	if err := s.redis.Set(ctx, BalanceCacheKey, payload, s.cacheTTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache balance snapshot")
	}
}

// buildCalculations partitions each collection by account code once, then
// combines the aggregates per account.
func buildCalculations(
	accounts []models.Account,
	receipts []models.CashReceipt,
	disbursements []models.CashDisbursement,
	lines []models.JournalLine,
) []models.BalanceCalculation {
	cashIn := sumReceiptsByAccount(receipts)
	cashOut := sumDisbursementsByAccount(disbursements)
	journal := sumJournalByAccount(lines)

	calculations := make([]models.BalanceCalculation, 0, len(accounts))
	for _, account := range accounts {
		calculations = append(calculations, newCalculation(
			account,
			cashIn[account.KodeRek],
			cashOut[account.KodeRek],
			journal[account.KodeRek],
		))
	}
	return calculations
}

func sumReceiptsByAccount(receipts []models.CashReceipt) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(receipts))
	for _, receipt := range receipts {
		totals[receipt.KodeRek] = totals[receipt.KodeRek].Add(receipt.Jumlah)
	}
	return totals
}

func sumDisbursementsByAccount(disbursements []models.CashDisbursement) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(disbursements))
	for _, disbursement := range disbursements {
		totals[disbursement.KodeRek] = totals[disbursement.KodeRek].Add(disbursement.Jumlah)
	}
	return totals
}

func sumJournalByAccount(lines []models.JournalLine) map[string]models.JournalAggregate {
	totals := make(map[string]models.JournalAggregate, len(lines))
	for _, line := range lines {
		agg := totals[line.KodeRek]
		agg.Debet = agg.Debet.Add(line.Debet)
		agg.Kredit = agg.Kredit.Add(line.Kredit)
		totals[line.KodeRek] = agg
	}
	return totals
}

// newCalculation applies the house sign convention:
// saldo akhir = saldo awal + kas masuk - kas keluar + debet - kredit.
func newCalculation(account models.Account, cashIn, cashOut decimal.Decimal, journal models.JournalAggregate) models.BalanceCalculation {
	closing := account.SaldoAwal.
		Add(cashIn).
		Sub(cashOut).
		Add(journal.Debet).
		Sub(journal.Kredit)

	return models.BalanceCalculation{
		KodeRek:      account.KodeRek,
		NamaRekening: account.NamaRekening,
		SaldoAwal:    account.SaldoAwal,
		KasMasuk:     cashIn,
		KasKeluar:    cashOut,
		JurnalDebet:  journal.Debet,
		JurnalKredit: journal.Kredit,
		SaldoAkhir:   closing,
	}
}
