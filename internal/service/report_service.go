package service

import (
	"fmt"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var oneHundred = decimal.NewFromInt(100)

// ReportService builds the budget realization (LRA) report: budgeted vs
// realized amount per account for a year.
type ReportService struct {
	budgetRepo  *repository.BudgetRepository
	cashRepo    *repository.CashRepository
	journalRepo *repository.JournalRepository
	logger      *logrus.Logger
}

func NewReportService(
	budgetRepo *repository.BudgetRepository,
	cashRepo *repository.CashRepository,
	journalRepo *repository.JournalRepository,
	logger *logrus.Logger,
) *ReportService {
	return &ReportService{
		budgetRepo:  budgetRepo,
		cashRepo:    cashRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// BudgetRealization reports every active budget row for the year against the
// amounts actually booked in that year. Like the balance engine, each
// collection is fetched once and grouped by account in a single pass.
func (s *ReportService) BudgetRealization(year int) ([]models.BudgetRealizationRow, error) {
	budgets, err := s.budgetRepo.FindByYear(year)
	if err != nil {
		return nil, fmt.Errorf("failed to load anggaran for %d: %w", year, err)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
	cashFilter := repository.CashFilter{StartDate: &start, EndDate: &end}
	journalFilter := repository.JournalFilter{StartDate: &start, EndDate: &end}

	receipts, err := s.cashRepo.GetAllReceipts(cashFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load kas masuk for %d: %w", year, err)
	}

	disbursements, err := s.cashRepo.GetAllDisbursements(cashFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load kas keluar for %d: %w", year, err)
	}

	lines, err := s.journalRepo.GetAllLines(journalFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal lines for %d: %w", year, err)
	}

	rows := buildBudgetRealization(
		budgets,
		sumReceiptsByAccount(receipts),
		sumDisbursementsByAccount(disbursements),
		sumJournalByAccount(lines),
	)

	s.logger.WithFields(logrus.Fields{
		"tahun": year,
		"rows":  len(rows),
	}).Info("Budget realization report built")

	return rows, nil
}

// buildBudgetRealization uses the same sign convention as the balance
// engine for the realized amount.
func buildBudgetRealization(
	budgets []models.Budget,
	cashIn map[string]decimal.Decimal,
	cashOut map[string]decimal.Decimal,
	journal map[string]models.JournalAggregate,
) []models.BudgetRealizationRow {
	rows := make([]models.BudgetRealizationRow, 0, len(budgets))
	for _, budget := range budgets {
		if budget.Aktif != "Y" {
			continue
		}

		agg := journal[budget.KodeRek]
		realisasi := cashIn[budget.KodeRek].
			Sub(cashOut[budget.KodeRek]).
			Add(agg.Debet).
			Sub(agg.Kredit)

		persentase := decimal.Zero
		if !budget.Jumlah.IsZero() {
			persentase = realisasi.Div(budget.Jumlah).Mul(oneHundred).Round(2)
		}

		rows = append(rows, models.BudgetRealizationRow{
			KodeRek:      budget.KodeRek,
			NamaRekening: budget.NamaRekening,
			Tahun:        budget.Tahun,
			Anggaran:     budget.Jumlah,
			Realisasi:    realisasi,
			Selisih:      budget.Jumlah.Sub(realisasi),
			Persentase:   persentase,
		})
	}
	return rows
}
