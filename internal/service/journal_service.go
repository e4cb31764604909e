package service

import (
	"errors"
	"fmt"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrUnbalancedJournal blocks submission of a journal whose debits and
// credits differ. Fully recoverable: the caller fixes the lines and retries.
var ErrUnbalancedJournal = errors.New("journal debits and credits are not balanced")

type JournalService struct {
	journalRepo *repository.JournalRepository
	documents   *DocumentNumberService
	logger      *logrus.Logger
}

func NewJournalService(journalRepo *repository.JournalRepository, documents *DocumentNumberService, logger *logrus.Logger) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		documents:   documents,
		logger:      logger,
	}
}

// IsBalanced reports whether the lines' debit total exactly equals the
// credit total. Exact decimal comparison, no tolerance. An empty line list
// is balanced (both totals are zero).
func IsBalanced(lines []models.JournalLine) bool {
	var debet, kredit decimal.Decimal
	for _, line := range lines {
		debet = debet.Add(line.Debet)
		kredit = kredit.Add(line.Kredit)
	}
	return debet.Equal(kredit)
}

// Create validates the journal, issues a JU document number and persists the
// header with its lines. On a duplicate document number (legacy rows imported
// with the old generator) it retries once with a fresh number.
func (s *JournalService) Create(req models.JournalRequest) (*models.JournalHeader, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, fmt.Errorf("invalid tanggal %q: %w", req.Tanggal, err)
	}

	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}
	if !IsBalanced(lines) {
		return nil, ErrUnbalancedJournal
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		id, err := s.documents.Next(SeriesJournal, tanggal)
		if err != nil {
			return nil, err
		}

		header := &models.JournalHeader{
			ID:        id,
			Tanggal:   tanggal,
			Bidang:    req.Bidang,
			KodeJenis: req.KodeJenis,
			Author:    req.Author,
			Lines:     lines,
		}

		err = s.journalRepo.Create(header)
		if err == nil {
			s.logger.WithField("id_jurnal", id).Info("Journal created")
			return header, nil
		}
		if !repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("failed to create journal: %w", err)
		}

		s.logger.WithField("id_jurnal", id).Warn("Document number collision, retrying with a fresh number")
		lastErr = err
	}

	return nil, fmt.Errorf("document number collision persisted after retry: %w", lastErr)
}

// Update rewrites the header fields and replaces the full line set. The
// document number never changes.
func (s *JournalService) Update(id string, req models.JournalRequest) (*models.JournalHeader, error) {
	existing, err := s.journalRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("journal not found: %w", err)
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, fmt.Errorf("invalid tanggal %q: %w", req.Tanggal, err)
	}

	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}
	if !IsBalanced(lines) {
		return nil, ErrUnbalancedJournal
	}

	existing.Tanggal = tanggal
	existing.Bidang = req.Bidang
	existing.KodeJenis = req.KodeJenis
	existing.Author = req.Author
	existing.Lines = lines

	if err := s.journalRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update journal: %w", err)
	}

	s.logger.WithField("id_jurnal", id).Info("Journal updated")
	return s.journalRepo.FindByID(id)
}

func (s *JournalService) Delete(id string) error {
	if _, err := s.journalRepo.FindByID(id); err != nil {
		return fmt.Errorf("journal not found: %w", err)
	}

	if err := s.journalRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}

	s.logger.WithField("id_jurnal", id).Info("Journal deleted")
	return nil
}

func buildLines(reqs []models.JournalLineRequest) ([]models.JournalLine, error) {
	if len(reqs) == 0 {
		return nil, errors.New("journal requires at least one line")
	}

	lines := make([]models.JournalLine, 0, len(reqs))
	for i, req := range reqs {
		if req.KodeRek == "" {
			return nil, fmt.Errorf("line %d: kode_rek is required", i+1)
		}
		if req.Debet.IsNegative() || req.Kredit.IsNegative() {
			return nil, fmt.Errorf("line %d: debet and kredit must not be negative", i+1)
		}
		lines = append(lines, models.JournalLine{
			KodeRek:    req.KodeRek,
			Keterangan: req.Keterangan,
			Debet:      req.Debet,
			Kredit:     req.Kredit,
		})
	}
	return lines, nil
}
