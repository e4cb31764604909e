package service

import (
	"fmt"
	"time"

	"sikeu-web/internal/models"
	"sikeu-web/internal/repository"

	"github.com/sirupsen/logrus"
)

// CashService issues document numbers and writes the kas masuk / kas keluar
// ledgers. Amounts must be non-negative; the document id is immutable once
// created.
type CashService struct {
	cashRepo  *repository.CashRepository
	documents *DocumentNumberService
	logger    *logrus.Logger
}

func NewCashService(cashRepo *repository.CashRepository, documents *DocumentNumberService, logger *logrus.Logger) *CashService {
	return &CashService{
		cashRepo:  cashRepo,
		documents: documents,
		logger:    logger,
	}
}

func (s *CashService) CreateReceipt(req models.CashEntryRequest) (*models.CashReceipt, error) {
	tanggal, err := validateCashRequest(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		id, err := s.documents.Next(SeriesCashIn, tanggal)
		if err != nil {
			return nil, err
		}

		receipt := &models.CashReceipt{
			ID:         id,
			Tanggal:    tanggal,
			KodeRek:    req.KodeRek,
			Jumlah:     req.Jumlah,
			TerimaDari: req.Pihak,
			Keterangan: req.Keterangan,
			NoCek:      optionalString(req.NoCek),
			Bidang:     req.Bidang,
			Author:     req.Author,
		}

		err = s.cashRepo.CreateReceipt(receipt)
		if err == nil {
			s.logger.WithField("id_kasmasuk", id).Info("Cash receipt created")
			return receipt, nil
		}
		if !repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("failed to create cash receipt: %w", err)
		}

		s.logger.WithField("id_kasmasuk", id).Warn("Document number collision, retrying with a fresh number")
		lastErr = err
	}

	return nil, fmt.Errorf("document number collision persisted after retry: %w", lastErr)
}

func (s *CashService) UpdateReceipt(id string, req models.CashEntryRequest) (*models.CashReceipt, error) {
	tanggal, err := validateCashRequest(req)
	if err != nil {
		return nil, err
	}

	receipt, err := s.cashRepo.FindReceiptByID(id)
	if err != nil {
		return nil, fmt.Errorf("cash receipt not found: %w", err)
	}

	receipt.Tanggal = tanggal
	receipt.KodeRek = req.KodeRek
	receipt.Jumlah = req.Jumlah
	receipt.TerimaDari = req.Pihak
	receipt.Keterangan = req.Keterangan
	receipt.NoCek = optionalString(req.NoCek)
	receipt.Bidang = req.Bidang
	receipt.Author = req.Author

	if err := s.cashRepo.UpdateReceipt(receipt); err != nil {
		return nil, fmt.Errorf("failed to update cash receipt: %w", err)
	}

	return receipt, nil
}

func (s *CashService) CreateDisbursement(req models.CashEntryRequest) (*models.CashDisbursement, error) {
	tanggal, err := validateCashRequest(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		id, err := s.documents.Next(SeriesCashOut, tanggal)
		if err != nil {
			return nil, err
		}

		disbursement := &models.CashDisbursement{
			ID:         id,
			Tanggal:    tanggal,
			KodeRek:    req.KodeRek,
			Jumlah:     req.Jumlah,
			DibayarKe:  req.Pihak,
			Keterangan: req.Keterangan,
			NoCek:      optionalString(req.NoCek),
			Bidang:     req.Bidang,
			Author:     req.Author,
		}

		err = s.cashRepo.CreateDisbursement(disbursement)
		if err == nil {
			s.logger.WithField("id_kaskeluar", id).Info("Cash disbursement created")
			return disbursement, nil
		}
		if !repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("failed to create cash disbursement: %w", err)
		}

		s.logger.WithField("id_kaskeluar", id).Warn("Document number collision, retrying with a fresh number")
		lastErr = err
	}

	return nil, fmt.Errorf("document number collision persisted after retry: %w", lastErr)
}

func (s *CashService) UpdateDisbursement(id string, req models.CashEntryRequest) (*models.CashDisbursement, error) {
	tanggal, err := validateCashRequest(req)
	if err != nil {
		return nil, err
	}

	disbursement, err := s.cashRepo.FindDisbursementByID(id)
	if err != nil {
		return nil, fmt.Errorf("cash disbursement not found: %w", err)
	}

	disbursement.Tanggal = tanggal
	disbursement.KodeRek = req.KodeRek
	disbursement.Jumlah = req.Jumlah
	disbursement.DibayarKe = req.Pihak
	disbursement.Keterangan = req.Keterangan
	disbursement.NoCek = optionalString(req.NoCek)
	disbursement.Bidang = req.Bidang
	disbursement.Author = req.Author

	if err := s.cashRepo.UpdateDisbursement(disbursement); err != nil {
		return nil, fmt.Errorf("failed to update cash disbursement: %w", err)
	}

	return disbursement, nil
}

func validateCashRequest(req models.CashEntryRequest) (time.Time, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid tanggal %q: %w", req.Tanggal, err)
	}
	if req.KodeRek == "" {
		return time.Time{}, fmt.Errorf("kode_rek is required")
	}
	if req.Jumlah.IsNegative() {
		return time.Time{}, fmt.Errorf("jumlah must not be negative")
	}
	return tanggal, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
