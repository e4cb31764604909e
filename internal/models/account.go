package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Level kinds for chart-of-accounts rows. Only "Induk" rows may own children.
const (
	LevelKindParent     = "Induk"
	LevelKindDetailCash = "Detail Kas"
	LevelKindDetailBank = "Detail Bank"
	LevelKindDetail     = "Detail"
	LevelKindStandalone = "Sendiri"
)

// Report kinds determine which statement an account rolls up into.
const (
	ReportKindBalanceSheet      = "NERACA"
	ReportKindBudgetRealization = "LRA"
	ReportKindOperational       = "LO"
)

type Account struct {
	KodeRek      string          `db:"kode_rek" json:"kode_rek"`
	NamaRekening string          `db:"nama_rekening" json:"nama_rekening"`
	SaldoAwal    decimal.Decimal `db:"saldo_awal" json:"saldo_awal"`
	LevelRek     int             `db:"level_rek" json:"level_rek"`
	JenisLevel   string          `db:"jenis_level" json:"jenis_level"`
	KodeInduk    *string         `db:"kode_induk" json:"kode_induk"`
	JenisLaporan string          `db:"jenis_laporan" json:"jenis_laporan"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

type AccountRequest struct {
	KodeRek      string          `json:"kode_rek" validate:"required"`
	NamaRekening string          `json:"nama_rekening" validate:"required"`
	SaldoAwal    decimal.Decimal `json:"saldo_awal"`
	LevelRek     int             `json:"level_rek"`
	JenisLevel   string          `json:"jenis_level"`
	KodeInduk    string          `json:"kode_induk"`
	JenisLaporan string          `json:"jenis_laporan"`
}

type AccountValidationError struct {
	Row     int            `json:"row"`
	Field   string         `json:"field"`
	Value   string         `json:"value"`
	Message string         `json:"message"`
	Data    AccountRequest `json:"data"`
}

type AccountImportResult struct {
	TotalRows        int                      `json:"total_rows"`
	ValidCount       int                      `json:"valid_count"`
	ErrorCount       int                      `json:"error_count"`
	ValidAccounts    []Account                `json:"valid_accounts"`
	ValidationErrors []AccountValidationError `json:"validation_errors"`
}
