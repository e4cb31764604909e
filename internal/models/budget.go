package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is an anggaran row, keyed by (kode_rek, tahun).
type Budget struct {
	KodeRek           string          `db:"kode_rek" json:"kode_rek"`
	NamaRekening      string          `db:"nama_rekening" json:"nama_rekening"`
	Tahun             int             `db:"tahun" json:"tahun"`
	Jumlah            decimal.Decimal `db:"jumlah" json:"jumlah"`
	Aktif             string          `db:"aktif" json:"aktif"`                         // Y/N
	ValidasiRealisasi string          `db:"validasi_realisasi" json:"validasi_realisasi"` // Y/N
	Author            string          `db:"author" json:"author"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

type BudgetRequest struct {
	KodeRek           string          `json:"kode_rek" validate:"required"`
	Tahun             int             `json:"tahun" validate:"required"`
	Jumlah            decimal.Decimal `json:"jumlah"`
	Aktif             string          `json:"aktif"`
	ValidasiRealisasi string          `json:"validasi_realisasi"`
	Author            string          `json:"author"`
}
