package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashReceipt is a kas masuk row. The document number (KM + date + sequence)
// is generated server-side and immutable after creation.
type CashReceipt struct {
	ID           string          `db:"id_kasmasuk" json:"id_kasmasuk"`
	Tanggal      time.Time       `db:"tanggal" json:"tanggal"`
	KodeRek      string          `db:"kode_rek" json:"kode_rek"`
	NamaRekening string          `db:"nama_rekening" json:"nama_rekening"`
	Jumlah       decimal.Decimal `db:"jumlah" json:"jumlah"`
	TerimaDari   string          `db:"terima_dari" json:"terima_dari"`
	Keterangan   string          `db:"keterangan" json:"keterangan"`
	NoCek        *string         `db:"no_cek" json:"no_cek"`
	Bidang       string          `db:"bidang" json:"bidang"`
	Author       string          `db:"author" json:"author"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// CashDisbursement is a kas keluar row (KK series).
type CashDisbursement struct {
	ID           string          `db:"id_kaskeluar" json:"id_kaskeluar"`
	Tanggal      time.Time       `db:"tanggal" json:"tanggal"`
	KodeRek      string          `db:"kode_rek" json:"kode_rek"`
	NamaRekening string          `db:"nama_rekening" json:"nama_rekening"`
	Jumlah       decimal.Decimal `db:"jumlah" json:"jumlah"`
	DibayarKe    string          `db:"dibayar_ke" json:"dibayar_ke"`
	Keterangan   string          `db:"keterangan" json:"keterangan"`
	NoCek        *string         `db:"no_cek" json:"no_cek"`
	Bidang       string          `db:"bidang" json:"bidang"`
	Author       string          `db:"author" json:"author"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

type CashEntryRequest struct {
	Tanggal    string          `json:"tanggal" validate:"required"`
	KodeRek    string          `json:"kode_rek" validate:"required"`
	Jumlah     decimal.Decimal `json:"jumlah"`
	Pihak      string          `json:"pihak"` // terima_dari or dibayar_ke depending on series
	Keterangan string          `json:"keterangan"`
	NoCek      string          `json:"no_cek"`
	Bidang     string          `json:"bidang"`
	Author     string          `json:"author"`
}
