package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalHeader is a jurnalumum row. Lines are owned by the header: an update
// replaces the full line set, never patches individual rows.
type JournalHeader struct {
	ID        string        `db:"id_jurnal" json:"id_jurnal"`
	Tanggal   time.Time     `db:"tanggal" json:"tanggal"`
	Bidang    string        `db:"bidang" json:"bidang"`
	KodeJenis string        `db:"kode_jenis_jurnal" json:"kode_jenis_jurnal"`
	Author    string        `db:"author" json:"author"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
	Lines     []JournalLine `db:"-" json:"lines"`
}

type JournalLine struct {
	ID           int             `db:"id" json:"id"`
	JournalID    string          `db:"id_jurnal" json:"id_jurnal"`
	KodeRek      string          `db:"kode_rek" json:"kode_rek"`
	NamaRekening string          `db:"nama_rekening" json:"nama_rekening"`
	Keterangan   string          `db:"keterangan" json:"keterangan"`
	Debet        decimal.Decimal `db:"debet" json:"debet"`
	Kredit       decimal.Decimal `db:"kredit" json:"kredit"`
}

type JournalLineRequest struct {
	KodeRek    string          `json:"kode_rek" validate:"required"`
	Keterangan string          `json:"keterangan"`
	Debet      decimal.Decimal `json:"debet"`
	Kredit     decimal.Decimal `json:"kredit"`
}

type JournalRequest struct {
	Tanggal   string               `json:"tanggal" validate:"required"`
	Bidang    string               `json:"bidang"`
	KodeJenis string               `json:"kode_jenis_jurnal"`
	Author    string               `json:"author"`
	Lines     []JournalLineRequest `json:"lines" validate:"required"`
}
