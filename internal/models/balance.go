package models

import "github.com/shopspring/decimal"

// BalanceCalculation is derived per request, never persisted.
//
// The closing balance uses the same sign convention for every account class
// (opening + cash in - cash out + debit - credit), matching how the books
// have always been kept here. Proper double-entry would flip the sign for
// liability/equity accounts; changing that needs sign-off from the finance
// office first.
type BalanceCalculation struct {
	KodeRek      string          `json:"kode_rek"`
	NamaRekening string          `json:"nama_rekening"`
	SaldoAwal    decimal.Decimal `json:"saldo_awal"`
	KasMasuk     decimal.Decimal `json:"kas_masuk"`
	KasKeluar    decimal.Decimal `json:"kas_keluar"`
	JurnalDebet  decimal.Decimal `json:"jurnal_debet"`
	JurnalKredit decimal.Decimal `json:"jurnal_kredit"`
	SaldoAkhir   decimal.Decimal `json:"saldo_akhir"`
}

// JournalAggregate holds per-account debit/credit sums.
type JournalAggregate struct {
	Debet  decimal.Decimal
	Kredit decimal.Decimal
}

// BudgetRealizationRow is one LRA report line: budgeted vs realized amount
// for an account in a given year.
type BudgetRealizationRow struct {
	KodeRek      string          `json:"kode_rek"`
	NamaRekening string          `json:"nama_rekening"`
	Tahun        int             `json:"tahun"`
	Anggaran     decimal.Decimal `json:"anggaran"`
	Realisasi    decimal.Decimal `json:"realisasi"`
	Selisih      decimal.Decimal `json:"selisih"`
	Persentase   decimal.Decimal `json:"persentase"`
}
