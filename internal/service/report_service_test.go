package service

import (
	"testing"

	"sikeu-web/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildBudgetRealization(t *testing.T) {
	budgets := []models.Budget{
		{KodeRek: "4.1.1.01", NamaRekening: "Pendapatan Jasa Layanan", Tahun: 2025, Jumlah: idr(100000000), Aktif: "Y"},
	}
	cashIn := map[string]decimal.Decimal{
		"4.1.1.01": idr(80000000),
	}

	rows := buildBudgetRealization(budgets, cashIn, nil, nil)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if !row.Realisasi.Equal(idr(80000000)) {
		t.Errorf("realisasi = %s, want 80000000", row.Realisasi)
	}
	if !row.Selisih.Equal(idr(20000000)) {
		t.Errorf("selisih = %s, want 20000000", row.Selisih)
	}
	if !row.Persentase.Equal(idr(80)) {
		t.Errorf("persentase = %s, want 80", row.Persentase)
	}
}

func TestBuildBudgetRealizationSkipsInactive(t *testing.T) {
	budgets := []models.Budget{
		{KodeRek: "4.1.1.01", Tahun: 2025, Jumlah: idr(1000), Aktif: "Y"},
		{KodeRek: "4.1.1.02", Tahun: 2025, Jumlah: idr(2000), Aktif: "N"},
	}

	rows := buildBudgetRealization(budgets, nil, nil, nil)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (inactive budget must be skipped)", len(rows))
	}
	if rows[0].KodeRek != "4.1.1.01" {
		t.Errorf("kode_rek = %s, want 4.1.1.01", rows[0].KodeRek)
	}
}

func TestBuildBudgetRealizationZeroBudget(t *testing.T) {
	budgets := []models.Budget{
		{KodeRek: "5.1.1.01", Tahun: 2025, Jumlah: decimal.Zero, Aktif: "Y"},
	}
	cashOut := map[string]decimal.Decimal{
		"5.1.1.01": idr(500000),
	}

	rows := buildBudgetRealization(budgets, nil, cashOut, nil)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// No division by zero: percentage stays zero.
	if !rows[0].Persentase.IsZero() {
		t.Errorf("persentase = %s, want 0 for zero budget", rows[0].Persentase)
	}
}

func TestBuildBudgetRealizationSignConvention(t *testing.T) {
	budgets := []models.Budget{
		{KodeRek: "5.1.1.02", Tahun: 2025, Jumlah: idr(10000), Aktif: "Y"},
	}
	cashIn := map[string]decimal.Decimal{"5.1.1.02": idr(500)}
	cashOut := map[string]decimal.Decimal{"5.1.1.02": idr(200)}
	journal := map[string]models.JournalAggregate{
		"5.1.1.02": {Debet: idr(300), Kredit: idr(100)},
	}

	rows := buildBudgetRealization(budgets, cashIn, cashOut, journal)

	// 500 - 200 + 300 - 100 = 500
	if !rows[0].Realisasi.Equal(idr(500)) {
		t.Errorf("realisasi = %s, want 500", rows[0].Realisasi)
	}
}

func TestBuildBudgetRealizationPercentageRounding(t *testing.T) {
	budgets := []models.Budget{
		{KodeRek: "4.1.1.01", Tahun: 2025, Jumlah: idr(3), Aktif: "Y"},
	}
	cashIn := map[string]decimal.Decimal{"4.1.1.01": idr(1)}

	rows := buildBudgetRealization(budgets, cashIn, nil, nil)

	want, _ := decimal.NewFromString("33.33")
	if !rows[0].Persentase.Equal(want) {
		t.Errorf("persentase = %s, want 33.33", rows[0].Persentase)
	}
}
