package service

import (
	"testing"

	"sikeu-web/internal/models"

	"github.com/shopspring/decimal"
)

func idr(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestNewCalculationAppliesSignConvention(t *testing.T) {
	account := models.Account{
		KodeRek:      "1.1.1.01",
		NamaRekening: "Kas Tunai",
		SaldoAwal:    idr(25000000),
	}

	calc := newCalculation(account, idr(15000000), idr(0), models.JournalAggregate{
		Debet:  idr(0),
		Kredit: idr(10000000),
	})

	// 25,000,000 + 15,000,000 - 0 + 0 - 10,000,000
	if !calc.SaldoAkhir.Equal(idr(30000000)) {
		t.Errorf("saldo akhir = %s, want 30000000", calc.SaldoAkhir)
	}
	if !calc.KasMasuk.Equal(idr(15000000)) {
		t.Errorf("kas masuk = %s, want 15000000", calc.KasMasuk)
	}
	if !calc.JurnalKredit.Equal(idr(10000000)) {
		t.Errorf("jurnal kredit = %s, want 10000000", calc.JurnalKredit)
	}
}

func TestNewCalculationNoTransactions(t *testing.T) {
	account := models.Account{KodeRek: "1.1.2.01", SaldoAwal: idr(150000000)}

	calc := newCalculation(account, decimal.Zero, decimal.Zero, models.JournalAggregate{})

	if !calc.SaldoAkhir.Equal(account.SaldoAwal) {
		t.Errorf("saldo akhir = %s, want saldo awal %s", calc.SaldoAkhir, account.SaldoAwal)
	}
}

func TestNewCalculationAllComponents(t *testing.T) {
	account := models.Account{KodeRek: "5.1.1.01", SaldoAwal: idr(1000)}

	calc := newCalculation(account, idr(500), idr(200), models.JournalAggregate{
		Debet:  idr(300),
		Kredit: idr(100),
	})

	// 1000 + 500 - 200 + 300 - 100 = 1500
	if !calc.SaldoAkhir.Equal(idr(1500)) {
		t.Errorf("saldo akhir = %s, want 1500", calc.SaldoAkhir)
	}
}

func TestBuildCalculations(t *testing.T) {
	accounts := []models.Account{
		{KodeRek: "1.1.1.01", NamaRekening: "Kas Tunai", SaldoAwal: idr(25000000)},
		{KodeRek: "1.1.2.01", NamaRekening: "Bank Operasional", SaldoAwal: idr(150000000)},
	}
	receipts := []models.CashReceipt{
		{KodeRek: "1.1.1.01", Jumlah: idr(10000000)},
		{KodeRek: "1.1.1.01", Jumlah: idr(5000000)},
	}
	disbursements := []models.CashDisbursement{
		{KodeRek: "1.1.1.01", Jumlah: idr(3000000)},
	}
	lines := []models.JournalLine{
		{KodeRek: "1.1.2.01", Debet: idr(2000000)},
		{KodeRek: "1.1.2.01", Kredit: idr(500000)},
	}

	calcs := buildCalculations(accounts, receipts, disbursements, lines)

	if len(calcs) != 2 {
		t.Fatalf("got %d calculations, want 2", len(calcs))
	}

	// Kas Tunai: 25,000,000 + 15,000,000 - 3,000,000 = 37,000,000
	if !calcs[0].SaldoAkhir.Equal(idr(37000000)) {
		t.Errorf("kas tunai saldo akhir = %s, want 37000000", calcs[0].SaldoAkhir)
	}

	// Bank: 150,000,000 + 2,000,000 - 500,000 = 151,500,000
	if !calcs[1].SaldoAkhir.Equal(idr(151500000)) {
		t.Errorf("bank saldo akhir = %s, want 151500000", calcs[1].SaldoAkhir)
	}
}

func TestBuildCalculationsIgnoresTransactionsForUnknownAccounts(t *testing.T) {
	accounts := []models.Account{
		{KodeRek: "1.1.1.01", SaldoAwal: idr(100)},
	}
	receipts := []models.CashReceipt{
		{KodeRek: "9.9.9.99", Jumlah: idr(777)},
	}

	calcs := buildCalculations(accounts, receipts, nil, nil)

	if len(calcs) != 1 {
		t.Fatalf("got %d calculations, want 1", len(calcs))
	}
	if !calcs[0].SaldoAkhir.Equal(idr(100)) {
		t.Errorf("saldo akhir = %s, want 100", calcs[0].SaldoAkhir)
	}
}

func TestSumJournalByAccount(t *testing.T) {
	lines := []models.JournalLine{
		{KodeRek: "4.1.1.01", Debet: idr(100), Kredit: idr(0)},
		{KodeRek: "4.1.1.01", Debet: idr(0), Kredit: idr(40)},
		{KodeRek: "5.1.1.01", Debet: idr(0), Kredit: idr(60)},
	}

	totals := sumJournalByAccount(lines)

	if !totals["4.1.1.01"].Debet.Equal(idr(100)) || !totals["4.1.1.01"].Kredit.Equal(idr(40)) {
		t.Errorf("4.1.1.01 = %+v, want debet 100 kredit 40", totals["4.1.1.01"])
	}
	if !totals["5.1.1.01"].Kredit.Equal(idr(60)) {
		t.Errorf("5.1.1.01 kredit = %s, want 60", totals["5.1.1.01"].Kredit)
	}
}

func TestDecimalExactness(t *testing.T) {
	// 0.1 + 0.2 must equal exactly 0.3, not a float approximation.
	a, _ := decimal.NewFromString("0.1")
	b, _ := decimal.NewFromString("0.2")
	want, _ := decimal.NewFromString("0.3")

	if !a.Add(b).Equal(want) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", a.Add(b))
	}
}
