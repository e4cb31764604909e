package service

import (
	"testing"

	"sikeu-web/internal/models"

	"github.com/shopspring/decimal"
)

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.JournalLine
		want  bool
	}{
		{
			name:  "empty line list is balanced",
			lines: nil,
			want:  true,
		},
		{
			name: "all-zero lines are balanced",
			lines: []models.JournalLine{
				{KodeRek: "1.1.1.01"},
				{KodeRek: "4.1.1.01"},
			},
			want: true,
		},
		{
			name: "equal totals",
			lines: []models.JournalLine{
				{KodeRek: "1.1.1.01", Debet: idr(15000000)},
				{KodeRek: "4.1.1.01", Kredit: idr(15000000)},
			},
			want: true,
		},
		{
			name: "unequal totals",
			lines: []models.JournalLine{
				{KodeRek: "1.1.1.01", Debet: idr(15000000)},
				{KodeRek: "4.1.1.01", Kredit: idr(14000000)},
			},
			want: false,
		},
		{
			name: "balanced across multiple lines",
			lines: []models.JournalLine{
				{KodeRek: "1.1.1.01", Debet: idr(10000000)},
				{KodeRek: "1.1.2.01", Debet: idr(5000000)},
				{KodeRek: "4.1.1.01", Kredit: idr(15000000)},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBalanced(tt.lines); got != tt.want {
				t.Errorf("IsBalanced() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBalancedExactComparison(t *testing.T) {
	debet, _ := decimal.NewFromString("0.3")
	k1, _ := decimal.NewFromString("0.1")
	k2, _ := decimal.NewFromString("0.2")

	lines := []models.JournalLine{
		{KodeRek: "1.1.1.01", Debet: debet},
		{KodeRek: "4.1.1.01", Kredit: k1},
		{KodeRek: "4.1.1.02", Kredit: k2},
	}

	if !IsBalanced(lines) {
		t.Error("0.3 debet vs 0.1 + 0.2 kredit should balance exactly")
	}
}

func TestBuildLines(t *testing.T) {
	reqs := []models.JournalLineRequest{
		{KodeRek: "1.1.1.01", Keterangan: "Penerimaan", Debet: idr(1000)},
		{KodeRek: "4.1.1.01", Keterangan: "Pendapatan", Kredit: idr(1000)},
	}

	lines, err := buildLines(reqs)
	if err != nil {
		t.Fatalf("buildLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].KodeRek != "1.1.1.01" || !lines[0].Debet.Equal(idr(1000)) {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
}

func TestBuildLinesRejectsEmpty(t *testing.T) {
	if _, err := buildLines(nil); err == nil {
		t.Error("empty line list should be rejected")
	}
}

func TestBuildLinesRejectsMissingAccount(t *testing.T) {
	reqs := []models.JournalLineRequest{
		{KodeRek: "", Debet: idr(1000)},
	}
	if _, err := buildLines(reqs); err == nil {
		t.Error("line without kode_rek should be rejected")
	}
}

func TestBuildLinesRejectsNegativeAmounts(t *testing.T) {
	reqs := []models.JournalLineRequest{
		{KodeRek: "1.1.1.01", Debet: idr(-500)},
	}
	if _, err := buildLines(reqs); err == nil {
		t.Error("negative debet should be rejected")
	}
}
