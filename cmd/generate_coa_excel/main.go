package main

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Generates a sample chart-of-accounts Excel file that can be imported
// through POST /api/v1/accounts/import. Column layout must match the
// template produced by the accounts handler.
func main() {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rekening"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		fmt.Printf("Error creating sheet: %v\n", err)
		return
	}

	headers := []string{
		"Kode Rekening", "Nama Rekening", "Saldo Awal", "Level",
		"Jenis Level", "Kode Induk", "Jenis Laporan",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", getColumnName(len(headers)-1)), headerStyle)

	// Standard starter hierarchy. Parent accounts carry no balance of
	// their own, only their children do.
	accounts := [][]interface{}{
		{"1", "ASET", "0", 1, "Induk", "", "NERACA"},
		{"1.1", "Kas dan Setara Kas", "0", 2, "Induk", "1", "NERACA"},
		{"1.1.1", "Kas", "0", 3, "Induk", "1.1", "NERACA"},
		{"1.1.1.01", "Kas Tunai", "25000000", 4, "Detail Kas", "1.1.1", "NERACA"},
		{"1.1.2", "Bank", "0", 3, "Induk", "1.1", "NERACA"},
		{"1.1.2.01", "Bank Operasional", "150000000", 4, "Detail Bank", "1.1.2", "NERACA"},
		{"2", "KEWAJIBAN", "0", 1, "Induk", "", "NERACA"},
		{"2.1", "Kewajiban Jangka Pendek", "0", 2, "Induk", "2", "NERACA"},
		{"2.1.1.01", "Utang Usaha", "0", 4, "Detail", "2.1", "NERACA"},
		{"3", "EKUITAS", "0", 1, "Induk", "", "NERACA"},
		{"3.1.1.01", "Ekuitas Awal", "175000000", 4, "Detail", "3", "NERACA"},
		{"4", "PENDAPATAN", "0", 1, "Induk", "", "LRA"},
		{"4.1", "Pendapatan Operasional", "0", 2, "Induk", "4", "LRA"},
		{"4.1.1.01", "Pendapatan Jasa Layanan", "0", 4, "Detail", "4.1", "LRA"},
		{"4.1.1.02", "Pendapatan Hibah", "0", 4, "Detail", "4.1", "LRA"},
		{"5", "BELANJA", "0", 1, "Induk", "", "LRA"},
		{"5.1", "Belanja Operasional", "0", 2, "Induk", "5", "LRA"},
		{"5.1.1.01", "Belanja Pegawai", "0", 4, "Detail", "5.1", "LRA"},
		{"5.1.1.02", "Belanja Barang dan Jasa", "0", 4, "Detail", "5.1", "LRA"},
		{"5.1.1.03", "Belanja Pemeliharaan", "0", 4, "Detail", "5.1", "LRA"},
	}

	for rowIdx, rowData := range accounts {
		row := rowIdx + 2
		for colIdx, value := range rowData {
			cell := fmt.Sprintf("%s%d", getColumnName(colIdx), row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 15)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 15)
	f.SetColWidth(sheetName, "G", "G", 15)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	outputPath := filepath.Join("storage", "uploads", "rekening_awal.xlsx")
	if err := f.SaveAs(outputPath); err != nil {
		fmt.Printf("Error saving file: %v\n", err)
		return
	}

	fmt.Printf("Chart of accounts file created: %s\n", outputPath)
	fmt.Printf("Total accounts: %d\n", len(accounts))
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
