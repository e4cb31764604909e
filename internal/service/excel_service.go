package service

import (
	"fmt"
	"strconv"
	"strings"

	"sikeu-web/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ExcelService struct{}

func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ExportAccounts writes the chart of accounts to an Excel file
func (s *ExcelService) ExportAccounts(accounts []models.Account, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rekening"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	// Set headers
	headers := []string{
		"Kode Rekening", "Nama Rekening", "Saldo Awal", "Level",
		"Jenis Level", "Kode Induk", "Jenis Laporan",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	// Set header style
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", getColumnName(len(headers)-1)), headerStyle)

	// Write data
	for i, account := range accounts {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), account.KodeRek)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), account.NamaRekening)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), account.SaldoAwal.String())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), account.LevelRek)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), account.JenisLevel)

		kodeInduk := ""
		if account.KodeInduk != nil {
			kodeInduk = *account.KodeInduk
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), kodeInduk)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), account.JenisLaporan)
	}

	// Set column widths
	f.SetColWidth(sheetName, "A", "A", 15)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 15)
	f.SetColWidth(sheetName, "G", "G", 15)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}

// ExportBudgetRealization writes the LRA report to an Excel file
func (s *ExcelService) ExportBudgetRealization(rows []models.BudgetRealizationRow, year int, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("LRA %d", year)
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headers := []string{
		"Kode Rekening", "Nama Rekening", "Anggaran", "Realisasi", "Selisih", "Persentase (%)",
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

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.KodeRek)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.NamaRekening)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.Anggaran.String())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), row.Realisasi.String())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), row.Selisih.String())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), row.Persentase.String())
	}

	f.SetColWidth(sheetName, "A", "A", 15)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "F", 18)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}

// ParseAccountsWithValidation parses a chart-of-accounts Excel file and
// returns a detailed validation result
func (s *ExcelService) ParseAccountsWithValidation(filePath string) (*models.AccountImportResult, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Get first sheet
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("file must contain at least header row and one data row")
	}

	expectedHeaders := []string{
		"Kode Rekening", "Nama Rekening", "Saldo Awal", "Level",
		"Jenis Level", "Kode Induk", "Jenis Laporan",
	}

	header := rows[0]
	if len(header) < len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header format. Expected columns: %v", expectedHeaders)
	}

	result := &models.AccountImportResult{
		ValidAccounts:    []models.Account{},
		ValidationErrors: []models.AccountValidationError{},
		TotalRows:        len(rows) - 1, // Exclude header
	}

	// Process data rows
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		// Skip completely empty rows
		if len(row) == 0 || (len(row) > 0 && row[0] == "") {
			continue
		}

		kodeRek := getStringValue(row, 0)
		namaRekening := getStringValue(row, 1)
		saldoAwalStr := getStringValue(row, 2)
		levelStr := getStringValue(row, 3)
		jenisLevel := getStringValue(row, 4)
		kodeInduk := getStringValue(row, 5)
		jenisLaporan := getStringValue(row, 6)

		rowErrors := s.validateAccountRow(i+1, kodeRek, namaRekening, saldoAwalStr, levelStr)
		if len(rowErrors) > 0 {
			result.ValidationErrors = append(result.ValidationErrors, rowErrors...)
			result.ErrorCount++
			continue
		}

		saldoAwal, _ := decimal.NewFromString(normalizeAmount(saldoAwalStr))
		level, _ := strconv.Atoi(levelStr)

		account := models.Account{
			KodeRek:      kodeRek,
			NamaRekening: namaRekening,
			SaldoAwal:    saldoAwal,
			LevelRek:     level,
			JenisLevel:   jenisLevel,
			JenisLaporan: jenisLaporan,
		}
		if kodeInduk != "" {
			account.KodeInduk = &kodeInduk
		}

		result.ValidAccounts = append(result.ValidAccounts, account)
		result.ValidCount++
	}

	return result, nil
}

// validateAccountRow validates a single account row and returns validation errors
func (s *ExcelService) validateAccountRow(rowNum int, kodeRek, namaRekening, saldoAwalStr, levelStr string) []models.AccountValidationError {
	var errs []models.AccountValidationError

	if kodeRek == "" {
		errs = append(errs, models.AccountValidationError{
			Row:     rowNum,
			Field:   "kode_rek",
			Value:   kodeRek,
			Message: "Kode rekening is required",
		})
	}

	if namaRekening == "" {
		errs = append(errs, models.AccountValidationError{
			Row:     rowNum,
			Field:   "nama_rekening",
			Value:   namaRekening,
			Message: "Nama rekening is required",
		})
	}

	if saldoAwalStr != "" {
		if _, err := decimal.NewFromString(normalizeAmount(saldoAwalStr)); err != nil {
			errs = append(errs, models.AccountValidationError{
				Row:     rowNum,
				Field:   "saldo_awal",
				Value:   saldoAwalStr,
				Message: "Saldo awal must be a number",
			})
		}
	}

	if levelStr != "" {
		if _, err := strconv.Atoi(levelStr); err != nil {
			errs = append(errs, models.AccountValidationError{
				Row:     rowNum,
				Field:   "level_rek",
				Value:   levelStr,
				Message: "Level must be an integer",
			})
		}
	}

	return errs
}

// normalizeAmount strips thousand separators and dashes before decimal parsing
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "0"
	}
	return strings.ReplaceAll(s, ",", "")
}

func getStringValue(row []string, index int) string {
	if index < len(row) {
		return strings.TrimSpace(row[index])
	}
	return ""
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
