package repository

import (
	"sikeu-web/internal/models"

	"github.com/jmoiron/sqlx"
)

type BudgetRepository struct {
	db *sqlx.DB
}

func NewBudgetRepository(db *sqlx.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) FindByYear(year int) ([]models.Budget, error) {
	var budgets []models.Budget
	query := `SELECT a.*, COALESCE(m.nama_rekening, '') as nama_rekening
	          FROM anggaran a
	          LEFT JOIN m_rekening m ON m.kode_rek = a.kode_rek
	          WHERE a.tahun = ?
	          ORDER BY a.kode_rek`
	err := r.db.Select(&budgets, query, year)
	return budgets, err
}

func (r *BudgetRepository) Find(kodeRek string, year int) (*models.Budget, error) {
	var budget models.Budget
	query := `SELECT a.*, COALESCE(m.nama_rekening, '') as nama_rekening
	          FROM anggaran a
	          LEFT JOIN m_rekening m ON m.kode_rek = a.kode_rek
	          WHERE a.kode_rek = ? AND a.tahun = ?
	          LIMIT 1`
	err := r.db.Get(&budget, query, kodeRek, year)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Upsert writes the budget row for (kode_rek, tahun), overwriting any
// existing amount and flags.
func (r *BudgetRepository) Upsert(budget *models.Budget) error {
	query := `INSERT INTO anggaran (kode_rek, tahun, jumlah, aktif, validasi_realisasi, author)
	          VALUES (:kode_rek, :tahun, :jumlah, :aktif, :validasi_realisasi, :author)
	          ON DUPLICATE KEY UPDATE
	          jumlah = VALUES(jumlah),
	          aktif = VALUES(aktif),
	          validasi_realisasi = VALUES(validasi_realisasi),
	          author = VALUES(author)`
	_, err := r.db.NamedExec(query, budget)
	return err
}

func (r *BudgetRepository) Delete(kodeRek string, year int) error {
	_, err := r.db.Exec("DELETE FROM anggaran WHERE kode_rek = ? AND tahun = ?", kodeRek, year)
	return err
}
