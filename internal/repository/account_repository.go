package repository

import (
	"fmt"

	"sikeu-web/internal/models"

	"github.com/jmoiron/sqlx"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAll(limit, offset int, search string) ([]models.Account, int, error) {
	var accounts []models.Account
	var total int

	// Build query with search
	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE kode_rek LIKE ? OR nama_rekening LIKE ?"
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	// Get total count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM m_rekening %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT kode_rek,
		       nama_rekening,
		       saldo_awal,
		       level_rek,
		       COALESCE(jenis_level, '') as jenis_level,
		       kode_induk,
		       COALESCE(jenis_laporan, '') as jenis_laporan,
		       created_at,
		       updated_at
		FROM m_rekening %s
		ORDER BY kode_rek
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&accounts, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *AccountRepository) FindByCode(code string) (*models.Account, error) {
	var account models.Account
	query := "SELECT * FROM m_rekening WHERE kode_rek = ? LIMIT 1"
	err := r.db.Get(&account, query, code)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Create(account *models.Account) error {
	query := `INSERT INTO m_rekening (kode_rek, nama_rekening, saldo_awal, level_rek, jenis_level, kode_induk, jenis_laporan)
	          VALUES (:kode_rek, :nama_rekening, :saldo_awal, :level_rek, :jenis_level, :kode_induk, :jenis_laporan)`
	_, err := r.db.NamedExec(query, account)
	return err
}

func (r *AccountRepository) Update(account *models.Account) error {
	query := `UPDATE m_rekening SET nama_rekening = :nama_rekening, saldo_awal = :saldo_awal,
	          level_rek = :level_rek, jenis_level = :jenis_level, kode_induk = :kode_induk,
	          jenis_laporan = :jenis_laporan
	          WHERE kode_rek = :kode_rek`
	_, err := r.db.NamedExec(query, account)
	return err
}

func (r *AccountRepository) Delete(code string) error {
	query := "DELETE FROM m_rekening WHERE kode_rek = ?"
	_, err := r.db.Exec(query, code)
	return err
}

func (r *AccountRepository) BulkInsert(accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	query := `INSERT INTO m_rekening (kode_rek, nama_rekening, saldo_awal, level_rek, jenis_level, kode_induk, jenis_laporan)
	          VALUES (:kode_rek, :nama_rekening, :saldo_awal, :level_rek, :jenis_level, :kode_induk, :jenis_laporan)
	          ON DUPLICATE KEY UPDATE
	          nama_rekening = VALUES(nama_rekening),
	          saldo_awal = VALUES(saldo_awal),
	          level_rek = VALUES(level_rek),
	          jenis_level = VALUES(jenis_level),
	          kode_induk = VALUES(kode_induk),
	          jenis_laporan = VALUES(jenis_laporan)`
	_, err := r.db.NamedExec(query, accounts)
	return err
}

func (r *AccountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	query := `
		SELECT kode_rek,
		       nama_rekening,
		       saldo_awal,
		       level_rek,
		       COALESCE(jenis_level, '') as jenis_level,
		       kode_induk,
		       COALESCE(jenis_laporan, '') as jenis_laporan,
		       created_at,
		       updated_at
		FROM m_rekening
		ORDER BY kode_rek`
	err := r.db.Select(&accounts, query)
	return accounts, err
}

func (r *AccountRepository) Count() (int, error) {
	var total int
	err := r.db.Get(&total, "SELECT COUNT(*) FROM m_rekening")
	return total, err
}
