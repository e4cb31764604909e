package repository

import (
	"fmt"
	"time"

	"sikeu-web/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// CashFilter narrows cash ledger listings. Zero values mean "no filter".
type CashFilter struct {
	KodeRek   string
	StartDate *time.Time
	EndDate   *time.Time
}

type CashRepository struct {
	db *sqlx.DB
}

func NewCashRepository(db *sqlx.DB) *CashRepository {
	return &CashRepository{db: db}
}

func buildCashWhere(filter CashFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	if filter.KodeRek != "" {
		clauses = append(clauses, "k.kode_rek = ?")
		args = append(args, filter.KodeRek)
	}
	if filter.StartDate != nil {
		clauses = append(clauses, "k.tanggal >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		clauses = append(clauses, "k.tanggal <= ?")
		args = append(args, *filter.EndDate)
	}

	where := ""
	for i, clause := range clauses {
		if i == 0 {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	return where, args
}

// Receipts (kasmasuk)

func (r *CashRepository) FindReceipts(limit, offset int, filter CashFilter) ([]models.CashReceipt, int, error) {
	var receipts []models.CashReceipt
	var total int

	where, args := buildCashWhere(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM kasmasuk k %s", where)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	// Enrich with the account name so the list view needs no extra lookup
	query := fmt.Sprintf(`
		SELECT k.*, COALESCE(m.nama_rekening, '') as nama_rekening
		FROM kasmasuk k
		LEFT JOIN m_rekening m ON m.kode_rek = k.kode_rek
		%s
		ORDER BY k.id_kasmasuk DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, limit, offset)
	err = r.db.Select(&receipts, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return receipts, total, nil
}

func (r *CashRepository) FindReceiptByID(id string) (*models.CashReceipt, error) {
	var receipt models.CashReceipt
	query := `SELECT k.*, COALESCE(m.nama_rekening, '') as nama_rekening
	          FROM kasmasuk k
	          LEFT JOIN m_rekening m ON m.kode_rek = k.kode_rek
	          WHERE k.id_kasmasuk = ? LIMIT 1`
	err := r.db.Get(&receipt, query, id)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *CashRepository) CreateReceipt(receipt *models.CashReceipt) error {
	query := `INSERT INTO kasmasuk (id_kasmasuk, tanggal, kode_rek, jumlah, terima_dari, keterangan, no_cek, bidang, author)
	          VALUES (:id_kasmasuk, :tanggal, :kode_rek, :jumlah, :terima_dari, :keterangan, :no_cek, :bidang, :author)`
	_, err := r.db.NamedExec(query, receipt)
	return err
}

func (r *CashRepository) UpdateReceipt(receipt *models.CashReceipt) error {
	// id_kasmasuk is immutable once issued
	query := `UPDATE kasmasuk SET tanggal = :tanggal, kode_rek = :kode_rek, jumlah = :jumlah,
	          terima_dari = :terima_dari, keterangan = :keterangan, no_cek = :no_cek,
	          bidang = :bidang, author = :author
	          WHERE id_kasmasuk = :id_kasmasuk`
	_, err := r.db.NamedExec(query, receipt)
	return err
}

func (r *CashRepository) DeleteReceipt(id string) error {
	_, err := r.db.Exec("DELETE FROM kasmasuk WHERE id_kasmasuk = ?", id)
	return err
}

func (r *CashRepository) GetAllReceipts(filter CashFilter) ([]models.CashReceipt, error) {
	var receipts []models.CashReceipt
	where, args := buildCashWhere(filter)
	query := fmt.Sprintf("SELECT k.*, '' as nama_rekening FROM kasmasuk k %s ORDER BY k.id_kasmasuk", where)
	err := r.db.Select(&receipts, query, args...)
	return receipts, err
}

func (r *CashRepository) SumReceipts(filter CashFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	where, args := buildCashWhere(filter)
	query := fmt.Sprintf("SELECT COALESCE(SUM(k.jumlah), 0) FROM kasmasuk k %s", where)
	err := r.db.Get(&total, query, args...)
	return total, err
}

// Disbursements (kaskeluar)

func (r *CashRepository) FindDisbursements(limit, offset int, filter CashFilter) ([]models.CashDisbursement, int, error) {
	var disbursements []models.CashDisbursement
	var total int

	where, args := buildCashWhere(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM kaskeluar k %s", where)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT k.*, COALESCE(m.nama_rekening, '') as nama_rekening
		FROM kaskeluar k
		LEFT JOIN m_rekening m ON m.kode_rek = k.kode_rek
		%s
		ORDER BY k.id_kaskeluar DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, limit, offset)
	err = r.db.Select(&disbursements, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return disbursements, total, nil
}

func (r *CashRepository) FindDisbursementByID(id string) (*models.CashDisbursement, error) {
	var disbursement models.CashDisbursement
	query := `SELECT k.*, COALESCE(m.nama_rekening, '') as nama_rekening
	          FROM kaskeluar k
	          LEFT JOIN m_rekening m ON m.kode_rek = k.kode_rek
	          WHERE k.id_kaskeluar = ? LIMIT 1`
	err := r.db.Get(&disbursement, query, id)
	if err != nil {
		return nil, err
	}
	return &disbursement, nil
}

func (r *CashRepository) CreateDisbursement(disbursement *models.CashDisbursement) error {
	query := `INSERT INTO kaskeluar (id_kaskeluar, tanggal, kode_rek, jumlah, dibayar_ke, keterangan, no_cek, bidang, author)
	          VALUES (:id_kaskeluar, :tanggal, :kode_rek, :jumlah, :dibayar_ke, :keterangan, :no_cek, :bidang, :author)`
	_, err := r.db.NamedExec(query, disbursement)
	return err
}

func (r *CashRepository) UpdateDisbursement(disbursement *models.CashDisbursement) error {
	query := `UPDATE kaskeluar SET tanggal = :tanggal, kode_rek = :kode_rek, jumlah = :jumlah,
	          dibayar_ke = :dibayar_ke, keterangan = :keterangan, no_cek = :no_cek,
	          bidang = :bidang, author = :author
	          WHERE id_kaskeluar = :id_kaskeluar`
	_, err := r.db.NamedExec(query, disbursement)
	return err
}

func (r *CashRepository) DeleteDisbursement(id string) error {
	_, err := r.db.Exec("DELETE FROM kaskeluar WHERE id_kaskeluar = ?", id)
	return err
}

func (r *CashRepository) GetAllDisbursements(filter CashFilter) ([]models.CashDisbursement, error) {
	var disbursements []models.CashDisbursement
	where, args := buildCashWhere(filter)
	query := fmt.Sprintf("SELECT k.*, '' as nama_rekening FROM kaskeluar k %s ORDER BY k.id_kaskeluar", where)
	err := r.db.Select(&disbursements, query, args...)
	return disbursements, err
}

func (r *CashRepository) SumDisbursements(filter CashFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	where, args := buildCashWhere(filter)
	query := fmt.Sprintf("SELECT COALESCE(SUM(k.jumlah), 0) FROM kaskeluar k %s", where)
	err := r.db.Get(&total, query, args...)
	return total, err
}
