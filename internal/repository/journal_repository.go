package repository

import (
	"fmt"
	"time"

	"sikeu-web/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type JournalFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type JournalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func buildJournalWhere(filter JournalFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.StartDate != nil {
		where = "WHERE j.tanggal >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		if where == "" {
			where = "WHERE j.tanggal <= ?"
		} else {
			where += " AND j.tanggal <= ?"
		}
		args = append(args, *filter.EndDate)
	}
	return where, args
}

func (r *JournalRepository) FindAll(limit, offset int, filter JournalFilter) ([]models.JournalHeader, int, error) {
	var headers []models.JournalHeader
	var total int

	where, args := buildJournalWhere(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jurnalumum j %s", where)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT j.* FROM jurnalumum j %s ORDER BY j.id_jurnal DESC LIMIT ? OFFSET ?", where)
	args = append(args, limit, offset)
	err = r.db.Select(&headers, query, args...)
	if err != nil {
		return nil, 0, err
	}

	// Attach lines per header. Page sizes are small so the extra queries
	// stay bounded.
	for i := range headers {
		lines, err := r.FindLines(headers[i].ID)
		if err != nil {
			return nil, 0, err
		}
		headers[i].Lines = lines
	}

	return headers, total, nil
}

func (r *JournalRepository) FindByID(id string) (*models.JournalHeader, error) {
	var header models.JournalHeader
	query := "SELECT * FROM jurnalumum WHERE id_jurnal = ? LIMIT 1"
	err := r.db.Get(&header, query, id)
	if err != nil {
		return nil, err
	}

	lines, err := r.FindLines(id)
	if err != nil {
		return nil, err
	}
	header.Lines = lines

	return &header, nil
}

func (r *JournalRepository) FindLines(journalID string) ([]models.JournalLine, error) {
	var lines []models.JournalLine
	query := `SELECT l.*, COALESCE(m.nama_rekening, '') as nama_rekening
	          FROM jurnal l
	          LEFT JOIN m_rekening m ON m.kode_rek = l.kode_rek
	          WHERE l.id_jurnal = ?
	          ORDER BY l.id`
	err := r.db.Select(&lines, query, journalID)
	return lines, err
}

// GetAllLines returns every journal line in the given window, flat. Used by
// the balance engine, which groups by account code in a single pass.
func (r *JournalRepository) GetAllLines(filter JournalFilter) ([]models.JournalLine, error) {
	var lines []models.JournalLine
	where, args := buildJournalWhere(filter)
	query := fmt.Sprintf(`SELECT l.*, '' as nama_rekening
	          FROM jurnal l
	          INNER JOIN jurnalumum j ON j.id_jurnal = l.id_jurnal
	          %s
	          ORDER BY l.id`, where)
	err := r.db.Select(&lines, query, args...)
	return lines, err
}

// SumsForAccount returns the debit and credit totals booked against one account.
func (r *JournalRepository) SumsForAccount(kodeRek string) (models.JournalAggregate, error) {
	row := struct {
		Debet  decimal.Decimal `db:"debet"`
		Kredit decimal.Decimal `db:"kredit"`
	}{}
	query := `SELECT COALESCE(SUM(debet), 0) as debet, COALESCE(SUM(kredit), 0) as kredit
	          FROM jurnal WHERE kode_rek = ?`
	err := r.db.Get(&row, query, kodeRek)
	if err != nil {
		return models.JournalAggregate{}, err
	}
	return models.JournalAggregate{Debet: row.Debet, Kredit: row.Kredit}, nil
}

// Create inserts the header and its lines in one transaction.
func (r *JournalRepository) Create(header *models.JournalHeader) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headerQuery := `INSERT INTO jurnalumum (id_jurnal, tanggal, bidang, kode_jenis_jurnal, author)
	                VALUES (:id_jurnal, :tanggal, :bidang, :kode_jenis_jurnal, :author)`
	if _, err := tx.NamedExec(headerQuery, header); err != nil {
		return err
	}

	if err := insertLines(tx, header.ID, header.Lines); err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites the header and replaces the full line set. Lines are never
// patched individually.
func (r *JournalRepository) Update(header *models.JournalHeader) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headerQuery := `UPDATE jurnalumum SET tanggal = :tanggal, bidang = :bidang,
	                kode_jenis_jurnal = :kode_jenis_jurnal, author = :author
	                WHERE id_jurnal = :id_jurnal`
	if _, err := tx.NamedExec(headerQuery, header); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM jurnal WHERE id_jurnal = ?", header.ID); err != nil {
		return err
	}

	if err := insertLines(tx, header.ID, header.Lines); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *JournalRepository) Delete(id string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM jurnal WHERE id_jurnal = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM jurnalumum WHERE id_jurnal = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *JournalRepository) Count() (int, error) {
	var total int
	err := r.db.Get(&total, "SELECT COUNT(*) FROM jurnalumum")
	return total, err
}

func insertLines(tx *sqlx.Tx, journalID string, lines []models.JournalLine) error {
	lineQuery := `INSERT INTO jurnal (id_jurnal, kode_rek, keterangan, debet, kredit)
	              VALUES (:id_jurnal, :kode_rek, :keterangan, :debet, :kredit)`
	for i := range lines {
		lines[i].JournalID = journalID
		if _, err := tx.NamedExec(lineQuery, lines[i]); err != nil {
			return err
		}
	}
	return nil
}
