package repository

import (
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// SequenceRepository backs the document number generator with a per-day
// counter table:
//
//	CREATE TABLE document_sequences (
//	    prefix   VARCHAR(2)  NOT NULL,
//	    date_key CHAR(8)     NOT NULL,
//	    seq      INT         NOT NULL,
//	    PRIMARY KEY (prefix, date_key)
//	)
//
// The increment happens inside a single statement, so two concurrent
// creations can never observe the same counter value.
type SequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// NextValue atomically increments and returns the counter for
// (prefix, dateKey). A fresh (prefix, dateKey) pair starts at 1.
func (r *SequenceRepository) NextValue(prefix, dateKey string) (int, error) {
	query := `INSERT INTO document_sequences (prefix, date_key, seq)
	          VALUES (?, ?, LAST_INSERT_ID(1))
	          ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)`
	result, err := r.db.Exec(query, prefix, dateKey)
	if err != nil {
		return 0, err
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(seq), nil
}

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation
// (error 1062), e.g. a document number that already exists.
func IsDuplicateEntry(err error) bool {
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	return false
}
