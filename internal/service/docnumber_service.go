package service

import (
	"errors"
	"fmt"
	"time"
)

// DocumentSeries is the two-letter prefix of a document number.
type DocumentSeries string

const (
	SeriesCashIn  DocumentSeries = "KM" // kas masuk
	SeriesCashOut DocumentSeries = "KK" // kas keluar
	SeriesJournal DocumentSeries = "JU" // jurnal umum
)

// ErrSequenceExhausted means more than 999 documents were issued for one
// series on one day. The trailing counter is fixed at three digits; widening
// it would break every consumer that parses these numbers.
var ErrSequenceExhausted = errors.New("document sequence exhausted for this date")

// SequenceSource yields the next counter value for a (prefix, dateKey) pair.
// It must be atomic: concurrent callers never see the same value.
type SequenceSource interface {
	NextValue(prefix, dateKey string) (int, error)
}

type DocumentNumberService struct {
	sequences SequenceSource
}

func NewDocumentNumberService(sequences SequenceSource) *DocumentNumberService {
	return &DocumentNumberService{sequences: sequences}
}

// Next issues the next document number in the series for the given date,
// e.g. KM20250101003. Counters are per series per day and start at 001.
func (s *DocumentNumberService) Next(series DocumentSeries, date time.Time) (string, error) {
	dateKey := date.Format("20060102")

	seq, err := s.sequences.NextValue(string(series), dateKey)
	if err != nil {
		return "", fmt.Errorf("failed to advance %s sequence: %w", series, err)
	}
	if seq > 999 {
		return "", ErrSequenceExhausted
	}

	return formatDocumentNumber(series, dateKey, seq), nil
}

func formatDocumentNumber(series DocumentSeries, dateKey string, seq int) string {
	return fmt.Sprintf("%s%s%03d", series, dateKey, seq)
}
