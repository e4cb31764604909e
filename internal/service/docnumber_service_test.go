package service

import (
	"errors"
	"testing"
	"time"
)

// fakeSequenceSource keeps per (prefix, dateKey) counters in memory.
type fakeSequenceSource struct {
	counters map[string]int
	err      error
}

func newFakeSequenceSource() *fakeSequenceSource {
	return &fakeSequenceSource{counters: make(map[string]int)}
}

func (f *fakeSequenceSource) NextValue(prefix, dateKey string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	key := prefix + ":" + dateKey
	f.counters[key]++
	return f.counters[key], nil
}

func TestDocumentNumberFormat(t *testing.T) {
	svc := NewDocumentNumberService(newFakeSequenceSource())
	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	id, err := svc.Next(SeriesCashIn, date)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if id != "KM20250101001" {
		t.Errorf("id = %s, want KM20250101001", id)
	}

	id, err = svc.Next(SeriesCashIn, date)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if id != "KM20250101002" {
		t.Errorf("id = %s, want KM20250101002", id)
	}
}

func TestDocumentNumberSeriesAreIndependent(t *testing.T) {
	svc := NewDocumentNumberService(newFakeSequenceSource())
	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)

	if _, err := svc.Next(SeriesCashIn, date); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	id, err := svc.Next(SeriesJournal, date)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if id != "JU20250315001" {
		t.Errorf("id = %s, want JU20250315001 (series counters must not share)", id)
	}
}

func TestDocumentNumberResetsPerDay(t *testing.T) {
	svc := NewDocumentNumberService(newFakeSequenceSource())

	day1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local)

	if _, err := svc.Next(SeriesCashOut, day1); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := svc.Next(SeriesCashOut, day1); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	id, err := svc.Next(SeriesCashOut, day2)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if id != "KK20250102001" {
		t.Errorf("id = %s, want KK20250102001 (counter must reset per day)", id)
	}
}

func TestDocumentNumberSequenceExhausted(t *testing.T) {
	source := newFakeSequenceSource()
	source.counters["JU:20250101"] = 999

	svc := NewDocumentNumberService(source)
	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	_, err := svc.Next(SeriesJournal, date)
	if !errors.Is(err, ErrSequenceExhausted) {
		t.Errorf("err = %v, want ErrSequenceExhausted", err)
	}
}

func TestDocumentNumberLastValidSequence(t *testing.T) {
	source := newFakeSequenceSource()
	source.counters["KM:20250101"] = 998

	svc := NewDocumentNumberService(source)
	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	id, err := svc.Next(SeriesCashIn, date)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if id != "KM20250101999" {
		t.Errorf("id = %s, want KM20250101999", id)
	}
}

func TestDocumentNumberSourceErrorPropagates(t *testing.T) {
	source := newFakeSequenceSource()
	source.err = errors.New("connection refused")

	svc := NewDocumentNumberService(source)

	_, err := svc.Next(SeriesCashIn, time.Now())
	if err == nil {
		t.Fatal("expected error from sequence source")
	}
	if !errors.Is(err, source.err) {
		t.Errorf("err = %v, want wrapped source error", err)
	}
}
