package tracker

import (
	"errors"
	"testing"

	"github.com/SimonSchneider/goslu/date"
	"github.com/rs/zerolog"

	"github.com/cloud-ru/loan-goals-go/internal/storage"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func openLedger(t *testing.T, slot storage.Slot) *Ledger {
	t.Helper()
	l, err := Open(slot, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return l
}

func TestLedgerAdd(t *testing.T) {
	slot := storage.NewMemory()
	l := openLedger(t, slot)

	tx, err := l.Add(Transaction{Name: " Зарплата ", Amount: 500_000, Kind: KindIncome, Date: "2026-09-05"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(tx.ID) != idLength {
		t.Errorf("expected id of length %d, got %q", idLength, tx.ID)
	}
	if tx.Name != "Зарплата" || tx.Category != CategoryOther {
		t.Errorf("expected trimmed name and default category, got %+v", tx)
	}

	reopened := openLedger(t, slot)
	all := reopened.All()
	if len(all) != 1 || all[0] != tx {
		t.Errorf("expected %+v after reload, got %+v", tx, all)
	}
}

func TestLedgerAddDefaultsToToday(t *testing.T) {
	l := openLedger(t, storage.NewMemory())
	l.today = func() date.Date { return Must(date.ParseDate("2026-10-17")) }

	tx := Must(l.Add(Transaction{Name: "Кофе", Amount: 1_200, Kind: KindExpense, Category: CategoryFood}))
	if tx.Date != "2026-10-17" {
		t.Errorf("expected today's date, got %q", tx.Date)
	}
}

func TestLedgerAddValidation(t *testing.T) {
	l := openLedger(t, storage.NewMemory())

	tests := []struct {
		name string
		tx   Transaction
	}{
		{name: "empty name", tx: Transaction{Amount: 1, Kind: KindIncome, Date: "2026-01-01"}},
		{name: "zero amount", tx: Transaction{Name: "x", Kind: KindIncome, Date: "2026-01-01"}},
		{name: "negative amount", tx: Transaction{Name: "x", Amount: -3, Kind: KindExpense, Date: "2026-01-01"}},
		{name: "unknown kind", tx: Transaction{Name: "x", Amount: 1, Kind: "gift", Date: "2026-01-01"}},
		{name: "bad date", tx: Transaction{Name: "x", Amount: 1, Kind: KindIncome, Date: "01.01.2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Add(tt.tx); !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("expected ErrInvalidTransaction, got %v", err)
			}
		})
	}
	if n := len(l.All()); n != 0 {
		t.Errorf("expected empty ledger, got %d", n)
	}
}

func TestLedgerDelete(t *testing.T) {
	l := openLedger(t, storage.NewMemory())
	a := Must(l.Add(Transaction{Name: "A", Amount: 1, Kind: KindIncome, Date: "2026-01-01"}))
	b := Must(l.Add(Transaction{Name: "B", Amount: 2, Kind: KindIncome, Date: "2026-01-02"}))

	ok, err := l.Delete(a.ID)
	if err != nil || !ok {
		t.Fatalf("Delete() ok=%v err=%v", ok, err)
	}
	if all := l.All(); len(all) != 1 || all[0].ID != b.ID {
		t.Errorf("unexpected ledger %+v", all)
	}
	if ok, _ := l.Delete(a.ID); ok {
		t.Error("second Delete() should report not found")
	}
}

func TestLedgerTolerantLoad(t *testing.T) {
	slot := storage.NewMemory()
	slot.Data[DefaultKey] = []byte(`[
		{"id":"1","name":"Зарплата","amount":500000,"category":"salary","type":"income","date":"2026-09-05"},
		{"id":"2","name":"Свет","amount":-10,"category":"utilities","type":"expense","date":"2026-09-06"},
		{"id":"3","name":"Связь","amount":5000,"category":"telecom","type":"expense"},
		{"name":"Без id","amount":5000,"category":"telecom","type":"expense","date":"2026-09-06"},
		{"id":"1","name":"Дубль","amount":1,"type":"income","date":"2026-09-06"},
		"oops"
	]`)

	l := openLedger(t, slot)
	if n := len(l.All()); n != 1 {
		t.Errorf("expected 1 transaction, got %d", n)
	}
	if r := l.LastLoad(); r.Loaded != 1 || r.Dropped != 5 || r.Corrupt {
		t.Errorf("unexpected report %+v", r)
	}

	slot.Data[DefaultKey] = []byte("{broken")
	if r := openLedger(t, slot).LastLoad(); !r.Corrupt {
		t.Errorf("expected corrupt report, got %+v", r)
	}
}
