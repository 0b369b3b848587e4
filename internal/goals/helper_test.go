package goals

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cloud-ru/loan-goals-go/internal/storage"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("goal-%d", n)
	}
}

func newTestStore(t *testing.T, slot storage.Slot) *Store {
	t.Helper()
	s, err := Open(slot, WithClock(func() time.Time { return testNow }), WithIDGenerator(sequentialIDs()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ptr[T any](v T) *T { return &v }

// failingSlot отказывает в записи, пока fail=true
type failingSlot struct {
	*storage.Memory
	fail bool
}

func (f *failingSlot) Set(key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Set(key, value)
}

func manualDraft(name string, target, current float64) Draft {
	return Draft{
		Name:                name,
		TargetAmount:        target,
		CurrentAmount:       current,
		MonthlyContribution: 10_000,
		Deadline:            "2027-12-31",
		Type:                TypeManual,
	}
}
