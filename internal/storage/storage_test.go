package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloud-ru/loan-goals-go/internal/config"
)

func checkSlotContract(t *testing.T, s Slot) {
	t.Helper()

	if _, ok, err := s.Get("qazinv_goals"); err != nil || ok {
		t.Fatalf("empty slot: ok=%v err=%v", ok, err)
	}

	first := []byte(`[{"id":"a"}]`)
	if err := s.Set("qazinv_goals", first); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := s.Get("qazinv_goals")
	if err != nil || !ok {
		t.Fatalf("Get() ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("Get() = %s, want %s", got, first)
	}

	second := []byte(`[]`)
	if err := s.Set("qazinv_goals", second); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _, _ = s.Get("qazinv_goals")
	if !bytes.Equal(got, second) {
		t.Errorf("slot must be fully rewritten, got %s", got)
	}

	if _, ok, _ := s.Get("qazinv_transactions"); ok {
		t.Error("slots must be independent")
	}
}

func TestMemory(t *testing.T) {
	checkSlotContract(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	value := []byte("abc")
	_ = m.Set("k", value)
	value[0] = 'x'

	got, _, _ := m.Get("k")
	if string(got) != "abc" {
		t.Errorf("stored value was aliased: %s", got)
	}
}

func TestFile(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nested"))
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	checkSlotContract(t, f)
}

func TestFileRejectsPathKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if err := f.Set("../escape", []byte("x")); err == nil {
		t.Error("expected error for key with path separators")
	}
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "slots.db"))
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	checkSlotContract(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")
	ctx := context.Background()

	s, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	if err := s.Set("qazinv_goals", []byte(`[1]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.Close()

	reopened, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("qazinv_goals")
	if err != nil || !ok || string(got) != `[1]` {
		t.Errorf("after reopen: %s ok=%v err=%v", got, ok, err)
	}
}

func TestRedisUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedis(ctx, "127.0.0.1:1"); err == nil {
		t.Error("expected error for unreachable redis")
	}
}

func TestOpen(t *testing.T) {
	cfg := config.Default()
	cfg.StoragePath = t.TempDir()

	for _, backend := range []string{config.StorageMemory, config.StorageFile, config.StorageSQLite} {
		cfg.StorageBackend = backend
		s, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", backend, err)
		}
		checkSlotContract(t, s)
		if err := Close(s); err != nil {
			t.Errorf("Close(%s) error = %v", backend, err)
		}
	}

	cfg.StorageBackend = "tape"
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSQLiteOpenFailure(t *testing.T) {
	// путь указывает на каталог, а не на файл базы
	_, err := NewSQLite(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error when the database path is a directory")
	}
	if !strings.Contains(err.Error(), "не удалось") {
		t.Errorf("unexpected error message: %v", err)
	}
}
