package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cloud-ru/loan-goals-go/internal/config"
)

// Slot хранилище сырых байтов по имени слота.
// Запись всегда полностью перезаписывает содержимое слота.
type Slot interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Closer реализуют хранилища, держащие соединение или файл
type Closer interface {
	Close() error
}

// Open создает хранилище, выбранное в конфигурации
func Open(ctx context.Context, cfg *config.Config) (Slot, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageFile:
		return NewFile(cfg.StoragePath)
	case config.StorageSQLite:
		return NewSQLite(ctx, filepath.Join(cfg.StoragePath, "loangoals.db"))
	case config.StorageRedis:
		return NewRedis(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("неизвестное хранилище %q", cfg.StorageBackend)
	}
}

// Close закрывает хранилище, если ему есть что закрывать
func Close(s Slot) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
