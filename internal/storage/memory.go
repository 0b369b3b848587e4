package storage

import "sync"

// Memory хранилище в памяти процесса
type Memory struct {
	mu   sync.RWMutex
	Data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		Data: make(map[string][]byte),
	}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Data[key] = append([]byte(nil), value...)
	return nil
}
