package tracker

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/SimonSchneider/goslu/date"
	"github.com/SimonSchneider/goslu/sid"
	"github.com/rs/zerolog"

	"github.com/cloud-ru/loan-goals-go/internal/metrics"
	"github.com/cloud-ru/loan-goals-go/internal/storage"
)

// DefaultKey имя слота с транзакциями
const DefaultKey = "qazinv_transactions"

const idLength = 15

// LoadReport итог чтения слота
type LoadReport struct {
	Loaded  int  `json:"loaded"`
	Dropped int  `json:"dropped"`
	Corrupt bool `json:"corrupt"`
}

// Ledger журнал транзакций, целиком хранящийся в одном слоте
type Ledger struct {
	mu     sync.Mutex
	slot   storage.Slot
	key    string
	txs    []Transaction
	report LoadReport
	log    zerolog.Logger
	today  func() date.Date
}

// Open читает журнал из слота. Некорректные записи отбрасываются.
func Open(slot storage.Slot, key string, log zerolog.Logger) (*Ledger, error) {
	if key == "" {
		key = DefaultKey
	}
	l := &Ledger{slot: slot, key: key, log: log, today: date.Today}

	data, _, err := slot.Get(key)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать транзакции: %w", err)
	}
	l.txs, l.report = decode(data)
	if l.report.Corrupt {
		l.log.Warn().Str("slot", key).Msg("содержимое слота повреждено, журнал пуст")
	}
	if l.report.Dropped > 0 {
		metrics.DroppedRecords.WithLabelValues(key).Add(float64(l.report.Dropped))
		l.log.Warn().Str("slot", key).Int("dropped", l.report.Dropped).Msg("отброшены некорректные транзакции")
	}
	return l, nil
}

// LastLoad итог загрузки
func (l *Ledger) LastLoad() LoadReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.report
}

// All копия журнала в порядке добавления
func (l *Ledger) All() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Transaction(nil), l.txs...)
}

// Add проверяет и сохраняет транзакцию. Пустая дата означает сегодня.
func (l *Ledger) Add(t Transaction) (Transaction, error) {
	if t.Date == "" {
		t.Date = l.today().String()
	}
	if err := validate(&t); err != nil {
		return Transaction{}, err
	}
	t.ID = sid.MustNewString(idLength)

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]Transaction, 0, len(l.txs)+1)
	next = append(next, l.txs...)
	next = append(next, t)
	if err := l.commitLocked(next); err != nil {
		return Transaction{}, err
	}
	l.log.Debug().Str("tx_id", t.ID).Str("type", string(t.Kind)).Float64("amount", t.Amount).Msg("транзакция добавлена")
	return t, nil
}

// Delete удаляет транзакцию; false, если ее нет
func (l *Ledger) Delete(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]Transaction, 0, len(l.txs))
	for _, t := range l.txs {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(l.txs) {
		return false, nil
	}
	if err := l.commitLocked(next); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Ledger) commitLocked(next []Transaction) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать транзакции: %w", err)
	}
	if err := l.slot.Set(l.key, data); err != nil {
		return fmt.Errorf("не удалось сохранить транзакции: %w", err)
	}
	l.txs = next
	return nil
}

func decode(data []byte) ([]Transaction, LoadReport) {
	var report LoadReport
	if len(data) == 0 {
		return nil, report
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		report.Corrupt = true
		return nil, report
	}

	txs := make([]Transaction, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		var t Transaction
		if err := json.Unmarshal(item, &t); err != nil || t.ID == "" || validate(&t) != nil {
			report.Dropped++
			continue
		}
		if _, dup := seen[t.ID]; dup {
			report.Dropped++
			continue
		}
		seen[t.ID] = struct{}{}
		txs = append(txs, t)
	}
	report.Loaded = len(txs)
	return txs, report
}
