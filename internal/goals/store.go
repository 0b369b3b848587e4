package goals

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cloud-ru/loan-goals-go/internal/metrics"
	"github.com/cloud-ru/loan-goals-go/internal/storage"
	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// DefaultKey имя слота с целями
const DefaultKey = "qazinv_goals"

// Listener вызывается синхронно после каждого сохраненного изменения
type Listener func()

// Store владеет всеми целями: держит их в памяти и целиком перезаписывает
// слот хранилища при каждом изменении.
type Store struct {
	mu        sync.Mutex
	slot      storage.Slot
	key       string
	goals     []Goal
	report    LoadReport
	listeners map[uint64]Listener
	nextSub   uint64

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

// Option настраивает Store
type Option func(*Store)

// WithKey задает имя слота
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger задает логгер
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open загружает цели из слота. Испорченное содержимое не является ошибкой:
// хранилище начинает с пустого списка, а отброшенные записи видны в LoadReport.
// Ошибка возвращается только если само хранилище недоступно.
func Open(slot storage.Slot, opts ...Option) (*Store, error) {
	s := &Store{
		slot:      slot,
		key:       DefaultKey,
		listeners: make(map[uint64]Listener),
		now:       time.Now,
		newID:     uuid.NewString,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload перечитывает слот, заменяя состояние в памяти
func (s *Store) Reload() (LoadReport, error) {
	data, _, err := s.slot.Get(s.key)
	if err != nil {
		return LoadReport{}, fmt.Errorf("не удалось прочитать цели: %w", err)
	}

	goals, report := decodeGoals(data)
	if report.Corrupt {
		s.log.Warn().Str("slot", s.key).Msg("содержимое слота повреждено, список целей пуст")
	}
	if report.Dropped > 0 {
		metrics.DroppedRecords.WithLabelValues(s.key).Add(float64(report.Dropped))
		s.log.Warn().Str("slot", s.key).Int("dropped", report.Dropped).Msg("отброшены некорректные цели")
	}

	s.mu.Lock()
	s.goals = goals
	s.report = report
	s.mu.Unlock()

	return report, nil
}

// LastLoad возвращает итог последней загрузки
func (s *Store) LastLoad() LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Subscribe регистрирует подписчика и возвращает функцию отписки
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// GetAll возвращает копию всех целей в порядке создания
func (s *Store) GetAll() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.clone()
	}
	return out
}

// GetByID ищет цель по идентификатору
func (s *Store) GetByID(id string) (Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.goals[i].clone(), true
	}
	return Goal{}, false
}

// Active цели, которые еще не достигнуты
func (s *Store) Active() []Goal {
	return s.filter(func(g Goal) bool { return !g.IsCompleted() })
}

// Completed достигнутые цели
func (s *Store) Completed() []Goal {
	return s.filter(Goal.IsCompleted)
}

func (s *Store) filter(keep func(Goal) bool) []Goal {
	var out []Goal
	for _, g := range s.GetAll() {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

// Add создает цель с новым идентификатором
func (s *Store) Add(d Draft) (Goal, error) {
	s.mu.Lock()
	g, err := s.addLocked(d)
	s.mu.Unlock()
	if err != nil {
		return Goal{}, err
	}

	s.notify()
	return g, nil
}

// Update применяет частичное обновление. ok=false, если цели нет.
func (s *Store) Update(id string, p Patch) (g Goal, ok bool, err error) {
	s.mu.Lock()
	g, ok, err = s.updateLocked(id, p)
	s.mu.Unlock()
	if err != nil || !ok {
		return g, ok, err
	}

	s.notify()
	return g, true, nil
}

// Delete удаляет цель. false, если цели нет.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}

	next := make([]Goal, 0, len(s.goals)-1)
	next = append(next, s.goals[:i]...)
	next = append(next, s.goals[i+1:]...)
	err := s.commitLocked(next)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	s.log.Debug().Str("goal_id", id).Msg("цель удалена")
	s.notify()
	return true, nil
}

// AddAmount пополняет цель: новая сумма min(текущая + amount, целевая), не меньше нуля
func (s *Store) AddAmount(id string, amount float64) (Goal, bool, error) {
	if !utils.IsFinite(amount) {
		return Goal{}, false, fmt.Errorf("%w: сумма пополнения не является числом", ErrInvalidGoal)
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return Goal{}, false, nil
	}
	current := s.goals[i]
	next := utils.Clamp(current.CurrentAmount+amount, 0, current.TargetAmount)
	g, ok, err := s.updateLocked(id, Patch{CurrentAmount: &next})
	s.mu.Unlock()
	if err != nil {
		return Goal{}, false, err
	}

	s.notify()
	return g, ok, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) addLocked(d Draft) (Goal, error) {
	now := s.now().UTC()
	g, err := fromDraft(d, now)
	if err != nil {
		return Goal{}, err
	}
	g.ID = s.newID()
	g.CreatedAt = now
	g.UpdatedAt = now

	next := make([]Goal, 0, len(s.goals)+1)
	next = append(next, s.goals...)
	next = append(next, g)
	if err := s.commitLocked(next); err != nil {
		return Goal{}, err
	}

	s.log.Debug().Str("goal_id", g.ID).Str("type", string(g.Type)).Msg("цель создана")
	return g.clone(), nil
}

func (s *Store) updateLocked(id string, p Patch) (Goal, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Goal{}, false, nil
	}

	g := s.goals[i].clone()
	p.apply(&g)
	if err := validate(&g); err != nil {
		return Goal{}, false, err
	}
	g.UpdatedAt = s.now().UTC()

	next := make([]Goal, len(s.goals))
	copy(next, s.goals)
	next[i] = g
	if err := s.commitLocked(next); err != nil {
		return Goal{}, false, err
	}

	s.log.Debug().Str("goal_id", id).Float64("current_amount", g.CurrentAmount).Msg("цель обновлена")
	return g.clone(), true, nil
}

// commitLocked сохраняет новый список целиком; при ошибке записи состояние не меняется
func (s *Store) commitLocked(next []Goal) error {
	data, err := encodeGoals(next)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать цели: %w", err)
	}
	if err := s.slot.Set(s.key, data); err != nil {
		return fmt.Errorf("не удалось сохранить цели: %w", err)
	}
	s.goals = next
	return nil
}

// notify вызывает подписчиков вне блокировки; паника одного не мешает остальным
func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		s.callListener(l)
	}
}

func (s *Store) callListener(l Listener) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ListenerPanics.Inc()
			s.log.Error().Interface("panic", r).Msg("подписчик хранилища целей завершился паникой")
		}
	}()
	l()
}
