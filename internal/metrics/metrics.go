package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов кредита
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_calculations_total",
			Help: "Количество расчетов кредита",
		},
		[]string{"method", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"operation", "error_type"},
	)

	// GoalOperations счетчик операций с целями
	GoalOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_operations_total",
			Help: "Операции с целями",
		},
		[]string{"operation", "status"},
	)

	// DroppedRecords счетчик отброшенных при загрузке записей
	DroppedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_dropped_records_total",
			Help: "Некорректные записи, отброшенные при чтении хранилища",
		},
		[]string{"slot"},
	)

	// ListenerPanics счетчик паник в подписчиках
	ListenerPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_listener_panics_total",
			Help: "Паники в подписчиках хранилища целей",
		},
	)

	// TrackerOperations счетчик операций бюджетного трекера
	TrackerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_operations_total",
			Help: "Операции с транзакциями бюджета",
		},
		[]string{"operation", "status"},
	)
)
