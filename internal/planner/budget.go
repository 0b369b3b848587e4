package planner

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/loan-goals-go/internal/metrics"
	"github.com/cloud-ru/loan-goals-go/internal/tracker"
)

// ErrNoLedger журнал транзакций не подключен
var ErrNoLedger = errors.New("журнал транзакций не подключен")

// AddTransaction записывает доход или расход
func (p *Planner) AddTransaction(ctx context.Context, tx tracker.Transaction) (tracker.Transaction, error) {
	const op = "add_transaction"
	_, span := p.start(ctx, op, attribute.String("type", string(tx.Kind)), attribute.Float64("amount", tx.Amount))
	defer span.End()

	if p.ledger == nil {
		return tracker.Transaction{}, p.fail(span, op, statusError, ErrNoLedger)
	}

	saved, err := p.ledger.Add(tx)
	if err != nil {
		status := statusError
		if errors.Is(err, tracker.ErrInvalidTransaction) {
			status = statusValidationError
		}
		metrics.TrackerOperations.WithLabelValues(op, status).Inc()
		return tracker.Transaction{}, p.fail(span, op, status, err)
	}

	succeed(span)
	metrics.TrackerOperations.WithLabelValues(op, statusSuccess).Inc()
	return saved, nil
}

// Transactions возвращает журнал
func (p *Planner) Transactions(ctx context.Context) []tracker.Transaction {
	_, span := p.start(ctx, "list_transactions")
	defer span.End()

	if p.ledger == nil {
		return nil
	}
	metrics.TrackerOperations.WithLabelValues("list", statusSuccess).Inc()
	return p.ledger.All()
}

// DeleteTransaction удаляет транзакцию; false, если ее нет
func (p *Planner) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	const op = "delete_transaction"
	_, span := p.start(ctx, op, attribute.String("tx_id", id))
	defer span.End()

	if p.ledger == nil {
		return false, p.fail(span, op, statusError, ErrNoLedger)
	}

	ok, err := p.ledger.Delete(id)
	if err != nil {
		metrics.TrackerOperations.WithLabelValues(op, statusError).Inc()
		return false, p.fail(span, op, statusError, err)
	}
	if !ok {
		metrics.TrackerOperations.WithLabelValues(op, statusNotFound).Inc()
		return false, nil
	}

	succeed(span)
	metrics.TrackerOperations.WithLabelValues(op, statusSuccess).Inc()
	return true, nil
}

// BudgetSummary сводка доходов и расходов
func (p *Planner) BudgetSummary(ctx context.Context) tracker.Summary {
	_, span := p.start(ctx, "budget_summary")
	defer span.End()

	s := tracker.Summarize(p.Transactions(ctx))
	span.SetAttributes(attribute.Float64("balance", s.Balance))
	metrics.TrackerOperations.WithLabelValues("summary", statusSuccess).Inc()
	return s
}
