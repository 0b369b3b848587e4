// Package planner связывает калькулятор, хранилище целей и бюджетный трекер
// с конфигурацией, метриками и трейсингом.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/loan-goals-go/internal/config"
	"github.com/cloud-ru/loan-goals-go/internal/goals"
	"github.com/cloud-ru/loan-goals-go/internal/tracker"
)

// ErrInvalidParams параметры вне допустимых конфигурацией пределов
var ErrInvalidParams = errors.New("неверные параметры")

// Статусы операций в метриках
const (
	statusSuccess         = "success"
	statusValidationError = "validation_error"
	statusError           = "error"
	statusNotFound        = "not_found"
)

// Planner фасад над расчетами, целями и журналом транзакций
type Planner struct {
	cfg    *config.Config
	tracer trace.Tracer
	goals  *goals.Store
	ledger *tracker.Ledger
	log    zerolog.Logger
}

// New создает фасад. ledger может быть nil, если бюджет не используется.
func New(cfg *config.Config, tracer trace.Tracer, store *goals.Store, ledger *tracker.Ledger, log zerolog.Logger) *Planner {
	return &Planner{
		cfg:    cfg,
		tracer: tracer,
		goals:  store,
		ledger: ledger,
		log:    log,
	}
}

// Goals хранилище целей (для подписки на изменения)
func (p *Planner) Goals() *goals.Store {
	return p.goals
}

// Currency валюта отображения сумм
func (p *Planner) Currency() string {
	return p.cfg.Currency
}

func (p *Planner) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, op)
	span.SetAttributes(attrs...)
	return ctx, span
}

// fail помечает спан ошибкой и возвращает ее обернутой
func (p *Planner) fail(span trace.Span, op, status string, err error) error {
	span.SetAttributes(attribute.String("error", status))
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)

	if status == statusValidationError {
		err = fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	p.log.Warn().Err(err).Str("operation", op).Str("status", status).Msg("операция не выполнена")
	return err
}

func succeed(span trace.Span) {
	span.SetAttributes(attribute.Bool("success", true))
}
