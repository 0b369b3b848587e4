package planner

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
	"github.com/cloud-ru/loan-goals-go/internal/goals"
	"github.com/cloud-ru/loan-goals-go/internal/metrics"
	"github.com/cloud-ru/loan-goals-go/internal/validators"
)

func loanAttrs(in calculations.LoanInput) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("method", string(in.Method)),
		attribute.Float64("principal", in.Principal),
		attribute.Float64("annual_rate_percent", in.AnnualRatePercent),
		attribute.Float64("term_years", in.TermYears),
	}
}

func calcErrorType(err error) string {
	if errors.Is(err, calculations.ErrInvalidInput) {
		return "validation"
	}
	return "calculation"
}

// CalculateLoan рассчитывает кредит выбранным способом
func (p *Planner) CalculateLoan(ctx context.Context, in calculations.LoanInput, withSchedule bool) (*calculations.LoanResult, error) {
	const op = "calculate_loan"
	_, span := p.start(ctx, op, loanAttrs(in)...)
	defer span.End()

	if err := validators.CheckLoan(p.cfg, in.Principal, in.AnnualRatePercent, in.TermYears); err != nil {
		metrics.Calculations.WithLabelValues(string(in.Method), statusValidationError).Inc()
		metrics.CalculationErrors.WithLabelValues(op, "validation").Inc()
		return nil, p.fail(span, op, statusValidationError, err)
	}

	result, err := calculations.Compute(in, withSchedule)
	if err != nil {
		metrics.Calculations.WithLabelValues(string(in.Method), statusError).Inc()
		metrics.CalculationErrors.WithLabelValues(op, calcErrorType(err)).Inc()
		return nil, p.fail(span, op, statusError, fmt.Errorf("ошибка при выполнении расчета: %w", err))
	}

	span.SetAttributes(
		attribute.Float64("monthly_payment", result.MonthlyPayment),
		attribute.Float64("total_overpay", result.TotalOverpay),
	)
	succeed(span)
	metrics.Calculations.WithLabelValues(string(in.Method), statusSuccess).Inc()
	p.log.Debug().Str("method", string(in.Method)).Int("months", result.Months).Msg("кредит рассчитан")
	return result, nil
}

// CompareLoans сравнивает оба способа погашения для одних параметров
func (p *Planner) CompareLoans(ctx context.Context, principal, rate, termYears float64) (*calculations.Comparison, error) {
	const op = "compare_loans"
	_, span := p.start(ctx, op,
		attribute.Float64("principal", principal),
		attribute.Float64("annual_rate_percent", rate),
		attribute.Float64("term_years", termYears),
	)
	defer span.End()

	if err := validators.CheckLoan(p.cfg, principal, rate, termYears); err != nil {
		metrics.Calculations.WithLabelValues("compare", statusValidationError).Inc()
		metrics.CalculationErrors.WithLabelValues(op, "validation").Inc()
		return nil, p.fail(span, op, statusValidationError, err)
	}

	cmp, err := calculations.CompareLoans(principal, rate, termYears)
	if err != nil {
		metrics.Calculations.WithLabelValues("compare", statusError).Inc()
		metrics.CalculationErrors.WithLabelValues(op, calcErrorType(err)).Inc()
		return nil, p.fail(span, op, statusError, fmt.Errorf("ошибка при выполнении расчета: %w", err))
	}

	span.SetAttributes(attribute.Float64("overpay_difference", cmp.OverpayDifference))
	succeed(span)
	metrics.Calculations.WithLabelValues("compare", statusSuccess).Inc()
	return cmp, nil
}

// AddLoanGoal создает цель «погасить кредит» или обновляет уже существующую
// с теми же параметрами; isNew=false во втором случае.
func (p *Planner) AddLoanGoal(ctx context.Context, in calculations.LoanInput) (goals.Goal, bool, error) {
	const op = "add_loan_goal"
	_, span := p.start(ctx, op, loanAttrs(in)...)
	defer span.End()

	if err := validators.CheckLoan(p.cfg, in.Principal, in.AnnualRatePercent, in.TermYears); err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusValidationError).Inc()
		return goals.Goal{}, false, p.fail(span, op, statusValidationError, err)
	}

	g, isNew, err := p.goals.AddLoanGoal(in.Method, in.Principal, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusError).Inc()
		return goals.Goal{}, false, p.fail(span, op, statusError, err)
	}

	span.SetAttributes(attribute.String("goal_id", g.ID), attribute.Bool("is_new", isNew))
	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	p.log.Info().Str("goal_id", g.ID).Bool("is_new", isNew).Msg("цель по кредиту сохранена")
	return g, isNew, nil
}
