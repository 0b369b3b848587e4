package planner

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
	"github.com/cloud-ru/loan-goals-go/internal/goals"
	"github.com/cloud-ru/loan-goals-go/internal/metrics"
	"github.com/cloud-ru/loan-goals-go/internal/validators"
)

// Filter отбор целей для списка
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// GoalView цель вместе с производными показателями
type GoalView struct {
	goals.Goal
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
	// MonthsLeft -1, если при нулевом взносе цель не достигается
	MonthsLeft int `json:"monthsLeft"`
}

func viewOf(g goals.Goal) GoalView {
	v := GoalView{Goal: g, Progress: g.Progress(), Completed: g.IsCompleted(), MonthsLeft: -1}
	if months, ok := g.MonthsLeft(); ok {
		v.MonthsLeft = months
	}
	return v
}

func goalStatus(err error) string {
	if errors.Is(err, goals.ErrInvalidGoal) {
		return statusValidationError
	}
	return statusError
}

type amountField struct {
	name  string
	value *float64
}

func (p *Planner) checkAmounts(fields ...amountField) error {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := validators.CheckGoalAmount(p.cfg, f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

// ListGoals возвращает цели в порядке создания
func (p *Planner) ListGoals(ctx context.Context, filter Filter) []GoalView {
	_, span := p.start(ctx, "list_goals", attribute.String("filter", string(filter)))
	defer span.End()

	var list []goals.Goal
	switch filter {
	case FilterActive:
		list = p.goals.Active()
	case FilterCompleted:
		list = p.goals.Completed()
	default:
		list = p.goals.GetAll()
	}

	views := make([]GoalView, 0, len(list))
	for _, g := range list {
		views = append(views, viewOf(g))
	}
	span.SetAttributes(attribute.Int("count", len(views)))
	metrics.GoalOperations.WithLabelValues("list", statusSuccess).Inc()
	return views
}

// GetGoal ищет цель по идентификатору
func (p *Planner) GetGoal(ctx context.Context, id string) (GoalView, bool) {
	_, span := p.start(ctx, "get_goal", attribute.String("goal_id", id))
	defer span.End()

	g, ok := p.goals.GetByID(id)
	if !ok {
		metrics.GoalOperations.WithLabelValues("get", statusNotFound).Inc()
		return GoalView{}, false
	}
	metrics.GoalOperations.WithLabelValues("get", statusSuccess).Inc()
	return viewOf(g), true
}

// AddGoal создает ручную цель
func (p *Planner) AddGoal(ctx context.Context, d goals.Draft) (goals.Goal, error) {
	const op = "add_goal"
	_, span := p.start(ctx, op, attribute.String("name", d.Name), attribute.Float64("target_amount", d.TargetAmount))
	defer span.End()

	err := p.checkAmounts(
		amountField{"targetAmount", &d.TargetAmount},
		amountField{"monthlyContribution", &d.MonthlyContribution},
		amountField{"initialPayment", d.InitialPayment},
	)
	if err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusValidationError).Inc()
		return goals.Goal{}, p.fail(span, op, statusValidationError, err)
	}

	g, err := p.goals.Add(d)
	if err != nil {
		status := goalStatus(err)
		metrics.GoalOperations.WithLabelValues(op, status).Inc()
		return goals.Goal{}, p.fail(span, op, status, err)
	}

	span.SetAttributes(attribute.String("goal_id", g.ID))
	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	p.log.Info().Str("goal_id", g.ID).Str("name", g.Name).Msg("цель создана")
	return g, nil
}

// UpdateGoal частично обновляет цель; ok=false, если ее нет
func (p *Planner) UpdateGoal(ctx context.Context, id string, patch goals.Patch) (goals.Goal, bool, error) {
	const op = "update_goal"
	_, span := p.start(ctx, op, attribute.String("goal_id", id))
	defer span.End()

	err := p.checkAmounts(
		amountField{"targetAmount", patch.TargetAmount},
		amountField{"monthlyContribution", patch.MonthlyContribution},
		amountField{"initialPayment", patch.InitialPayment},
	)
	if err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusValidationError).Inc()
		return goals.Goal{}, false, p.fail(span, op, statusValidationError, err)
	}

	g, ok, err := p.goals.Update(id, patch)
	if err != nil {
		status := goalStatus(err)
		metrics.GoalOperations.WithLabelValues(op, status).Inc()
		return goals.Goal{}, false, p.fail(span, op, status, err)
	}
	if !ok {
		span.SetAttributes(attribute.String("error", statusNotFound))
		metrics.GoalOperations.WithLabelValues(op, statusNotFound).Inc()
		return goals.Goal{}, false, nil
	}

	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	return g, true, nil
}

// Contribute пополняет цель (отрицательная сумма означает изъятие)
func (p *Planner) Contribute(ctx context.Context, id string, amount float64) (goals.Goal, bool, error) {
	const op = "contribute"
	_, span := p.start(ctx, op, attribute.String("goal_id", id), attribute.Float64("amount", amount))
	defer span.End()

	if err := validators.CheckContribution(p.cfg, amount); err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusValidationError).Inc()
		return goals.Goal{}, false, p.fail(span, op, statusValidationError, err)
	}

	g, ok, err := p.goals.AddAmount(id, amount)
	if err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusError).Inc()
		return goals.Goal{}, false, p.fail(span, op, statusError, err)
	}
	if !ok {
		span.SetAttributes(attribute.String("error", statusNotFound))
		metrics.GoalOperations.WithLabelValues(op, statusNotFound).Inc()
		return goals.Goal{}, false, nil
	}

	span.SetAttributes(attribute.Float64("current_amount", g.CurrentAmount), attribute.Bool("completed", g.IsCompleted()))
	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	if g.IsCompleted() {
		p.log.Info().Str("goal_id", g.ID).Msg("цель достигнута")
	}
	return g, true, nil
}

// DeleteGoal удаляет цель; false, если ее нет
func (p *Planner) DeleteGoal(ctx context.Context, id string) (bool, error) {
	const op = "delete_goal"
	_, span := p.start(ctx, op, attribute.String("goal_id", id))
	defer span.End()

	ok, err := p.goals.Delete(id)
	if err != nil {
		metrics.GoalOperations.WithLabelValues(op, statusError).Inc()
		return false, p.fail(span, op, statusError, err)
	}
	if !ok {
		metrics.GoalOperations.WithLabelValues(op, statusNotFound).Inc()
		return false, nil
	}

	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	return true, nil
}

// ProjectGoal прогнозирует накопление до целевой суммы при заданной
// доходности сбережений
func (p *Planner) ProjectGoal(ctx context.Context, id string, annualRatePercent float64) (*calculations.SavingsProjection, bool, error) {
	const op = "project_goal"
	_, span := p.start(ctx, op, attribute.String("goal_id", id), attribute.Float64("annual_rate_percent", annualRatePercent))
	defer span.End()

	if err := validators.CheckRate(p.cfg, annualRatePercent); err != nil {
		metrics.CalculationErrors.WithLabelValues(op, "validation").Inc()
		return nil, false, p.fail(span, op, statusValidationError, err)
	}

	g, ok := p.goals.GetByID(id)
	if !ok {
		metrics.GoalOperations.WithLabelValues(op, statusNotFound).Inc()
		return nil, false, nil
	}

	proj, err := calculations.ProjectSavings(g.CurrentAmount, g.TargetAmount, g.MonthlyContribution, annualRatePercent, p.cfg.MaxSavingMonths)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(op, calcErrorType(err)).Inc()
		metrics.GoalOperations.WithLabelValues(op, statusError).Inc()
		return nil, true, p.fail(span, op, statusError, err)
	}

	span.SetAttributes(attribute.Int("months", proj.Months))
	succeed(span)
	metrics.GoalOperations.WithLabelValues(op, statusSuccess).Inc()
	return proj, true, nil
}
