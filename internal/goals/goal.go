package goals

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SimonSchneider/goslu/date"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// ErrInvalidGoal данные цели не прошли проверку
var ErrInvalidGoal = errors.New("некорректные данные цели")

// DateLayout формат дедлайна (ISO-дата)
const DateLayout = "2006-01-02"

// Type происхождение цели
type Type string

const (
	TypeManual Type = "manual"
	TypeLoan   Type = "loan"
)

// LoanParams параметры кредита, из которого выведена цель.
// Совпадение всех четырех полей означает ту же самую цель.
type LoanParams struct {
	Method    calculations.Method `json:"method"`
	Principal float64             `json:"principal"`
	Rate      float64             `json:"rate"`
	TermYears float64             `json:"termYears"`
}

// Goal финансовая цель
type Goal struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	TargetAmount        float64     `json:"targetAmount"`
	CurrentAmount       float64     `json:"currentAmount"`
	MonthlyContribution float64     `json:"monthlyContribution"`
	Deadline            string      `json:"deadline"`
	InitialPayment      *float64    `json:"initialPayment,omitempty"`
	Type                Type        `json:"type"`
	LoanParams          *LoanParams `json:"loanParams,omitempty"`
	CreatedAt           time.Time   `json:"createdAt,omitzero"`
	UpdatedAt           time.Time   `json:"updatedAt,omitzero"`
}

// Progress процент выполнения; цель с нулевой суммой считается выполненной
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 100
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// IsCompleted сообщает, достигнута ли целевая сумма
func (g Goal) IsCompleted() bool {
	return g.Progress() >= 100
}

// MonthsLeft сколько месяцев осталось при текущем взносе.
// ok=false, если взнос нулевой, а цель не достигнута.
func (g Goal) MonthsLeft() (months int, ok bool) {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return 0, true
	}
	if g.MonthlyContribution <= 0 {
		return 0, false
	}
	return int(math.Ceil(remaining / g.MonthlyContribution)), true
}

func (g Goal) clone() Goal {
	if g.InitialPayment != nil {
		v := *g.InitialPayment
		g.InitialPayment = &v
	}
	if g.LoanParams != nil {
		p := *g.LoanParams
		g.LoanParams = &p
	}
	return g
}

// Draft данные новой цели без идентификатора и временных меток
type Draft struct {
	Name                string
	TargetAmount        float64
	CurrentAmount       float64
	MonthlyContribution float64
	// Deadline можно не указывать при положительном взносе: он будет выведен
	// из числа оставшихся месяцев.
	Deadline       string
	InitialPayment *float64
	Type           Type
	LoanParams     *LoanParams
}

// Patch частичное обновление: nil-поля не меняются
type Patch struct {
	Name                *string
	TargetAmount        *float64
	CurrentAmount       *float64
	MonthlyContribution *float64
	Deadline            *string
	InitialPayment      *float64
	Type                *Type
	LoanParams          *LoanParams
}

func (p Patch) apply(g *Goal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.MonthlyContribution != nil {
		g.MonthlyContribution = *p.MonthlyContribution
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.InitialPayment != nil {
		v := *p.InitialPayment
		g.InitialPayment = &v
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.LoanParams != nil {
		lp := *p.LoanParams
		g.LoanParams = &lp
	}
}

// fromDraft строит цель из черновика, при необходимости выводя дедлайн
func fromDraft(d Draft, today time.Time) (Goal, error) {
	g := Goal{
		Name:                strings.TrimSpace(d.Name),
		TargetAmount:        d.TargetAmount,
		CurrentAmount:       d.CurrentAmount,
		MonthlyContribution: d.MonthlyContribution,
		Deadline:            strings.TrimSpace(d.Deadline),
		Type:                d.Type,
	}
	if g.Type == "" {
		g.Type = TypeManual
	}
	if d.InitialPayment != nil {
		v := *d.InitialPayment
		g.InitialPayment = &v
	}
	if d.LoanParams != nil {
		lp := *d.LoanParams
		g.LoanParams = &lp
	}

	if g.Deadline == "" {
		if !utils.IsFinite(g.MonthlyContribution) || g.MonthlyContribution <= 0 {
			return Goal{}, fmt.Errorf("%w: укажите ежемесячный взнос или дедлайн", ErrInvalidGoal)
		}
		months, _ := g.MonthsLeft()
		g.Deadline = today.AddDate(0, months, 0).Format(DateLayout)
	}

	if err := validate(&g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// validate проверяет цель и приводит текущую сумму к отрезку [0; target]
func validate(g *Goal) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return fmt.Errorf("%w: название не может быть пустым", ErrInvalidGoal)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"targetAmount", g.TargetAmount},
		{"monthlyContribution", g.MonthlyContribution},
	} {
		if !utils.IsFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s должно быть неотрицательным числом", ErrInvalidGoal, f.name)
		}
	}
	if !utils.IsFinite(g.CurrentAmount) {
		return fmt.Errorf("%w: currentAmount не является числом", ErrInvalidGoal)
	}
	if g.InitialPayment != nil && (!utils.IsFinite(*g.InitialPayment) || *g.InitialPayment < 0) {
		return fmt.Errorf("%w: initialPayment должно быть неотрицательным числом", ErrInvalidGoal)
	}
	if _, err := date.ParseDate(g.Deadline); err != nil {
		return fmt.Errorf("%w: дедлайн %q не является датой ГГГГ-ММ-ДД", ErrInvalidGoal, g.Deadline)
	}
	switch g.Type {
	case TypeManual:
	case TypeLoan:
		if g.LoanParams == nil || !g.LoanParams.Method.Valid() {
			return fmt.Errorf("%w: у кредитной цели должны быть параметры кредита", ErrInvalidGoal)
		}
	default:
		return fmt.Errorf("%w: неизвестный тип цели %q", ErrInvalidGoal, g.Type)
	}

	g.CurrentAmount = utils.Clamp(g.CurrentAmount, 0, g.TargetAmount)
	return nil
}
