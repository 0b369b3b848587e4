package goals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
)

// DeriveLoanGoal рассчитывает параметры цели «погасить кредит». Целевая сумма
// равна полной сумме выплат, взнос равен ежемесячному платежу (для
// дифференцированного кредита платежу первого месяца), дедлайн совпадает
// с датой последнего платежа.
func DeriveLoanGoal(params LoanParams, today time.Time) (Draft, error) {
	result, err := calculations.Compute(calculations.LoanInput{
		Principal:         params.Principal,
		AnnualRatePercent: params.Rate,
		TermYears:         params.TermYears,
		Method:            params.Method,
	}, false)
	if err != nil {
		return Draft{}, err
	}

	lp := params
	return Draft{
		Name:                loanGoalName(params.Method, params.TermYears),
		TargetAmount:        math.Round(result.TotalAmount),
		CurrentAmount:       0,
		MonthlyContribution: math.Round(result.MonthlyPayment),
		Deadline:            today.AddDate(0, result.Months, 0).Format(DateLayout),
		Type:                TypeLoan,
		LoanParams:          &lp,
	}, nil
}

// FindSimilarLoanGoal ищет кредитную цель с точно такими же параметрами
func (s *Store) FindSimilarLoanGoal(params LoanParams) (Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOfLoan(params); i >= 0 {
		return s.goals[i].clone(), true
	}
	return Goal{}, false
}

func (s *Store) indexOfLoan(params LoanParams) int {
	for i, g := range s.goals {
		if g.Type == TypeLoan && g.LoanParams != nil && *g.LoanParams == params {
			return i
		}
	}
	return -1
}

// AddLoanGoal добавляет цель по кредиту или обновляет существующую с теми же
// параметрами. Повторный вызов с теми же параметрами не создает дубликат.
// Накопленная сумма существующей цели сохраняется (с учетом новой целевой).
// Прежние версии при повторном добавлении обнуляли ее.
func (s *Store) AddLoanGoal(method calculations.Method, principal, rate, termYears float64) (goal Goal, isNew bool, err error) {
	params := LoanParams{Method: method, Principal: principal, Rate: rate, TermYears: termYears}
	draft, err := DeriveLoanGoal(params, s.now().UTC())
	if err != nil {
		return Goal{}, false, err
	}

	s.mu.Lock()
	if i := s.indexOfLoan(params); i >= 0 {
		goal, _, err = s.updateLocked(s.goals[i].ID, Patch{
			Name:                &draft.Name,
			TargetAmount:        &draft.TargetAmount,
			MonthlyContribution: &draft.MonthlyContribution,
			Deadline:            &draft.Deadline,
			LoanParams:          draft.LoanParams,
		})
	} else {
		goal, err = s.addLocked(draft)
		isNew = true
	}
	s.mu.Unlock()
	if err != nil {
		return Goal{}, false, err
	}

	s.notify()
	return goal, isNew, nil
}

// loanGoalName формирует название вида «Погашение кредита: аннуитет, 5 лет»
func loanGoalName(method calculations.Method, termYears float64) string {
	years := strings.Replace(strconv.FormatFloat(termYears, 'f', -1, 64), ".", ",", 1)
	return fmt.Sprintf("Погашение кредита: %s, %s %s", method.Title(), years, yearsWord(termYears))
}

func yearsWord(termYears float64) string {
	if termYears != math.Trunc(termYears) {
		return "года"
	}
	n := int64(termYears)
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return "лет"
	case n%10 == 1:
		return "год"
	case n%10 >= 2 && n%10 <= 4:
		return "года"
	default:
		return "лет"
	}
}
