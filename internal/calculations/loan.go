package calculations

import (
	"fmt"

	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// prepare проверяет параметры кредита и возвращает число периодов и месячную ставку
func prepare(principal, annualRatePercent, termYears float64) (int, float64, error) {
	if !utils.IsFinite(principal) || principal <= 0 {
		return 0, 0, invalid("principal", principal, "сумма кредита должна быть положительной")
	}
	if !utils.IsFinite(annualRatePercent) || annualRatePercent < 0 {
		return 0, 0, invalid("annual_rate_percent", annualRatePercent, "ставка не может быть отрицательной")
	}
	if !utils.IsFinite(termYears) || termYears <= 0 {
		return 0, 0, invalid("term_years", termYears, "срок должен быть положительным")
	}
	n := utils.TermMonths(termYears)
	if n < 1 {
		return 0, 0, invalid("term_years", termYears, "срок должен быть не меньше одного месяца")
	}
	return n, annualRatePercent / 100.0 / 12.0, nil
}

// Compute рассчитывает кредит выбранным способом
func Compute(in LoanInput, withSchedule bool) (*LoanResult, error) {
	switch in.Method {
	case MethodAnnuity:
		return ComputeAnnuity(in.Principal, in.AnnualRatePercent, in.TermYears, withSchedule)
	case MethodDifferentiated:
		return ComputeDifferentiated(in.Principal, in.AnnualRatePercent, in.TermYears, withSchedule)
	default:
		return nil, fmt.Errorf("%w: неизвестный способ погашения %q", ErrInvalidInput, in.Method)
	}
}

// settle обнуляет остаток последнего периода, если он меньше половины копейки
func settle(balance float64) float64 {
	if utils.Round2(balance) == 0 {
		return 0
	}
	return balance
}
