package calculations

import "math"

// ComputeAnnuity рассчитывает аннуитетный кредит.
//
// Платеж P·r / (1 − (1+r)^−n), при нулевой ставке P/n.
// Результат не округляется: округление остается задачей отображения.
func ComputeAnnuity(principal, annualRatePercent, termYears float64, withSchedule bool) (*LoanResult, error) {
	n, r, err := prepare(principal, annualRatePercent, termYears)
	if err != nil {
		return nil, err
	}

	payment := annuityPayment(principal, r, n)
	totalAmount := payment * float64(n)
	if r == 0 {
		totalAmount = principal
	}

	result := &LoanResult{
		Method:            MethodAnnuity,
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         termYears,
		Months:            n,
		MonthlyPayment:    payment,
		LastPayment:       payment,
		AveragePayment:    payment,
		TotalAmount:       totalAmount,
		TotalOverpay:      totalAmount - principal,
	}

	if withSchedule {
		result.Schedule = annuitySchedule(principal, r, n, payment)
	}

	return result, nil
}

func annuityPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(n)))
}

// annuitySchedule строит график. Остаток считается в замкнутой форме
// B_k = P·(1 − (1+r)^(k−n)) / (1 − (1+r)^−n): прямая рекурсия накапливает
// ошибку округления, растущую как (1+r)^n, и при высоких ставках не сходится к нулю.
// Все степени отрицательные, поэтому переполнения нет при любом сроке.
func annuitySchedule(principal, r float64, n int, payment float64) []PaymentScheduleItem {
	schedule := make([]PaymentScheduleItem, 0, n)
	remaining := principal
	discountN := 1 - math.Pow(1+r, -float64(n))

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalPortion := payment - interest

		if r == 0 {
			remaining = principal * float64(n-m) / float64(n)
		} else {
			remaining = principal * (1 - math.Pow(1+r, float64(m-n))) / discountN
		}
		if m == n {
			remaining = settle(remaining)
		}

		schedule = append(schedule, PaymentScheduleItem{
			Period:           m,
			Payment:          payment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: remaining,
		})
	}

	return schedule
}
