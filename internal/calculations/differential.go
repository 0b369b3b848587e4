package calculations

// ComputeDifferentiated рассчитывает дифференцированный кредит.
//
// Основной долг гасится равными долями P/n, проценты начисляются на остаток.
// MonthlyPayment содержит платеж первого месяца, LastPayment последнего.
func ComputeDifferentiated(principal, annualRatePercent, termYears float64, withSchedule bool) (*LoanResult, error) {
	n, r, err := prepare(principal, annualRatePercent, termYears)
	if err != nil {
		return nil, err
	}

	principalPortion := principal / float64(n)
	var schedule []PaymentScheduleItem
	if withSchedule {
		schedule = make([]PaymentScheduleItem, 0, n)
	}

	totalInterest := 0.0
	var firstPayment, lastPayment float64

	for m := 1; m <= n; m++ {
		opening := principal - principalPortion*float64(m-1)
		interest := opening * r
		payment := principalPortion + interest
		totalInterest += interest

		if m == 1 {
			firstPayment = payment
		}
		if m == n {
			lastPayment = payment
		}

		if withSchedule {
			remaining := principal - principalPortion*float64(m)
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
	}

	totalAmount := principal + totalInterest

	return &LoanResult{
		Method:            MethodDifferentiated,
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         termYears,
		Months:            n,
		MonthlyPayment:    firstPayment,
		LastPayment:       lastPayment,
		AveragePayment:    totalAmount / float64(n),
		TotalAmount:       totalAmount,
		TotalOverpay:      totalInterest,
		Schedule:          schedule,
	}, nil
}
