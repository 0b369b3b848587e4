package calculations

import (
	"fmt"

	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// SavingsEntry один месяц накопления на цель
type SavingsEntry struct {
	Month           int     `json:"month"`
	StartingBalance float64 `json:"starting_balance"`
	Contribution    float64 `json:"contribution"`
	InterestEarned  float64 `json:"interest_earned"`
	EndingBalance   float64 `json:"ending_balance"`
}

// SavingsProjection прогноз накопления до целевой суммы
type SavingsProjection struct {
	Months             int            `json:"months"`
	FinalBalance       float64        `json:"final_balance"`
	TotalContributions float64        `json:"total_contributions"`
	TotalInterest      float64        `json:"total_interest"`
	Schedule           []SavingsEntry `json:"schedule"`
}

// ProjectSavings считает, за сколько месяцев текущая сумма дорастет до целевой
// при ежемесячном взносе в конце месяца и ежемесячной капитализации.
// При нулевой ставке число месяцев равно ⌈(target − current) / contribution⌉.
func ProjectSavings(current, target, monthlyContribution, annualRatePercent float64, maxMonths int) (*SavingsProjection, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"current_amount", current},
		{"target_amount", target},
		{"monthly_contribution", monthlyContribution},
		{"annual_rate_percent", annualRatePercent},
	} {
		if !utils.IsFinite(p.value) || p.value < 0 {
			return nil, invalid(p.name, p.value, "значение должно быть неотрицательным числом")
		}
	}
	if maxMonths < 1 {
		return nil, fmt.Errorf("%w: max_months должно быть положительным", ErrInvalidInput)
	}

	projection := &SavingsProjection{FinalBalance: utils.Round2(current)}
	if current >= target {
		return projection, nil
	}
	if monthlyContribution == 0 && (annualRatePercent == 0 || current == 0) {
		return nil, ErrUnreachable
	}

	r := annualRatePercent / 100.0 / 12.0
	balance := current
	cumI := 0.0
	cumC := 0.0

	for m := 1; m <= maxMonths; m++ {
		starting := balance

		interest := utils.Round2(balance * r)
		balance = utils.Round2(balance + interest)
		cumI = utils.Round2(cumI + interest)

		balance = utils.Round2(balance + monthlyContribution)
		cumC = utils.Round2(cumC + monthlyContribution)

		projection.Schedule = append(projection.Schedule, SavingsEntry{
			Month:           m,
			StartingBalance: utils.Round2(starting),
			Contribution:    utils.Round2(monthlyContribution),
			InterestEarned:  interest,
			EndingBalance:   balance,
		})

		if balance >= target {
			projection.Months = m
			projection.FinalBalance = balance
			projection.TotalContributions = cumC
			projection.TotalInterest = cumI
			return projection, nil
		}
	}

	return nil, fmt.Errorf("%w: больше %d месяцев", ErrUnreachable, maxMonths)
}
