package validators

import (
	"fmt"

	"github.com/cloud-ru/loan-goals-go/internal/config"
	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f)", name, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckTermYears проверяет срок кредита в годах
func CheckTermYears(cfg *config.Config, termYears float64) error {
	if err := ValidatePositiveNumber("term_years", termYears, 1e-9, cfg.MaxTermYears); err != nil {
		return err
	}
	if utils.TermMonths(termYears) < 1 {
		return fmt.Errorf("term_years: срок должен быть не меньше одного месяца")
	}
	return nil
}

// CheckGoalAmount проверяет сумму цели (целевую, текущую или взнос)
func CheckGoalAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxGoalAmount)
}

// CheckContribution проверяет пополнение цели: допускается любой знак, но не ноль
func CheckContribution(cfg *config.Config, amount float64) error {
	if !utils.IsFinite(amount) {
		return fmt.Errorf("amount: значение не является конечным числом")
	}
	if amount == 0 {
		return fmt.Errorf("amount: сумма пополнения не может быть нулевой")
	}
	if amount > cfg.MaxGoalAmount || -amount > cfg.MaxGoalAmount {
		return fmt.Errorf("amount: значение слишком велико по модулю (>%.0f)", cfg.MaxGoalAmount)
	}
	return nil
}

// CheckLoan проверяет все параметры кредита разом
func CheckLoan(cfg *config.Config, principal, rate, termYears float64) error {
	if err := CheckPrincipal(cfg, principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, rate); err != nil {
		return err
	}
	return CheckTermYears(cfg, termYears)
}
