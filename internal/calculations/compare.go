package calculations

import (
	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// Comparison результат сравнения аннуитетного и дифференцированного кредитов
type Comparison struct {
	Annuity        *LoanResult `json:"annuity"`
	Differentiated *LoanResult `json:"differentiated"`
	// OverpayDifference переплата по аннуитету минус переплата по дифференцированному, до копеек
	OverpayDifference float64 `json:"overpay_difference"`
	// CheaperMethod пусто, если переплаты совпадают до копейки
	CheaperMethod  Method `json:"cheaper_method,omitempty"`
	Recommendation string `json:"recommendation"`
}

// CompareLoans сравнивает аннуитетный и дифференцированный кредиты
func CompareLoans(principal, annualRatePercent, termYears float64) (*Comparison, error) {
	annuity, err := ComputeAnnuity(principal, annualRatePercent, termYears, false)
	if err != nil {
		return nil, err
	}

	differentiated, err := ComputeDifferentiated(principal, annualRatePercent, termYears, false)
	if err != nil {
		return nil, err
	}

	diff := utils.Round2(annuity.TotalOverpay - differentiated.TotalOverpay)

	result := &Comparison{
		Annuity:           annuity,
		Differentiated:    differentiated,
		OverpayDifference: diff,
	}

	switch {
	case diff > 0:
		result.CheaperMethod = MethodDifferentiated
		result.Recommendation = "Дифференцированный кредит выгоднее по общей сумме выплат. Однако учтите, что первые платежи будут выше, чем при аннуитетной схеме."
	case diff < 0:
		result.CheaperMethod = MethodAnnuity
		result.Recommendation = "Аннуитетный кредит выгоднее по общей сумме выплат. Платежи будут одинаковыми каждый месяц, что удобно для планирования бюджета."
	default:
		result.Recommendation = "Оба типа кредитов имеют одинаковую общую сумму выплат."
	}

	return result, nil
}
