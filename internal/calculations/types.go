package calculations

import (
	"fmt"
	"strings"
)

// Method способ погашения кредита
type Method string

const (
	// MethodAnnuity аннуитет: равные ежемесячные платежи
	MethodAnnuity Method = "annuity"
	// MethodDifferentiated дифференцированный: равная доля основного долга, убывающий платеж
	MethodDifferentiated Method = "differentiated"
)

// Valid сообщает, известен ли способ погашения
func (m Method) Valid() bool {
	return m == MethodAnnuity || m == MethodDifferentiated
}

// Title возвращает название способа для пользователя
func (m Method) Title() string {
	switch m {
	case MethodAnnuity:
		return "аннуитет"
	case MethodDifferentiated:
		return "дифференцированный"
	default:
		return string(m)
	}
}

// ParseMethod разбирает способ погашения из строки формы
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annuity", "аннуитет", "аннуитетный":
		return MethodAnnuity, nil
	case "differentiated", "differential", "дифференцированный":
		return MethodDifferentiated, nil
	}
	return "", fmt.Errorf("%w: неизвестный способ погашения %q", ErrInvalidInput, s)
}

// LoanInput параметры одного расчета кредита
type LoanInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         float64 `json:"term_years"`
	Method            Method  `json:"method"`
}

// PaymentScheduleItem одна строка графика платежей
type PaymentScheduleItem struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// LoanResult результат расчета кредита.
//
// Для дифференцированного кредита MonthlyPayment хранит платеж первого месяца
// (самый большой), а не средний. Средний платеж доступен в AveragePayment.
type LoanResult struct {
	Method            Method                `json:"method"`
	Principal         float64               `json:"principal"`
	AnnualRatePercent float64               `json:"annual_rate_percent"`
	TermYears         float64               `json:"term_years"`
	Months            int                   `json:"months"`
	MonthlyPayment    float64               `json:"monthly_payment"`
	LastPayment       float64               `json:"last_payment"`
	AveragePayment    float64               `json:"average_payment"`
	TotalOverpay      float64               `json:"total_overpay"`
	TotalAmount       float64               `json:"total_amount"`
	Schedule          []PaymentScheduleItem `json:"schedule,omitempty"`
}

// TotalInterest возвращает сумму всех процентов (то же, что переплата)
func (r *LoanResult) TotalInterest() float64 {
	return r.TotalOverpay
}
