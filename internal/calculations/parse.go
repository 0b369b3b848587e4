package calculations

import (
	"strconv"
	"strings"
)

var numberCleaner = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "_", "", ",", ".")

// ParseAmount разбирает число из поля формы: пробелы и подчеркивания как
// разделители разрядов, запятая как десятичный разделитель.
func ParseAmount(field, raw string) (float64, error) {
	s := numberCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, &InputError{Field: field, Value: strconv.Quote(raw), Reason: "поле не заполнено"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: strconv.Quote(raw), Reason: "не является числом"}
	}
	return v, nil
}

// ParseLoanInput собирает LoanInput из строковых полей формы калькулятора.
// Диапазоны не проверяются: это делает Compute.
func ParseLoanInput(amount, rate, term, method string) (LoanInput, error) {
	var in LoanInput
	var err error

	if in.Method, err = ParseMethod(method); err != nil {
		return LoanInput{}, err
	}
	if in.Principal, err = ParseAmount("principal", amount); err != nil {
		return LoanInput{}, err
	}
	if in.AnnualRatePercent, err = ParseAmount("annual_rate_percent", rate); err != nil {
		return LoanInput{}, err
	}
	if in.TermYears, err = ParseAmount("term_years", term); err != nil {
		return LoanInput{}, err
	}
	return in, nil
}
