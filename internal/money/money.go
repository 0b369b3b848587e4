// Package money округляет и форматирует суммы по правилам валюты.
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency валюта по умолчанию
const DefaultCurrency = "KZT"

const defaultFraction = 2

func fraction(code string) (int32, *gomoney.Currency) {
	cur := gomoney.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return defaultFraction, nil
	}
	return int32(cur.Fraction), cur
}

// Round округляет сумму до минимальной единицы валюты (тиын, цент).
// Для неизвестной валюты используются два знака.
func Round(amount float64, currency string) float64 {
	places, _ := fraction(currency)
	return decimal.NewFromFloat(amount).Round(places).InexactFloat64()
}

// Format возвращает сумму в виде «₸1,234.50». Неизвестная валюта
// выводится кодом после числа.
func Format(amount float64, currency string) string {
	places, cur := fraction(currency)
	value := decimal.NewFromFloat(amount).Round(places)
	if cur == nil {
		return value.StringFixed(places) + " " + strings.ToUpper(currency)
	}
	return cur.Formatter().Format(value.Shift(places).IntPart())
}
