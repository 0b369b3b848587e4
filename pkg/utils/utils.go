package utils

import "math"

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// TermMonths переводит срок в годах в целое число месяцев.
// Дробные годы округляются до ближайшего месяца (половина вверх).
func TermMonths(termYears float64) int {
	return int(math.Floor(termYears*12 + 0.5))
}

// Clamp ограничивает значение отрезком [lo; hi]. При hi < lo возвращает lo.
func Clamp(value, lo, hi float64) float64 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
