package tracker

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal сумма расходов по категории
type CategoryTotal struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Amount   float64  `json:"amount"`
	Share    float64  `json:"share"`
}

// PeriodTotal доходы и расходы за месяц
type PeriodTotal struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Label период в виде ГГГГ-ММ
func (p PeriodTotal) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Summary сводка по журналу
type Summary struct {
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	Balance      float64         `json:"balance"`
	ByCategory   []CategoryTotal `json:"byCategory"`
	ByPeriod     []PeriodTotal   `json:"byPeriod"`
}

type periodKey struct{ year, month int }

type periodSums struct{ income, expense decimal.Decimal }

// Summarize считает итоги в десятичной арифметике, чтобы суммы копеек
// не накапливали ошибку округления.
func Summarize(txs []Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	byCategory := make(map[Category]decimal.Decimal)
	byPeriod := make(map[periodKey]*periodSums)

	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)

		var pk periodKey
		var err error
		pk.year, pk.month, err = t.Period()
		hasPeriod := err == nil
		if hasPeriod && byPeriod[pk] == nil {
			byPeriod[pk] = &periodSums{income: decimal.Zero, expense: decimal.Zero}
		}

		switch t.Kind {
		case KindIncome:
			income = income.Add(amount)
			if hasPeriod {
				byPeriod[pk].income = byPeriod[pk].income.Add(amount)
			}
		case KindExpense:
			expense = expense.Add(amount)
			c := t.Category
			if !c.Known() {
				c = CategoryOther
			}
			byCategory[c] = byCategory[c].Add(amount)
			if hasPeriod {
				byPeriod[pk].expense = byPeriod[pk].expense.Add(amount)
			}
		}
	}

	s := Summary{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		Balance:      income.Sub(expense).InexactFloat64(),
	}

	for c, amount := range byCategory {
		share := 0.0
		if expense.IsPositive() {
			share = amount.Div(expense).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		s.ByCategory = append(s.ByCategory, CategoryTotal{
			Category: c,
			Title:    c.Title(),
			Amount:   amount.InexactFloat64(),
			Share:    share,
		})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})

	for k, sums := range byPeriod {
		s.ByPeriod = append(s.ByPeriod, PeriodTotal{
			Year:    k.year,
			Month:   k.month,
			Income:  sums.income.InexactFloat64(),
			Expense: sums.expense.InexactFloat64(),
		})
	}
	sort.Slice(s.ByPeriod, func(i, j int) bool {
		if s.ByPeriod[i].Year != s.ByPeriod[j].Year {
			return s.ByPeriod[i].Year < s.ByPeriod[j].Year
		}
		return s.ByPeriod[i].Month < s.ByPeriod[j].Month
	})

	return s
}
