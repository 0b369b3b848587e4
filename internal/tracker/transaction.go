package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SimonSchneider/goslu/date"

	"github.com/cloud-ru/loan-goals-go/pkg/utils"
)

// ErrInvalidTransaction транзакция не прошла проверку
var ErrInvalidTransaction = errors.New("некорректная транзакция")

// Kind направление денежного потока
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category категория расхода
type Category string

const (
	CategoryUtilities     Category = "utilities"
	CategoryTelecom       Category = "telecom"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

var categoryTitles = map[Category]string{
	CategoryUtilities:     "Коммунальные услуги",
	CategoryTelecom:       "Связь",
	CategoryFood:          "Питание",
	CategoryTransport:     "Транспорт",
	CategoryEntertainment: "Развлечения",
	CategoryOther:         "Прочее",
}

// Known сообщает, входит ли категория в справочник расходов
func (c Category) Known() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title русское название категории; неизвестные считаются «Прочее»
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return categoryTitles[CategoryOther]
}

// Transaction доход или расход
type Transaction struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
	Kind     Kind     `json:"type"`
	Date     string   `json:"date"`
}

// Period год и месяц транзакции
func (t Transaction) Period() (year, month int, err error) {
	d, err := date.ParseDate(t.Date)
	if err != nil {
		return 0, 0, err
	}
	std := d.ToStdTime()
	return std.Year(), int(std.Month()), nil
}

func validate(t *Transaction) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("%w: название не может быть пустым", ErrInvalidTransaction)
	}
	if !utils.IsFinite(t.Amount) || t.Amount <= 0 {
		return fmt.Errorf("%w: сумма должна быть положительной", ErrInvalidTransaction)
	}
	switch t.Kind {
	case KindIncome, KindExpense:
	default:
		return fmt.Errorf("%w: неизвестный тип %q", ErrInvalidTransaction, t.Kind)
	}
	if t.Category == "" {
		t.Category = CategoryOther
	}
	if _, _, err := t.Period(); err != nil {
		return fmt.Errorf("%w: дата %q не является датой ГГГГ-ММ-ДД", ErrInvalidTransaction, t.Date)
	}
	return nil
}
