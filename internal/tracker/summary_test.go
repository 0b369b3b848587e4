package tracker

import "testing"

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Name: "Зарплата", Amount: 500_000, Category: "salary", Kind: KindIncome, Date: "2026-09-05"},
		{ID: "2", Name: "Коммуналка", Amount: 25_000.10, Category: CategoryUtilities, Kind: KindExpense, Date: "2026-09-10"},
		{ID: "3", Name: "Интернет", Amount: 8_000.20, Category: CategoryTelecom, Kind: KindExpense, Date: "2026-09-12"},
		{ID: "4", Name: "Продукты", Amount: 60_000, Category: CategoryFood, Kind: KindExpense, Date: "2026-10-01"},
		{ID: "5", Name: "Подарок", Amount: 0.1, Category: "gifts", Kind: KindExpense, Date: "2025-12-31"},
		{ID: "6", Name: "Премия", Amount: 0.2, Kind: KindIncome, Date: "2025-12-31"},
	}

	s := Summarize(txs)

	checkAmount := func(name string, got, want float64) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	checkAmount("TotalIncome", s.TotalIncome, 500_000.2)
	checkAmount("TotalExpense", s.TotalExpense, 93_000.4)
	checkAmount("Balance", s.Balance, 406_999.8)

	wantCategories := []Category{CategoryFood, CategoryUtilities, CategoryTelecom, CategoryOther}
	if len(s.ByCategory) != len(wantCategories) {
		t.Fatalf("expected %d categories, got %+v", len(wantCategories), s.ByCategory)
	}
	for i, c := range wantCategories {
		if s.ByCategory[i].Category != c {
			t.Errorf("category %d = %q, want %q", i, s.ByCategory[i].Category, c)
		}
	}
	if s.ByCategory[3].Title != "Прочее" {
		t.Errorf("unknown category should be titled «Прочее», got %q", s.ByCategory[3].Title)
	}

	wantPeriods := []string{"2025-12", "2026-09", "2026-10"}
	if len(s.ByPeriod) != len(wantPeriods) {
		t.Fatalf("expected %d periods, got %+v", len(wantPeriods), s.ByPeriod)
	}
	for i, label := range wantPeriods {
		if got := s.ByPeriod[i].Label(); got != label {
			t.Errorf("period %d = %s, want %s", i, got, label)
		}
	}
	checkAmount("2026-09 income", s.ByPeriod[1].Income, 500_000)
	checkAmount("2026-09 expense", s.ByPeriod[1].Expense, 33_000.3)
	checkAmount("2025-12 income", s.ByPeriod[0].Income, 0.2)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.Balance != 0 {
		t.Errorf("expected zero totals, got %+v", s)
	}
	if len(s.ByCategory) != 0 || len(s.ByPeriod) != 0 {
		t.Errorf("expected no buckets, got %+v", s)
	}
}
