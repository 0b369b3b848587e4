package calculations

import (
	"errors"
	"math"
	"testing"
)

func TestComputeAnnuity(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         float64
		wantError         bool
		checkResult       func(*testing.T, *LoanResult)
	}{
		{
			name:              "reference loan",
			principal:         1_000_000,
			annualRatePercent: 12,
			termYears:         5,
			checkResult: func(t *testing.T, result *LoanResult) {
				if result.Months != 60 {
					t.Errorf("expected 60 months, got %d", result.Months)
				}
				if math.Abs(result.MonthlyPayment-22244.45) > 0.01 {
					t.Errorf("expected monthly payment ≈ 22244.45, got %f", result.MonthlyPayment)
				}
				if math.Abs(result.TotalOverpay-334667) > 1 {
					t.Errorf("expected overpay ≈ 334667, got %f", result.TotalOverpay)
				}
				if math.Abs(result.TotalAmount-result.MonthlyPayment*60) > 1e-6 {
					t.Errorf("total amount should be payment * n, got %f", result.TotalAmount)
				}
				if len(result.Schedule) != 60 {
					t.Fatalf("expected 60 schedule items, got %d", len(result.Schedule))
				}
				lastMonth := result.Schedule[len(result.Schedule)-1]
				if lastMonth.RemainingBalance != 0 {
					t.Errorf("expected remaining balance 0, got %f", lastMonth.RemainingBalance)
				}
			},
		},
		{
			name:              "zero rate",
			principal:         100000,
			annualRatePercent: 0,
			termYears:         1,
			checkResult: func(t *testing.T, result *LoanResult) {
				if math.Abs(result.MonthlyPayment-100000.0/12) > 1e-9 {
					t.Errorf("expected monthly payment P/n, got %f", result.MonthlyPayment)
				}
				if result.TotalAmount != 100000 {
					t.Errorf("expected total amount equal to principal, got %f", result.TotalAmount)
				}
				if result.TotalOverpay != 0 {
					t.Errorf("expected zero overpay, got %f", result.TotalOverpay)
				}
				for _, item := range result.Schedule {
					if item.InterestPortion != 0 {
						t.Fatalf("period %d: expected zero interest, got %f", item.Period, item.InterestPortion)
					}
				}
			},
		},
		{
			name:              "fractional years round to nearest month",
			principal:         50000,
			annualRatePercent: 10,
			termYears:         1.5,
			checkResult: func(t *testing.T, result *LoanResult) {
				if result.Months != 18 {
					t.Errorf("expected 18 months, got %d", result.Months)
				}
			},
		},
		{name: "zero principal", principal: 0, annualRatePercent: 12, termYears: 5, wantError: true},
		{name: "negative principal", principal: -1, annualRatePercent: 12, termYears: 5, wantError: true},
		{name: "negative rate", principal: 1000, annualRatePercent: -1, termYears: 5, wantError: true},
		{name: "NaN rate", principal: 1000, annualRatePercent: math.NaN(), termYears: 5, wantError: true},
		{name: "infinite principal", principal: math.Inf(1), annualRatePercent: 12, termYears: 5, wantError: true},
		{name: "zero term", principal: 1000, annualRatePercent: 12, termYears: 0, wantError: true},
		{name: "term below one month", principal: 1000, annualRatePercent: 12, termYears: 0.02, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeAnnuity(tt.principal, tt.annualRatePercent, tt.termYears, true)
			if (err != nil) != tt.wantError {
				t.Fatalf("ComputeAnnuity() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Errorf("expected *InputError, got %T", err)
				}
				return
			}
			if tt.checkResult != nil {
				tt.checkResult(t, result)
			}
		})
	}
}

func TestComputeAnnuityWithoutSchedule(t *testing.T) {
	result, err := ComputeAnnuity(1000, 5, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Schedule != nil {
		t.Errorf("expected no schedule, got %d items", len(result.Schedule))
	}
}

func TestAnnuityScheduleReconciles(t *testing.T) {
	for _, principal := range []float64{1, 999.99, 150_000, 1_000_000, 75_000_000} {
		for _, rate := range []float64{0.1, 3.5, 12, 24.9, 99} {
			for _, years := range []float64{0.5, 1, 5, 15, 30} {
				result, err := ComputeAnnuity(principal, rate, years, true)
				if err != nil {
					t.Fatalf("ComputeAnnuity(%v, %v, %v) error = %v", principal, rate, years, err)
				}
				last := result.Schedule[len(result.Schedule)-1]
				if math.Abs(last.RemainingBalance) > 1 {
					t.Errorf("ComputeAnnuity(%v, %v, %v): final balance %f not within 1 unit of 0",
						principal, rate, years, last.RemainingBalance)
				}
				if result.TotalAmount < principal {
					t.Errorf("ComputeAnnuity(%v, %v, %v): total %f below principal", principal, rate, years, result.TotalAmount)
				}
			}
		}
	}
}

func TestAnnuityExtremeTerms(t *testing.T) {
	tests := []struct {
		principal float64
		rate      float64
		years     float64
	}{
		{1000, 100, 1000},
		{1_000_000, 12, 6000},
		{1_000_000, 200, 400},
		{1, 0.01, 5000},
	}

	for _, tt := range tests {
		result, err := ComputeAnnuity(tt.principal, tt.rate, tt.years, true)
		if err != nil {
			t.Fatalf("ComputeAnnuity(%v, %v, %v) error = %v", tt.principal, tt.rate, tt.years, err)
		}
		for name, v := range map[string]float64{
			"payment": result.MonthlyPayment,
			"total":   result.TotalAmount,
			"overpay": result.TotalOverpay,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("ComputeAnnuity(%v, %v, %v): %s is not finite: %v", tt.principal, tt.rate, tt.years, name, v)
			}
		}
		// при очень длинном сроке платеж стремится к одним процентам P·r
		if interestOnly := tt.principal * tt.rate / 100 / 12; result.MonthlyPayment < interestOnly*(1-1e-9) {
			t.Errorf("ComputeAnnuity(%v, %v, %v): payment %f below interest-only %f",
				tt.principal, tt.rate, tt.years, result.MonthlyPayment, interestOnly)
		}
		last := result.Schedule[len(result.Schedule)-1]
		if math.IsNaN(last.RemainingBalance) || math.Abs(last.RemainingBalance) > 1 {
			t.Errorf("ComputeAnnuity(%v, %v, %v): final balance %v not within 1 unit of 0",
				tt.principal, tt.rate, tt.years, last.RemainingBalance)
		}
		for _, row := range result.Schedule {
			if math.IsNaN(row.RemainingBalance) || math.IsNaN(row.InterestPortion) {
				t.Fatalf("ComputeAnnuity(%v, %v, %v): NaN in period %d", tt.principal, tt.rate, tt.years, row.Period)
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	in := LoanInput{Principal: 2_500_000, AnnualRatePercent: 17.5, TermYears: 7, Method: MethodAnnuity}

	a, err := Compute(in, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Compute(in, true)

	if a.MonthlyPayment != b.MonthlyPayment || a.TotalAmount != b.TotalAmount {
		t.Error("repeated calls must return identical results")
	}
	for i := range a.Schedule {
		if a.Schedule[i] != b.Schedule[i] {
			t.Fatalf("schedule item %d differs", i)
		}
	}
}

func TestComputeUnknownMethod(t *testing.T) {
	_, err := Compute(LoanInput{Principal: 1000, AnnualRatePercent: 10, TermYears: 1, Method: "balloon"}, false)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
