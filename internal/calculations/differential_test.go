package calculations

import (
	"math"
	"testing"
)

func TestComputeDifferentiated(t *testing.T) {
	result, err := ComputeDifferentiated(1_000_000, 12, 1, true)
	if err != nil {
		t.Fatalf("ComputeDifferentiated() error = %v", err)
	}

	if len(result.Schedule) != 12 {
		t.Errorf("expected 12 months, got %d", len(result.Schedule))
	}

	// первый платеж: P/n + P·r
	wantFirst := 1_000_000.0/12 + 1_000_000*0.01
	if math.Abs(result.MonthlyPayment-wantFirst) > 1e-6 {
		t.Errorf("expected first payment %f, got %f", wantFirst, result.MonthlyPayment)
	}
	if result.MonthlyPayment <= result.LastPayment {
		t.Error("first month payment should be greater than last month payment")
	}
	if result.MonthlyPayment <= result.AveragePayment {
		t.Error("reported monthly payment is the first payment, not the average")
	}

	for i := 1; i < len(result.Schedule); i++ {
		if result.Schedule[i].Payment >= result.Schedule[i-1].Payment {
			t.Fatalf("payments must strictly decrease, period %d", i+1)
		}
	}

	// сумма процентов в замкнутой форме: r·P·(n+1)/2
	wantInterest := 0.01 * 1_000_000 * 13 / 2
	if math.Abs(result.TotalOverpay-wantInterest) > 1e-6 {
		t.Errorf("expected total interest %f, got %f", wantInterest, result.TotalOverpay)
	}
	if math.Abs(result.TotalAmount-(1_000_000+wantInterest)) > 1e-6 {
		t.Errorf("unexpected total amount %f", result.TotalAmount)
	}

	lastMonth := result.Schedule[len(result.Schedule)-1]
	if lastMonth.RemainingBalance != 0 {
		t.Errorf("expected remaining balance 0, got %f", lastMonth.RemainingBalance)
	}
}

func TestComputeDifferentiatedZeroRate(t *testing.T) {
	result, err := ComputeDifferentiated(120_000, 0, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalAmount != 120_000 || result.TotalOverpay != 0 {
		t.Errorf("expected no overpay, got total %f overpay %f", result.TotalAmount, result.TotalOverpay)
	}
	if result.MonthlyPayment != 10_000 || result.LastPayment != 10_000 {
		t.Errorf("expected flat 10000 payments, got %f / %f", result.MonthlyPayment, result.LastPayment)
	}
}

func TestDifferentiatedCostsNoMoreThanAnnuity(t *testing.T) {
	for _, principal := range []float64{500, 250_000, 1_000_000} {
		for _, rate := range []float64{0, 0.5, 7, 12, 36} {
			for _, years := range []float64{1.0 / 12, 1, 3, 10, 25} {
				a, err := ComputeAnnuity(principal, rate, years, false)
				if err != nil {
					t.Fatalf("ComputeAnnuity error = %v", err)
				}
				d, err := ComputeDifferentiated(principal, rate, years, false)
				if err != nil {
					t.Fatalf("ComputeDifferentiated error = %v", err)
				}
				if d.TotalInterest() > a.TotalInterest()+1e-6 {
					t.Errorf("P=%v rate=%v years=%v: differentiated interest %f > annuity %f",
						principal, rate, years, d.TotalInterest(), a.TotalInterest())
				}
			}
		}
	}
}
