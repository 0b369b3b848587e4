package calculations

import (
	"errors"
	"testing"
)

func TestProjectSavings(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		target       float64
		contribution float64
		rate         float64
		maxMonths    int
		wantErr      error
		checkResult  func(*testing.T, *SavingsProjection)
	}{
		{
			name:         "zero rate matches ceiling formula",
			current:      10_000,
			target:       100_000,
			contribution: 7_000,
			maxMonths:    600,
			checkResult: func(t *testing.T, p *SavingsProjection) {
				// ⌈90000 / 7000⌉ = 13
				if p.Months != 13 {
					t.Errorf("expected 13 months, got %d", p.Months)
				}
				if p.TotalInterest != 0 {
					t.Errorf("expected no interest, got %f", p.TotalInterest)
				}
				if len(p.Schedule) != 13 {
					t.Errorf("expected 13 entries, got %d", len(p.Schedule))
				}
			},
		},
		{
			name:         "interest shortens the plan",
			current:      0,
			target:       1_000_000,
			contribution: 50_000,
			rate:         14,
			maxMonths:    600,
			checkResult: func(t *testing.T, p *SavingsProjection) {
				if p.Months >= 20 {
					t.Errorf("expected fewer than 20 months with interest, got %d", p.Months)
				}
				if p.TotalInterest <= 0 {
					t.Error("expected positive interest")
				}
				if p.FinalBalance < 1_000_000 {
					t.Errorf("final balance %f below target", p.FinalBalance)
				}
			},
		},
		{
			name:      "already reached",
			current:   500,
			target:    500,
			maxMonths: 10,
			checkResult: func(t *testing.T, p *SavingsProjection) {
				if p.Months != 0 {
					t.Errorf("expected 0 months, got %d", p.Months)
				}
			},
		},
		{
			name:      "no contribution and no interest",
			current:   100,
			target:    500,
			maxMonths: 10,
			wantErr:   ErrUnreachable,
		},
		{
			name:         "limit exceeded",
			current:      0,
			target:       1_000_000,
			contribution: 1,
			maxMonths:    12,
			wantErr:      ErrUnreachable,
		},
		{
			name:         "negative contribution",
			target:       1000,
			contribution: -1,
			maxMonths:    12,
			wantErr:      ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ProjectSavings(tt.current, tt.target, tt.contribution, tt.rate, tt.maxMonths)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.checkResult(t, p)
		})
	}
}
