package goals

import (
	"encoding/json"
	"time"
)

// LoadReport итог чтения слота.
// Некорректные записи не прерывают загрузку, а отбрасываются и считаются.
type LoadReport struct {
	Loaded  int  `json:"loaded"`
	Dropped int  `json:"dropped"`
	Corrupt bool `json:"corrupt"`
}

// record зеркалит Goal с указателями, чтобы отличать отсутствующие поля от нулевых
type record struct {
	ID                  *string     `json:"id"`
	Name                *string     `json:"name"`
	TargetAmount        *float64    `json:"targetAmount"`
	CurrentAmount       *float64    `json:"currentAmount"`
	MonthlyContribution *float64    `json:"monthlyContribution"`
	Deadline            *string     `json:"deadline"`
	InitialPayment      *float64    `json:"initialPayment"`
	Type                *Type       `json:"type"`
	LoanParams          *LoanParams `json:"loanParams"`
	CreatedAt           *time.Time  `json:"createdAt"`
	UpdatedAt           *time.Time  `json:"updatedAt"`
}

func (r record) toGoal() (Goal, bool) {
	if r.ID == nil || *r.ID == "" || r.Name == nil || r.TargetAmount == nil ||
		r.CurrentAmount == nil || r.MonthlyContribution == nil || r.Deadline == nil {
		return Goal{}, false
	}

	g := Goal{
		ID:                  *r.ID,
		Name:                *r.Name,
		TargetAmount:        *r.TargetAmount,
		CurrentAmount:       *r.CurrentAmount,
		MonthlyContribution: *r.MonthlyContribution,
		Deadline:            *r.Deadline,
		InitialPayment:      r.InitialPayment,
		Type:                TypeManual,
		LoanParams:          r.LoanParams,
	}
	// В ранних версиях тип не сохранялся: такие цели считаются ручными
	if r.Type != nil {
		g.Type = *r.Type
	}
	if r.CreatedAt != nil {
		g.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		g.UpdatedAt = *r.UpdatedAt
	}

	if err := validate(&g); err != nil {
		return Goal{}, false
	}
	return g, true
}

// decodeGoals разбирает слот, отбрасывая некорректные записи и повторные id
func decodeGoals(data []byte) ([]Goal, LoadReport) {
	var report LoadReport
	if len(data) == 0 {
		return nil, report
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		report.Corrupt = true
		return nil, report
	}

	goals := make([]Goal, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		var r record
		if err := json.Unmarshal(item, &r); err != nil {
			report.Dropped++
			continue
		}
		g, ok := r.toGoal()
		if !ok {
			report.Dropped++
			continue
		}
		if _, dup := seen[g.ID]; dup {
			report.Dropped++
			continue
		}
		seen[g.ID] = struct{}{}
		goals = append(goals, g)
	}

	report.Loaded = len(goals)
	return goals, report
}

func encodeGoals(goals []Goal) ([]byte, error) {
	if goals == nil {
		goals = []Goal{}
	}
	return json.Marshal(goals)
}
