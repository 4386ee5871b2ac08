package domain

import (
	"testing"
	"time"
)

func TestEvaluate(t *testing.T) {
	deadline := base.AddDate(0, 0, 7)
	before := base
	after := deadline.Add(time.Minute)

	tests := []struct {
		name    string
		stored  State
		balance uint64
		goal    uint64
		now     time.Time
		want    State
	}{
		{"under goal before deadline stays active", StateActive, 500, 1000, before, StateActive},
		{"goal reached before deadline wins early", StateActive, 1000, 1000, before, StateSuccessful},
		{"goal exceeded after deadline wins", StateActive, 1500, 1000, after, StateSuccessful},
		{"under goal after deadline fails", StateActive, 999, 1000, after, StateFailed},
		{"exactly at deadline resolves", StateActive, 0, 1000, deadline, StateFailed},
		{"zero goal is an instant win", StateActive, 0, 0, before, StateSuccessful},
		{"successful is sticky", StateSuccessful, 0, 1000, after, StateSuccessful},
		{"failed is sticky even if balance covers goal", StateFailed, 2000, 1000, after, StateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluate(tt.stored, tt.balance, tt.goal, deadline, tt.now); got != tt.want {
				t.Fatalf("evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}
