package allocation

import (
	"testing"

	"github.com/andesair/checkin-api/internal/model"
)

func rowOf(cols ...string) []model.Seat {
	seats := make([]model.Seat, len(cols))
	for i, c := range cols {
		seats[i] = model.Seat{ID: uint64(i + 1), Row: 1, Column: c, SeatTypeID: 1}
	}
	return seats
}

func TestConsecutiveRun(t *testing.T) {
	tests := []struct {
		name      string
		cols      []string
		k         int
		wantStart int
		wantOK    bool
	}{
		{name: "full row exact fit", cols: []string{"A", "B", "C"}, k: 3, wantStart: 0, wantOK: true},
		{name: "window after a gap", cols: []string{"A", "C", "D", "E"}, k: 3, wantStart: 1, wantOK: true},
		{name: "lowest window wins", cols: []string{"A", "B", "C", "D"}, k: 2, wantStart: 0, wantOK: true},
		{name: "no adjacent pair", cols: []string{"A", "C", "E"}, k: 2, wantOK: false},
		{name: "too few seats", cols: []string{"A", "B"}, k: 3, wantOK: false},
		{name: "single seat always qualifies", cols: []string{"D"}, k: 1, wantStart: 0, wantOK: true},
		{name: "zero count never qualifies", cols: []string{"A", "B"}, k: 0, wantOK: false},
		{name: "gap in the middle splits runs", cols: []string{"B", "C", "E", "F"}, k: 2, wantStart: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, ok := consecutiveRun(rowOf(tt.cols...), tt.k)
			if ok != tt.wantOK {
				t.Fatalf("consecutiveRun(%v, %d) ok = %v, want %v", tt.cols, tt.k, ok, tt.wantOK)
			}
			if ok && start != tt.wantStart {
				t.Errorf("consecutiveRun(%v, %d) start = %d, want %d", tt.cols, tt.k, start, tt.wantStart)
			}
		})
	}
}

func TestConsecutiveColumns(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"A", "B", true},
		{"B", "A", true},
		{"B", "C", true},
		{"A", "C", false},
		{"A", "A", false},
		{"", "B", false},
		{"A", "", false},
	}
	for _, tt := range tests {
		if got := consecutiveColumns(tt.a, tt.b); got != tt.want {
			t.Errorf("consecutiveColumns(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
