package allocation

import (
	"testing"

	"github.com/andesair/checkin-api/internal/model"
)

func TestGroupByPurchaseOrdersAndPreservesInput(t *testing.T) {
	passes := []model.BoardingPass{
		pass(10, 5, 1, 30),
		pass(11, 2, 1, 30),
		pass(12, 5, 1, 30),
		pass(13, 2, 1, 30),
	}

	groups := GroupByPurchase(passes)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].PurchaseID != 2 || groups[1].PurchaseID != 5 {
		t.Errorf("group order = [%d %d], want ascending [2 5]",
			groups[0].PurchaseID, groups[1].PurchaseID)
	}
	// Input order must survive inside each group.
	if groups[0].Passes[0].ID != 11 || groups[0].Passes[1].ID != 13 {
		t.Errorf("purchase 2 order = [%d %d], want [11 13]",
			groups[0].Passes[0].ID, groups[0].Passes[1].ID)
	}
	if groups[1].Passes[0].ID != 10 || groups[1].Passes[1].ID != 12 {
		t.Errorf("purchase 5 order = [%d %d], want [10 12]",
			groups[1].Passes[0].ID, groups[1].Passes[1].ID)
	}
}

func TestGroupByPurchaseKeepsAssignedPasses(t *testing.T) {
	passes := []model.BoardingPass{
		assigned(pass(10, 1, 1, 30), 7),
		pass(11, 1, 1, 30),
	}
	groups := GroupByPurchase(passes)
	if len(groups) != 1 || len(groups[0].Passes) != 2 {
		t.Fatalf("extractor must not filter assigned passes, got %+v", groups)
	}
}

func TestSplitByAge(t *testing.T) {
	tests := []struct {
		name       string
		ages       []int
		wantMinors int
		wantAdults int
	}{
		{name: "family", ages: []int{40, 8, 17, 18}, wantMinors: 2, wantAdults: 2},
		{name: "all adults", ages: []int{20, 65}, wantMinors: 0, wantAdults: 2},
		{name: "all minors", ages: []int{10, 12}, wantMinors: 2, wantAdults: 0},
		{name: "boundary age 18 is adult", ages: []int{18}, wantMinors: 0, wantAdults: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passes := make([]model.BoardingPass, len(tt.ages))
			for i, age := range tt.ages {
				passes[i] = pass(uint64(i+1), 1, 1, age)
			}
			minors, adults := splitByAge(passes)
			if len(minors) != tt.wantMinors || len(adults) != tt.wantAdults {
				t.Errorf("splitByAge(%v) = %d minors, %d adults; want %d, %d",
					tt.ages, len(minors), len(adults), tt.wantMinors, tt.wantAdults)
			}
		})
	}
}

func TestSplitByAgeWithoutPassengerDefaultsToAdult(t *testing.T) {
	bp := pass(1, 1, 1, 30)
	bp.Passenger = nil
	minors, adults := splitByAge([]model.BoardingPass{bp})
	if len(minors) != 0 || len(adults) != 1 {
		t.Errorf("pass without passenger classified as minor")
	}
}
