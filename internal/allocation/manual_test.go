package allocation

import (
	"errors"
	"testing"

	"github.com/andesair/checkin-api/internal/model"
)

func TestValidateManual(t *testing.T) {
	target := seat(5, 3, "B", 1)
	holder := assigned(pass(20, 2, 1, 30), 5)

	tests := []struct {
		name     string
		pass     model.BoardingPass
		seat     model.Seat
		assigned []model.BoardingPass
		wantErr  error
	}{
		{
			name: "free matching seat",
			pass: pass(10, 1, 1, 30),
			seat: target,
		},
		{
			name:    "class mismatch",
			pass:    pass(10, 1, 2, 30),
			seat:    target,
			wantErr: ErrSeatTypeMismatch,
		},
		{
			name:     "seat already taken",
			pass:     pass(10, 1, 1, 30),
			seat:     target,
			assigned: []model.BoardingPass{holder},
			wantErr:  ErrSeatTaken,
		},
		{
			name:     "other assignments do not block",
			pass:     pass(10, 1, 1, 30),
			seat:     target,
			assigned: []model.BoardingPass{assigned(pass(21, 2, 1, 30), 6)},
		},
		{
			name:    "mismatch reported before taken",
			pass:    pass(10, 1, 2, 30),
			seat:    target,
			assigned: []model.BoardingPass{holder},
			wantErr: ErrSeatTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManual(tt.pass, tt.seat, tt.assigned)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateManual() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
