package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andesair/checkin-api/internal/allocation"
	"github.com/andesair/checkin-api/internal/repository"
)

func newTestManual(st *fakeStore) *ManualAssignmentService {
	s := NewManualAssignmentService(st, st, st)
	s.retryBase = 0
	return s
}

func TestAssignSeatManually(t *testing.T) {
	svc := newTestManual(newFakeStore())

	resp, err := svc.AssignSeat(context.Background(), 1, 100, 2, "A")
	if err != nil {
		t.Fatalf("AssignSeat() error = %v", err)
	}
	if resp.SeatID == nil || *resp.SeatID != 4 {
		t.Errorf("seat_id = %v, want 4 (2A)", resp.SeatID)
	}
	if resp.SeatRow != "2" || resp.SeatColumn != "A" {
		t.Errorf("seat position = %s%s, want 2A", resp.SeatRow, resp.SeatColumn)
	}
}

func TestAssignSeatManuallyBoardingPassNotFound(t *testing.T) {
	svc := newTestManual(newFakeStore())
	_, err := svc.AssignSeat(context.Background(), 1, 999, 1, "A")
	if !errors.Is(err, repository.ErrBoardingPassNotFound) {
		t.Errorf("error = %v, want ErrBoardingPassNotFound", err)
	}
}

func TestAssignSeatManuallySeatNotFound(t *testing.T) {
	svc := newTestManual(newFakeStore())
	_, err := svc.AssignSeat(context.Background(), 1, 100, 40, "Z")
	if !errors.Is(err, repository.ErrSeatNotFound) {
		t.Errorf("error = %v, want ErrSeatNotFound", err)
	}
}

func TestAssignSeatManuallyClassMismatch(t *testing.T) {
	st := newFakeStore()
	st.seats[3].SeatTypeID = 2 // 2A becomes business
	svc := newTestManual(st)

	_, err := svc.AssignSeat(context.Background(), 1, 100, 2, "A")
	if !errors.Is(err, allocation.ErrSeatTypeMismatch) {
		t.Errorf("error = %v, want ErrSeatTypeMismatch", err)
	}
	// No write may have happened.
	if st.passes[0].SeatID != nil {
		t.Errorf("boarding pass was written despite mismatch")
	}
}

func TestAssignSeatManuallyRejectsTakenSeat(t *testing.T) {
	st := newFakeStore()
	sid := uint64(4)
	st.passes[1].SeatID = &sid // passenger 101 already holds 2A
	svc := newTestManual(st)

	_, err := svc.AssignSeat(context.Background(), 1, 100, 2, "A")
	if !errors.Is(err, allocation.ErrSeatTaken) {
		t.Errorf("error = %v, want ErrSeatTaken", err)
	}
	if st.passes[0].SeatID != nil {
		t.Errorf("boarding pass seat changed despite taken seat")
	}
}

func TestAssignSeatManuallyMapsClaimConflictToTaken(t *testing.T) {
	st := newFakeStore()
	st.conflictSeat = 4 // validation passes, the claim itself loses the race
	svc := newTestManual(st)

	_, err := svc.AssignSeat(context.Background(), 1, 100, 2, "A")
	if !errors.Is(err, allocation.ErrSeatTaken) {
		t.Errorf("error = %v, want ErrSeatTaken after losing claim race", err)
	}
}
