package allocation

import (
	"testing"

	"github.com/andesair/checkin-api/internal/model"
)

// seat builds a test seat on airplane 1.
func seat(id uint64, row uint32, col string, seatType uint64) model.Seat {
	return model.Seat{ID: id, Row: row, Column: col, SeatTypeID: seatType, AirplaneID: 1}
}

// pass builds a test boarding pass on flight 1 with a hydrated passenger.
func pass(id, purchase, seatType uint64, age int) model.BoardingPass {
	return model.BoardingPass{
		ID:          id,
		PurchaseID:  purchase,
		PassengerID: id,
		SeatTypeID:  seatType,
		FlightID:    1,
		Passenger:   &model.Passenger{ID: id, Age: age, Name: "passenger", DNI: "x", Country: "CL"},
	}
}

func assigned(bp model.BoardingPass, seatID uint64) model.BoardingPass {
	bp.SeatID = &seatID
	return bp
}

// seatByPass indexes an assignment list by boarding pass id and fails
// on duplicate passes.
func seatByPass(t *testing.T, got []Assignment) map[uint64]uint64 {
	t.Helper()
	m := make(map[uint64]uint64, len(got))
	for _, a := range got {
		if _, dup := m[a.BoardingPassID]; dup {
			t.Fatalf("boarding pass %d assigned twice", a.BoardingPassID)
		}
		m[a.BoardingPassID] = a.SeatID
	}
	return m
}

func TestAllocateFullRowForGroup(t *testing.T) {
	// Airplane rows 1-2, columns A-C, everything economy (type 1).
	seats := []model.Seat{
		seat(1, 1, "A", 1), seat(2, 1, "B", 1), seat(3, 1, "C", 1),
		seat(4, 2, "A", 1), seat(5, 2, "B", 1), seat(6, 2, "C", 1),
	}
	passes := []model.BoardingPass{
		pass(10, 1, 1, 30), pass(11, 1, 1, 28), pass(12, 1, 1, 41),
	}

	got := Allocate(passes, seats)
	if len(got) != 3 {
		t.Fatalf("assignments = %d, want 3", len(got))
	}
	byPass := seatByPass(t, got)
	// First row wins and the run starts at the lowest column.
	want := map[uint64]uint64{10: 1, 11: 2, 12: 3}
	for bp, sid := range want {
		if byPass[bp] != sid {
			t.Errorf("pass %d got seat %d, want %d", bp, byPass[bp], sid)
		}
	}
}

func TestAllocatePrefersConsecutiveRun(t *testing.T) {
	// 1A is free but isolated (1B taken by another flight state);
	// the only run of 3 is 1C-1D-1E.  A non-adjacent combination must
	// never win while an adjacent one is available.
	seats := []model.Seat{
		seat(1, 1, "A", 1),
		seat(3, 1, "C", 1), seat(4, 1, "D", 1), seat(5, 1, "E", 1),
	}
	passes := []model.BoardingPass{
		pass(10, 1, 1, 30), pass(11, 1, 1, 28), pass(12, 1, 1, 41),
	}

	byPass := seatByPass(t, Allocate(passes, seats))
	want := map[uint64]uint64{10: 3, 11: 4, 12: 5}
	for bp, sid := range want {
		if byPass[bp] != sid {
			t.Errorf("pass %d got seat %d, want %d (consecutive window)", bp, byPass[bp], sid)
		}
	}
}

func TestAllocateFallbackIsDeterministic(t *testing.T) {
	// No row holds two adjacent seats, so the fallback must pick the
	// two smallest candidates under (row asc, column asc): 1A then 1C.
	seats := []model.Seat{
		seat(4, 2, "B", 1), seat(3, 2, "D", 1),
		seat(1, 1, "A", 1), seat(2, 1, "C", 1),
	}
	passes := []model.BoardingPass{pass(10, 1, 1, 30), pass(11, 1, 1, 25)}

	byPass := seatByPass(t, Allocate(passes, seats))
	if byPass[10] != 1 || byPass[11] != 2 {
		t.Errorf("fallback gave %v, want pass 10->seat 1, pass 11->seat 2", byPass)
	}
}

func TestAllocatePartialWhenClassExhausted(t *testing.T) {
	// Five economy passengers, three economy seats: exactly three
	// assignments, nobody errors, the rest stay unassigned.
	seats := []model.Seat{
		seat(1, 1, "A", 1), seat(2, 1, "B", 1), seat(3, 2, "A", 1),
		seat(9, 3, "A", 2), // business seat must not leak into economy
	}
	passes := []model.BoardingPass{
		pass(10, 1, 1, 30), pass(11, 1, 1, 30), pass(12, 1, 1, 30),
		pass(13, 1, 1, 30), pass(14, 1, 1, 30),
	}

	got := Allocate(passes, seats)
	if len(got) != 3 {
		t.Fatalf("assignments = %d, want 3", len(got))
	}
	for _, a := range got {
		if a.SeatID == 9 {
			t.Errorf("economy pass %d was given business seat 9", a.BoardingPassID)
		}
	}
}

func TestAllocateHonorsSeatClassPerBucket(t *testing.T) {
	seats := []model.Seat{
		seat(1, 1, "A", 2), seat(2, 1, "B", 2), // business row
		seat(3, 10, "A", 1), seat(4, 10, "B", 1), // economy row
	}
	// One purchase mixing classes: pass 10 flies business, 11 and 12 economy.
	passes := []model.BoardingPass{
		pass(10, 7, 2, 44), pass(11, 7, 1, 39), pass(12, 7, 1, 12),
	}

	byPass := seatByPass(t, Allocate(passes, seats))
	seatsByID := map[uint64]model.Seat{1: seats[0], 2: seats[1], 3: seats[2], 4: seats[3]}
	wantType := map[uint64]uint64{10: 2, 11: 1, 12: 1}
	for bp, sid := range byPass {
		if seatsByID[sid].SeatTypeID != wantType[bp] {
			t.Errorf("pass %d got seat %d of type %d, want type %d",
				bp, sid, seatsByID[sid].SeatTypeID, wantType[bp])
		}
	}
}

func TestAllocateUniqueSeatsAcrossGroups(t *testing.T) {
	// Two parties of two in a single three-seat row plus a second row:
	// the first party consumes from the shared pool, the second must
	// see only what is left.
	seats := []model.Seat{
		seat(1, 1, "A", 1), seat(2, 1, "B", 1), seat(3, 1, "C", 1),
		seat(4, 2, "A", 1), seat(5, 2, "B", 1),
	}
	passes := []model.BoardingPass{
		pass(10, 1, 1, 30), pass(11, 1, 1, 30),
		pass(12, 2, 1, 30), pass(13, 2, 1, 30),
	}

	got := Allocate(passes, seats)
	if len(got) != 4 {
		t.Fatalf("assignments = %d, want 4", len(got))
	}
	used := make(map[uint64]uint64)
	for _, a := range got {
		if prev, dup := used[a.SeatID]; dup {
			t.Fatalf("seat %d assigned to both pass %d and pass %d", a.SeatID, prev, a.BoardingPassID)
		}
		used[a.SeatID] = a.BoardingPassID
	}
	// Purchase 1 takes 1A-1B; purchase 2 cannot fit in row 1 anymore
	// (only 1C left) and lands on the 2A-2B run.
	byPass := seatByPass(t, got)
	if byPass[12] != 4 || byPass[13] != 5 {
		t.Errorf("second group got %v, want seats 4 and 5", byPass)
	}
}

func TestAllocateRerunIsNoOp(t *testing.T) {
	seats := []model.Seat{
		seat(1, 1, "A", 1), seat(2, 1, "B", 1), seat(3, 1, "C", 1),
	}
	passes := []model.BoardingPass{
		pass(10, 1, 1, 30), pass(11, 1, 1, 30), pass(12, 1, 1, 30),
	}

	first := Allocate(passes, seats)
	if len(first) != 3 {
		t.Fatalf("first run assigned %d, want 3", len(first))
	}
	// Persisted state after the first run.
	committed := make([]model.BoardingPass, len(passes))
	byPass := seatByPass(t, first)
	for i, bp := range passes {
		committed[i] = assigned(bp, byPass[bp.ID])
	}

	second := Allocate(committed, seats)
	if len(second) != 0 {
		t.Errorf("re-run produced %d assignments, want 0", len(second))
	}
}

func TestAllocateMixedMinorAdultGroupStaysTogether(t *testing.T) {
	seats := []model.Seat{
		seat(1, 5, "A", 1), seat(2, 5, "B", 1), seat(3, 5, "C", 1),
		seat(4, 6, "A", 1),
	}
	// Family: two adults and a minor, one purchase, one class.
	passes := []model.BoardingPass{
		pass(10, 3, 1, 40), pass(11, 3, 1, 8), pass(12, 3, 1, 38),
	}

	byPass := seatByPass(t, Allocate(passes, seats))
	rows := make(map[uint32]bool)
	seatsByID := map[uint64]model.Seat{1: seats[0], 2: seats[1], 3: seats[2], 4: seats[3]}
	for _, sid := range byPass {
		rows[seatsByID[sid].Row] = true
	}
	if len(rows) != 1 || !rows[5] {
		t.Errorf("mixed group split across rows %v, want all in row 5", rows)
	}
}

func TestAllocateSkipsAssignedPassesButBlocksTheirSeats(t *testing.T) {
	seats := []model.Seat{
		seat(1, 1, "A", 1), seat(2, 1, "B", 1), seat(3, 1, "C", 1),
	}
	passes := []model.BoardingPass{
		assigned(pass(10, 1, 1, 30), 2), // already holds 1B
		pass(11, 1, 1, 30),
	}

	got := Allocate(passes, seats)
	if len(got) != 1 {
		t.Fatalf("assignments = %d, want 1", len(got))
	}
	if got[0].BoardingPassID != 11 {
		t.Errorf("assigned pass %d, want 11", got[0].BoardingPassID)
	}
	if got[0].SeatID == 2 {
		t.Errorf("seat 2 is already committed and must not be reassigned")
	}
}
