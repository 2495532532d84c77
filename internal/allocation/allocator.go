// Package allocation implements the seat-assignment engine used at
// check-in.  Given a flight's boarding passes and the seat inventory
// of the assigned airplane it deterministically allocates an
// available seat to each unassigned pass, honoring the requested
// cabin class, preferring adjacent seats for a travel party and
// falling back to the best available seats when no adjacent block
// exists.  The engine performs no I/O: it returns the list of
// assignments for the caller to persist.
package allocation

import (
	"log/slog"
	"sort"

	"github.com/andesair/checkin-api/internal/model"
)

// Assignment pairs one boarding pass with the seat chosen for it
// during an allocation run.
type Assignment struct {
	BoardingPassID uint64
	SeatID         uint64
}

// Allocate runs the full bulk assignment for one flight.  Passes must
// be the complete boarding-pass list of the flight (assigned ones
// included, they anchor the seat pool) ordered by purchase id, and
// seats the full seat list of the flight's airplane.  The run is
// deterministic: groups are visited in ascending purchase id, cabin
// classes in ascending seat-type id and rows in ascending row number.
// Passes that already hold a seat are left untouched, which makes a
// re-run over the same state a no-op.
func Allocate(passes []model.BoardingPass, seats []model.Seat) []Assignment {
	pool := NewSeatPool(seats, passes)
	groups := GroupByPurchase(passes)

	var out []Assignment
	for _, g := range groups {
		out = assignGroup(pool, g, out)
	}
	return out
}

// assignGroup seats one travel party.  Mixed groups (minors plus
// adults) take the accompanied-minor path; today both paths delegate
// to the same per-class procedure, the group-level adjacency
// preference being what keeps minors next to their party.
func assignGroup(pool *SeatPool, g Group, out []Assignment) []Assignment {
	minors, adults := splitByAge(g.Passes)
	if len(minors) > 0 && len(adults) > 0 {
		slog.Debug("assigning seats for group with minors",
			"purchase_id", g.PurchaseID, "minors", len(minors), "adults", len(adults))
	} else {
		slog.Debug("assigning seats for group",
			"purchase_id", g.PurchaseID, "passengers", len(g.Passes))
	}

	for _, bucket := range bucketsBySeatType(g.Passes) {
		out = assignBucket(pool, bucket, out)
	}
	return out
}

// bucket is the slice of a group's unassigned passes that request one
// cabin class.
type bucket struct {
	SeatTypeID uint64
	Passes     []model.BoardingPass
}

// bucketsBySeatType partitions a group's passes by requested cabin
// class, dropping passes that already hold a seat.  Buckets come back
// in ascending seat-type id for deterministic processing.
func bucketsBySeatType(passes []model.BoardingPass) []bucket {
	byType := make(map[uint64][]model.BoardingPass)
	ids := make([]uint64, 0)
	for _, bp := range passes {
		if bp.Assigned() {
			continue
		}
		if _, ok := byType[bp.SeatTypeID]; !ok {
			ids = append(ids, bp.SeatTypeID)
		}
		byType[bp.SeatTypeID] = append(byType[bp.SeatTypeID], bp)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]bucket, 0, len(ids))
	for _, id := range ids {
		out = append(out, bucket{SeatTypeID: id, Passes: byType[id]})
	}
	return out
}

// assignBucket seats the passes of one cabin class.  It first looks
// for a row holding a consecutive run long enough for the whole
// bucket, scanning rows in ascending order and taking the lowest
// qualifying window; when no row qualifies it falls back to the best
// available seats of the class.
func assignBucket(pool *SeatPool, b bucket, out []Assignment) []Assignment {
	need := len(b.Passes)
	if need == 0 {
		return out
	}
	seatsOfType := pool.OfType(b.SeatTypeID)

	for _, rowSeats := range rowsAscending(seatsOfType) {
		if len(rowSeats) < need {
			continue
		}
		start, ok := consecutiveRun(rowSeats, need)
		if !ok {
			continue
		}
		for i, bp := range b.Passes {
			seat := rowSeats[start+i]
			out = append(out, Assignment{BoardingPassID: bp.ID, SeatID: seat.ID})
			pool.Remove(seat.ID)
		}
		return out
	}

	return assignBestAvailable(pool, b.Passes, seatsOfType, out)
}

// assignBestAvailable is the fallback: candidates arrive sorted by
// (row asc, column asc) and are handed out one-to-one until either
// the passes or the seats run out.  Passes beyond the available seat
// count simply stay unassigned; that is a valid terminal state, not
// an error.
func assignBestAvailable(pool *SeatPool, passes []model.BoardingPass, candidates []model.Seat, out []Assignment) []Assignment {
	n := len(passes)
	if len(candidates) < n {
		slog.Debug("not enough seats of class for bucket",
			"requested", n, "available", len(candidates))
		n = len(candidates)
	}
	for i := 0; i < n; i++ {
		out = append(out, Assignment{BoardingPassID: passes[i].ID, SeatID: candidates[i].ID})
		pool.Remove(candidates[i].ID)
	}
	return out
}

// rowsAscending groups seats by row and returns the per-row slices in
// ascending row order.  The input is already sorted by (row, column),
// so each returned slice is sorted by column.
func rowsAscending(seats []model.Seat) [][]model.Seat {
	var rows [][]model.Seat
	for i := 0; i < len(seats); {
		j := i
		for j < len(seats) && seats[j].Row == seats[i].Row {
			j++
		}
		rows = append(rows, seats[i:j])
		i = j
	}
	return rows
}
