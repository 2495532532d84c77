package allocation

import (
	"sort"

	"github.com/andesair/checkin-api/internal/model"
)

// SeatPool is the mutable working set of seats still available during
// one allocation run.  It is built once per run from the airplane's
// full seat list minus every seat already referenced by a boarding
// pass on the flight, and it is shared across all groups of that run:
// a seat consumed by an earlier group is invisible to later ones.
// Once removed a seat is never reconsidered within the run.
type SeatPool struct {
	seats map[uint64]model.Seat
}

// NewSeatPool builds the pool for an allocation run.  Seats referenced
// by any assigned boarding pass on the flight are excluded up front.
func NewSeatPool(seats []model.Seat, passes []model.BoardingPass) *SeatPool {
	taken := make(map[uint64]struct{})
	for _, bp := range passes {
		if bp.SeatID != nil {
			taken[*bp.SeatID] = struct{}{}
		}
	}
	pool := &SeatPool{seats: make(map[uint64]model.Seat, len(seats))}
	for _, s := range seats {
		if _, ok := taken[s.ID]; !ok {
			pool.seats[s.ID] = s
		}
	}
	return pool
}

// Remove takes a seat out of the pool.  Removing an absent seat is a
// no-op, so callers may remove the same id repeatedly during a run.
func (p *SeatPool) Remove(seatID uint64) {
	delete(p.seats, seatID)
}

// Contains reports whether the seat is still available.
func (p *SeatPool) Contains(seatID uint64) bool {
	_, ok := p.seats[seatID]
	return ok
}

// Len returns the number of seats still available.
func (p *SeatPool) Len() int { return len(p.seats) }

// OfType returns the available seats of one cabin class, sorted by
// row ascending then column ascending.  The returned slice is a
// snapshot: mutating the pool afterwards does not change it.
func (p *SeatPool) OfType(seatTypeID uint64) []model.Seat {
	out := make([]model.Seat, 0, len(p.seats))
	for _, s := range p.seats {
		if s.SeatTypeID == seatTypeID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}
