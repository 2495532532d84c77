package allocation

import "github.com/andesair/checkin-api/internal/model"

// consecutiveColumns reports whether two column labels are direct
// neighbours, i.e. their letters differ by exactly one character code
// (A-B, B-C, ...).  Aisle gaps are expected to be modelled by the
// seat map itself via missing letters.
func consecutiveColumns(a, b string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	d := int(a[0]) - int(b[0])
	if d < 0 {
		d = -d
	}
	return d == 1
}

// consecutiveRun scans a row's seats, which must already be sorted by
// column, for a run of k directly adjacent seats.  It returns the
// start index of the first qualifying window (lowest starting column)
// and whether one exists.
func consecutiveRun(rowSeats []model.Seat, k int) (int, bool) {
	if k <= 0 || len(rowSeats) < k {
		return 0, false
	}
	for start := 0; start <= len(rowSeats)-k; start++ {
		ok := true
		for j := 0; j < k-1; j++ {
			if !consecutiveColumns(rowSeats[start+j].Column, rowSeats[start+j+1].Column) {
				ok = false
				break
			}
		}
		if ok {
			return start, true
		}
	}
	return 0, false
}
