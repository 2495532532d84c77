package allocation

import (
	"sort"

	"github.com/andesair/checkin-api/internal/model"
)

// Group is the travel party derived from one purchase: every boarding
// pass on the flight that shares the purchase id.  Groups only exist
// for the duration of one allocation run; they are never persisted.
type Group struct {
	PurchaseID uint64
	Passes     []model.BoardingPass
}

// GroupByPurchase partitions the flight's boarding passes into
// purchase groups.  The input order of passes is preserved inside each
// group and the groups themselves are returned in ascending purchase
// id, so a run over the same input always visits parties in the same
// order.  Already-assigned passes are kept; the caller accounts for
// them when building the seat pool.
func GroupByPurchase(passes []model.BoardingPass) []Group {
	byPurchase := make(map[uint64][]model.BoardingPass)
	ids := make([]uint64, 0)
	for _, bp := range passes {
		if _, ok := byPurchase[bp.PurchaseID]; !ok {
			ids = append(ids, bp.PurchaseID)
		}
		byPurchase[bp.PurchaseID] = append(byPurchase[bp.PurchaseID], bp)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	groups := make([]Group, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, Group{PurchaseID: id, Passes: byPurchase[id]})
	}
	return groups
}

// splitByAge classifies a group's passes into minors (age < 18) and
// adults.  A pass without a hydrated passenger is treated as an adult
// so that incomplete joins never block an allocation.
func splitByAge(passes []model.BoardingPass) (minors, adults []model.BoardingPass) {
	for _, bp := range passes {
		if bp.Passenger != nil && bp.Passenger.IsMinor() {
			minors = append(minors, bp)
		} else {
			adults = append(adults, bp)
		}
	}
	return minors, adults
}
