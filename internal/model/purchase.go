package model

// Purchase groups the boarding passes bought in one transaction.
// Passes sharing a purchase form a travel party that the allocator
// tries to seat together.
type Purchase struct {
	ID           uint64 // purchase.purchase_id
	PurchaseDate int64  // purchase.purchase_date (epoch seconds)
}
