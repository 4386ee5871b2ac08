package domain

// Tier is a fixed-price contribution bracket.
// Amounts are stored in integer units (e.g. cents).
type Tier struct {
	Name    string
	Amount  uint64 // required contribution, exact match
	Backers uint64 // number of contributions received
}
