package domain

// Principal is the authenticated identity of a caller (an address or
// account id). The engine trusts it verbatim; it performs no
// authentication of its own.
type Principal string

// Backer records a single principal's contributions to one campaign. The
// record is created lazily on the first contribution. Total grows with
// every funded tier and is zeroed by a refund; funded-tier membership is
// kept across a refund.
type Backer struct {
	Total       uint64
	FundedTiers map[int]struct{}
}
