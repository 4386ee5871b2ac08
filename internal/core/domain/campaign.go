package domain

import (
	"sync"
	"time"
)

// maxDurationDays bounds campaign durations and deadline extensions so a
// deadline can never overflow time arithmetic. 100 years.
const maxDurationDays = 36500

// Campaign is a single crowdfunding campaign: the tier ledger, the backer
// ledger and the lazily evaluated state machine, holding contributed funds
// in escrow until the campaign resolves.
//
// All methods serialize on an internal mutex, so each call is atomic with
// respect to every other call on the same instance. The stored state is a
// cache refreshed at the start of state-sensitive mutating calls; Status
// is the authoritative projection.
type Campaign struct {
	mu sync.Mutex

	owner       Principal
	name        string
	description string
	goal        uint64
	deadline    time.Time
	paused      bool
	state       State

	tiers   []Tier
	backers map[Principal]*Backer
	balance uint64

	now func() time.Time
}

// NewCampaign creates an Active campaign owned by owner with a deadline of
// now plus durationDays. A zero goal is allowed and makes the campaign
// Successful on its first evaluation; a non-positive or implausibly large
// duration is rejected with ErrInvalidDuration.
func NewCampaign(owner Principal, name, description string, goal uint64, durationDays int) (*Campaign, error) {
	if durationDays <= 0 || durationDays > maxDurationDays {
		return nil, ErrInvalidDuration
	}
	c := &Campaign{
		owner:       owner,
		name:        name,
		description: description,
		goal:        goal,
		state:       StateActive,
		backers:     make(map[Principal]*Backer),
		now:         time.Now,
	}
	c.deadline = c.now().AddDate(0, 0, durationDays)
	return c, nil
}

// refresh persists the evaluated state. Callers must hold c.mu.
func (c *Campaign) refresh() {
	c.state = evaluate(c.state, c.balance, c.goal, c.deadline, c.now())
}

// AddTier appends a funding tier with zero backers. Owner-only.
func (c *Campaign) AddTier(caller Principal, name string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return ErrUnauthorized
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	c.tiers = append(c.tiers, Tier{Name: name, Amount: amount})
	return nil
}

// RemoveTier removes the tier at index by overwriting it with the last
// tier and shrinking the ledger. Owner-only. Tier indices are therefore
// not stable identifiers: the formerly last tier takes over the removed
// slot's index.
func (c *Campaign) RemoveTier(caller Principal, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return ErrUnauthorized
	}
	if index < 0 || index >= len(c.tiers) {
		return ErrTierNotFound
	}
	last := len(c.tiers) - 1
	c.tiers[index] = c.tiers[last]
	c.tiers = c.tiers[:last]
	return nil
}

// Fund contributes exactly the tier's required amount to the campaign on
// behalf of caller. The payment is held in escrow until the campaign
// resolves. Funding can flip the campaign to Successful before the
// deadline.
func (c *Campaign) Fund(caller Principal, tierIndex int, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refresh()
	if c.state != StateActive {
		return ErrCampaignClosed
	}
	if c.paused {
		return ErrPaused
	}
	if tierIndex < 0 || tierIndex >= len(c.tiers) {
		return ErrTierNotFound
	}
	if amount != c.tiers[tierIndex].Amount {
		return ErrAmountMismatch
	}

	c.tiers[tierIndex].Backers++
	rec, ok := c.backers[caller]
	if !ok {
		rec = &Backer{FundedTiers: make(map[int]struct{})}
		c.backers[caller] = rec
	}
	rec.Total += amount
	rec.FundedTiers[tierIndex] = struct{}{}
	c.balance += amount

	c.refresh()
	return nil
}

// Withdraw pays the entire held balance out to the owner once the campaign
// is Successful. It returns the payout. The balance is zero afterwards, so
// a second call fails with ErrZeroBalance. Bookkeeping is final before the
// payout amount is released to the caller.
func (c *Campaign) Withdraw(caller Principal) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return 0, ErrUnauthorized
	}
	c.refresh()
	if c.state != StateSuccessful {
		return 0, ErrNotSuccessful
	}
	if c.balance == 0 {
		return 0, ErrZeroBalance
	}
	payout := c.balance
	c.balance = 0
	return payout, nil
}

// Refund returns the caller's entire recorded contribution once the
// campaign has Failed, and zeroes the record. A second call fails with
// ErrNoContribution.
func (c *Campaign) Refund(caller Principal) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refresh()
	if c.state != StateFailed {
		return 0, ErrNotFailed
	}
	rec, ok := c.backers[caller]
	if !ok || rec.Total == 0 {
		return 0, ErrNoContribution
	}
	amount := rec.Total
	rec.Total = 0
	c.balance -= amount
	return amount, nil
}

// TogglePause flips the paused flag, which blocks Fund independently of
// the campaign state. Owner-only. Returns the new value.
func (c *Campaign) TogglePause(caller Principal) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return false, ErrUnauthorized
	}
	c.paused = !c.paused
	return c.paused, nil
}

// ExtendDeadline pushes the deadline out by days. Owner-only, and only
// while the campaign is still Active.
func (c *Campaign) ExtendDeadline(caller Principal, days int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.owner {
		return ErrUnauthorized
	}
	c.refresh()
	if c.state != StateActive {
		return ErrCampaignClosed
	}
	if days <= 0 || days > maxDurationDays {
		return ErrInvalidDuration
	}
	c.deadline = c.deadline.AddDate(0, 0, days)
	return nil
}

// HasFundedTier reports whether the principal has ever funded the tier at
// tierIndex. Out-of-range indices answer false rather than failing. The
// answer survives a refund.
func (c *Campaign) HasFundedTier(p Principal, tierIndex int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.backers[p]
	if !ok {
		return false
	}
	_, funded := rec.FundedTiers[tierIndex]
	return funded
}

// Tiers returns a copy of the tier ledger. Indices into the returned slice
// may be invalidated by a subsequent RemoveTier.
func (c *Campaign) Tiers() []Tier {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Balance returns the escrowed balance not yet withdrawn or refunded.
func (c *Campaign) Balance() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// Status returns the campaign state as of now without persisting it. This
// is the authoritative read; the stored field is only refreshed on
// mutating calls.
func (c *Campaign) Status() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return evaluate(c.state, c.balance, c.goal, c.deadline, c.now())
}

// Owner returns the campaign owner.
func (c *Campaign) Owner() Principal {
	return c.owner
}

// Name returns the campaign name.
func (c *Campaign) Name() string {
	return c.name
}

// Description returns the campaign description.
func (c *Campaign) Description() string {
	return c.description
}

// Goal returns the funding goal.
func (c *Campaign) Goal() uint64 {
	return c.goal
}

// Deadline returns the current deadline.
func (c *Campaign) Deadline() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deadline
}

// Paused reports whether funding is currently blocked by the owner.
func (c *Campaign) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
