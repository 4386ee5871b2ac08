package domain

import (
	"errors"
	"testing"
	"time"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const owner = Principal("owner")

// newTestCampaign builds a campaign pinned to a fixed clock so tests can
// move time deterministically.
func newTestCampaign(t *testing.T, goal uint64, days int) *Campaign {
	t.Helper()
	c, err := NewCampaign(owner, "Gadget", "a gadget worth funding", goal, days)
	if err != nil {
		t.Fatalf("NewCampaign error: %v", err)
	}
	c.now = func() time.Time { return base }
	c.deadline = base.AddDate(0, 0, days)
	return c
}

// pastDeadline moves the campaign clock one second past its deadline.
func pastDeadline(c *Campaign) {
	c.now = func() time.Time { return c.deadline.Add(time.Second) }
}

func TestNewCampaignRejectsInvalidDurations(t *testing.T) {
	for _, days := range []int{0, -1, maxDurationDays + 1} {
		if _, err := NewCampaign(owner, "x", "", 1000, days); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("days=%d: got %v, want ErrInvalidDuration", days, err)
		}
	}
}

func TestZeroGoalIsImmediatelySuccessful(t *testing.T) {
	c := newTestCampaign(t, 0, 30)
	if got := c.Status(); got != StateSuccessful {
		t.Fatalf("status = %v, want successful", got)
	}
}

func TestAddTier(t *testing.T) {
	c := newTestCampaign(t, 1000, 30)

	if err := c.AddTier("stranger", "Bronze", 100); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-owner add: got %v, want ErrUnauthorized", err)
	}
	if err := c.AddTier(owner, "Free", 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if err := c.AddTier(owner, "Bronze", 100); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	tiers := c.Tiers()
	if len(tiers) != 1 || tiers[0].Name != "Bronze" || tiers[0].Amount != 100 || tiers[0].Backers != 0 {
		t.Fatalf("unexpected tiers: %+v", tiers)
	}
}

func TestRemoveTierSwapsWithLast(t *testing.T) {
	c := newTestCampaign(t, 1000, 30)
	for _, name := range []string{"Bronze", "Silver", "Gold"} {
		if err := c.AddTier(owner, name, 100); err != nil {
			t.Fatalf("AddTier error: %v", err)
		}
	}

	if err := c.RemoveTier("stranger", 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-owner remove: got %v, want ErrUnauthorized", err)
	}
	if err := c.RemoveTier(owner, 3); !errors.Is(err, ErrTierNotFound) {
		t.Fatalf("out of range: got %v, want ErrTierNotFound", err)
	}

	if err := c.RemoveTier(owner, 0); err != nil {
		t.Fatalf("RemoveTier error: %v", err)
	}
	tiers := c.Tiers()
	if len(tiers) != 2 {
		t.Fatalf("len(tiers) = %d, want 2", len(tiers))
	}
	// the formerly last tier takes over index 0
	if tiers[0].Name != "Gold" || tiers[1].Name != "Silver" {
		t.Fatalf("unexpected order after removal: %+v", tiers)
	}
}

func TestFundRequiresExactAmount(t *testing.T) {
	c := newTestCampaign(t, 1000, 30)
	if err := c.AddTier(owner, "Bronze", 400); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}

	for _, amount := range []uint64{0, 399, 401} {
		if err := c.Fund("alice", 0, amount); !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("amount=%d: got %v, want ErrAmountMismatch", amount, err)
		}
	}
	// a failed call leaves no bookkeeping behind
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
	if c.Tiers()[0].Backers != 0 {
		t.Fatalf("tier backers = %d, want 0", c.Tiers()[0].Backers)
	}
	if c.HasFundedTier("alice", 0) {
		t.Fatal("alice marked as having funded after failed call")
	}
}

func TestFundTracksLedgers(t *testing.T) {
	c := newTestCampaign(t, 10000, 30)
	if err := c.AddTier(owner, "Bronze", 100); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	if err := c.AddTier(owner, "Silver", 250); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}

	if err := c.Fund("alice", 0, 100); err != nil {
		t.Fatalf("Fund error: %v", err)
	}
	if err := c.Fund("alice", 1, 250); err != nil {
		t.Fatalf("Fund error: %v", err)
	}
	if err := c.Fund("bob", 0, 100); err != nil {
		t.Fatalf("Fund error: %v", err)
	}

	// the held balance equals the sum of all recorded contributions
	if got := c.Balance(); got != 450 {
		t.Fatalf("balance = %d, want 450", got)
	}
	var total uint64
	for _, rec := range c.backers {
		total += rec.Total
	}
	if total != 450 {
		t.Fatalf("sum of contributions = %d, want 450", total)
	}

	tiers := c.Tiers()
	if tiers[0].Backers != 2 || tiers[1].Backers != 1 {
		t.Fatalf("unexpected backer counts: %+v", tiers)
	}
	if !c.HasFundedTier("alice", 0) || !c.HasFundedTier("alice", 1) || !c.HasFundedTier("bob", 0) {
		t.Fatal("funded-tier membership missing")
	}
	if c.HasFundedTier("bob", 1) || c.HasFundedTier("carol", 0) || c.HasFundedTier("alice", 99) {
		t.Fatal("unexpected funded-tier membership")
	}
}

func TestFundUnknownTier(t *testing.T) {
	c := newTestCampaign(t, 1000, 30)
	if err := c.Fund("alice", 0, 100); !errors.Is(err, ErrTierNotFound) {
		t.Fatalf("got %v, want ErrTierNotFound", err)
	}
	if err := c.Fund("alice", -1, 100); !errors.Is(err, ErrTierNotFound) {
		t.Fatalf("negative index: got %v, want ErrTierNotFound", err)
	}
}

func TestPausedBlocksFunding(t *testing.T) {
	c := newTestCampaign(t, 1000, 30)
	if err := c.AddTier(owner, "Bronze", 100); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}

	if _, err := c.TogglePause("stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-owner pause: got %v, want ErrUnauthorized", err)
	}
	paused, err := c.TogglePause(owner)
	if err != nil || !paused {
		t.Fatalf("TogglePause = (%v, %v), want (true, nil)", paused, err)
	}

	if err = c.Fund("alice", 0, 100); !errors.Is(err, ErrPaused) {
		t.Fatalf("got %v, want ErrPaused", err)
	}

	paused, err = c.TogglePause(owner)
	if err != nil || paused {
		t.Fatalf("TogglePause = (%v, %v), want (false, nil)", paused, err)
	}
	if err = c.Fund("alice", 0, 100); err != nil {
		t.Fatalf("Fund after unpause error: %v", err)
	}
}

func TestEarlySuccessBeforeDeadline(t *testing.T) {
	c := newTestCampaign(t, 1000, 1)
	if err := c.AddTier(owner, "All in", 1000); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}

	if err := c.Fund("alice", 0, 1000); err != nil {
		t.Fatalf("Fund error: %v", err)
	}
	if got := c.Status(); got != StateSuccessful {
		t.Fatalf("status = %v, want successful", got)
	}
	// terminal: no further funding, no refunds
	if err := c.Fund("bob", 0, 1000); !errors.Is(err, ErrCampaignClosed) {
		t.Fatalf("fund after success: got %v, want ErrCampaignClosed", err)
	}
	if _, err := c.Refund("alice"); !errors.Is(err, ErrNotFailed) {
		t.Fatalf("refund after success: got %v, want ErrNotFailed", err)
	}

	payout, err := c.Withdraw(owner)
	if err != nil || payout != 1000 {
		t.Fatalf("Withdraw = (%d, %v), want (1000, nil)", payout, err)
	}
	if _, err = c.Withdraw(owner); !errors.Is(err, ErrZeroBalance) {
		t.Fatalf("second withdraw: got %v, want ErrZeroBalance", err)
	}
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
}

func TestFailureOnlyRecognizedAfterDeadline(t *testing.T) {
	c := newTestCampaign(t, 1000, 1)
	if err := c.AddTier(owner, "Bronze", 400); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	if err := c.Fund("alice", 0, 400); err != nil {
		t.Fatalf("Fund error: %v", err)
	}

	// under goal but before the deadline: still active, not failed
	if got := c.Status(); got != StateActive {
		t.Fatalf("status before deadline = %v, want active", got)
	}

	pastDeadline(c)
	if got := c.Status(); got != StateFailed {
		t.Fatalf("status after deadline = %v, want failed", got)
	}
	// failed stays failed no matter how much time passes
	c.now = func() time.Time { return c.deadline.AddDate(10, 0, 0) }
	if got := c.Status(); got != StateFailed {
		t.Fatalf("status much later = %v, want failed", got)
	}

	if _, err := c.Withdraw(owner); !errors.Is(err, ErrNotSuccessful) {
		t.Fatalf("withdraw after failure: got %v, want ErrNotSuccessful", err)
	}

	amount, err := c.Refund("alice")
	if err != nil || amount != 400 {
		t.Fatalf("Refund = (%d, %v), want (400, nil)", amount, err)
	}
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance after refund = %d, want 0", got)
	}
	if _, err = c.Refund("alice"); !errors.Is(err, ErrNoContribution) {
		t.Fatalf("second refund: got %v, want ErrNoContribution", err)
	}
	if _, err = c.Refund("bob"); !errors.Is(err, ErrNoContribution) {
		t.Fatalf("non-contributor refund: got %v, want ErrNoContribution", err)
	}
	// membership survives the refund even though the total is zeroed
	if !c.HasFundedTier("alice", 0) {
		t.Fatal("funded-tier membership lost after refund")
	}
}

func TestRefundsDrainBalanceAcrossBackers(t *testing.T) {
	c := newTestCampaign(t, 10000, 1)
	if err := c.AddTier(owner, "Bronze", 300); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	for _, backer := range []Principal{"alice", "bob", "carol"} {
		if err := c.Fund(backer, 0, 300); err != nil {
			t.Fatalf("Fund error: %v", err)
		}
	}
	pastDeadline(c)

	for _, backer := range []Principal{"alice", "bob", "carol"} {
		amount, err := c.Refund(backer)
		if err != nil || amount != 300 {
			t.Fatalf("Refund(%s) = (%d, %v), want (300, nil)", backer, amount, err)
		}
	}
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance after all refunds = %d, want 0", got)
	}
}

func TestStatusProjectionDoesNotPersist(t *testing.T) {
	c := newTestCampaign(t, 1000, 1)
	pastDeadline(c)

	if got := c.Status(); got != StateFailed {
		t.Fatalf("status = %v, want failed", got)
	}
	// the stored field is only a cache; Status must not have written it
	if c.state != StateActive {
		t.Fatalf("stored state = %v, want active", c.state)
	}

	// a mutating call refreshes and persists the terminal state
	if err := c.ExtendDeadline(owner, 10); !errors.Is(err, ErrCampaignClosed) {
		t.Fatalf("extend after deadline: got %v, want ErrCampaignClosed", err)
	}
	if c.state != StateFailed {
		t.Fatalf("stored state after refresh = %v, want failed", c.state)
	}
}

func TestExtendDeadline(t *testing.T) {
	c := newTestCampaign(t, 1000, 1)
	original := c.deadline

	if err := c.ExtendDeadline("stranger", 5); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("non-owner extend: got %v, want ErrUnauthorized", err)
	}
	for _, days := range []int{0, -3, maxDurationDays + 1} {
		if err := c.ExtendDeadline(owner, days); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("days=%d: got %v, want ErrInvalidDuration", days, err)
		}
	}

	if err := c.ExtendDeadline(owner, 5); err != nil {
		t.Fatalf("ExtendDeadline error: %v", err)
	}
	if got := c.Deadline(); !got.Equal(original.AddDate(0, 0, 5)) {
		t.Fatalf("deadline = %v, want %v", got, original.AddDate(0, 0, 5))
	}

	// past the original deadline but before the extended one: still active
	c.now = func() time.Time { return original.Add(time.Hour) }
	if got := c.Status(); got != StateActive {
		t.Fatalf("status within extension = %v, want active", got)
	}
}
