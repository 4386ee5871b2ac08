package domain

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// TestConcurrentFunding ensures concurrent contributions to one campaign
// serialize on the instance mutex without losing money: the held balance,
// the backer totals and the tier backer count must all agree afterwards.
func TestConcurrentFunding(t *testing.T) {
	c := newTestCampaign(t, 1_000_000, 30)
	if err := c.AddTier(owner, "Bronze", 100); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}

	const (
		backers   = 16
		callsEach = 8
	)

	wg := sync.WaitGroup{}
	wg.Add(backers)
	for i := 0; i < backers; i++ {
		backer := Principal(fmt.Sprintf("backer-%d", i))
		go func() {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				if err := c.Fund(backer, 0, 100); err != nil {
					t.Errorf("Fund(%s) error: %v", backer, err)
				}
			}
		}()
	}
	wg.Wait()

	const want = backers * callsEach * 100
	if got := c.Balance(); got != want {
		t.Fatalf("balance = %d, want %d", got, want)
	}
	var total uint64
	for _, rec := range c.backers {
		total += rec.Total
	}
	if total != want {
		t.Fatalf("sum of contributions = %d, want %d", total, want)
	}
	if got := c.Tiers()[0].Backers; got != backers*callsEach {
		t.Fatalf("tier backers = %d, want %d", got, backers*callsEach)
	}
}

// TestConcurrentWithdrawMovesMoneyOnce ensures racing withdrawals release
// the balance exactly once: one call gets the full payout, every other
// call fails with ErrZeroBalance.
func TestConcurrentWithdrawMovesMoneyOnce(t *testing.T) {
	c := newTestCampaign(t, 1000, 1)
	if err := c.AddTier(owner, "All in", 1000); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	if err := c.Fund("alice", 0, 1000); err != nil {
		t.Fatalf("Fund error: %v", err)
	}

	const calls = 10
	payouts := make(chan uint64, calls)
	failures := make(chan error, calls)

	wg := sync.WaitGroup{}
	wg.Add(calls)
	for i := 0; i < calls; i++ {
		go func() {
			defer wg.Done()
			amount, err := c.Withdraw(owner)
			if err != nil {
				failures <- err
				return
			}
			payouts <- amount
		}()
	}
	wg.Wait()
	close(payouts)
	close(failures)

	var released uint64
	wins := 0
	for amount := range payouts {
		released += amount
		wins++
	}
	if wins != 1 || released != 1000 {
		t.Fatalf("got %d successful withdrawals releasing %d, want exactly one releasing 1000", wins, released)
	}
	for err := range failures {
		if !errors.Is(err, ErrZeroBalance) {
			t.Fatalf("losing withdrawal: got %v, want ErrZeroBalance", err)
		}
	}
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
}

// TestConcurrentRefundPerBackerOnce ensures racing refunds for one backer
// pay out exactly once; the rest observe the zeroed record.
func TestConcurrentRefundPerBackerOnce(t *testing.T) {
	c := newTestCampaign(t, 10000, 1)
	if err := c.AddTier(owner, "Bronze", 400); err != nil {
		t.Fatalf("AddTier error: %v", err)
	}
	if err := c.Fund("alice", 0, 400); err != nil {
		t.Fatalf("Fund error: %v", err)
	}
	pastDeadline(c)

	const calls = 10
	refunds := make(chan uint64, calls)
	failures := make(chan error, calls)

	wg := sync.WaitGroup{}
	wg.Add(calls)
	for i := 0; i < calls; i++ {
		go func() {
			defer wg.Done()
			amount, err := c.Refund("alice")
			if err != nil {
				failures <- err
				return
			}
			refunds <- amount
		}()
	}
	wg.Wait()
	close(refunds)
	close(failures)

	var returned uint64
	wins := 0
	for amount := range refunds {
		returned += amount
		wins++
	}
	if wins != 1 || returned != 400 {
		t.Fatalf("got %d successful refunds returning %d, want exactly one returning 400", wins, returned)
	}
	for err := range failures {
		if !errors.Is(err, ErrNoContribution) {
			t.Fatalf("losing refund: got %v, want ErrNoContribution", err)
		}
	}
	if got := c.Balance(); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
}
