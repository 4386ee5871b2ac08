package domain

import "errors"

// Campaign operations fail with one of these sentinel errors so callers
// can assert on the exact condition with errors.Is. Failures are
// call-aborting and side-effect-free: no bookkeeping survives a failed
// call.
var (
	// ErrUnauthorized is returned when a non-owner calls an owner-only
	// operation.
	ErrUnauthorized = errors.New("caller is not the campaign owner")

	// ErrCampaignClosed is returned by fund when the campaign has already
	// resolved to Successful or Failed, and by extendDeadline once the
	// campaign is no longer Active.
	ErrCampaignClosed = errors.New("campaign is not active")

	// ErrPaused is returned by fund while the owner has paused the
	// campaign.
	ErrPaused = errors.New("campaign is paused")

	// ErrNotSuccessful is returned by withdraw when the campaign did not
	// resolve to Successful.
	ErrNotSuccessful = errors.New("campaign is not successful")

	// ErrNotFailed is returned by refund when the campaign did not resolve
	// to Failed.
	ErrNotFailed = errors.New("campaign has not failed")

	// ErrInvalidAmount is returned when a tier is created with a zero
	// required amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidDuration is returned when a campaign duration or deadline
	// extension is zero, negative or implausibly large.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrTierNotFound is returned when a tier index is out of bounds.
	ErrTierNotFound = errors.New("tier not found")

	// ErrAmountMismatch is returned by fund when the payment does not
	// exactly match the tier's required amount.
	ErrAmountMismatch = errors.New("payment does not match tier amount")

	// ErrZeroBalance is returned by withdraw when the held balance is
	// already zero.
	ErrZeroBalance = errors.New("campaign balance is zero")

	// ErrNoContribution is returned by refund when the caller has no
	// recorded contribution.
	ErrNoContribution = errors.New("no contribution to refund")
)
