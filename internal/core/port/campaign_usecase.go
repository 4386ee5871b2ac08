package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CreateCampaignReq carries the parameters for a new campaign. Goal is in
// integer currency units; DurationDays sets the deadline relative to
// creation time.
type CreateCampaignReq struct {
	Name         string
	Description  string
	Goal         uint64
	DurationDays int
}

// CampaignDetail is the read model for a single campaign. State is the
// authoritative projection, not the stored field. It is a DTO used by the
// HTTP layer and does not contain domain behaviour.
type CampaignDetail struct {
	ID          uuid.UUID
	Name        string
	Description string
	Owner       domain.Principal
	Goal        uint64
	Deadline    time.Time
	Balance     uint64
	Paused      bool
	State       domain.State
}

// CampaignUseCase is the primary port into the application: the campaign
// registry (factory) plus every per-campaign operation, dispatched by
// campaign id. Every mutating operation takes the authenticated caller
// principal explicitly; the transport layer is responsible for supplying
// it. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// Create builds a new campaign owned by creator and registers it. It
	// fails with ErrFactoryPaused while the registry is paused and
	// propagates campaign construction failures unchanged.
	Create(ctx context.Context, creator domain.Principal, req CreateCampaignReq) (RegistryEntry, error)
	// ListAll returns every registered campaign in creation order.
	ListAll(ctx context.Context) ([]RegistryEntry, error)
	// ListByCreator returns the creator's campaigns in creation order.
	ListByCreator(ctx context.Context, creator domain.Principal) ([]RegistryEntry, error)
	// TogglePause blocks or unblocks new campaign creation. Only the
	// registry admin may call it. Returns the new paused value.
	TogglePause(ctx context.Context, caller domain.Principal) (bool, error)

	// Detail returns the read model for one campaign.
	Detail(ctx context.Context, id uuid.UUID) (CampaignDetail, error)
	// Tiers returns the campaign's tier ledger.
	Tiers(ctx context.Context, id uuid.UUID) ([]domain.Tier, error)
	// AddTier appends a funding tier. Owner-only.
	AddTier(ctx context.Context, caller domain.Principal, id uuid.UUID, name string, amount uint64) error
	// RemoveTier removes the tier at index. Owner-only. Indices are not
	// stable: the last tier takes over the removed slot.
	RemoveTier(ctx context.Context, caller domain.Principal, id uuid.UUID, index int) error
	// Fund contributes exactly the tier's required amount as caller.
	Fund(ctx context.Context, caller domain.Principal, id uuid.UUID, tierIndex int, amount uint64) error
	// Withdraw pays the held balance out to the owner of a Successful
	// campaign and returns the payout.
	Withdraw(ctx context.Context, caller domain.Principal, id uuid.UUID) (uint64, error)
	// Refund returns the caller's contribution from a Failed campaign.
	Refund(ctx context.Context, caller domain.Principal, id uuid.UUID) (uint64, error)
	// HasFundedTier reports whether backer has ever funded the tier.
	HasFundedTier(ctx context.Context, id uuid.UUID, backer domain.Principal, tierIndex int) (bool, error)
	// TogglePauseCampaign flips the campaign's paused flag. Owner-only.
	TogglePauseCampaign(ctx context.Context, caller domain.Principal, id uuid.UUID) (bool, error)
	// ExtendDeadline pushes the campaign deadline out by days. Owner-only,
	// Active campaigns only.
	ExtendDeadline(ctx context.Context, caller domain.Principal, id uuid.UUID, days int) error
}
