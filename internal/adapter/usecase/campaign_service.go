package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignService is the campaign registry: it creates campaign engines,
// indexes them by id, and dispatches per-campaign operations. It
// implements port.CampaignUseCase.
//
// Engines live in memory for the lifetime of the process; the injected
// RegistryStore holds only the lightweight metadata entries.
type CampaignService struct {
	store port.RegistryStore
	admin domain.Principal

	mu      sync.RWMutex
	engines map[uuid.UUID]*domain.Campaign
	paused  bool
}

// NewCampaignService creates a service with the provided metadata store.
// admin is the only principal allowed to pause campaign creation.
func NewCampaignService(store port.RegistryStore, admin domain.Principal) *CampaignService {
	return &CampaignService{
		store:   store,
		admin:   admin,
		engines: make(map[uuid.UUID]*domain.Campaign),
	}
}

// Create builds a new campaign owned by creator, appends its metadata to
// the store and indexes the engine. Construction failures and store
// failures are propagated; nothing is registered on failure.
func (s *CampaignService) Create(ctx context.Context, creator domain.Principal, req port.CreateCampaignReq) (port.RegistryEntry, error) {
	s.mu.RLock()
	paused := s.paused
	s.mu.RUnlock()
	if paused {
		return port.RegistryEntry{}, port.ErrFactoryPaused
	}

	c, err := domain.NewCampaign(creator, req.Name, req.Description, req.Goal, req.DurationDays)
	if err != nil {
		return port.RegistryEntry{}, err
	}

	entry := port.RegistryEntry{
		CampaignID: uuid.New(),
		Creator:    creator,
		Name:       req.Name,
		CreatedAt:  time.Now(),
	}
	// Append runs outside the lock so a slow store cannot block engine
	// lookups. Pause is checked at entry: a creation already past the
	// check completes even if the registry pauses meanwhile.
	if err = s.store.Append(ctx, entry); err != nil {
		return port.RegistryEntry{}, err
	}

	s.mu.Lock()
	s.engines[entry.CampaignID] = c
	s.mu.Unlock()
	return entry, nil
}

// ListAll returns every registered campaign in creation order.
func (s *CampaignService) ListAll(ctx context.Context) ([]port.RegistryEntry, error) {
	return s.store.ListAll(ctx)
}

// ListByCreator returns the creator's campaigns in creation order.
func (s *CampaignService) ListByCreator(ctx context.Context, creator domain.Principal) ([]port.RegistryEntry, error) {
	return s.store.ListByCreator(ctx, creator)
}

// TogglePause flips the registry's paused flag. Admin-only. A paused
// registry rejects Create but leaves existing campaigns untouched.
func (s *CampaignService) TogglePause(_ context.Context, caller domain.Principal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return false, domain.ErrUnauthorized
	}
	s.paused = !s.paused
	return s.paused, nil
}

// engine resolves a campaign id to its in-memory engine.
func (s *CampaignService) engine(id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.engines[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// Detail returns the read model for one campaign. State is computed by
// the pure projection, so it is authoritative even when the stored state
// is stale.
func (s *CampaignService) Detail(_ context.Context, id uuid.UUID) (port.CampaignDetail, error) {
	c, err := s.engine(id)
	if err != nil {
		return port.CampaignDetail{}, err
	}
	return port.CampaignDetail{
		ID:          id,
		Name:        c.Name(),
		Description: c.Description(),
		Owner:       c.Owner(),
		Goal:        c.Goal(),
		Deadline:    c.Deadline(),
		Balance:     c.Balance(),
		Paused:      c.Paused(),
		State:       c.Status(),
	}, nil
}

// Tiers returns the campaign's tier ledger.
func (s *CampaignService) Tiers(_ context.Context, id uuid.UUID) ([]domain.Tier, error) {
	c, err := s.engine(id)
	if err != nil {
		return nil, err
	}
	return c.Tiers(), nil
}

// AddTier appends a funding tier to the campaign. Owner-only.
func (s *CampaignService) AddTier(_ context.Context, caller domain.Principal, id uuid.UUID, name string, amount uint64) error {
	c, err := s.engine(id)
	if err != nil {
		return err
	}
	return c.AddTier(caller, name, amount)
}

// RemoveTier removes the tier at index. Owner-only.
func (s *CampaignService) RemoveTier(_ context.Context, caller domain.Principal, id uuid.UUID, index int) error {
	c, err := s.engine(id)
	if err != nil {
		return err
	}
	return c.RemoveTier(caller, index)
}

// Fund contributes exactly the tier's required amount as caller.
func (s *CampaignService) Fund(_ context.Context, caller domain.Principal, id uuid.UUID, tierIndex int, amount uint64) error {
	c, err := s.engine(id)
	if err != nil {
		return err
	}
	return c.Fund(caller, tierIndex, amount)
}

// Withdraw pays the held balance out to the owner of a Successful
// campaign.
func (s *CampaignService) Withdraw(_ context.Context, caller domain.Principal, id uuid.UUID) (uint64, error) {
	c, err := s.engine(id)
	if err != nil {
		return 0, err
	}
	return c.Withdraw(caller)
}

// Refund returns the caller's contribution from a Failed campaign.
func (s *CampaignService) Refund(_ context.Context, caller domain.Principal, id uuid.UUID) (uint64, error) {
	c, err := s.engine(id)
	if err != nil {
		return 0, err
	}
	return c.Refund(caller)
}

// HasFundedTier reports whether backer has ever funded the tier.
func (s *CampaignService) HasFundedTier(_ context.Context, id uuid.UUID, backer domain.Principal, tierIndex int) (bool, error) {
	c, err := s.engine(id)
	if err != nil {
		return false, err
	}
	return c.HasFundedTier(backer, tierIndex), nil
}

// TogglePauseCampaign flips the campaign's paused flag. Owner-only.
func (s *CampaignService) TogglePauseCampaign(_ context.Context, caller domain.Principal, id uuid.UUID) (bool, error) {
	c, err := s.engine(id)
	if err != nil {
		return false, err
	}
	return c.TogglePause(caller)
}

// ExtendDeadline pushes the campaign deadline out by days. Owner-only.
func (s *CampaignService) ExtendDeadline(_ context.Context, caller domain.Principal, id uuid.UUID, days int) error {
	c, err := s.engine(id)
	if err != nil {
		return err
	}
	return c.ExtendDeadline(caller, days)
}
