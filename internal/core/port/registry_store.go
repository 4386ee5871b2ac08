package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when an operation addresses a
	// campaign id the registry does not know.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrFactoryPaused is returned by Create while the registry admin has
	// paused new campaign creation. Existing campaigns are unaffected.
	ErrFactoryPaused = errors.New("campaign creation is paused")
)

// RegistryEntry is the metadata the registry records for a created
// campaign. Entries are immutable once appended and are listed in
// insertion order.
type RegistryEntry struct {
	CampaignID uuid.UUID
	Creator    domain.Principal
	Name       string
	CreatedAt  time.Time
}

// RegistryStore is the outbound port for registry metadata. It is an
// append-only store: entries are never updated or removed, and both
// listings preserve insertion order. Implementations must be
// concurrency-safe.
type RegistryStore interface {
	// Append records the metadata for a newly created campaign.
	Append(ctx context.Context, entry RegistryEntry) error
	// ListAll returns every entry in insertion order.
	ListAll(ctx context.Context) ([]RegistryEntry, error)
	// ListByCreator returns the creator's entries in insertion order,
	// possibly empty.
	ListByCreator(ctx context.Context, creator domain.Principal) ([]RegistryEntry, error)
}
