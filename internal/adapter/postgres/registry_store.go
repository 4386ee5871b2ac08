package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// RegistryStore implements port.RegistryStore on PostgreSQL using pgxpool.
// Rows are append-only; insertion order is preserved by a serial sequence
// column, so listings match the in-memory store's ordering semantics. The
// store holds registry metadata only, never engine state.
type RegistryStore struct {
	pool *pgxpool.Pool
}

// NewRegistryStore returns a new store instance.
func NewRegistryStore(pool *pgxpool.Pool) *RegistryStore {
	return &RegistryStore{pool: pool}
}

// Append inserts the entry.
func (s *RegistryStore) Append(ctx context.Context, entry port.RegistryEntry) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO registry_entries
    (campaign_id, creator, name, created_at)
VALUES ($1, $2, $3, $4)`,
		entry.CampaignID, string(entry.Creator), entry.Name, entry.CreatedAt)
	return err
}

// ListAll returns every entry in insertion order.
func (s *RegistryStore) ListAll(ctx context.Context) ([]port.RegistryEntry, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT campaign_id, creator, name, created_at
        FROM registry_entries
        ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// ListByCreator returns the creator's entries in insertion order.
func (s *RegistryStore) ListByCreator(ctx context.Context, creator domain.Principal) ([]port.RegistryEntry, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT campaign_id, creator, name, created_at
        FROM registry_entries
        WHERE creator = $1
        ORDER BY seq`, string(creator))
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]port.RegistryEntry, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.RegistryEntry, error) {
		var (
			e       port.RegistryEntry
			creator string
		)
		err := row.Scan(&e.CampaignID, &creator, &e.Name, &e.CreatedAt)
		e.Creator = domain.Principal(creator)
		return e, err
	})
}
