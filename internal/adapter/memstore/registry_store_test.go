package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func entry(creator domain.Principal, name string) port.RegistryEntry {
	return port.RegistryEntry{
		CampaignID: uuid.New(),
		Creator:    creator,
		Name:       name,
		CreatedAt:  time.Now(),
	}
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if err := s.Append(ctx, entry("alice", name)); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Fatalf("all[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestListByCreator(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, e := range []port.RegistryEntry{
		entry("alice", "Alpha"),
		entry("bob", "Beta"),
		entry("alice", "Gamma"),
	} {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	mine, err := s.ListByCreator(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByCreator error: %v", err)
	}
	if len(mine) != 2 || mine[0].Name != "Alpha" || mine[1].Name != "Gamma" {
		t.Fatalf("unexpected entries: %+v", mine)
	}

	none, err := s.ListByCreator(ctx, "carol")
	if err != nil || len(none) != 0 {
		t.Fatalf("ListByCreator(carol) = (%+v, %v), want empty", none, err)
	}
}
