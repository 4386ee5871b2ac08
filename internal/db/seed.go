package db

import (
	"context"
	"fmt"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed creates demo campaigns with a few tiers through the service. It
// goes through the use case rather than the store so the campaign engines
// actually exist and can be funded.
func Seed(ctx context.Context, svc port.CampaignUseCase) error {
	tiers := []struct {
		name   string
		amount uint64
	}{
		{"Supporter", 500},
		{"Backer", 2500},
		{"Patron", 10000},
	}

	for i := 1; i <= 3; i++ {
		creator := domain.Principal(fmt.Sprintf("demo-creator-%d", i))
		entry, err := svc.Create(ctx, creator, port.CreateCampaignReq{
			Name:         fmt.Sprintf("Demo Campaign %d", i),
			Description:  "seeded demo campaign",
			Goal:         uint64(i) * 50000,
			DurationDays: 30 * i,
		})
		if err != nil {
			return err
		}
		for _, tier := range tiers {
			if err = svc.AddTier(ctx, creator, entry.CampaignID, tier.name, tier.amount); err != nil {
				return err
			}
		}
	}
	return nil
}
