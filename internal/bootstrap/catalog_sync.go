package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/LootForge_Go/internal/catalog"
)

// WeaponStatsSeeder creates zeroed counter rows for catalog weapons
type WeaponStatsSeeder interface {
	SeedWeaponStats(ctx context.Context, weaponIDs []int) (int, error)
}

// SyncCatalog makes sure every catalog weapon has a drop counter row so the
// stats endpoints list weapons that have never dropped.
func SyncCatalog(ctx context.Context, seeder WeaponStatsSeeder, c *catalog.Catalog) error {
	slog.Info(LogMsgSyncingCatalog)

	weapons := c.Weapons()
	if len(weapons) == 0 {
		return errors.New(ErrMsgCatalogHasNoWeapons)
	}

	ids := make([]int, len(weapons))
	for i, w := range weapons {
		ids[i] = w.ID
	}

	created, err := seeder.SeedWeaponStats(ctx, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if created > 0 {
		slog.Info(LogMsgCatalogSynced, "inserted", created, "weapons", len(ids))
	} else {
		slog.Info(LogMsgCatalogUnchanged, "weapons", len(ids))
	}
	return nil
}
