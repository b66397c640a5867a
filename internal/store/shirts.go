package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lmoreno/camisas/internal/model"
)

// ShirtsSlot is the well-known slot key holding the whole inventory.
// The value is a JSON array; the key predates this server and must not change.
const ShirtsSlot = "inventario-camisas"

// LoadShirts returns the persisted inventory, in insertion order.
//
// A missing slot or a slot that no longer parses as JSON both fall back to the
// seed inventory without persisting it; only database errors propagate. The
// seed is persisted lazily by the first SaveShirts call.
func LoadShirts(ctx context.Context, db *sql.DB) ([]model.Shirt, error) {
	var raw string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, ShirtsSlot,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return model.SeedShirts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inventory slot: %w", err)
	}

	var shirts []model.Shirt
	if err := json.Unmarshal([]byte(raw), &shirts); err != nil {
		// Corrupt blob: recover with the seed rather than failing every view.
		return model.SeedShirts(), nil
	}
	if shirts == nil {
		shirts = []model.Shirt{}
	}
	return shirts, nil
}

// SaveShirts serializes the full inventory and overwrites the slot.
// Subsequent LoadShirts calls return exactly this sequence.
func SaveShirts(ctx context.Context, db *sql.DB, shirts []model.Shirt) error {
	if shirts == nil {
		shirts = []model.Shirt{}
	}

	raw, err := json.Marshal(shirts)
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)`,
		ShirtsSlot, string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing inventory slot: %w", err)
	}
	return nil
}
