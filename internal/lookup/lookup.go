// Package lookup derives a code → shirt index from an inventory snapshot.
// The index is ephemeral: it is rebuilt from the current snapshot on every
// public resolution and never persisted.
package lookup

import "github.com/lmoreno/camisas/internal/model"

// Index maps a shirt's unique code to the shirt itself.
type Index map[string]model.Shirt

// Build constructs an index from a snapshot in a single pass. If two shirts
// share a code the later one wins; the repository rejects duplicates at write
// time, so this only matters for pre-existing data.
func Build(shirts []model.Shirt) Index {
	idx := make(Index, len(shirts))
	for _, s := range shirts {
		idx[s.Code] = s
	}
	return idx
}

// Resolve looks up a shirt by code.
func (idx Index) Resolve(code string) (model.Shirt, bool) {
	s, ok := idx[code]
	return s, ok
}
