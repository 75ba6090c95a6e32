// Package catalog provides read-only access to card definitions grouped by set
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/kingdom-randomizer/internal/catalog Catalog

import (
	"context"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// Catalog is the read-only card source the randomizer draws from.
// Implementations must be safe for concurrent readers.
type Catalog interface {
	// Sets lists every known set
	Sets(ctx context.Context) ([]*entities.Set, error)

	// CardsForSets returns the supply cards of the given sets in catalog order
	// Returns errors.NotFound if any set id is unknown
	CardsForSets(ctx context.Context, setIDs []entities.SetID) ([]*entities.SupplyCard, error)

	// AddonsForSets returns the events, landmarks, projects and ways of the given sets
	// Returns errors.NotFound if any set id is unknown
	AddonsForSets(ctx context.Context, setIDs []entities.SetID) ([]*entities.Addon, error)

	// CardByID resolves a supply card or addon by id or short id
	// Returns errors.NotFound if no card matches
	CardByID(ctx context.Context, id string) (entities.AnyCard, error)
}
