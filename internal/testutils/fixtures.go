package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/testutils/builders"
)

// Fixture set ids
const (
	SetAlpha entities.SetID = "alpha"
	SetBeta  entities.SetID = "beta"
	SetBare  entities.SetID = "bare"
)

// AlphaSet has one card per capability, two attacks, a reaction and plain
// cards spread over costs 2 to 6, plus one addon of each kind
func AlphaSet() *entities.Set {
	cards := []*entities.SupplyCard{
		builders.NewSupplyCardBuilder("village").InSet(SetAlpha).WithShortID("vi").Costing(3).
			WithCapabilities(entities.CapabilityActionProvider).Build(),
		builders.NewSupplyCardBuilder("market").InSet(SetAlpha).WithShortID("ma").Costing(5).
			WithCapabilities(entities.CapabilityBuyProvider).Build(),
		builders.NewSupplyCardBuilder("chapel").InSet(SetAlpha).WithShortID("ch").Costing(2).
			WithCapabilities(entities.CapabilityTrashing).Build(),
		builders.NewSupplyCardBuilder("moat").InSet(SetAlpha).WithShortID("mo").Costing(2).Reaction().Build(),
		builders.NewSupplyCardBuilder("militia").InSet(SetAlpha).WithShortID("mi").Costing(4).Attack().Build(),
		builders.NewSupplyCardBuilder("witch").InSet(SetAlpha).WithShortID("wi").Costing(5).Attack().Build(),
	}
	for i, cost := range []int{2, 3, 4, 4, 5, 6} {
		card := builders.NewSupplyCardBuilder("alpha-" + string(rune('a'+i))).InSet(SetAlpha).Costing(cost).Build()
		cards = append(cards, card)
	}

	return &entities.Set{
		ID:          SetAlpha,
		Name:        "Alpha",
		SupplyCards: cards,
		Addons: []*entities.Addon{
			entities.NewAddon(entities.Card{ID: "alms", SetID: SetAlpha, Name: "Alms", Cost: entities.Cost{Treasure: 0}}, entities.AddonKindEvent),
			entities.NewAddon(entities.Card{ID: "arena", SetID: SetAlpha, Name: "Arena"}, entities.AddonKindLandmark),
			entities.NewAddon(entities.Card{ID: "academy", SetID: SetAlpha, Name: "Academy", Cost: entities.Cost{Treasure: 5}}, entities.AddonKindProject),
			entities.NewAddon(entities.Card{ID: "way_of_the_ox", SetID: SetAlpha, Name: "Way of the Ox"}, entities.AddonKindWay),
		},
	}
}

// BetaSet has eleven plain cards, one action-victory card and two events
func BetaSet() *entities.Set {
	cards := builders.Fillers(SetBeta, "beta", 11)
	cards = append(cards, builders.NewSupplyCardBuilder("beta-12").InSet(SetBeta).
		WithTypes(entities.CardTypeVictory).Build())

	return &entities.Set{
		ID:          SetBeta,
		Name:        "Beta",
		SupplyCards: cards,
		Addons: []*entities.Addon{
			entities.NewAddon(entities.Card{ID: "bonfire", SetID: SetBeta, Name: "Bonfire", Cost: entities.Cost{Treasure: 3}}, entities.AddonKindEvent),
			entities.NewAddon(entities.Card{ID: "borrow", SetID: SetBeta, Name: "Borrow", Cost: entities.Cost{Treasure: 0}}, entities.AddonKindEvent),
		},
	}
}

// BareSet has eleven plain cards: no capabilities and no addons
func BareSet() *entities.Set {
	return &entities.Set{
		ID:          SetBare,
		Name:        "Bare",
		SupplyCards: builders.Fillers(SetBare, "bare", 11),
	}
}

// CreateTestCatalog builds an in-memory catalog from the alpha, beta and
// bare fixture sets
func CreateTestCatalog(t *testing.T) *catalog.InMemory {
	t.Helper()

	cat, err := catalog.NewInMemory([]*entities.Set{AlphaSet(), BetaSet(), BareSet()})
	require.NoError(t, err, "failed to build test catalog")
	return cat
}

// CreateDefaultCatalog loads the bundled card catalog
func CreateDefaultCatalog(t *testing.T) *catalog.InMemory {
	t.Helper()

	cat, err := catalog.LoadDefault()
	require.NoError(t, err, "failed to load bundled catalog")
	return cat
}
