package kingdom

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// BuildFullKingdom draws a new kingdom and gives it an identity
func (o *orchestrator) BuildFullKingdom(ctx context.Context, input *BuildFullKingdomInput) (*BuildFullKingdomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	kingdom, err := o.engine.SampleKingdom(ctx, o.catalog, input.Options)
	if err != nil {
		return nil, err
	}

	return &BuildFullKingdomOutput{
		Kingdom: kingdom.WithIdentity(o.idGen.Generate(), o.clock.Now()),
	}, nil
}

// locks splits a kingdom's cards by whether the selection holds them
type locks struct {
	supply         []string
	addons         []*entities.Addon
	supplyComplete bool
	addonTotal     int
}

func locksFor(kingdom *entities.Kingdom, selection entities.Selection) locks {
	l := locks{
		supplyComplete: kingdom.Supply.IsComplete(),
	}
	for _, id := range kingdom.Supply.IDs() {
		if selection.Contains(id) {
			l.supply = append(l.supply, id)
		}
	}
	for _, addon := range kingdom.Addons().All() {
		l.addonTotal++
		if selection.Contains(addon.ID) {
			l.addons = append(l.addons, addon)
		}
	}
	return l
}

// supplyLocked reports whether the supply is complete and fully locked
func (l locks) supplyLocked() bool {
	return l.supplyComplete && len(l.supply) == entities.SupplySize
}

func (l locks) addonIDs() []string {
	ids := make([]string, len(l.addons))
	for i, addon := range l.addons {
		ids[i] = addon.ID
	}
	return ids
}

// allLocked reports whether the selection holds every card of the kingdom
func (l locks) allLocked() bool {
	return l.supplyLocked() && len(l.addons) == l.addonTotal
}

// addonRedrawCount returns how many addons a partial redraw draws. With
// some addons locked only the unlocked slots are redrawn; with none locked
// a fresh bundle of the requested size replaces them, as a full build would.
func (l locks) addonRedrawCount(requested int) int {
	if len(l.addons) > 0 {
		return l.addonTotal - len(l.addons)
	}
	return requested
}

// BuildPartialKingdom redraws every card of Current that Selection does not
// lock. Identity and metadata are kept. On failure nothing is returned and
// the caller keeps Current.
func (o *orchestrator) BuildPartialKingdom(ctx context.Context, input *BuildPartialKingdomInput) (*BuildPartialKingdomOutput, error) {
	if input == nil || input.Current == nil {
		return nil, errors.InvalidArgument("current kingdom is required")
	}
	if err := input.Options.Validate(); err != nil {
		return nil, err
	}

	current := input.Current
	l := locksFor(current, input.Selection)
	if l.allLocked() {
		slog.Debug("Every card is locked, nothing to redraw", "kingdom_id", current.ID)
		return &BuildPartialKingdomOutput{Kingdom: current}, nil
	}
	addonCount := l.addonRedrawCount(input.Options.AddonCount)

	next := current
	if !l.supplyLocked() {
		includes := slices.Clone(input.Options.IncludeCardIDs)
		for _, id := range l.supply {
			if !slices.Contains(includes, id) {
				includes = append(includes, id)
			}
		}
		opts := input.Options.ToBuilder().SetIncludeCardIDs(includes...).Build()

		supply, err := o.engine.SampleSupply(ctx, o.catalog, opts)
		if err != nil {
			return nil, err
		}
		next = next.WithSupply(supply)
	}

	addons := slices.Clone(l.addons)
	if addonCount > 0 {
		drawn, err := o.engine.SampleAddons(ctx, o.catalog, input.Options.SetIDs, l.addonIDs(), addonCount)
		if err != nil {
			return nil, err
		}
		addons = append(addons, drawn.All()...)
	}
	next = next.WithAddons(entities.NewAddonBundle(addons))

	if err := next.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "partial redraw produced an invalid kingdom")
	}

	return &BuildPartialKingdomOutput{Kingdom: next}, nil
}
