package randomizer

import (
	"slices"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Options describes a single randomization request. Build it with
// OptionsBuilder and treat the result as read-only.
type Options struct {
	SetIDs         []entities.SetID
	ExcludeTypes   []entities.CardType
	IncludeCardIDs []string
	ExcludeCardIDs []string

	RequireActionProvider    bool
	RequireBuyProvider       bool
	RequireTrashing          bool
	RequireReactionIfAttacks bool

	// DistributeCost prefers spreading the supply across cost tiers
	DistributeCost bool

	// PrioritizeSet prefers cards from one set; empty means no preference
	PrioritizeSet entities.SetID

	// AddonCount is the number of addons drawn for a full kingdom
	AddonCount int
}

// Validate reports malformed requests. A failure here is a configuration
// fault, never an unlucky draw.
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("options are required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonEmpty("set_ids", o.SetIDs, vb)
	errors.ValidateMin("addon_count", o.AddonCount, 0, vb)

	for _, id := range o.SetIDs {
		if id == "" {
			vb.Field("set_ids", "must not contain empty ids")
			break
		}
	}
	for _, id := range o.IncludeCardIDs {
		if slices.Contains(o.ExcludeCardIDs, id) {
			vb.Fieldf("include_card_ids", "%s is also excluded", id)
		}
	}

	return vb.Build()
}

// ToBuilder returns a builder seeded with a copy of the options
func (o *Options) ToBuilder() *OptionsBuilder {
	b := NewOptionsBuilder()
	b.opts = o.clone()
	return b
}

func (o *Options) clone() Options {
	c := *o
	c.SetIDs = slices.Clone(o.SetIDs)
	c.ExcludeTypes = slices.Clone(o.ExcludeTypes)
	c.IncludeCardIDs = slices.Clone(o.IncludeCardIDs)
	c.ExcludeCardIDs = slices.Clone(o.ExcludeCardIDs)
	return c
}

// OptionsBuilder assembles Options fluently. Setters may be called in any
// order and Build never fails; Validate runs when the options are used.
type OptionsBuilder struct {
	opts Options
}

// NewOptionsBuilder returns a builder with every requirement off
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{}
}

// NewOptionsBuilderFromSettings applies the user's requirement toggles.
// Cost distribution and set prioritization only take effect when features
// allows them. Set ids and exclusions are left to the caller.
func NewOptionsBuilderFromSettings(settings entities.Settings, features Features) *OptionsBuilder {
	b := NewOptionsBuilder().
		SetRequireActionProvider(settings.RequireActionProvider).
		SetRequireBuyProvider(settings.RequireBuyProvider).
		SetRequireTrashing(settings.RequireTrashing).
		SetRequireReactionIfAttacks(settings.RequireReaction).
		SetDistributeCost(features.DistributeCostAllowed && settings.DistributeCost).
		SetAddonCount(settings.AddonCount)

	if features.PrioritizeSetAllowed {
		b.SetPrioritizeSet(settings.PrioritizeSet)
	}
	return b
}

// SetSetIDs replaces the sets to draw from
func (b *OptionsBuilder) SetSetIDs(ids ...entities.SetID) *OptionsBuilder {
	b.opts.SetIDs = slices.Clone(ids)
	return b
}

func (b *OptionsBuilder) SetExcludeTypes(types ...entities.CardType) *OptionsBuilder {
	b.opts.ExcludeTypes = slices.Clone(types)
	return b
}

// SetIncludeCardIDs replaces the ids that must appear in the supply
func (b *OptionsBuilder) SetIncludeCardIDs(ids ...string) *OptionsBuilder {
	b.opts.IncludeCardIDs = slices.Clone(ids)
	return b
}

// SetExcludeCardIDs replaces the ids that must not appear in the supply
func (b *OptionsBuilder) SetExcludeCardIDs(ids ...string) *OptionsBuilder {
	b.opts.ExcludeCardIDs = slices.Clone(ids)
	return b
}

func (b *OptionsBuilder) SetRequireActionProvider(v bool) *OptionsBuilder {
	b.opts.RequireActionProvider = v
	return b
}

func (b *OptionsBuilder) SetRequireBuyProvider(v bool) *OptionsBuilder {
	b.opts.RequireBuyProvider = v
	return b
}

func (b *OptionsBuilder) SetRequireTrashing(v bool) *OptionsBuilder {
	b.opts.RequireTrashing = v
	return b
}

func (b *OptionsBuilder) SetRequireReactionIfAttacks(v bool) *OptionsBuilder {
	b.opts.RequireReactionIfAttacks = v
	return b
}

func (b *OptionsBuilder) SetDistributeCost(v bool) *OptionsBuilder {
	b.opts.DistributeCost = v
	return b
}

// SetPrioritizeSet prefers cards from id; empty clears the preference
func (b *OptionsBuilder) SetPrioritizeSet(id entities.SetID) *OptionsBuilder {
	b.opts.PrioritizeSet = id
	return b
}

func (b *OptionsBuilder) SetAddonCount(n int) *OptionsBuilder {
	b.opts.AddonCount = n
	return b
}

// Build returns an independent copy of the accumulated options
func (b *OptionsBuilder) Build() *Options {
	opts := b.opts.clone()
	return &opts
}

// Features reports which optional preferences the current settings permit
type Features struct {
	DistributeCostAllowed bool
	PrioritizeSetAllowed  bool
}

// FeaturesFor derives feature availability from the user's settings.
// Prioritizing only makes sense when choosing among several sets, and the
// prioritized set has to be one of them.
func FeaturesFor(settings entities.Settings) Features {
	return Features{
		DistributeCostAllowed: len(settings.SelectedSets) > 0,
		PrioritizeSetAllowed: len(settings.SelectedSets) >= 2 &&
			slices.Contains(settings.SelectedSets, settings.PrioritizeSet),
	}
}

// ExcludeTypesFor translates settings into excluded card types
func ExcludeTypesFor(settings entities.Settings) []entities.CardType {
	if settings.AllowAttacks {
		return nil
	}
	return []entities.CardType{entities.CardTypeAttack}
}
