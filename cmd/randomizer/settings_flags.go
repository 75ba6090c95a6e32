package main

import (
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// settingsFlags binds the user's randomizer preferences to command flags
type settingsFlags struct {
	sets            []string
	requireActions  bool
	requireBuys     bool
	requireTrashing bool
	requireReaction bool
	noAttacks       bool
	distributeCost  bool
	prioritize      string
	addons          int
}

func (f *settingsFlags) register(flags *pflag.FlagSet) {
	flags.StringSliceVar(&f.sets, "sets", nil, "sets to draw from (default from RANDOMIZER_DEFAULT_SETS)")
	flags.BoolVar(&f.requireActions, "require-actions", false, "require a card giving +2 Actions")
	flags.BoolVar(&f.requireBuys, "require-buys", false, "require a card giving +Buy")
	flags.BoolVar(&f.requireTrashing, "require-trashing", false, "require a trashing card")
	flags.BoolVar(&f.requireReaction, "require-reaction", false, "require a reaction when the kingdom has attacks")
	flags.BoolVar(&f.noAttacks, "no-attacks", false, "leave attack cards out")
	flags.BoolVar(&f.distributeCost, "distribute-cost", false, "prefer a spread of card costs")
	flags.StringVar(&f.prioritize, "prioritize", "", "prefer cards from this set")
	flags.IntVar(&f.addons, "addons", 0, "number of events, landmarks, projects and ways to draw")
}

// settings builds Settings from the flags, falling back to defaultSets
func (f *settingsFlags) settings(defaultSets []string) entities.Settings {
	sets := f.sets
	if len(sets) == 0 {
		sets = defaultSets
	}

	settings := entities.DefaultSettings(toSetIDs(sets)...)
	settings.RequireActionProvider = f.requireActions
	settings.RequireBuyProvider = f.requireBuys
	settings.RequireTrashing = f.requireTrashing
	settings.RequireReaction = f.requireReaction
	settings.AllowAttacks = !f.noAttacks
	settings.DistributeCost = f.distributeCost
	settings.PrioritizeSet = entities.SetID(f.prioritize)
	settings.AddonCount = f.addons
	return settings
}

// apply overlays only the flags the user set onto existing settings
func (f *settingsFlags) apply(flags *pflag.FlagSet, settings entities.Settings) entities.Settings {
	if flags.Changed("sets") {
		settings.SelectedSets = toSetIDs(f.sets)
	}
	if flags.Changed("require-actions") {
		settings.RequireActionProvider = f.requireActions
	}
	if flags.Changed("require-buys") {
		settings.RequireBuyProvider = f.requireBuys
	}
	if flags.Changed("require-trashing") {
		settings.RequireTrashing = f.requireTrashing
	}
	if flags.Changed("require-reaction") {
		settings.RequireReaction = f.requireReaction
	}
	if flags.Changed("no-attacks") {
		settings.AllowAttacks = !f.noAttacks
	}
	if flags.Changed("distribute-cost") {
		settings.DistributeCost = f.distributeCost
	}
	if flags.Changed("prioritize") {
		settings.PrioritizeSet = entities.SetID(f.prioritize)
	}
	if flags.Changed("addons") {
		settings.AddonCount = f.addons
	}
	return settings
}

func toSetIDs(sets []string) []entities.SetID {
	ids := make([]entities.SetID, len(sets))
	for i, set := range sets {
		ids[i] = entities.SetID(set)
	}
	return ids
}
