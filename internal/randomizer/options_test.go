package randomizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
)

func TestOptionsBuilder_DefaultsAreOff(t *testing.T) {
	opts := randomizer.NewOptionsBuilder().Build()

	assert.Empty(t, opts.SetIDs)
	assert.False(t, opts.RequireActionProvider)
	assert.False(t, opts.RequireBuyProvider)
	assert.False(t, opts.RequireTrashing)
	assert.False(t, opts.RequireReactionIfAttacks)
	assert.False(t, opts.DistributeCost)
	assert.Empty(t, opts.PrioritizeSet)
	assert.Zero(t, opts.AddonCount)
}

func TestOptionsBuilder_OrderIndependent(t *testing.T) {
	a := randomizer.NewOptionsBuilder().
		SetSetIDs("base").
		SetRequireTrashing(true).
		SetIncludeCardIDs("chapel").
		SetDistributeCost(true).
		Build()
	b := randomizer.NewOptionsBuilder().
		SetDistributeCost(true).
		SetIncludeCardIDs("chapel").
		SetRequireTrashing(true).
		SetSetIDs("base").
		Build()

	assert.Equal(t, a, b)
}

func TestOptionsBuilder_BuildCopies(t *testing.T) {
	ids := []string{"village"}
	b := randomizer.NewOptionsBuilder().SetSetIDs("base").SetIncludeCardIDs(ids...)
	first := b.Build()

	ids[0] = "changed"
	b.SetExcludeCardIDs("witch")
	second := b.Build()

	assert.Equal(t, []string{"village"}, first.IncludeCardIDs)
	assert.Empty(t, first.ExcludeCardIDs)
	assert.Equal(t, []string{"witch"}, second.ExcludeCardIDs)

	derived := first.ToBuilder().SetIncludeCardIDs("market").Build()
	assert.Equal(t, []string{"market"}, derived.IncludeCardIDs)
	assert.Equal(t, []string{"village"}, first.IncludeCardIDs)
}

func TestOptions_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    *randomizer.Options
		wantErr string
	}{
		{
			name: "valid",
			opts: randomizer.NewOptionsBuilder().SetSetIDs("base").Build(),
		},
		{
			name:    "nil",
			opts:    nil,
			wantErr: "options are required",
		},
		{
			name:    "no sets",
			opts:    randomizer.NewOptionsBuilder().Build(),
			wantErr: "set_ids: is required",
		},
		{
			name:    "empty set id",
			opts:    randomizer.NewOptionsBuilder().SetSetIDs("base", "").Build(),
			wantErr: "set_ids: must not contain empty ids",
		},
		{
			name:    "negative addon count",
			opts:    randomizer.NewOptionsBuilder().SetSetIDs("base").SetAddonCount(-1).Build(),
			wantErr: "addon_count",
		},
		{
			name: "included and excluded",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs("base").
				SetIncludeCardIDs("witch").
				SetExcludeCardIDs("witch").
				Build(),
			wantErr: "witch is also excluded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFeaturesFor(t *testing.T) {
	testCases := []struct {
		name     string
		settings entities.Settings
		expected randomizer.Features
	}{
		{
			name:     "no sets",
			settings: entities.DefaultSettings(),
			expected: randomizer.Features{},
		},
		{
			name:     "one set",
			settings: entities.Settings{SelectedSets: []entities.SetID{"base"}, PrioritizeSet: "base"},
			expected: randomizer.Features{DistributeCostAllowed: true},
		},
		{
			name: "prioritized set among several",
			settings: entities.Settings{
				SelectedSets:  []entities.SetID{"base", "empires"},
				PrioritizeSet: "empires",
			},
			expected: randomizer.Features{DistributeCostAllowed: true, PrioritizeSetAllowed: true},
		},
		{
			name: "prioritized set not selected",
			settings: entities.Settings{
				SelectedSets:  []entities.SetID{"base", "empires"},
				PrioritizeSet: "menagerie",
			},
			expected: randomizer.Features{DistributeCostAllowed: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, randomizer.FeaturesFor(tc.settings))
		})
	}
}

func TestNewOptionsBuilderFromSettings(t *testing.T) {
	settings := entities.Settings{
		SelectedSets:          []entities.SetID{"base", "empires"},
		RequireActionProvider: true,
		RequireReaction:       true,
		DistributeCost:        true,
		PrioritizeSet:         "empires",
		AddonCount:            2,
	}

	t.Run("features allowed", func(t *testing.T) {
		opts := randomizer.NewOptionsBuilderFromSettings(settings, randomizer.FeaturesFor(settings)).Build()

		assert.True(t, opts.RequireActionProvider)
		assert.False(t, opts.RequireBuyProvider)
		assert.True(t, opts.RequireReactionIfAttacks)
		assert.True(t, opts.DistributeCost)
		assert.Equal(t, entities.SetID("empires"), opts.PrioritizeSet)
		assert.Equal(t, 2, opts.AddonCount)
		assert.Empty(t, opts.SetIDs, "set ids are left to the caller")
	})

	t.Run("features withheld", func(t *testing.T) {
		opts := randomizer.NewOptionsBuilderFromSettings(settings, randomizer.Features{}).Build()

		assert.False(t, opts.DistributeCost)
		assert.Empty(t, opts.PrioritizeSet)
	})
}

func TestExcludeTypesFor(t *testing.T) {
	assert.Nil(t, randomizer.ExcludeTypesFor(entities.Settings{AllowAttacks: true}))
	assert.Equal(t, []entities.CardType{entities.CardTypeAttack},
		randomizer.ExcludeTypesFor(entities.Settings{AllowAttacks: false}))
}
