package randomizer_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
	"github.com/KirkDiggler/kingdom-randomizer/internal/testutils"
	"github.com/KirkDiggler/kingdom-randomizer/internal/testutils/builders"
)

const drawRepetitions = 200

// fixedRoller always rolls the same face, clamped to the die size
type fixedRoller struct {
	face int
	err  error
}

func (r *fixedRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return min(r.face, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	cat    *catalog.InMemory
	engine randomizer.Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cat = testutils.CreateTestCatalog(s.T())

	engine, err := randomizer.NewEngine(&randomizer.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) setOf(id string) entities.SetID {
	card, err := s.cat.CardByID(s.ctx, id)
	s.Require().NoError(err)
	return card.Base().SetID
}

func (s *EngineTestSuite) TestNewEngine() {
	s.Run("requires config", func() {
		_, err := randomizer.NewEngine(nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("requires roller", func() {
		_, err := randomizer.NewEngine(&randomizer.Config{})
		s.Require().Error(err)
		s.Contains(err.Error(), "roller")
	})
}

func (s *EngineTestSuite) TestSampleSupply_Invariants() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
		SetExcludeTypes(entities.CardTypeVictory).
		SetIncludeCardIDs("witch", "beta-3").
		SetExcludeCardIDs("alpha-a", "beta-1").
		Build()

	for i := 0; i < drawRepetitions; i++ {
		supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		s.Require().Equal(entities.SupplySize, supply.Len())

		ids := supply.IDs()
		s.Len(slices.Compact(slices.Sorted(slices.Values(ids))), entities.SupplySize, "ids must be unique")
		s.Contains(ids, "witch")
		s.Contains(ids, "beta-3")
		s.NotContains(ids, "alpha-a")
		s.NotContains(ids, "beta-1")
		for _, card := range supply.Cards {
			s.Contains([]entities.SetID{testutils.SetAlpha, testutils.SetBeta}, card.SetID)
			s.False(card.IsType(entities.CardTypeVictory), "victory card %s was drawn", card.ID)
		}
	}
}

func (s *EngineTestSuite) TestSampleSupply_ExcludeTypes() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetAlpha).
		SetExcludeTypes(entities.CardTypeAttack).
		Build()

	supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
	s.Require().NoError(err)
	s.ElementsMatch([]string{
		"village", "market", "chapel", "moat",
		"alpha-a", "alpha-b", "alpha-c", "alpha-d", "alpha-e", "alpha-f",
	}, supply.IDs())
}

func (s *EngineTestSuite) TestSampleSupply_IncludeByShortID() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetBeta).
		SetIncludeCardIDs("vi").
		Build()

	supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
	s.Require().NoError(err)
	s.True(supply.Contains("village"))
	s.Equal(entities.SupplySize, supply.Len())
}

func (s *EngineTestSuite) TestSampleSupply_IncludeWinsOverExcludedType() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetAlpha).
		SetExcludeTypes(entities.CardTypeAttack).
		SetIncludeCardIDs("militia").
		Build()

	supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
	s.Require().NoError(err)
	s.True(supply.Contains("militia"))
	s.False(supply.Contains("witch"))
}

func (s *EngineTestSuite) TestSampleSupply_Requirements() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
		SetRequireActionProvider(true).
		SetRequireBuyProvider(true).
		SetRequireTrashing(true).
		Build()

	for i := 0; i < drawRepetitions; i++ {
		supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		s.True(supply.Contains("village"), "action provider missing")
		s.True(supply.Contains("market"), "buy provider missing")
		s.True(supply.Contains("chapel"), "trashing missing")
	}
}

func (s *EngineTestSuite) TestSampleSupply_ReactionOnlyRequiredWithAttacks() {
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
		SetRequireReactionIfAttacks(true).
		Build()

	sawAttack := false
	for i := 0; i < drawRepetitions; i++ {
		supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		if supply.Contains("militia") || supply.Contains("witch") {
			sawAttack = true
			s.True(supply.Contains("moat"), "attack drawn without a reaction: %v", supply.IDs())
		}
	}
	s.True(sawAttack, "expected at least one draw with an attack")

	s.Run("no reaction needed without attacks", func() {
		opts := randomizer.NewOptionsBuilder().
			SetSetIDs(testutils.SetBeta).
			SetRequireReactionIfAttacks(true).
			Build()

		supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		s.Equal(entities.SupplySize, supply.Len())
	})

	s.Run("attacks are avoided when no reaction exists", func() {
		opts := randomizer.NewOptionsBuilder().
			SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
			SetExcludeCardIDs("moat").
			SetRequireReactionIfAttacks(true).
			Build()

		for i := 0; i < drawRepetitions; i++ {
			supply, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
			s.Require().NoError(err)
			s.False(supply.Contains("militia"))
			s.False(supply.Contains("witch"))
		}
	})

	s.Run("included attack without any reaction is unsatisfiable", func() {
		opts := randomizer.NewOptionsBuilder().
			SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
			SetIncludeCardIDs("witch").
			SetExcludeCardIDs("moat").
			SetRequireReactionIfAttacks(true).
			Build()

		_, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().Error(err)
		s.True(randomizer.IsUnsatisfiable(err))
	})
}

func (s *EngineTestSuite) TestSampleSupply_UniqueProvidersInTwelveCardSet() {
	cards := []*entities.SupplyCard{
		builders.NewSupplyCardBuilder("only_village").InSet("base").
			WithCapabilities(entities.CapabilityActionProvider).Build(),
		builders.NewSupplyCardBuilder("only_market").InSet("base").
			WithCapabilities(entities.CapabilityBuyProvider).Build(),
	}
	cards = append(cards, builders.Fillers("base", "plain", 10)...)
	cat, err := catalog.NewInMemory([]*entities.Set{{ID: "base", Name: "Base", SupplyCards: cards}})
	s.Require().NoError(err)

	opts := randomizer.NewOptionsBuilder().
		SetSetIDs("base").
		SetRequireActionProvider(true).
		SetRequireBuyProvider(true).
		Build()

	for i := 0; i < drawRepetitions; i++ {
		supply, err := s.engine.SampleSupply(s.ctx, cat, opts)
		s.Require().NoError(err)
		s.Equal(entities.SupplySize, supply.Len())
		s.True(supply.Contains("only_village"))
		s.True(supply.Contains("only_market"))
	}
}

func (s *EngineTestSuite) TestSampleSupply_Unsatisfiable() {
	testCases := []struct {
		name  string
		opts  *randomizer.Options
		unmet string
	}{
		{
			name: "more includes than slots",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetBeta).
				SetIncludeCardIDs("beta-1", "beta-2", "beta-3", "beta-4", "beta-5", "beta-6",
					"beta-7", "beta-8", "beta-9", "beta-10", "beta-11").
				Build(),
		},
		{
			name: "no action provider in requested sets",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetBare).
				SetRequireActionProvider(true).
				Build(),
			unmet: string(entities.CapabilityActionProvider),
		},
		{
			name: "requirement card excluded",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
				SetExcludeCardIDs("chapel").
				SetRequireTrashing(true).
				Build(),
			unmet: string(entities.CapabilityTrashing),
		},
		{
			name: "pool smaller than open slots",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetAlpha).
				SetExcludeCardIDs("village", "market", "chapel").
				Build(),
		},
		{
			name: "unknown include",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetBeta).
				SetIncludeCardIDs("no_such_card").
				Build(),
		},
		{
			name: "include is an addon",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetAlpha).
				SetIncludeCardIDs("alms").
				Build(),
		},
		{
			name: "includes leave no room for requirements",
			opts: randomizer.NewOptionsBuilder().
				SetSetIDs(testutils.SetBeta, testutils.SetAlpha).
				SetIncludeCardIDs("beta-1", "beta-2", "beta-3", "beta-4", "beta-5",
					"beta-6", "beta-7", "beta-8", "beta-9").
				SetRequireActionProvider(true).
				SetRequireBuyProvider(true).
				Build(),
			unmet: string(entities.CapabilityBuyProvider),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			supply, err := s.engine.SampleSupply(s.ctx, s.cat, tc.opts)
			s.Require().Error(err)
			s.Nil(supply)
			s.True(randomizer.IsUnsatisfiable(err), "expected unsatisfiable, got %v", err)
			s.False(errors.IsInvalidArgument(err))

			if tc.unmet != "" {
				meta := errors.GetMeta(err)
				s.Contains(fmt.Sprint(meta["unmet_requirements"]), tc.unmet)
			}
		})
	}
}

func (s *EngineTestSuite) TestSampleSupply_HardFailures() {
	s.Run("no sets", func() {
		_, err := s.engine.SampleSupply(s.ctx, s.cat, randomizer.NewOptionsBuilder().Build())
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.False(randomizer.IsUnsatisfiable(err))
	})

	s.Run("nil options", func() {
		_, err := s.engine.SampleSupply(s.ctx, s.cat, nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown set", func() {
		opts := randomizer.NewOptionsBuilder().SetSetIDs("missing").Build()
		_, err := s.engine.SampleSupply(s.ctx, s.cat, opts)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("missing", fmt.Sprint(errors.GetMeta(err)["set_id"]))
	})

	s.Run("nil catalog", func() {
		opts := randomizer.NewOptionsBuilder().SetSetIDs(testutils.SetBeta).Build()
		_, err := s.engine.SampleSupply(s.ctx, nil, opts)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestSampleSupply_RollerFailure() {
	engine, err := randomizer.NewEngine(&randomizer.Config{
		Roller: &fixedRoller{err: fmt.Errorf("dice fell off the table")},
	})
	s.Require().NoError(err)

	opts := randomizer.NewOptionsBuilder().SetSetIDs(testutils.SetBeta).Build()
	_, err = engine.SampleSupply(s.ctx, s.cat, opts)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "dice fell off the table")
}

func (s *EngineTestSuite) TestSampleSupply_Deterministic() {
	engine, err := randomizer.NewEngine(&randomizer.Config{Roller: &fixedRoller{face: 1}})
	s.Require().NoError(err)

	opts := randomizer.NewOptionsBuilder().SetSetIDs(testutils.SetBeta).Build()
	supply, err := engine.SampleSupply(s.ctx, s.cat, opts)
	s.Require().NoError(err)
	s.Equal([]string{
		"beta-1", "beta-2", "beta-3", "beta-4", "beta-5",
		"beta-6", "beta-7", "beta-8", "beta-9", "beta-10",
	}, supply.IDs())
}

func (s *EngineTestSuite) TestSampleSupply_BundledCatalog() {
	cat := testutils.CreateDefaultCatalog(s.T())
	opts := randomizer.NewOptionsBuilder().
		SetSetIDs("base", "empires", "renaissance", "menagerie").
		SetRequireActionProvider(true).
		SetRequireBuyProvider(true).
		SetRequireTrashing(true).
		SetRequireReactionIfAttacks(true).
		SetDistributeCost(true).
		SetPrioritizeSet("base").
		Build()

	for i := 0; i < drawRepetitions; i++ {
		supply, err := s.engine.SampleSupply(s.ctx, cat, opts)
		s.Require().NoError(err)
		s.Require().Equal(entities.SupplySize, supply.Len())

		var action, buy, trash, attack, reaction bool
		for _, card := range supply.Cards {
			action = action || card.HasCapability(entities.CapabilityActionProvider)
			buy = buy || card.HasCapability(entities.CapabilityBuyProvider)
			trash = trash || card.HasCapability(entities.CapabilityTrashing)
			attack = attack || card.HasCapability(entities.CapabilityAttack)
			reaction = reaction || card.HasCapability(entities.CapabilityReaction)
		}
		s.True(action && buy && trash, "requirements missing from %v", supply.IDs())
		if attack {
			s.True(reaction, "attack without reaction in %v", supply.IDs())
		}
	}
}

func (s *EngineTestSuite) TestSampleKingdom() {
	s.Run("without addons", func() {
		opts := randomizer.NewOptionsBuilder().SetSetIDs(testutils.SetAlpha).Build()
		kingdom, err := s.engine.SampleKingdom(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		s.Empty(kingdom.ID)
		s.Equal(entities.SupplySize, kingdom.Supply.Len())
		s.Zero(kingdom.Addons().Len())
	})

	s.Run("with addons", func() {
		opts := randomizer.NewOptionsBuilder().
			SetSetIDs(testutils.SetAlpha, testutils.SetBeta).
			SetAddonCount(2).
			Build()
		kingdom, err := s.engine.SampleKingdom(s.ctx, s.cat, opts)
		s.Require().NoError(err)
		s.Equal(2, kingdom.Addons().Len())
		s.NoError(kingdom.Validate())
	})

	s.Run("invalid options", func() {
		_, err := s.engine.SampleKingdom(s.ctx, s.cat, randomizer.NewOptionsBuilder().Build())
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestSampleAddons() {
	sets := []entities.SetID{testutils.SetAlpha, testutils.SetBeta}

	s.Run("draws the requested count", func() {
		bundle, err := s.engine.SampleAddons(s.ctx, s.cat, sets, nil, 3)
		s.Require().NoError(err)
		s.Equal(3, bundle.Len())
	})

	s.Run("skips locked addons", func() {
		for i := 0; i < drawRepetitions; i++ {
			bundle, err := s.engine.SampleAddons(s.ctx, s.cat, sets, []string{"alms", "bonfire"}, 2)
			s.Require().NoError(err)
			for _, addon := range bundle.All() {
				s.NotEqual("alms", addon.ID)
				s.NotEqual("bonfire", addon.ID)
			}
		}
	})

	s.Run("returns what is available", func() {
		bundle, err := s.engine.SampleAddons(s.ctx, s.cat, sets, nil, 50)
		s.Require().NoError(err)
		s.Equal(6, bundle.Len())
		s.Len(bundle.Events, 3)
		s.Len(bundle.Landmarks, 1)
		s.Len(bundle.Projects, 1)
		s.Len(bundle.Ways, 1)
	})

	s.Run("set without addons", func() {
		bundle, err := s.engine.SampleAddons(s.ctx, s.cat, []entities.SetID{testutils.SetBare}, nil, 2)
		s.Require().NoError(err)
		s.Zero(bundle.Len())
	})

	s.Run("zero count", func() {
		bundle, err := s.engine.SampleAddons(s.ctx, s.cat, sets, nil, 0)
		s.Require().NoError(err)
		s.Zero(bundle.Len())
	})

	s.Run("negative count", func() {
		_, err := s.engine.SampleAddons(s.ctx, s.cat, sets, nil, -1)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("no sets", func() {
		_, err := s.engine.SampleAddons(s.ctx, s.cat, nil, nil, 1)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
