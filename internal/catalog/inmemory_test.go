package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/testutils"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx context.Context
	cat *catalog.InMemory
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cat = testutils.CreateTestCatalog(s.T())
}

func (s *InMemoryTestSuite) TestSets() {
	sets, err := s.cat.Sets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sets, 3)
	s.Equal(testutils.SetAlpha, sets[0].ID)
	s.Equal(testutils.SetBeta, sets[1].ID)
	s.Equal(testutils.SetBare, sets[2].ID)
}

func (s *InMemoryTestSuite) TestCardsForSets() {
	s.Run("in catalog order", func() {
		cards, err := s.cat.CardsForSets(s.ctx, []entities.SetID{testutils.SetBeta, testutils.SetAlpha})
		s.Require().NoError(err)
		s.Len(cards, 24)
		s.Equal(testutils.SetBeta, cards[0].SetID)
		s.Equal(testutils.SetAlpha, cards[23].SetID)
	})

	s.Run("duplicate set ids count once", func() {
		cards, err := s.cat.CardsForSets(s.ctx, []entities.SetID{testutils.SetBare, testutils.SetBare})
		s.Require().NoError(err)
		s.Len(cards, 11)
	})

	s.Run("unknown set", func() {
		_, err := s.cat.CardsForSets(s.ctx, []entities.SetID{testutils.SetAlpha, "prosperity"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Equal("prosperity", string(errors.GetMeta(err)["set_id"].(entities.SetID)))
	})
}

func (s *InMemoryTestSuite) TestAddonsForSets() {
	addons, err := s.cat.AddonsForSets(s.ctx, []entities.SetID{testutils.SetAlpha, testutils.SetBeta, testutils.SetBare})
	s.Require().NoError(err)
	s.Len(addons, 6)

	bundle := entities.NewAddonBundle(addons)
	s.Len(bundle.Events, 3)
	s.Len(bundle.Landmarks, 1)
	s.Len(bundle.Projects, 1)
	s.Len(bundle.Ways, 1)
}

func (s *InMemoryTestSuite) TestCardByID() {
	s.Run("by id", func() {
		card, err := s.cat.CardByID(s.ctx, "village")
		s.Require().NoError(err)
		s.IsType(&entities.SupplyCard{}, card)
		s.Equal(testutils.SetAlpha, card.Base().SetID)
	})

	s.Run("by short id", func() {
		card, err := s.cat.CardByID(s.ctx, "ch")
		s.Require().NoError(err)
		s.Equal("chapel", card.GetID())
	})

	s.Run("addon", func() {
		card, err := s.cat.CardByID(s.ctx, "way_of_the_ox")
		s.Require().NoError(err)
		addon, ok := card.(*entities.Addon)
		s.Require().True(ok)
		s.Equal(entities.AddonKindWay, addon.Kind)
	})

	s.Run("unknown", func() {
		_, err := s.cat.CardByID(s.ctx, "nope")
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty", func() {
		_, err := s.cat.CardByID(s.ctx, "")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *InMemoryTestSuite) TestNewInMemoryRejectsDuplicates() {
	testCases := []struct {
		name string
		sets []*entities.Set
	}{
		{
			name: "set defined twice",
			sets: []*entities.Set{testutils.BareSet(), testutils.BareSet()},
		},
		{
			name: "card id reused across sets",
			sets: []*entities.Set{
				testutils.AlphaSet(),
				{ID: "gamma", SupplyCards: []*entities.SupplyCard{{Card: entities.Card{ID: "village"}}}},
			},
		},
		{
			name: "short id taken",
			sets: []*entities.Set{
				testutils.AlphaSet(),
				{ID: "gamma", SupplyCards: []*entities.SupplyCard{{Card: entities.Card{ID: "vineyard", ShortID: "vi"}}}},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.NewInMemory(tc.sets)
			s.Require().Error(err)
			s.True(errors.IsAlreadyExists(err))
		})
	}
}

func (s *InMemoryTestSuite) TestNewInMemoryRejectsMalformedSets() {
	_, err := catalog.NewInMemory([]*entities.Set{{Name: "no id"}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewInMemory([]*entities.Set{{
		ID:     "gamma",
		Addons: []*entities.Addon{{Card: entities.Card{ID: "odd"}, Kind: "boon"}},
	}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestLoad() {
	s.Run("yaml document", func() {
		cat, err := catalog.Load([]byte(`
sets:
  - id: gamma
    name: Gamma
    supply_cards:
      - {id: forge, short_id: fo, name: Forge, cost: {treasure: 7}, types: [action], capabilities: [trashing]}
    addons:
      - {id: pathfinding, name: Pathfinding, kind: way, cost: {treasure: 8}}
`))
		s.Require().NoError(err)

		card, err := cat.CardByID(s.ctx, "fo")
		s.Require().NoError(err)
		supplyCard := card.(*entities.SupplyCard)
		s.Equal(entities.SetID("gamma"), supplyCard.SetID)
		s.True(supplyCard.HasCapability(entities.CapabilityTrashing))

		way, err := cat.CardByID(s.ctx, "pathfinding")
		s.Require().NoError(err)
		s.Equal(entities.Cost{}, way.Base().Cost, "ways never cost anything")
	})

	s.Run("parse error", func() {
		_, err := catalog.Load([]byte("sets: [unclosed"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *InMemoryTestSuite) TestLoadFile() {
	s.Run("missing file", func() {
		_, err := catalog.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("from disk", func() {
		path := filepath.Join(s.T().TempDir(), "cards.yaml")
		s.Require().NoError(os.WriteFile(path, []byte("sets:\n  - id: gamma\n    name: Gamma\n"), 0o600))

		cat, err := catalog.LoadFile(path)
		s.Require().NoError(err)
		sets, err := cat.Sets(s.ctx)
		s.Require().NoError(err)
		s.Len(sets, 1)
	})
}

func (s *InMemoryTestSuite) TestLoadDefault() {
	cat, err := catalog.LoadDefault()
	s.Require().NoError(err)

	sets, err := cat.Sets(s.ctx)
	s.Require().NoError(err)
	s.GreaterOrEqual(len(sets), 4)

	for _, set := range sets {
		cards, err := cat.CardsForSets(s.ctx, []entities.SetID{set.ID})
		s.Require().NoError(err)
		s.GreaterOrEqual(len(cards), entities.SupplySize, "set %s cannot fill a supply on its own", set.ID)
	}

	card, err := cat.CardByID(s.ctx, "village")
	s.Require().NoError(err)
	s.Equal(entities.SetID("base"), card.Base().SetID)
}

func TestInMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}
