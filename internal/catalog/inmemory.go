package catalog

import (
	"context"
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

//go:embed data/dominion.yaml
var defaultCatalog []byte

// InMemory is a Catalog built once from set definitions and never mutated
type InMemory struct {
	sets  []*entities.Set
	byID  map[entities.SetID]*entities.Set
	cards map[string]entities.AnyCard
}

// Ensure InMemory implements Catalog
var _ Catalog = (*InMemory)(nil)

// catalogFile is the on-disk layout of a catalog document
type catalogFile struct {
	Sets []*entities.Set `yaml:"sets"`
}

// NewInMemory indexes the given sets. Card ids and short ids must be unique
// across the whole catalog.
func NewInMemory(sets []*entities.Set) (*InMemory, error) {
	c := &InMemory{
		byID:  make(map[entities.SetID]*entities.Set, len(sets)),
		cards: make(map[string]entities.AnyCard),
	}

	for _, set := range sets {
		if set == nil || set.ID == "" {
			return nil, errors.InvalidArgument("set id is required")
		}
		if _, ok := c.byID[set.ID]; ok {
			return nil, errors.AlreadyExistsf("set %s defined twice", set.ID)
		}
		c.byID[set.ID] = set
		c.sets = append(c.sets, set)

		for _, card := range set.SupplyCards {
			card.SetID = set.ID
			if err := c.index(card); err != nil {
				return nil, err
			}
		}
		for i, addon := range set.Addons {
			if !addon.Kind.Valid() {
				return nil, errors.InvalidArgumentf("addon %s has unknown kind %q", addon.ID, addon.Kind)
			}
			addon.SetID = set.ID
			set.Addons[i] = entities.NewAddon(addon.Card, addon.Kind)
			if err := c.index(set.Addons[i]); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// Load parses a YAML (or JSON) catalog document
func Load(data []byte) (*InMemory, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}
	return NewInMemory(file.Sets)
}

// LoadFile reads a catalog document from disk
func LoadFile(path string) (*InMemory, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Load(data)
}

// LoadDefault loads the catalog bundled with the binary
func LoadDefault() (*InMemory, error) {
	return Load(defaultCatalog)
}

func (c *InMemory) index(card entities.AnyCard) error {
	base := card.Base()
	if base.ID == "" {
		return errors.InvalidArgumentf("card in set %s has no id", base.SetID)
	}
	if _, ok := c.cards[base.ID]; ok {
		return errors.AlreadyExistsf("card %s defined twice", base.ID)
	}
	c.cards[base.ID] = card

	if base.ShortID != "" && base.ShortID != base.ID {
		if _, ok := c.cards[base.ShortID]; ok {
			return errors.AlreadyExistsf("short id %s of card %s is already taken", base.ShortID, base.ID)
		}
		c.cards[base.ShortID] = card
	}
	return nil
}

// Sets lists every known set in load order
func (c *InMemory) Sets(_ context.Context) ([]*entities.Set, error) {
	return append([]*entities.Set(nil), c.sets...), nil
}

// CardsForSets returns the supply cards of the given sets, deduplicated
func (c *InMemory) CardsForSets(_ context.Context, setIDs []entities.SetID) ([]*entities.SupplyCard, error) {
	sets, err := c.lookupSets(setIDs)
	if err != nil {
		return nil, err
	}

	var cards []*entities.SupplyCard
	for _, set := range sets {
		cards = append(cards, set.SupplyCards...)
	}
	return cards, nil
}

// AddonsForSets returns the addons of the given sets, deduplicated
func (c *InMemory) AddonsForSets(_ context.Context, setIDs []entities.SetID) ([]*entities.Addon, error) {
	sets, err := c.lookupSets(setIDs)
	if err != nil {
		return nil, err
	}

	var addons []*entities.Addon
	for _, set := range sets {
		addons = append(addons, set.Addons...)
	}
	return addons, nil
}

// CardByID resolves a card by id or short id
func (c *InMemory) CardByID(_ context.Context, id string) (entities.AnyCard, error) {
	if id == "" {
		return nil, errors.InvalidArgument("card id is required")
	}
	card, ok := c.cards[id]
	if !ok {
		return nil, errors.NotFoundf("card %s not found", id).WithMeta("card_id", id)
	}
	return card, nil
}

func (c *InMemory) lookupSets(setIDs []entities.SetID) ([]*entities.Set, error) {
	seen := make(map[entities.SetID]struct{}, len(setIDs))
	sets := make([]*entities.Set, 0, len(setIDs))
	for _, id := range setIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		set, ok := c.byID[id]
		if !ok {
			return nil, errors.NotFoundf("set %s not found", id).WithMeta("set_id", id)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
