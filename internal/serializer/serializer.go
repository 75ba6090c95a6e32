// Package serializer converts kingdoms to and from share-link query strings.
//
// A query looks like
//
//	supply=vi,ma,ch&events=alms&ways=way_of_the_ox&m_source=share
//
// Cards are written by short id when they have one. Keys starting with m_
// carry metadata.
package serializer

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Query keys
const (
	KeySupply      = "supply"
	KeyEvents      = "events"
	KeyLandmarks   = "landmarks"
	KeyProjects    = "projects"
	KeyWays        = "ways"
	MetadataPrefix = "m_"

	separator = ","
)

var addonKeys = map[entities.AddonKind]string{
	entities.AddonKindEvent:    KeyEvents,
	entities.AddonKindLandmark: KeyLandmarks,
	entities.AddonKindProject:  KeyProjects,
	entities.AddonKindWay:      KeyWays,
}

// Encode writes kingdom as a query string without the leading '?'
func Encode(kingdom *entities.Kingdom) string {
	if kingdom == nil {
		return ""
	}

	values := url.Values{}
	if kingdom.Supply.Len() > 0 {
		ids := make([]string, 0, kingdom.Supply.Len())
		for _, card := range kingdom.Supply.Cards {
			ids = append(ids, shareID(card.Card))
		}
		values.Set(KeySupply, strings.Join(ids, separator))
	}

	byKind := make(map[entities.AddonKind][]string)
	for _, addon := range kingdom.Addons().All() {
		byKind[addon.Kind] = append(byKind[addon.Kind], shareID(addon.Card))
	}
	for kind, ids := range byKind {
		values.Set(addonKeys[kind], strings.Join(ids, separator))
	}

	for key, value := range kingdom.Metadata {
		values.Set(MetadataPrefix+key, value)
	}

	return values.Encode()
}

func shareID(card entities.Card) string {
	if card.ShortID != "" {
		return card.ShortID
	}
	return card.ID
}

// Decode reads a kingdom from a query string. Ids the catalog does not know
// are skipped so links from newer catalogs still load. The supply may hold
// fewer than ten cards; the caller fills the rest. The result has no
// identity.
//
// Returns errors.NotFound when the query names no known card and
// errors.InvalidArgument when it is malformed.
func Decode(ctx context.Context, cat catalog.Catalog, query string) (*entities.Kingdom, error) {
	if cat == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(query), "?"))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse kingdom query")
	}

	supplyCards, err := decodeSupply(ctx, cat, values.Get(KeySupply))
	if err != nil {
		return nil, err
	}
	supply, err := entities.NewSupply(supplyCards)
	if err != nil {
		return nil, errors.Wrap(err, "invalid supply in kingdom query")
	}

	var addons []*entities.Addon
	for _, kind := range entities.AddonKinds {
		decoded, err := decodeAddons(ctx, cat, kind, values.Get(addonKeys[kind]))
		if err != nil {
			return nil, err
		}
		addons = append(addons, decoded...)
	}

	if supply.Len() == 0 && len(addons) == 0 {
		return nil, errors.NotFound("query does not name any known card")
	}

	kingdom := (&entities.Kingdom{}).
		WithSupply(supply).
		WithAddons(entities.NewAddonBundle(addons))

	for key := range values {
		if name, ok := strings.CutPrefix(key, MetadataPrefix); ok && name != "" {
			if kingdom.Metadata == nil {
				kingdom.Metadata = make(map[string]string)
			}
			kingdom.Metadata[name] = values.Get(key)
		}
	}

	if err := kingdom.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid kingdom query")
	}

	return kingdom, nil
}

func decodeSupply(ctx context.Context, cat catalog.Catalog, raw string) ([]*entities.SupplyCard, error) {
	ids := splitIDs(raw)
	if len(ids) > entities.SupplySize {
		return nil, errors.InvalidArgumentf("query names %d supply cards, at most %d fit", len(ids), entities.SupplySize)
	}

	var cards []*entities.SupplyCard
	for _, id := range ids {
		card, err := lookup(ctx, cat, id)
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}

		supplyCard, ok := card.(*entities.SupplyCard)
		if !ok {
			return nil, errors.InvalidArgumentf("%s is not a supply card", id).WithMeta("card_id", id)
		}
		if slices.ContainsFunc(cards, func(c *entities.SupplyCard) bool { return c.ID == supplyCard.ID }) {
			continue
		}
		cards = append(cards, supplyCard)
	}
	return cards, nil
}

func decodeAddons(ctx context.Context, cat catalog.Catalog, kind entities.AddonKind, raw string) ([]*entities.Addon, error) {
	var addons []*entities.Addon
	for _, id := range splitIDs(raw) {
		card, err := lookup(ctx, cat, id)
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}

		addon, ok := card.(*entities.Addon)
		if !ok || addon.Kind != kind {
			return nil, errors.InvalidArgumentf("%s is not a %s", id, kind).WithMeta("card_id", id)
		}
		if slices.ContainsFunc(addons, func(a *entities.Addon) bool { return a.ID == addon.ID }) {
			continue
		}
		addons = append(addons, addon)
	}
	return addons, nil
}

// lookup returns nil without error for ids the catalog does not know
func lookup(ctx context.Context, cat catalog.Catalog, id string) (entities.AnyCard, error) {
	card, err := cat.CardByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			slog.Debug("skipping unknown card in kingdom query", "card_id", id)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to resolve card %s", id)
	}
	return card, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, separator) {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
