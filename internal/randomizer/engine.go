// Package randomizer draws kingdoms from a card catalog under a set of
// constraints
package randomizer

//go:generate mockgen -destination=mock/mock_engine.go -package=randomizermock github.com/KirkDiggler/kingdom-randomizer/internal/randomizer Engine

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Engine samples supplies and addons. It holds no state between calls.
type Engine interface {
	// SampleSupply draws a complete supply satisfying opts.
	// Returns an unsatisfiable error (see IsUnsatisfiable) when the
	// constraints cannot be met by the candidate pool.
	SampleSupply(ctx context.Context, cat catalog.Catalog, opts *Options) (*entities.Supply, error)

	// SampleKingdom draws a supply and, when opts.AddonCount > 0, addons.
	// The returned kingdom has no identity yet.
	SampleKingdom(ctx context.Context, cat catalog.Catalog, opts *Options) (*entities.Kingdom, error)

	// SampleAddons draws up to totalCount addons from the sets, skipping
	// lockedAddonIDs. Fewer are returned when the sets run out.
	SampleAddons(ctx context.Context, cat catalog.Catalog, setIDs []entities.SetID,
		lockedAddonIDs []string, totalCount int) (*entities.AddonBundle, error)
}

// Config holds the dependencies for the engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("roller")
	}
	return vb.Build()
}

type engine struct {
	roller dice.Roller
}

// NewEngine creates a randomizer engine
func NewEngine(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{roller: cfg.Roller}, nil
}

// IsUnsatisfiable reports whether err means the constraints could not be
// met from the candidate pool, as opposed to a malformed request
func IsUnsatisfiable(err error) bool {
	return errors.IsFailedPrecondition(err)
}

func unsatisfiable(format string, args ...interface{}) *errors.Error {
	return errors.FailedPreconditionf(format, args...).WithMeta("reason", "unsatisfiable")
}

// catalogFailure maps an unknown set or card to a malformed request
func catalogFailure(err error, message string) error {
	if errors.IsNotFound(err) {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, message)
	}
	return errors.Wrap(err, message)
}

func (e *engine) SampleKingdom(ctx context.Context, cat catalog.Catalog, opts *Options) (*entities.Kingdom, error) {
	supply, err := e.SampleSupply(ctx, cat, opts)
	if err != nil {
		return nil, err
	}

	kingdom := &entities.Kingdom{Supply: supply}
	if opts.AddonCount > 0 {
		bundle, err := e.SampleAddons(ctx, cat, opts.SetIDs, nil, opts.AddonCount)
		if err != nil {
			return nil, err
		}
		kingdom = kingdom.WithAddons(bundle)
	}

	return kingdom, nil
}

func (e *engine) SampleSupply(ctx context.Context, cat catalog.Catalog, opts *Options) (*entities.Supply, error) {
	if cat == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	candidates, err := cat.CardsForSets(ctx, opts.SetIDs)
	if err != nil {
		return nil, catalogFailure(err, "failed to load supply cards")
	}

	p := newPartial(opts)
	if err := e.seedIncludes(ctx, cat, opts, p); err != nil {
		return nil, err
	}

	pool := buildPool(candidates, opts, p)
	if len(pool) < p.free() {
		return nil, unsatisfiable("only %d candidate cards for %d open slots", len(pool), p.free()).
			WithMeta("pool_size", len(pool))
	}

	if err := e.fill(p, pool, scorersFor(opts)); err != nil {
		return nil, err
	}

	supply, err := entities.NewSupply(p.cards)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "drew an invalid supply")
	}

	slog.Debug("sampled supply",
		"sets", opts.SetIDs,
		"cards", supply.IDs(),
		"includes", len(opts.IncludeCardIDs))

	return supply, nil
}

func (e *engine) seedIncludes(ctx context.Context, cat catalog.Catalog, opts *Options, p *partial) error {
	var ids []string
	for _, id := range opts.IncludeCardIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if len(ids) > entities.SupplySize {
		return unsatisfiable("%d cards must be included but the supply has %d slots",
			len(ids), entities.SupplySize).WithMeta("include_count", len(ids))
	}

	for _, id := range ids {
		card, err := cat.CardByID(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				return unsatisfiable("included card %s is not in the catalog", id).WithMeta("card_id", id)
			}
			return errors.Wrapf(err, "failed to resolve included card %s", id)
		}

		supplyCard, ok := card.(*entities.SupplyCard)
		if !ok {
			return unsatisfiable("included card %s is not a supply card", id).WithMeta("card_id", id)
		}
		if p.has(supplyCard.ID) {
			continue
		}
		p.add(supplyCard)
	}

	return nil
}

// buildPool returns the candidates still eligible for the open slots
func buildPool(candidates []*entities.SupplyCard, opts *Options, p *partial) []*entities.SupplyCard {
	excluded := make(map[string]struct{}, len(opts.ExcludeCardIDs))
	for _, id := range opts.ExcludeCardIDs {
		excluded[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(candidates))
	pool := make([]*entities.SupplyCard, 0, len(candidates))
	for _, card := range candidates {
		if _, dup := seen[card.ID]; dup || p.has(card.ID) {
			continue
		}
		seen[card.ID] = struct{}{}

		if _, ok := excluded[card.ID]; ok {
			continue
		}
		if card.ShortID != "" {
			if _, ok := excluded[card.ShortID]; ok {
				continue
			}
		}
		if card.HasAnyType(opts.ExcludeTypes) {
			continue
		}
		pool = append(pool, card)
	}
	return pool
}

// fill draws one card at a time. Only candidates that keep every
// requirement reachable with the remaining slots are considered, and the
// scorers tilt the draw among those.
func (e *engine) fill(p *partial, pool []*entities.SupplyCard, scorers map[scoreKind]scoreFunc) error {
	for p.free() > 0 {
		eligible, weights := rank(p, pool, scorers)
		if len(eligible) == 0 {
			return unsatisfiable("no candidate keeps the requirements reachable with %d slots left", p.free()).
				WithMeta("unmet_requirements", p.unmet().names()).
				WithMeta("pool_size", len(pool))
		}

		idx, err := e.pick(weights)
		if err != nil {
			return err
		}

		chosen := eligible[idx]
		p.add(chosen)
		pool = slices.DeleteFunc(pool, func(card *entities.SupplyCard) bool {
			return card.ID == chosen.ID
		})
	}

	if unmet := p.unmet(); unmet != 0 {
		return unsatisfiable("supply is missing required capabilities").
			WithMeta("unmet_requirements", unmet.names())
	}
	return nil
}

func rank(p *partial, pool []*entities.SupplyCard, scorers map[scoreKind]scoreFunc) ([]*entities.SupplyCard, []int) {
	counts := make(map[signature]int)
	for _, card := range pool {
		if sig := signatureOf(card); sig.relevant() {
			counts[sig]++
		}
	}

	needs := make(map[signature]int)
	eligible := make([]*entities.SupplyCard, 0, len(pool))
	weights := make([]int, 0, len(pool))
	for _, card := range pool {
		sig := signatureOf(card)
		need, ok := needs[sig]
		if !ok {
			if sig.relevant() {
				counts[sig]--
			}
			need = p.needAfter(card, counts)
			if sig.relevant() {
				counts[sig]++
			}
			needs[sig] = need
		}

		if need < 0 || need > p.free()-1 {
			continue
		}
		eligible = append(eligible, card)
		weights = append(weights, weigh(scorers, card, p))
	}
	return eligible, weights
}

// pick returns an index chosen with probability proportional to its weight
func (e *engine) pick(weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		total += w
	}

	roll, err := e.roll(total)
	if err != nil {
		return 0, err
	}

	for i, w := range weights {
		roll -= w
		if roll <= 0 {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// roll returns a value in [1, size]
func (e *engine) roll(size int) (int, error) {
	roll, err := e.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	if roll < 1 || roll > size {
		return 0, errors.Internalf("roller returned %d for a d%d", roll, size)
	}
	return roll, nil
}

func (e *engine) SampleAddons(ctx context.Context, cat catalog.Catalog, setIDs []entities.SetID,
	lockedAddonIDs []string, totalCount int) (*entities.AddonBundle, error) {
	if cat == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonEmpty("set_ids", setIDs, vb)
	errors.ValidateMin("total_count", totalCount, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	addons, err := cat.AddonsForSets(ctx, setIDs)
	if err != nil {
		return nil, catalogFailure(err, "failed to load addons")
	}

	pool := make([]*entities.Addon, 0, len(addons))
	for _, addon := range addons {
		if slices.Contains(lockedAddonIDs, addon.ID) {
			continue
		}
		pool = append(pool, addon)
	}

	picked := make([]*entities.Addon, 0, totalCount)
	for len(picked) < totalCount && len(pool) > 0 {
		roll, err := e.roll(len(pool))
		if err != nil {
			return nil, err
		}
		picked = append(picked, pool[roll-1])
		pool = slices.Delete(pool, roll-1, roll)
	}

	return entities.NewAddonBundle(picked), nil
}
