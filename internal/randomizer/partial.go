package randomizer

import (
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// partial is the supply under construction during one draw
type partial struct {
	cards    []*entities.SupplyCard
	ids      map[string]struct{}
	coverage coverage
	tiers    map[int]int

	base              requirement
	reactionIfAttacks bool
}

func newPartial(opts *Options) *partial {
	return &partial{
		ids:               make(map[string]struct{}, entities.SupplySize),
		tiers:             make(map[int]int),
		base:              opts.unconditional(),
		reactionIfAttacks: opts.RequireReactionIfAttacks,
	}
}

func (p *partial) add(card *entities.SupplyCard) {
	p.cards = append(p.cards, card)
	p.ids[card.ID] = struct{}{}
	p.coverage = p.coverage.add(signatureOf(card))
	p.tiers[card.Cost.Tier()]++
}

func (p *partial) has(id string) bool {
	_, ok := p.ids[id]
	return ok
}

func (p *partial) free() int {
	return entities.SupplySize - len(p.cards)
}

func (p *partial) unmet() requirement {
	return p.coverage.unmet(p.base, p.reactionIfAttacks)
}

// needAfter returns how many more cards would be required to meet every
// requirement if card were taken, or -1 if it could no longer be done.
// counts must not include card itself.
func (p *partial) needAfter(card *entities.SupplyCard, counts map[signature]int) int {
	return minCover(p.coverage.add(signatureOf(card)), counts, p.base, p.reactionIfAttacks)
}
