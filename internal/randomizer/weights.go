package randomizer

import (
	"math/bits"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// Draw weights. These are tuning knobs rather than a contract: a card that
// closes an open requirement dominates, while set priority and cost spread
// only tilt the draw among otherwise equal candidates.
const (
	baseWeight        = 1
	requirementWeight = 64
	prioritySetWeight = 6
	costSpreadWeight  = 4
)

type scoreKind string

const (
	scoreBase         scoreKind = "base"
	scoreRequirements scoreKind = "requirements"
	scorePrioritySet  scoreKind = "prioritize_set"
	scoreCostSpread   scoreKind = "distribute_cost"
)

// scoreFunc rates one candidate against the cards chosen so far
type scoreFunc func(card *entities.SupplyCard, p *partial) int

// scorersFor returns the scoring functions active for opts. A candidate's
// draw weight is the sum of all of them.
func scorersFor(opts *Options) map[scoreKind]scoreFunc {
	scorers := map[scoreKind]scoreFunc{
		scoreBase: func(*entities.SupplyCard, *partial) int { return baseWeight },
		scoreRequirements: func(card *entities.SupplyCard, p *partial) int {
			closes := signatureOf(card).provides & p.unmet()
			return requirementWeight * bits.OnesCount8(uint8(closes))
		},
	}

	if opts.PrioritizeSet != "" {
		prioritized := opts.PrioritizeSet
		scorers[scorePrioritySet] = func(card *entities.SupplyCard, _ *partial) int {
			if card.SetID == prioritized {
				return prioritySetWeight
			}
			return 0
		}
	}

	if opts.DistributeCost {
		scorers[scoreCostSpread] = func(card *entities.SupplyCard, p *partial) int {
			return max(costSpreadWeight-p.tiers[card.Cost.Tier()], 0)
		}
	}

	return scorers
}

func weigh(scorers map[scoreKind]scoreFunc, card *entities.SupplyCard, p *partial) int {
	total := 0
	for _, score := range scorers {
		total += score(card, p)
	}
	return max(total, 1)
}
