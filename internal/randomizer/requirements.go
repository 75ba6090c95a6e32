package randomizer

import (
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// requirement is a bit set of capability requirements
type requirement uint8

const (
	reqActionProvider requirement = 1 << iota
	reqBuyProvider
	reqTrashing
	reqReaction
)

var requirementCapabilities = []struct {
	bit        requirement
	capability entities.Capability
}{
	{reqActionProvider, entities.CapabilityActionProvider},
	{reqBuyProvider, entities.CapabilityBuyProvider},
	{reqTrashing, entities.CapabilityTrashing},
	{reqReaction, entities.CapabilityReaction},
}

// names lists the capabilities in r, for error metadata
func (r requirement) names() []string {
	var names []string
	for _, rc := range requirementCapabilities {
		if r&rc.bit != 0 {
			names = append(names, string(rc.capability))
		}
	}
	return names
}

// unconditional returns the requirements that hold regardless of the
// cards already chosen. The reaction requirement is conditional and is
// handled by coverage.unmet.
func (o *Options) unconditional() requirement {
	var r requirement
	if o.RequireActionProvider {
		r |= reqActionProvider
	}
	if o.RequireBuyProvider {
		r |= reqBuyProvider
	}
	if o.RequireTrashing {
		r |= reqTrashing
	}
	return r
}

// signature is what a card contributes towards the requirements
type signature struct {
	provides requirement
	attack   bool
}

func signatureOf(card *entities.SupplyCard) signature {
	var sig signature
	for _, rc := range requirementCapabilities {
		if card.HasCapability(rc.capability) {
			sig.provides |= rc.bit
		}
	}
	sig.attack = card.HasCapability(entities.CapabilityAttack)
	return sig
}

// relevant reports whether the card can change requirement coverage
func (s signature) relevant() bool {
	return s.provides != 0 || s.attack
}

// coverage summarises a partial supply against the requirements
type coverage struct {
	covered requirement
	attack  bool
}

func (c coverage) add(sig signature) coverage {
	return coverage{
		covered: c.covered | sig.provides,
		attack:  c.attack || sig.attack,
	}
}

// unmet returns the requirements still missing. A reaction is only owed
// once an attack is present.
func (c coverage) unmet(base requirement, reactionIfAttacks bool) requirement {
	missing := base &^ c.covered
	if reactionIfAttacks && c.attack && c.covered&reqReaction == 0 {
		missing |= reqReaction
	}
	return missing
}

// minCover returns the fewest additional cards, drawn from the signatures
// with a positive count, that leave no requirement unmet starting from
// start. It returns -1 when no combination works. The state space is at
// most 32 coverages, so a breadth-first search is exhaustive and cheap.
func minCover(start coverage, counts map[signature]int, base requirement, reactionIfAttacks bool) int {
	dist := map[coverage]int{start: 0}
	queue := []coverage{start}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		if state.unmet(base, reactionIfAttacks) == 0 {
			return dist[state]
		}

		for sig, n := range counts {
			if n <= 0 {
				continue
			}
			next := state.add(sig)
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[state] + 1
			queue = append(queue, next)
		}
	}

	return -1
}
