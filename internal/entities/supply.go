package entities

import (
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// SupplySize is the number of supply piles in a complete kingdom
const SupplySize = 10

// Supply is the set of supply cards of a kingdom. A complete supply holds
// exactly SupplySize unique cards; a shorter one only appears transiently,
// for example right after decoding a partial kingdom.
type Supply struct {
	Cards []*SupplyCard `json:"cards"`
}

// NewSupply builds a supply, rejecting duplicates and oversized input
func NewSupply(cards []*SupplyCard) (*Supply, error) {
	if len(cards) > SupplySize {
		return nil, errors.InvalidArgumentf("supply holds at most %d cards, got %d", SupplySize, len(cards))
	}

	seen := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		if card == nil {
			return nil, errors.InvalidArgument("supply card cannot be nil")
		}
		if _, ok := seen[card.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate supply card %q", card.ID).
				WithMeta("card_id", card.ID)
		}
		seen[card.ID] = struct{}{}
	}

	return &Supply{Cards: append([]*SupplyCard(nil), cards...)}, nil
}

// Len returns the number of cards in the supply
func (s *Supply) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Cards)
}

// IsComplete reports whether the supply has all of its piles
func (s *Supply) IsComplete() bool {
	return s.Len() == SupplySize
}

// IDs returns the card IDs in supply order
func (s *Supply) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.Cards))
	for i, card := range s.Cards {
		ids[i] = card.ID
	}
	return ids
}

// Contains reports whether a card with id is in the supply
func (s *Supply) Contains(id string) bool {
	if s == nil {
		return false
	}
	for _, card := range s.Cards {
		if card.ID == id {
			return true
		}
	}
	return false
}
