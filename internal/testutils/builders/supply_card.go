// Package builders provides test data builders for creating test fixtures
package builders

import (
	"strconv"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

// SupplyCardBuilder provides a fluent interface for building test supply cards
type SupplyCardBuilder struct {
	card *entities.SupplyCard
}

// NewSupplyCardBuilder creates a plain 3-cost action card
func NewSupplyCardBuilder(id string) *SupplyCardBuilder {
	return &SupplyCardBuilder{
		card: &entities.SupplyCard{
			Card: entities.Card{
				ID:    id,
				SetID: "test",
				Name:  id,
				Cost:  entities.Cost{Treasure: 3},
			},
			Types: []entities.CardType{entities.CardTypeAction},
		},
	}
}

// InSet sets the card's set
func (b *SupplyCardBuilder) InSet(setID entities.SetID) *SupplyCardBuilder {
	b.card.SetID = setID
	return b
}

// WithShortID sets the short id used in share links
func (b *SupplyCardBuilder) WithShortID(shortID string) *SupplyCardBuilder {
	b.card.ShortID = shortID
	return b
}

// Costing sets the treasure cost
func (b *SupplyCardBuilder) Costing(treasure int) *SupplyCardBuilder {
	b.card.Cost = entities.Cost{Treasure: treasure}
	return b
}

// WithCost sets a composite cost
func (b *SupplyCardBuilder) WithCost(cost entities.Cost) *SupplyCardBuilder {
	b.card.Cost = cost
	return b
}

// WithTypes appends card types
func (b *SupplyCardBuilder) WithTypes(types ...entities.CardType) *SupplyCardBuilder {
	b.card.Types = append(b.card.Types, types...)
	return b
}

// WithCapabilities appends capabilities
func (b *SupplyCardBuilder) WithCapabilities(caps ...entities.Capability) *SupplyCardBuilder {
	b.card.Capabilities = append(b.card.Capabilities, caps...)
	return b
}

// Attack marks the card as an attack
func (b *SupplyCardBuilder) Attack() *SupplyCardBuilder {
	return b.WithTypes(entities.CardTypeAttack)
}

// Reaction marks the card as a reaction
func (b *SupplyCardBuilder) Reaction() *SupplyCardBuilder {
	return b.WithTypes(entities.CardTypeReaction)
}

// Build returns the card
func (b *SupplyCardBuilder) Build() *entities.SupplyCard {
	return b.card
}

// Fillers returns n plain cards named prefix-1..prefix-n
func Fillers(setID entities.SetID, prefix string, n int) []*entities.SupplyCard {
	cards := make([]*entities.SupplyCard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, NewSupplyCardBuilder(prefix+"-"+strconv.Itoa(i)).InSet(setID).Build())
	}
	return cards
}
