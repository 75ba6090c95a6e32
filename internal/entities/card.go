package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// SetID identifies a group of cards published together
type SetID string

// Set groups the supply cards and addons of one published set
type Set struct {
	ID          SetID         `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	SupplyCards []*SupplyCard `json:"supply_cards" yaml:"supply_cards"`
	Addons      []*Addon      `json:"addons" yaml:"addons"`
}

// CardType classifies a supply card
type CardType string

// Card types
const (
	CardTypeAction    CardType = "action"
	CardTypeTreasure  CardType = "treasure"
	CardTypeVictory   CardType = "victory"
	CardTypeAttack    CardType = "attack"
	CardTypeReaction  CardType = "reaction"
	CardTypeDuration  CardType = "duration"
	CardTypeCurse     CardType = "curse"
	CardTypeNight     CardType = "night"
	CardTypeReserve   CardType = "reserve"
	CardTypeTraveller CardType = "traveller"
	CardTypeLooter    CardType = "looter"
	CardTypeRuins     CardType = "ruins"
	CardTypeKnight    CardType = "knight"
)

// Capability is a boolean card attribute used by randomizer requirements
type Capability string

// Capabilities
const (
	CapabilityActionProvider Capability = "action_provider"
	CapabilityBuyProvider    Capability = "buy_provider"
	CapabilityTrashing       Capability = "trashing"
	CapabilityReaction       Capability = "reaction"
	CapabilityAttack         Capability = "attack"
)

// Cost is the composite price of a card
type Cost struct {
	Treasure int `json:"treasure" yaml:"treasure"`
	Potion   int `json:"potion,omitempty" yaml:"potion"`
	Debt     int `json:"debt,omitempty" yaml:"debt"`
}

// Tier folds a composite cost into a single bucket used to spread a supply
// across price points. Debt counts half, a potion counts one.
func (c Cost) Tier() int {
	tier := c.Treasure + c.Debt/2
	if c.Potion > 0 {
		tier++
	}
	return tier
}

// Card holds the attributes shared by every card variant
type Card struct {
	ID      string `json:"id" yaml:"id"`
	ShortID string `json:"short_id" yaml:"short_id"`
	SetID   SetID  `json:"set_id" yaml:"set_id"`
	Name    string `json:"name" yaml:"name"`
	Cost    Cost   `json:"cost" yaml:"cost"`
}

// AnyCard is the closed set of card variants the catalog can return:
// *SupplyCard and *Addon. Callers switch on the concrete type.
type AnyCard interface {
	core.Entity
	Base() Card
	isCard()
}

// SupplyCard is a card that occupies one of the supply piles
type SupplyCard struct {
	Card         `yaml:",inline"`
	Types        []CardType   `json:"types" yaml:"types"`
	Capabilities []Capability `json:"capabilities,omitempty" yaml:"capabilities"`

	// WayID links a card to the Way it is commonly paired with, if any
	WayID string `json:"way_id,omitempty" yaml:"way_id"`
}

// GetID returns the card ID
func (c *SupplyCard) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *SupplyCard) GetType() string {
	return "supply_card"
}

// Base returns the shared card attributes
func (c *SupplyCard) Base() Card {
	return c.Card
}

func (c *SupplyCard) isCard() {}

// IsType reports whether the card carries the given type
func (c *SupplyCard) IsType(t CardType) bool {
	return slices.Contains(c.Types, t)
}

// HasAnyType reports whether the card carries at least one of the given types
func (c *SupplyCard) HasAnyType(types []CardType) bool {
	for _, t := range types {
		if c.IsType(t) {
			return true
		}
	}
	return false
}

// HasCapability reports whether the card is tagged with capability.
// Attack and reaction capabilities are implied by the matching card types.
func (c *SupplyCard) HasCapability(capability Capability) bool {
	switch capability {
	case CapabilityAttack:
		if c.IsType(CardTypeAttack) {
			return true
		}
	case CapabilityReaction:
		if c.IsType(CardTypeReaction) {
			return true
		}
	}
	return slices.Contains(c.Capabilities, capability)
}
