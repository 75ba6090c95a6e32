package entities

import (
	"time"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Kingdom is a complete randomized game setup. Values are treated as
// immutable: the With* methods return modified copies.
type Kingdom struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Supply    *Supply           `json:"supply"`
	Events    []*Addon          `json:"events,omitempty"`
	Landmarks []*Addon          `json:"landmarks,omitempty"`
	Projects  []*Addon          `json:"projects,omitempty"`
	Ways      []*Addon          `json:"ways,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// GetID returns the kingdom ID
func (k *Kingdom) GetID() string {
	return k.ID
}

// GetType returns the entity type for rpg-toolkit
func (k *Kingdom) GetType() string {
	return "kingdom"
}

// Addons returns the kingdom's addon modules as a bundle
func (k *Kingdom) Addons() *AddonBundle {
	return &AddonBundle{
		Events:    k.Events,
		Landmarks: k.Landmarks,
		Projects:  k.Projects,
		Ways:      k.Ways,
	}
}

// CardIDs returns the IDs of every supply card and addon
func (k *Kingdom) CardIDs() []string {
	ids := k.Supply.IDs()
	for _, addon := range k.Addons().All() {
		ids = append(ids, addon.ID)
	}
	return ids
}

// FindCard returns the supply card or addon with the given id
func (k *Kingdom) FindCard(id string) (AnyCard, bool) {
	if k.Supply != nil {
		for _, card := range k.Supply.Cards {
			if card.ID == id {
				return card, true
			}
		}
	}
	for _, addon := range k.Addons().All() {
		if addon.ID == id {
			return addon, true
		}
	}
	return nil, false
}

// Validate checks that member ids are unique across supply and addons
func (k *Kingdom) Validate() error {
	if k.Supply == nil {
		return errors.InvalidArgumentf("kingdom %q has no supply", k.ID)
	}
	seen := make(map[string]struct{})
	for _, id := range k.CardIDs() {
		if _, ok := seen[id]; ok {
			return errors.InvalidArgumentf("kingdom %q contains %q more than once", k.ID, id).
				WithMeta("card_id", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// WithSupply returns a copy of the kingdom holding supply
func (k *Kingdom) WithSupply(supply *Supply) *Kingdom {
	clone := k.clone()
	clone.Supply = supply
	return clone
}

// WithAddons returns a copy of the kingdom whose addons are replaced by bundle
func (k *Kingdom) WithAddons(bundle *AddonBundle) *Kingdom {
	clone := k.clone()
	if bundle == nil {
		bundle = &AddonBundle{}
	}
	clone.Events = bundle.Events
	clone.Landmarks = bundle.Landmarks
	clone.Projects = bundle.Projects
	clone.Ways = bundle.Ways
	return clone
}

// WithIdentity returns a copy carrying a new id and creation time
func (k *Kingdom) WithIdentity(id string, createdAt time.Time) *Kingdom {
	clone := k.clone()
	clone.ID = id
	clone.CreatedAt = createdAt
	return clone
}

func (k *Kingdom) clone() *Kingdom {
	clone := *k
	if k.Metadata != nil {
		clone.Metadata = make(map[string]string, len(k.Metadata))
		for key, value := range k.Metadata {
			clone.Metadata[key] = value
		}
	}
	return &clone
}
