package entities

// AddonKind is the variant tag of an Addon
type AddonKind string

// Addon kinds
const (
	AddonKindEvent    AddonKind = "event"
	AddonKindLandmark AddonKind = "landmark"
	AddonKindProject  AddonKind = "project"
	AddonKindWay      AddonKind = "way"
)

// AddonKinds lists every addon variant in display order
var AddonKinds = []AddonKind{AddonKindEvent, AddonKindLandmark, AddonKindProject, AddonKindWay}

// Valid reports whether k is one of the known variants
func (k AddonKind) Valid() bool {
	switch k {
	case AddonKindEvent, AddonKindLandmark, AddonKindProject, AddonKindWay:
		return true
	default:
		return false
	}
}

// Addon is a non-supply module owned by the kingdom: an Event, Landmark,
// Project or Way. Landmarks and Ways never cost anything.
type Addon struct {
	Card `yaml:",inline"`
	Kind AddonKind `json:"kind" yaml:"kind"`
}

// NewAddon builds an addon, zeroing the cost of variants that have none
func NewAddon(card Card, kind AddonKind) *Addon {
	switch kind {
	case AddonKindWay, AddonKindLandmark:
		card.Cost = Cost{}
	case AddonKindEvent, AddonKindProject:
	}
	return &Addon{Card: card, Kind: kind}
}

// GetID returns the addon ID
func (a *Addon) GetID() string {
	return a.ID
}

// GetType returns the addon kind as the rpg-toolkit entity type
func (a *Addon) GetType() string {
	return string(a.Kind)
}

// Base returns the shared card attributes
func (a *Addon) Base() Card {
	return a.Card
}

func (a *Addon) isCard() {}

// AddonBundle is a set of addons partitioned by kind
type AddonBundle struct {
	Events    []*Addon `json:"events,omitempty"`
	Landmarks []*Addon `json:"landmarks,omitempty"`
	Projects  []*Addon `json:"projects,omitempty"`
	Ways      []*Addon `json:"ways,omitempty"`
}

// NewAddonBundle partitions addons by kind, keeping their relative order.
// Addons with an unknown kind are dropped.
func NewAddonBundle(addons []*Addon) *AddonBundle {
	bundle := &AddonBundle{}
	for _, addon := range addons {
		switch addon.Kind {
		case AddonKindEvent:
			bundle.Events = append(bundle.Events, addon)
		case AddonKindLandmark:
			bundle.Landmarks = append(bundle.Landmarks, addon)
		case AddonKindProject:
			bundle.Projects = append(bundle.Projects, addon)
		case AddonKindWay:
			bundle.Ways = append(bundle.Ways, addon)
		}
	}
	return bundle
}

// All returns every addon in the bundle, events first
func (b *AddonBundle) All() []*Addon {
	if b == nil {
		return nil
	}
	all := make([]*Addon, 0, b.Len())
	all = append(all, b.Events...)
	all = append(all, b.Landmarks...)
	all = append(all, b.Projects...)
	all = append(all, b.Ways...)
	return all
}

// Len returns the number of addons in the bundle
func (b *AddonBundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Events) + len(b.Landmarks) + len(b.Projects) + len(b.Ways)
}
