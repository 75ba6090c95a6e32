package entities

// Settings are the user's randomizer preferences, kept per session
type Settings struct {
	SelectedSets          []SetID `json:"selected_sets"`
	RequireActionProvider bool    `json:"require_action_provider"`
	RequireBuyProvider    bool    `json:"require_buy_provider"`
	RequireTrashing       bool    `json:"require_trashing"`
	RequireReaction       bool    `json:"require_reaction"`
	AllowAttacks          bool    `json:"allow_attacks"`
	DistributeCost        bool    `json:"distribute_cost"`
	PrioritizeSet         SetID   `json:"prioritize_set,omitempty"`
	AddonCount            int     `json:"addon_count"`
}

// DefaultSettings allows attacks and requires nothing
func DefaultSettings(sets ...SetID) Settings {
	return Settings{
		SelectedSets: sets,
		AllowAttacks: true,
	}
}
