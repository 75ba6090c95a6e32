package kingdom

import (
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/notify"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

// BuildFullKingdomInput defines the request for drawing a new kingdom
type BuildFullKingdomInput struct {
	Options *randomizer.Options
}

// BuildFullKingdomOutput defines the response for drawing a new kingdom
type BuildFullKingdomOutput struct {
	Kingdom *entities.Kingdom
}

// BuildPartialKingdomInput defines the request for redrawing the unlocked
// part of a kingdom
type BuildPartialKingdomInput struct {
	Current   *entities.Kingdom
	Selection entities.Selection
	Options   *randomizer.Options
}

// BuildPartialKingdomOutput defines the response for a partial redraw.
// Kingdom is Current itself when nothing needed redrawing.
type BuildPartialKingdomOutput struct {
	Kingdom *entities.Kingdom
}

// CreateSessionInput defines the request for starting a session
type CreateSessionInput struct {
	Settings entities.Settings
}

// CreateSessionOutput defines the response for starting a session
type CreateSessionOutput struct {
	Session *kingdomsession.Session
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Session *kingdomsession.Session
}

// ListSessionsInput defines the request for listing recent sessions
type ListSessionsInput struct {
	Limit int

	// Detailed also loads the sessions themselves
	Detailed bool
}

// ListSessionsOutput defines the response for listing recent sessions
type ListSessionsOutput struct {
	SessionIDs []string
	Sessions   []*kingdomsession.Session
}

// UpdateSettingsInput defines the request for changing session settings
type UpdateSettingsInput struct {
	SessionID string
	Settings  entities.Settings
}

// UpdateSettingsOutput defines the response for changing session settings
type UpdateSettingsOutput struct {
	Session *kingdomsession.Session
}

// RandomizeInput defines the request for randomizing a session's kingdom
type RandomizeInput struct {
	SessionID string
}

// RandomizeOutput defines the response for every randomizing operation
type RandomizeOutput struct {
	Session *kingdomsession.Session
	Kingdom *entities.Kingdom

	// Event tells which kind of randomization happened
	Event notify.EventType
}

// LoadInitialKingdomInput defines the request for loading a shared kingdom
type LoadInitialKingdomInput struct {
	SessionID string

	// Query is a share-link query string; empty means randomize
	Query string
}

// SelectCardInput defines the request for locking a card
type SelectCardInput struct {
	SessionID string
	CardID    string
}

// SelectCardOutput defines the response for locking a card
type SelectCardOutput struct {
	Session *kingdomsession.Session
}

// UnselectCardInput defines the request for unlocking a card
type UnselectCardInput struct {
	SessionID string
	CardID    string
}

// UnselectCardOutput defines the response for unlocking a card
type UnselectCardOutput struct {
	Session *kingdomsession.Session
}
