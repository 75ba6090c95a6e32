// Package kingdom implements the kingdom orchestrator: it assembles
// kingdoms from the sampling engine and keeps each user's current kingdom,
// locks and settings in the session store
package kingdom

//go:generate mockgen -destination=mock/mock_service.go -package=kingdommock github.com/KirkDiggler/kingdom-randomizer/internal/orchestrators/kingdom Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/notify"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/clock"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/idgen"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

// Sets needed before a full randomize avoids repeating the displayed supply
const excludeDisplayedMinSets = 3

// Service defines the interface for kingdom operations
type Service interface {
	// Kingdom assembly
	BuildFullKingdom(ctx context.Context, input *BuildFullKingdomInput) (*BuildFullKingdomOutput, error)
	BuildPartialKingdom(ctx context.Context, input *BuildPartialKingdomInput) (*BuildPartialKingdomOutput, error)

	// Sessions
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// Randomizing a session's kingdom. A failed attempt leaves the stored
	// kingdom untouched.
	RandomizeFullKingdom(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)
	Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)
	LoadInitialKingdom(ctx context.Context, input *LoadInitialKingdomInput) (*RandomizeOutput, error)

	// Locks
	SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error)
	UnselectCard(ctx context.Context, input *UnselectCardInput) (*UnselectCardOutput, error)
}

// Config holds the dependencies for the kingdom orchestrator
type Config struct {
	Catalog     catalog.Catalog
	Engine      randomizer.Engine
	SessionRepo kingdomsession.Repository
	Notifier    notify.Notifier
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog     catalog.Catalog
	engine      randomizer.Engine
	sessionRepo kingdomsession.Repository
	notifier    notify.Notifier
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new kingdom orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		engine:      cfg.Engine,
		sessionRepo: cfg.SessionRepo,
		notifier:    cfg.Notifier,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// CreateSession starts a session with no kingdom
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	createOutput, err := o.sessionRepo.Create(ctx, kingdomsession.CreateInput{
		Session: &kingdomsession.Session{
			ID:       o.idGen.Generate(),
			Settings: input.Settings,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Kingdom session created",
		"session_id", createOutput.Session.ID,
		"sets", input.Settings.SelectedSets,
	)

	return &CreateSessionOutput{Session: createOutput.Session}, nil
}

// GetSession returns a stored session
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session}, nil
}

// ListSessions returns recently used session ids
func (o *orchestrator) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &ListSessionsInput{}
	}

	listOutput, err := o.sessionRepo.List(ctx, kingdomsession.ListInput{
		Limit:        input.Limit,
		WithSessions: input.Detailed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return &ListSessionsOutput{
		SessionIDs: listOutput.IDs,
		Sessions:   listOutput.Sessions,
	}, nil
}

// UpdateSettings replaces a session's settings. The kingdom is not redrawn.
func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Settings = input.Settings
	session, err = o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Session: session}, nil
}

// SelectCard locks a card of the current kingdom. The id may be a short id.
func (o *orchestrator) SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, card, err := o.resolveKingdomCard(ctx, input.SessionID, input.CardID)
	if err != nil {
		return nil, err
	}

	session.Selection = session.Selection.WithAdded(card.GetID(), card)
	session, err = o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("Card locked",
		"session_id", session.ID,
		"card_id", card.GetID(),
	)

	return &SelectCardOutput{Session: session}, nil
}

// UnselectCard unlocks a card. Unlocking a card that is not locked is a
// no-op.
func (o *orchestrator) UnselectCard(ctx context.Context, input *UnselectCardInput) (*UnselectCardOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, card, err := o.resolveKingdomCard(ctx, input.SessionID, input.CardID)
	if err != nil {
		return nil, err
	}

	session.Selection = session.Selection.WithRemoved(card.GetID())
	session, err = o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &UnselectCardOutput{Session: session}, nil
}

// resolveKingdomCard maps id (or short id) to a card of the session's
// current kingdom
func (o *orchestrator) resolveKingdomCard(ctx context.Context, sessionID, id string) (*kingdomsession.Session, entities.AnyCard, error) {
	if id == "" {
		return nil, nil, errors.InvalidArgument("card ID is required")
	}

	session, err := o.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Kingdom == nil {
		return nil, nil, errors.FailedPreconditionf("session %s has no kingdom yet", sessionID)
	}

	resolved, err := o.catalog.CardByID(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to resolve card %s", id)
	}

	card, ok := session.Kingdom.FindCard(resolved.GetID())
	if !ok {
		return nil, nil, errors.NotFoundf("card %s is not in the current kingdom", id).
			WithMeta("card_id", id)
	}

	return session, card, nil
}

func (o *orchestrator) loadSession(ctx context.Context, id string) (*kingdomsession.Session, error) {
	getOutput, err := o.sessionRepo.Get(ctx, kingdomsession.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", id)
	}
	return getOutput.Session, nil
}

func (o *orchestrator) saveSession(ctx context.Context, session *kingdomsession.Session) (*kingdomsession.Session, error) {
	updateOutput, err := o.sessionRepo.Update(ctx, kingdomsession.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", session.ID)
	}
	return updateOutput.Session, nil
}

// optionsFor turns session settings into randomizer options
func optionsFor(settings entities.Settings) *randomizer.OptionsBuilder {
	return randomizer.NewOptionsBuilderFromSettings(settings, randomizer.FeaturesFor(settings)).
		SetSetIDs(settings.SelectedSets...).
		SetExcludeTypes(randomizer.ExcludeTypesFor(settings)...)
}
